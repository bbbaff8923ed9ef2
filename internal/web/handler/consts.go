package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of all JSON routes.
	APIPath = "/api"

	// ErrNilACMFatalLogMsg is used if app or cfg or menu var pointer is nil.
	ErrNilACMFatalLogMsg = "app, cfg or menu is nil"
)
