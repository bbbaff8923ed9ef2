package gmcm

import "errors"

var (
	// ErrModNotRegistered is returned for a mod without RegisterModConfig.
	ErrModNotRegistered = errors.New("mod has no registered config menu")

	// ErrOptionNotFound is returned for an unknown option name.
	ErrOptionNotFound = errors.New("option not found")

	// ErrNotEditable is returned when setting a label or a custom drawn control.
	ErrNotEditable = errors.New("option is not editable")

	// ErrInvalidValue is returned when a value does not fit the option kind.
	ErrInvalidValue = errors.New("invalid option value")

	// ErrInvalidChoice is returned when a choice option gets a label outside its choices.
	ErrInvalidChoice = errors.New("value is not one of the choices")
)
