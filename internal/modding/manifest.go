package modding

// Manifest describes a loaded mod.
type Manifest struct {
	UniqueID    string `json:"UniqueID"    validate:"required"`
	Name        string `json:"Name"        validate:"required"`
	Author      string `json:"Author"`
	Version     string `json:"Version"     validate:"required"`
	Description string `json:"Description"`
}
