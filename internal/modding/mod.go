package modding

// Monitor is the logger a mod writes to.
type Monitor interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Mod is the handle of one loaded mod.
type Mod struct {
	manifest Manifest
	helper   *Helper
	monitor  Monitor
}

// NewMod creates a mod handle.
func NewMod(manifest Manifest, helper *Helper, monitor Monitor) *Mod {
	return &Mod{
		manifest: manifest,
		helper:   helper,
		monitor:  monitor,
	}
}

// Manifest returns the manifest of the mod.
func (m *Mod) Manifest() Manifest { return m.manifest }

// Helper returns the mod helper.
func (m *Mod) Helper() *Helper { return m.helper }

// Monitor returns the mod logger.
func (m *Mod) Monitor() Monitor { return m.monitor }

// ModRegistry returns the registry of all loaded mods.
func (m *Mod) ModRegistry() *Registry { return m.helper.ModRegistry }

// DebugLog writes msg on debug level.
func (m *Mod) DebugLog(msg string) {
	m.monitor.Debugf("%s", msg)
}

// WriteConfig persists v as the mod config.
func (m *Mod) WriteConfig(v any) error {
	return m.helper.WriteConfig(v)
}
