package modding

import (
	"reflect"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type loadedMod struct {
	manifest Manifest
	api      any
}

// Registry holds every loaded mod and the API it exposes to other mods, if any.
type Registry struct {
	mu        sync.RWMutex
	mods      map[string]loadedMod
	validator *validator.Validate
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		mods:      make(map[string]loadedMod),
		validator: validator.New(),
	}
}

// Register adds a mod. api may be nil for mods that publish nothing; a typed
// nil api counts as nothing published.
func (r *Registry) Register(manifest Manifest, api any) error {
	if err := r.validator.Struct(manifest); err != nil {
		return errors.Wrap(ErrInvalidManifest, err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.mods[manifest.UniqueID]; exists {
		return errors.Wrap(ErrModAlreadyLoaded, manifest.UniqueID)
	}

	if isNil(api) {
		api = nil
	}

	r.mods[manifest.UniqueID] = loadedMod{manifest: manifest, api: api}

	return nil
}

// isNil also catches typed nils such as a nil *Menu stored in an interface.
func isNil(api any) bool {
	if api == nil {
		return true
	}

	switch v := reflect.ValueOf(api); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// IsLoaded reports whether a mod with the unique ID is registered.
func (r *Registry) IsLoaded(uniqueID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.mods[uniqueID]

	return ok
}

// Get returns the manifest of a loaded mod.
func (r *Registry) Get(uniqueID string) (Manifest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.mods[uniqueID]

	return m.manifest, ok
}

// GetAll returns all manifests sorted by unique ID.
func (r *Registry) GetAll() []Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Manifest, 0, len(r.mods))
	for _, m := range r.mods {
		out = append(out, m.manifest)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UniqueID < out[j].UniqueID })

	return out
}

// GetAPI returns the raw API a mod published. ok is false when the mod is not
// loaded or published no API.
func (r *Registry) GetAPI(uniqueID string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.mods[uniqueID]
	if !ok || m.api == nil {
		return nil, false
	}

	return m.api, true
}

// GetAPI returns the API of uniqueID as T. ok is false when the mod is absent,
// published no API or its API does not implement T.
func GetAPI[T any](r *Registry, uniqueID string) (T, bool) {
	var zero T

	if r == nil {
		return zero, false
	}

	raw, ok := r.GetAPI(uniqueID)
	if !ok {
		return zero, false
	}

	api, ok := raw.(T)
	if !ok {
		return zero, false
	}

	return api, true
}
