package modding

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// ConfigFileName is the file a FileStore keeps each mod config in.
	ConfigFileName = "config.json"

	dirPerm  = 0o750
	filePerm = 0o600
)

// FileStore keeps configs as <Dir>/<modID>/config.json.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(modID string) string {
	return filepath.Join(s.Dir, modID, ConfigFileName)
}

// Load implements ConfigStore.
func (s *FileStore) Load(modID string) ([]byte, error) {
	data, err := os.ReadFile(s.path(modID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrConfigNotFound
	}

	if err != nil {
		return nil, errors.Wrapf(err, "read config of %s", modID)
	}

	return data, nil
}

// Delete implements ConfigStore.
func (s *FileStore) Delete(modID string) error {
	err := os.Remove(s.path(modID))
	if errors.Is(err, os.ErrNotExist) {
		return ErrConfigNotFound
	}

	return errors.Wrapf(err, "delete config of %s", modID)
}

// Save implements ConfigStore. The file is replaced atomically.
func (s *FileStore) Save(modID string, data []byte) error {
	p := s.path(modID)

	if err := os.MkdirAll(filepath.Dir(p), dirPerm); err != nil {
		return errors.Wrapf(err, "create mod folder of %s", modID)
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return errors.Wrapf(err, "write config of %s", modID)
	}

	return errors.Wrapf(os.Rename(tmp, p), "replace config of %s", modID)
}
