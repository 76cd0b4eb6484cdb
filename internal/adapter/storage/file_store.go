package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FileStore is a small key-value preference store persisted as a JSON
// object in a single file.
type FileStore struct {
	path   string
	values map[string]string
	logger logrus.FieldLogger
}

// DefaultPath returns the preference file location under the user config dir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", errors.Wrap(err, "failed to locate config directory")
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ghsearch", "preferences.json"), nil
}

// NewFileStore opens the store at path. A missing file is an empty store;
// it is created on the first Set.
func NewFileStore(path string, logger logrus.FieldLogger) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("preferences path cannot be empty")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
		logger: logger.WithField("preferences_path", path),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the path of the preference file.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key and whether it was present.
func (s *FileStore) Get(key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and writes the whole document to disk.
func (s *FileStore) Set(key, value string) error {
	previous, existed := s.values[key]
	s.values[key] = value

	if err := s.save(); err != nil {
		// Keep memory consistent with disk.
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		s.logger.WithError(err).WithField("key", key).Error("Failed to persist preference")
		return err
	}

	s.logger.WithField("key", key).Debug("Preference saved")
	return nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Preference file does not exist yet, starting empty")
			return nil
		}
		return errors.Wrap(err, "failed to read preferences file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return errors.Wrap(err, "failed to parse preferences file")
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return nil
}

// save writes to a temp file in the same directory and renames it over the
// target so a crash never leaves a truncated document behind.
func (s *FileStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create preferences directory")
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode preferences")
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary preferences file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write preferences")
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to set preferences permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close preferences file")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrap(err, "failed to replace preferences file")
	}
	return nil
}
