package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Store manages several named contexts. Path points at the selection
// file; the context files themselves live in a sibling folder derived
// from it.
type Store struct {
	Path    string
	DirPath string
	Current Config
}

const (
	tmpContextPrefix = "urlparams-context"
	tmpSelectPrefix  = "urlparams-selection"
)

func (s *Store) configDir() string {
	if s.DirPath == "" {
		s.DirPath = strings.TrimSuffix(s.Path, filepath.Ext(s.Path)) + ".d"
	}
	return s.DirPath
}

func (s *Store) contextPath(name string) string {
	return filepath.Join(s.configDir(), name+".json")
}

// Save a context atomically. Does not change the current selection.
func (s *Store) Save(cfg Config) error {
	return atomicSave(s.contextPath(cfg.Name), tmpContextPrefix, cfg)
}

// selection returns the name of the selected context, or "" when no
// selection file exists yet.
func (s *Store) selection() (string, error) {
	byteData, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var selected string
	if err := json.Unmarshal(byteData, &selected); err != nil {
		return "", errors.Wrapf(err, "failed to read selection file %s", s.Path)
	}
	return selected, nil
}

// Read loads the named context into Current. With an empty name it
// loads whatever context is currently selected; Current stays zero if
// there is none.
func (s *Store) Read(name string) error {
	if name == "" {
		var err error
		if name, err = s.selection(); err != nil {
			return err
		}
		if name == "" {
			s.Current = Config{}
			return nil
		}
	}
	byteData, err := os.ReadFile(s.contextPath(name))
	if err != nil {
		return errors.Wrapf(err, "failed to read context %s", name)
	}
	var cfg Config
	if err := json.Unmarshal(byteData, &cfg); err != nil {
		return errors.Wrapf(err, "failed to parse context %s", name)
	}
	s.Current = cfg
	return nil
}

// Create adds a new context and selects it.
func (s *Store) Create(name string) error {
	cfg := Config{Name: name}
	if err := s.Save(cfg); err != nil {
		return err
	}
	return s.Use(name)
}

// Use selects the named context. An empty name re-reads the current
// selection.
func (s *Store) Use(name string) error {
	if name == "" {
		if err := s.Read(""); err != nil {
			return err
		}
		if s.Current.Name == "" {
			return ErrNoContext
		}
		return nil
	}
	if err := s.Read(name); err != nil {
		return err
	}
	return atomicSave(s.Path, tmpSelectPrefix, name)
}

// Delete removes the named context. If it was selected, the selection
// is cleared.
func (s *Store) Delete(name string) error {
	if err := os.Remove(s.contextPath(name)); err != nil {
		return err
	}
	selected, err := s.selection()
	if err != nil {
		return err
	}
	if selected == name {
		return atomicSave(s.Path, tmpSelectPrefix, "")
	}
	return nil
}

// List returns the names of all stored contexts, sorted.
func (s *Store) List() ([]string, error) {
	files, err := os.ReadDir(s.configDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Set updates and persists context variables. An empty name targets
// the selected context.
func (s *Store) Set(name string, pairs []string) error {
	if err := s.Read(name); err != nil {
		return err
	}
	if s.Current.Name == "" {
		return ErrNoContext
	}
	if err := s.Current.Set(pairs); err != nil {
		return err
	}
	return s.Save(s.Current)
}

// SetParams updates and persists importer params. An empty name
// targets the selected context.
func (s *Store) SetParams(name string, pairs []string) error {
	if err := s.Read(name); err != nil {
		return err
	}
	if s.Current.Name == "" {
		return ErrNoContext
	}
	if err := s.Current.SetParams(pairs); err != nil {
		return err
	}
	return s.Save(s.Current)
}

// Info returns the named context without changing Current or the
// selection.
func (s *Store) Info(name string) (Config, error) {
	keep := s.Current
	defer func() { s.Current = keep }()
	if err := s.Read(name); err != nil {
		return Config{}, err
	}
	return s.Current, nil
}
