package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/ini.v1"
)

var (
	// ErrNoServices is returned when a service file defines no sections
	ErrNoServices = errors.New("no services defined")

	// ErrUnknownService is returned when a service name is not in the file
	ErrUnknownService = errors.New("unknown service")

	// ErrServiceFileNotFound is returned when no service file could be located
	ErrServiceFileNotFound = errors.New("no pg_service.conf file found")
)

// File is a loaded connection service file.
type File struct {
	Path     string
	names    []string
	profiles map[string]Profile
}

// Load reads the service file at path. Sections keep their file order.
func Load(path string) (*File, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		// pg_service.conf has no continuation lines; passwords may end in a backslash
		IgnoreContinuation: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service file at %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve path %s: %w", path, err)
	}

	f := &File{Path: abs, profiles: make(map[string]Profile)}
	for _, section := range cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		f.names = append(f.names, name)
		f.profiles[name] = NewProfile(name, section.KeysHash())
	}

	if len(f.names) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoServices)
	}
	return f, nil
}

// Names returns the service names in file order.
func (f *File) Names() []string {
	return slices.Clone(f.names)
}

// Len returns the number of services.
func (f *File) Len() int {
	return len(f.names)
}

// Profile looks up a service by name.
func (f *File) Profile(name string) (Profile, error) {
	p, ok := f.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w '%s' in %s", ErrUnknownService, name, f.Path)
	}
	return p, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
