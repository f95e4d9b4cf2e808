// Package config manages the durable client configuration file. Plain
// settings live in a flat map; per-host options hold anything scoped to
// one API server, such as the stored session.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v2"
)

// DefaultPath is the config file location used when neither the
// MONETA_CONFIG environment variable nor an explicit path is given.
// The leading ~ is expanded to the user's home directory.
const DefaultPath = "~/.moneta/config.yml"

type configFile struct {
	Settings map[string]string            `yaml:"settings,omitempty"`
	Options  map[string]map[string]string `yaml:"options,omitempty"`
}

var (
	mu   sync.Mutex
	path string
	cfg  *configFile
)

// Initialize loads the configuration from the given file, falling back
// to MONETA_CONFIG and then DefaultPath when custom is empty. A missing
// file is not an error, it simply yields an empty configuration.
func Initialize(custom string) error {
	mu.Lock()
	defer mu.Unlock()
	return initialize(custom)
}

func initialize(custom string) error {
	p := custom
	if p == "" {
		p = os.Getenv("MONETA_CONFIG")
	}
	if p == "" {
		p = DefaultPath
	}
	if expanded, err := expandHome(p); err == nil {
		p = expanded
	} else {
		return err
	}
	path = p

	loaded := &configFile{
		Settings: make(map[string]string),
		Options:  make(map[string]map[string]string),
	}
	data, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, loaded); err != nil {
			return err
		}
		if loaded.Settings == nil {
			loaded.Settings = make(map[string]string)
		}
		if loaded.Options == nil {
			loaded.Options = make(map[string]map[string]string)
		}
	case os.IsNotExist(err):
		// first run
	default:
		return err
	}

	cfg = loaded
	return nil
}

func expandHome(p string) (string, error) {
	if len(p) < 2 || p[:2] != "~/" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, p[2:]), nil
}

func ensureLoaded() {
	if cfg == nil {
		// Errors here surface on Save; reads on a broken config behave
		// as if it were empty.
		if err := initialize(""); err != nil {
			cfg = &configFile{
				Settings: make(map[string]string),
				Options:  make(map[string]map[string]string),
			}
		}
	}
}

// Get returns the setting stored under key, or the empty string.
func Get(key string) string {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()
	return cfg.Settings[key]
}

// GetOrDefault returns the setting stored under key, or deflt when the
// setting is absent.
func GetOrDefault(key, deflt string) string {
	if v := Get(key); v != "" {
		return v
	}
	return deflt
}

// Set stores a setting. The change is not written until Save.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()
	cfg.Settings[key] = value
}

// Remove deletes a setting.
func Remove(key string) {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()
	delete(cfg.Settings, key)
}

// GetOption returns the option stored under the given section and name.
func GetOption(section, name string) string {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()
	return cfg.Options[section][name]
}

// AddOption stores an option in the given section.
func AddOption(section, name, value string) {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()
	if cfg.Options[section] == nil {
		cfg.Options[section] = make(map[string]string)
	}
	cfg.Options[section][name] = value
}

// RemoveOption deletes an option; empty sections are removed entirely.
func RemoveOption(section, name string) {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()
	if opts := cfg.Options[section]; opts != nil {
		delete(opts, name)
		if len(opts) == 0 {
			delete(cfg.Options, section)
		}
	}
}

// Save writes the configuration file atomically. The file is created
// with mode 0600 since it may hold session tokens.
func Save() error {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Path returns the location of the loaded configuration file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()
	return path
}
