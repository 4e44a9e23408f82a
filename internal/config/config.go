package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDir = ".config/uppy"

	// FileName is the configuration file inside the uppy config directory.
	FileName = "config.json"
)

// Configuration holds the upload host and the credential sent verbatim as
// the Authorization header value. It is written once as a template on first
// run and only ever hand-edited afterwards; uppy never rewrites it.
type Configuration struct {
	Host  string `json:"host"`
	Token string `json:"token"`
}

// Dir returns the per-user config directory. Callers compute it once at
// startup and pass it down from there.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir), nil
}

// Bootstrap creates the config directory and a template config.json on
// first run, detected by the directory not existing yet. It reports whether
// it did so; an existing directory is left completely untouched.
func Bootstrap(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return false, err
	}

	template := Configuration{Host: "https://", Token: ""}
	data, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0600); err != nil {
		return false, err
	}

	return true, nil
}

// Load reads and parses config.json from dir. There is no partial-config
// recovery: any read or parse failure is returned as-is for the caller to
// treat as fatal.
func Load(dir string) (Configuration, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return Configuration{}, err
	}

	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("config file is not formatted properly: %w", err)
	}

	return cfg, nil
}
