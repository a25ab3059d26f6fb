package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	appName  = "sizefmt"
	fileName = "config.yaml"
)

// Dir returns the configuration directory following XDG Base Directory spec.
// Priority: XDG_CONFIG_HOME > ~/.config (if exists) > ~/.sizefmt (fallback).
func Dir(fs afero.Fs) (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	xdgDefault := filepath.Join(homeDir, ".config")
	if isDir(fs, xdgDefault) {
		return filepath.Join(xdgDefault, appName), nil
	}

	return filepath.Join(homeDir, "."+appName), nil
}

// DefaultPath returns the location of the default config file.
func DefaultPath(fs afero.Fs) (string, error) {
	dir, err := Dir(fs)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, fileName), nil
}

// isDir checks if a path exists and is a directory.
func isDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}

// exists checks if a file exists and is not a directory.
func exists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}
