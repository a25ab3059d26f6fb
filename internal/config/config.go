// Package config loads sizefmt defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/dennisklein/sizefmt/internal/size"
)

// File is the on-disk configuration. Unset fields keep the converter defaults.
//
//nolint:govet // fieldalignment: readability preferred over optimization
type File struct {
	Binary    bool      `yaml:"binary"`
	Base      int       `yaml:"base"`
	Units     []string  `yaml:"units"`
	Precision *int      `yaml:"precision"`
	MaxSize   size.Size `yaml:"max_size"`

	// Path is the file the configuration was read from, empty if none.
	Path string `yaml:"-"`
}

// Load reads the configuration at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func Load(fs afero.Fs, path string) (*File, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if strings.TrimSpace(path) == "" {
		defaultPath, err := DefaultPath(fs)
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w", err)
		}

		if !exists(fs, defaultPath) {
			return &File{}, nil
		}

		path = defaultPath
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Path = path

	return cfg, nil
}

func decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg File
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}

		return nil, err
	}

	return &cfg, nil
}

// ConverterConfig maps the file onto a converter configuration.
func (f *File) ConverterConfig() size.Config {
	cfg := size.DefaultConfig()
	cfg.BinaryPrefix = f.Binary
	cfg.Base = f.Base
	cfg.Units = f.Units

	if f.Precision != nil {
		cfg.Precision = *f.Precision
	}

	return cfg
}
