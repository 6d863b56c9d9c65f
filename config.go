package sitepass

import (
	"fmt"
	"io"
	"os"

	"github.com/absfs/absfs"
	"gopkg.in/yaml.v3"
)

// Settings is the on-disk form of default derivation parameters. Every
// field is optional; unset fields keep the built-in defaults. Settings
// never hold secrets or per-site records, only defaults applied to every
// derivation.
type Settings struct {
	Iterations int    `yaml:"iterations,omitempty"`
	Length     int    `yaml:"length,omitempty"`
	Mode       string `yaml:"mode,omitempty"`
	Hash       string `yaml:"hash,omitempty"`
}

// Params converts the settings to derivation parameters, filling unset
// fields with defaults and validating the result.
func (s Settings) Params() (Params, error) {
	p := DefaultParams()
	if s.Iterations != 0 {
		p.Iterations = s.Iterations
	}
	if s.Length != 0 {
		p.Length = s.Length
	}
	if s.Mode != "" {
		m, err := ParseAlphabetMode(s.Mode)
		if err != nil {
			return Params{}, err
		}
		p.Mode = m
	}
	if s.Hash != "" {
		h, err := ParseHashFunc(s.Hash)
		if err != nil {
			return Params{}, err
		}
		p.Hash = h
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// LoadSettings reads a YAML settings file from the given filesystem and
// returns the resulting derivation parameters. A missing file is not an
// error: the defaults are returned unchanged.
func LoadSettings(fsys absfs.FileSystem, path string) (Params, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultParams(), nil
		}
		return Params{}, fmt.Errorf("failed to open settings file %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Params{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Params{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	params, err := s.Params()
	if err != nil {
		return Params{}, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return params, nil
}
