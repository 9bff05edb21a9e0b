// Package config loads optional TOML defaults for codonscan.
//
// Keys mirror the long flag names with underscores. Only keys present in the
// file are applied; flags given on the command line always win.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk shape. Pointer fields distinguish "absent" from zero.
type File struct {
	Input     *string `toml:"input"`
	MaxLength *int    `toml:"max_length"`
	Strict    *bool   `toml:"strict"`
	FoldCase  *bool   `toml:"fold_case"`
	Lookup    *string `toml:"lookup"`
	Threads   *int    `toml:"threads"`
	Out       *string `toml:"out"`
	Format    *string `toml:"format"`
	Width     *int    `toml:"width"`
	Header    *string `toml:"header"`
	JSON      *bool   `toml:"json"`
	Verbose   *bool   `toml:"verbose"`
	Quiet     *bool   `toml:"quiet"`
}

// Load parses path, rejecting unknown keys.
func Load(path string) (File, error) {
	var f File
	fh, err := os.Open(path)
	if err != nil {
		return f, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()

	dec := toml.NewDecoder(fh)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var sm *toml.StrictMissingError
		if errors.As(err, &sm) {
			return f, fmt.Errorf("config %s: %s", path, sm.String())
		}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return f, fmt.Errorf("config %s:%d:%d: %v", path, row, col, de)
		}
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Assign copies *src into *dst when the key is present in the file and the
// flag was not given explicitly.
func Assign[T any](explicit map[string]bool, flagName string, src, dst *T) {
	if src == nil || explicit[flagName] {
		return
	}
	*dst = *src
}
