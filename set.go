// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package configini

import (
	"errors"
	"fmt"
	"os"
)

// FileSet is a list of Configs to read configuration from in descending
// order of precedence: the first Config that holds a key answers for it.
type FileSet []*Config

// ParseFiles parses the files at the given paths and returns a FileSet. If
// the returned error is nil, the set's length equals the number of
// arguments. ParseFiles stops on the first error, but ignores missing file
// errors, filling the corresponding element of the set with a nil *Config.
func ParseFiles(paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %w", err)
		}
		parsed, err := Parse(f)
		f.Close() // Close errors irrelevant.
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %s: %w", p, err)
		}
		fset = append(fset, parsed)
	}
	return fset, nil
}

// lookup returns the value and owning Config from the highest-precedence
// file that holds the key. Nil elements are skipped.
func (fset FileSet) lookup(sectionName, key string) (*Config, string, error) {
	sectionSeen := false
	for _, c := range fset {
		if c == nil {
			continue
		}
		v, err := c.lookup(sectionName, key)
		switch {
		case err == nil:
			return c, v, nil
		case errors.Is(err, ErrNoKey):
			sectionSeen = true
		}
	}
	if sectionSeen {
		return nil, "", ErrNoKey
	}
	return nil, "", ErrNoSection
}

// HasSection reports whether any Config in the set has the named section.
func (fset FileSet) HasSection(name string) bool {
	for _, c := range fset {
		if c != nil && c.HasSection(name) {
			return true
		}
	}
	return false
}

// ReadString returns the value for key in the named section from the
// highest-precedence file holding it, or defaultValue with ErrNoSection or
// ErrNoKey.
func (fset FileSet) ReadString(sectionName, key, defaultValue string) (string, error) {
	_, v, err := fset.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	return v, nil
}

// ReadInt is ReadString with the conversion behavior of Config.ReadInt.
func (fset FileSet) ReadInt(sectionName, key string, defaultValue int) (int, error) {
	c, _, err := fset.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	return c.ReadInt(sectionName, key, defaultValue)
}

// ReadUint is ReadString with the conversion behavior of Config.ReadUint.
func (fset FileSet) ReadUint(sectionName, key string, defaultValue uint) (uint, error) {
	c, _, err := fset.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	return c.ReadUint(sectionName, key, defaultValue)
}

// ReadFloat64 is ReadString with the conversion behavior of
// Config.ReadFloat64.
func (fset FileSet) ReadFloat64(sectionName, key string, defaultValue float64) (float64, error) {
	c, _, err := fset.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	return c.ReadFloat64(sectionName, key, defaultValue)
}

// ReadBool is ReadString with the conversion behavior of Config.ReadBool.
// The boolean literals of the file holding the key apply.
func (fset FileSet) ReadBool(sectionName, key string, defaultValue bool) (bool, error) {
	c, _, err := fset.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	return c.ReadBool(sectionName, key, defaultValue)
}
