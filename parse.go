// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package configini

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Parse reads INI text from r into a new Config with default settings. On
// error the partially-built Config is discarded and Parse returns nil.
//
// To parse with non-default settings, or into an existing Config, create one
// and use Read.
func Parse(r io.Reader) (*Config, error) {
	c := New()
	if err := c.Read(r); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseFile opens and parses the named file into a new Config.
func ParseFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse ini file: %w", err)
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse ini file %s: %w", path, err)
	}
	return c, nil
}

// Read parses INI text from r into c, adding to whatever c already holds.
// Keys read before any section header land in the default section.
//
// Any malformed line aborts the whole read: there is no skip-and-continue.
// Mutations made before the failing line are kept, so a caller supplying a
// pre-existing Config owns the partial state on error.
func (c *Config) Read(r io.Reader) error {
	c.init()
	s := bufio.NewScanner(r)
	cur := "" // name of the section receiving keys; headers move it
	lineno := 1
	for ; s.Scan(); lineno++ {
		line := strings.TrimLeftFunc(s.Text(), unicode.IsSpace)
		// A stray carriage return ends the line, like a line terminator.
		if i := strings.IndexByte(line, '\r'); i >= 0 {
			line = line[:i]
		}
		if line == "" || c.isComment(line[0]) {
			continue
		}
		if line[0] == '[' {
			name, err := c.parseSectionHeader(line)
			if err != nil {
				return fmt.Errorf("parse ini: line %d: %w", lineno, err)
			}
			c.addSection(name)
			cur = name
			continue
		}
		key, value, err := c.parseKeyValue(line)
		if err != nil {
			return fmt.Errorf("parse ini: line %d: %w", lineno, err)
		}
		c.setValue(cur, key, value)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("parse ini: line %d: %w", lineno, err)
	}
	return nil
}

// ReadFile opens and parses the named file into c. Error semantics are those
// of Read.
func (c *Config) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read ini file: %w", err)
	}
	defer f.Close()
	if err := c.Read(f); err != nil {
		return fmt.Errorf("read ini file %s: %w", path, err)
	}
	return nil
}

// parseSectionHeader extracts the name from a "[name]" line. line starts
// with '[' and has no leading whitespace.
func (c *Config) parseSectionHeader(line string) (string, error) {
	i := 1
	for ; i < len(line); i++ {
		if line[i] == ']' {
			break
		}
		if c.isComment(line[i]) {
			return "", fmt.Errorf("section header: %w: comment before closing bracket", ErrSyntax)
		}
	}
	if i == len(line) {
		return "", fmt.Errorf("section header: %w: missing closing bracket", ErrSyntax)
	}
	name := strings.TrimSpace(line[1:i])
	if name == "" {
		return "", fmt.Errorf("section header: %w: empty section name", ErrSyntax)
	}
	rest := strings.TrimSpace(line[i+1:])
	if rest != "" && !c.isComment(rest[0]) {
		return "", fmt.Errorf("section header: %w: unexpected %q after closing bracket", ErrSyntax, rest)
	}
	return name, nil
}

// parseKeyValue splits a "key<sep>value" line. line has no leading
// whitespace. Trimming happens independently for the key and the value, so
// whitespace around the separator and before a trailing comment is ignored.
func (c *Config) parseKeyValue(line string) (key, value string, err error) {
	i := 0
	for ; i < len(line); i++ {
		if line[i] == c.sep {
			break
		}
		if c.isComment(line[i]) {
			return "", "", fmt.Errorf("key/value: %w: comment before separator %q", ErrSyntax, string(c.sep))
		}
	}
	if i == len(line) {
		return "", "", fmt.Errorf("key/value: %w: missing separator %q", ErrSyntax, string(c.sep))
	}
	key = strings.TrimRightFunc(line[:i], unicode.IsSpace)
	if key == "" {
		return "", "", fmt.Errorf("key/value: %w: empty key", ErrSyntax)
	}
	value = strings.TrimLeftFunc(line[i+1:], unicode.IsSpace)
	if j := strings.IndexAny(value, c.commentChars); j >= 0 {
		value = value[:j]
	}
	value = strings.TrimRightFunc(value, unicode.IsSpace)
	if value == "" {
		return "", "", fmt.Errorf("key/value: %w: empty value for key %q", ErrInvalidValue, key)
	}
	return key, value, nil
}

func (c *Config) isComment(ch byte) bool {
	return strings.IndexByte(c.commentChars, ch) >= 0
}
