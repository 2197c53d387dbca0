// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package configini

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// MarshalText serializes the Config as INI text: sections in insertion
// order, a "[name]" header for every named section, one "key<sep>value" line
// per pair, and a blank line after each section. The default section has no
// header and is omitted entirely while empty.
func (c *Config) MarshalText() ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	c.init()
	var buf []byte
	for i := range c.sections {
		s := &c.sections[i]
		if s.name == "" && len(s.pairs) == 0 {
			continue
		}
		if s.name != "" {
			buf = append(buf, '[')
			buf = append(buf, s.name...)
			buf = append(buf, "]\n"...)
		}
		for _, kv := range s.pairs {
			buf = append(buf, kv.key...)
			buf = append(buf, c.sep)
			buf = append(buf, kv.value...)
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')
	}
	return buf, nil
}

// UnmarshalText parses INI text with default settings, replacing everything
// in c.
func (c *Config) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// WriteTo serializes the Config to w. It implements io.WriterTo.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	text, err := c.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(text)
	return int64(n), err
}

// WriteFile serializes the Config to the named file, creating or truncating
// it.
func (c *Config) WriteFile(path string) error {
	text, err := c.MarshalText()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, text, 0o666); err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	return nil
}
