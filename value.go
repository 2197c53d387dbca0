// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package configini

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ReadString returns the value stored for key in the named section. If the
// section or key does not exist, it returns defaultValue along with
// ErrNoSection or ErrNoKey.
func (c *Config) ReadString(sectionName, key, defaultValue string) (string, error) {
	v, err := c.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	return v, nil
}

// ReadStringN is ReadString with a byte budget: a result longer than
// maxBytes is truncated, which is not an error. The truncation is bytewise
// and may split a multi-byte rune.
func (c *Config) ReadStringN(sectionName, key string, maxBytes int, defaultValue string) (string, error) {
	if maxBytes < 0 {
		return defaultValue, fmt.Errorf("read %q: %w: negative size", key, ErrInvalid)
	}
	v, err := c.lookup(sectionName, key)
	if err != nil {
		v = defaultValue
	}
	if len(v) > maxBytes {
		v = v[:maxBytes]
	}
	return v, err
}

// ReadInt returns the value stored for key in the named section as an int.
// If the section or key does not exist it returns defaultValue with
// ErrNoSection or ErrNoKey; if the value does not parse as a base-10 integer
// (trailing characters, overflow) it returns defaultValue with
// ErrInvalidValue.
func (c *Config) ReadInt(sectionName, key string, defaultValue int) (int, error) {
	v, err := c.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	n, err := strconv.ParseInt(v, 10, 0)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %q", ErrInvalidValue, v)
	}
	return int(n), nil
}

// ReadUint is ReadInt for unsigned values.
func (c *Config) ReadUint(sectionName, key string, defaultValue uint) (uint, error) {
	v, err := c.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	n, err := strconv.ParseUint(v, 10, 0)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %q", ErrInvalidValue, v)
	}
	return uint(n), nil
}

// ReadFloat32 returns the value stored for key in the named section as a
// float32, with the same default and error behavior as ReadInt.
func (c *Config) ReadFloat32(sectionName, key string, defaultValue float32) (float32, error) {
	v, err := c.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %q", ErrInvalidValue, v)
	}
	return float32(f), nil
}

// ReadFloat64 returns the value stored for key in the named section as a
// float64, with the same default and error behavior as ReadInt.
func (c *Config) ReadFloat64(sectionName, key string, defaultValue float64) (float64, error) {
	v, err := c.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: %q", ErrInvalidValue, v)
	}
	return f, nil
}

// ReadBool returns the value stored for key in the named section as a bool.
// It accepts, case-insensitively, the configured true/false strings and the
// literals true/yes/1 and false/no/0. Any other value returns defaultValue
// with ErrInvalidValue.
func (c *Config) ReadBool(sectionName, key string, defaultValue bool) (bool, error) {
	v, err := c.lookup(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	return c.boolValue(v, defaultValue)
}

func (c *Config) boolValue(v string, defaultValue bool) (bool, error) {
	switch {
	case strings.EqualFold(v, c.trueStr) || matchFold(v, "true", "yes", "1"):
		return true, nil
	case strings.EqualFold(v, c.falseStr) || matchFold(v, "false", "no", "0"):
		return false, nil
	}
	return defaultValue, fmt.Errorf("%w: %q", ErrInvalidValue, v)
}

func matchFold(v string, words ...string) bool {
	for _, w := range words {
		if strings.EqualFold(v, w) {
			return true
		}
	}
	return false
}

// SetString stores value under key in the named section, creating the
// section if needed. The empty section name targets the default section.
// An existing key keeps its position; only its value changes.
//
// The value is normalized the way the parser would read it back: outer
// whitespace is dropped and the value ends at the first comment character or
// line terminator. An empty result is stored as-is, although the parser will
// not read it back.
func (c *Config) SetString(sectionName, key, value string) error {
	c.init()
	if !c.validSectionName(sectionName) {
		return fmt.Errorf("set in section %q: %w", sectionName, ErrInvalid)
	}
	if !c.validKey(key) {
		return fmt.Errorf("set key %q: %w", key, ErrInvalid)
	}
	c.setValue(sectionName, key, c.cleanValue(value))
	return nil
}

func (c *Config) cleanValue(v string) string {
	v = strings.TrimLeftFunc(v, unicode.IsSpace)
	if i := strings.IndexAny(v, c.commentChars+"\r\n"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimRightFunc(v, unicode.IsSpace)
}

// SetInt stores value in its base-10 form.
func (c *Config) SetInt(sectionName, key string, value int) error {
	return c.SetString(sectionName, key, strconv.Itoa(value))
}

// SetUint stores value in its base-10 form.
func (c *Config) SetUint(sectionName, key string, value uint) error {
	return c.SetString(sectionName, key, strconv.FormatUint(uint64(value), 10))
}

// SetFloat32 stores value as a fixed six-digit decimal.
func (c *Config) SetFloat32(sectionName, key string, value float32) error {
	return c.SetString(sectionName, key, strconv.FormatFloat(float64(value), 'f', 6, 32))
}

// SetFloat64 stores value as a fixed six-digit decimal.
func (c *Config) SetFloat64(sectionName, key string, value float64) error {
	return c.SetString(sectionName, key, strconv.FormatFloat(value, 'f', 6, 64))
}

// SetBool stores the configured true or false string ("1" and "0" unless
// changed with SetBoolStrings).
func (c *Config) SetBool(sectionName, key string, value bool) error {
	c.init()
	s := c.falseStr
	if value {
		s = c.trueStr
	}
	return c.SetString(sectionName, key, s)
}
