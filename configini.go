// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package configini

import (
	"fmt"
	"strings"
)

// Defaults for a freshly created Config.
const (
	DefaultCommentChars = "#;"
	DefaultSeparator    = '='
	DefaultTrueString   = "1"
	DefaultFalseString  = "0"
)

// A Config is an ordered collection of sections, each an ordered collection
// of key/value pairs, plus the parser configuration (comment character set,
// key/value separator, boolean literals). The zero value is an empty Config
// with default settings. Configs are not safe for concurrent mutation.
type Config struct {
	commentChars string
	sep          byte
	trueStr      string
	falseStr     string
	sections     []section
}

type section struct {
	name  string
	pairs []keyValue
}

type keyValue struct {
	key   string
	value string
}

// New returns an empty Config holding only the default section.
func New() *Config {
	c := new(Config)
	c.init()
	return c
}

// init establishes the default settings and the default section. Every method
// calls it first, so the zero Config value behaves like New().
func (c *Config) init() {
	if c.sep == 0 {
		c.commentChars = DefaultCommentChars
		c.sep = DefaultSeparator
		c.trueStr = DefaultTrueString
		c.falseStr = DefaultFalseString
	}
	if len(c.sections) == 0 {
		c.sections = append(c.sections, section{})
	}
}

// SetCommentChars sets the characters that start a comment. Each occurrence
// of any of the characters ends the meaningful content of a line in
// subsequent parses and is rejected inside keys and section names.
func (c *Config) SetCommentChars(chars string) error {
	if chars == "" {
		return fmt.Errorf("set comment chars: %w", ErrInvalid)
	}
	c.init()
	c.commentChars = chars
	return nil
}

// SetSeparator sets the character that divides a key from its value on a
// key/value line.
func (c *Config) SetSeparator(sep byte) error {
	if sep == 0 || sep == '\n' || sep == '\r' {
		return fmt.Errorf("set separator: %w", ErrInvalid)
	}
	c.init()
	c.sep = sep
	return nil
}

// SetBoolStrings sets the literals SetBool stores for true and false.
// ReadBool accepts them (case-insensitively) in addition to the built-in
// true/yes/1 and false/no/0 literals.
func (c *Config) SetBoolStrings(trueStr, falseStr string) error {
	if trueStr == "" || falseStr == "" {
		return fmt.Errorf("set bool strings: %w", ErrInvalid)
	}
	c.init()
	c.trueStr = trueStr
	c.falseStr = falseStr
	return nil
}

// AddSection creates the named section at the end of the Config. It is
// idempotent: adding a section that already exists leaves the Config
// unchanged. Passing the empty string names the default section, which
// always exists.
func (c *Config) AddSection(name string) error {
	c.init()
	if !c.validSectionName(name) {
		return fmt.Errorf("add section %q: %w", name, ErrInvalid)
	}
	c.addSection(name)
	return nil
}

// addSection returns the index of the named section, appending it first if
// needed. Indexes stay valid across appends; pointers into c.sections do not.
func (c *Config) addSection(name string) int {
	for i := range c.sections {
		if c.sections[i].name == name {
			return i
		}
	}
	c.sections = append(c.sections, section{name: name})
	return len(c.sections) - 1
}

func (c *Config) findSection(name string) *section {
	for i := range c.sections {
		if c.sections[i].name == name {
			return &c.sections[i]
		}
	}
	return nil
}

func (s *section) find(key string) *keyValue {
	for i := range s.pairs {
		if s.pairs[i].key == key {
			return &s.pairs[i]
		}
	}
	return nil
}

// setValue is the add-or-update primitive shared by the parser and the typed
// setters: the section is created if missing, and an existing key keeps its
// position in the section.
func (c *Config) setValue(sectionName, key, value string) {
	i := c.addSection(sectionName)
	s := &c.sections[i]
	if kv := s.find(key); kv != nil {
		kv.value = value
		return
	}
	s.pairs = append(s.pairs, keyValue{key: key, value: value})
}

// lookup returns the stored value for key in the named section.
func (c *Config) lookup(sectionName, key string) (string, error) {
	c.init()
	s := c.findSection(sectionName)
	if s == nil {
		return "", ErrNoSection
	}
	kv := s.find(key)
	if kv == nil {
		return "", ErrNoKey
	}
	return kv.value, nil
}

// HasSection reports whether the named section exists. The empty name
// reports the default section, which always exists.
func (c *Config) HasSection(name string) bool {
	c.init()
	return c.findSection(name) != nil
}

// HasKey reports whether key exists in the named section.
func (c *Config) HasKey(sectionName, key string) bool {
	_, err := c.lookup(sectionName, key)
	return err == nil
}

// SectionNames returns the section names in insertion order. The default
// section is always present and always first, as the empty string.
func (c *Config) SectionNames() []string {
	c.init()
	names := make([]string, len(c.sections))
	for i := range c.sections {
		names[i] = c.sections[i].name
	}
	return names
}

// SectionCount returns the total number of sections, counting the default
// section whether or not it holds any keys.
func (c *Config) SectionCount() int {
	c.init()
	return len(c.sections)
}

// NamedSectionCount returns the number of named sections holding at least
// one key.
func (c *Config) NamedSectionCount() int {
	c.init()
	n := 0
	for i := range c.sections {
		if c.sections[i].name != "" && len(c.sections[i].pairs) > 0 {
			n++
		}
	}
	return n
}

// Keys returns the keys of the named section in insertion order.
func (c *Config) Keys(sectionName string) ([]string, error) {
	c.init()
	s := c.findSection(sectionName)
	if s == nil {
		return nil, ErrNoSection
	}
	keys := make([]string, len(s.pairs))
	for i := range s.pairs {
		keys[i] = s.pairs[i].key
	}
	return keys, nil
}

// KeyCount returns the number of keys in the named section.
func (c *Config) KeyCount(sectionName string) (int, error) {
	c.init()
	s := c.findSection(sectionName)
	if s == nil {
		return 0, ErrNoSection
	}
	return len(s.pairs), nil
}

// RemoveSection removes the named section and all its keys. The default
// section cannot be detached: removing it drops its keys but keeps the
// (empty) section in place, so a Config never exists without it.
func (c *Config) RemoveSection(name string) error {
	c.init()
	if name == "" {
		c.sections[0].pairs = nil
		return nil
	}
	for i := range c.sections {
		if c.sections[i].name != name {
			continue
		}
		copy(c.sections[i:], c.sections[i+1:])
		// Zero out the truncated element for garbage collection.
		c.sections[len(c.sections)-1] = section{}
		c.sections = c.sections[:len(c.sections)-1]
		return nil
	}
	return ErrNoSection
}

// RemoveKey removes key from the named section.
func (c *Config) RemoveKey(sectionName, key string) error {
	c.init()
	s := c.findSection(sectionName)
	if s == nil {
		return ErrNoSection
	}
	for i := range s.pairs {
		if s.pairs[i].key != key {
			continue
		}
		copy(s.pairs[i:], s.pairs[i+1:])
		s.pairs[len(s.pairs)-1] = keyValue{}
		s.pairs = s.pairs[:len(s.pairs)-1]
		return nil
	}
	return ErrNoKey
}

// validSectionName reports whether name can survive a serialize/parse round
// trip under the current settings. The empty name is the default section.
func (c *Config) validSectionName(name string) bool {
	if name == "" {
		return true
	}
	if strings.TrimSpace(name) != name {
		return false
	}
	if strings.ContainsAny(name, "]\r\n") {
		return false
	}
	return !strings.ContainsAny(name, c.commentChars)
}

// validKey reports whether key can survive a serialize/parse round trip
// under the current settings.
func (c *Config) validKey(key string) bool {
	if key == "" || strings.TrimSpace(key) != key {
		return false
	}
	if key[0] == '[' || strings.ContainsAny(key, "\r\n") {
		return false
	}
	if strings.IndexByte(key, c.sep) >= 0 {
		return false
	}
	return !strings.ContainsAny(key, c.commentChars)
}
