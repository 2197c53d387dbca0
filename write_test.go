// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package configini

import (
	"encoding"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Ensure Config satisfies the encoding.Text* interfaces.
var _ interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
} = new(Config)

func TestMarshalText(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Config)
		want  string
	}{
		{
			name:  "Empty",
			build: func(c *Config) {},
			want:  "",
		},
		{
			name: "DefaultSectionOnly",
			build: func(c *Config) {
				c.SetString("", "k", "v")
			},
			want: "k=v\n\n",
		},
		{
			name: "NamedSection",
			build: func(c *Config) {
				c.SetString("s", "k", "v")
			},
			want: "[s]\nk=v\n\n",
		},
		{
			name: "DefaultThenNamed",
			build: func(c *Config) {
				c.SetString("", "g", "1")
				c.SetString("s", "k", "v")
				c.SetString("s", "k2", "v2")
			},
			want: "g=1\n\n[s]\nk=v\nk2=v2\n\n",
		},
		{
			name: "EmptyNamedSection",
			build: func(c *Config) {
				c.AddSection("s")
			},
			want: "[s]\n\n",
		},
		{
			name: "CustomSeparator",
			build: func(c *Config) {
				c.SetSeparator(':')
				c.SetString("", "k", "v")
			},
			want: "k:v\n\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := New()
			test.build(c)
			got, err := c.MarshalText()
			if err != nil {
				t.Fatal("MarshalText:", err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("MarshalText (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalTextNil(t *testing.T) {
	c := (*Config)(nil)
	got, err := c.MarshalText()
	if err != nil {
		t.Fatal("MarshalText:", err)
	}
	if len(got) > 0 {
		t.Errorf("MarshalText() = %q; want empty", got)
	}
}

func TestRoundTrip(t *testing.T) {
	c := New()
	c.SetString("", "greeting", "hello world")
	c.SetString("owner", "name", "Ada Lovelace")
	c.SetInt("db", "port", 5432)
	c.SetBool("db", "ssl", true)
	c.SetString("db", "host", "localhost")

	text, err := c.MarshalText()
	if err != nil {
		t.Fatal("MarshalText:", err)
	}
	reparsed, err := Parse(strings.NewReader(string(text)))
	if err != nil {
		t.Fatal("Parse:", err)
	}

	if diff := cmp.Diff(c.SectionNames(), reparsed.SectionNames()); diff != "" {
		t.Errorf("SectionNames (-orig +reparsed):\n%s", diff)
	}
	for _, name := range c.SectionNames() {
		keys, err := c.Keys(name)
		if err != nil {
			t.Fatal("Keys:", err)
		}
		gotKeys, err := reparsed.Keys(name)
		if err != nil {
			t.Errorf("Keys(%q) after reparse: %v", name, err)
			continue
		}
		if diff := cmp.Diff(keys, gotKeys); diff != "" {
			t.Errorf("Keys(%q) (-orig +reparsed):\n%s", name, diff)
		}
		for _, key := range keys {
			want, _ := c.ReadString(name, key, "")
			if got, _ := reparsed.ReadString(name, key, ""); got != want {
				t.Errorf("reparsed %s.%s = %q; want %q", name, key, got, want)
			}
		}
	}

	text2, err := reparsed.MarshalText()
	if err != nil {
		t.Fatal("MarshalText (reparsed):", err)
	}
	if diff := cmp.Diff(string(text), string(text2)); diff != "" {
		t.Errorf("second marshal differs (-first +second):\n%s", diff)
	}
}

func TestUnmarshalText(t *testing.T) {
	c := New()
	c.SetString("old", "k", "v")
	if err := c.UnmarshalText([]byte("[new]\nk = v\n")); err != nil {
		t.Fatal("UnmarshalText:", err)
	}
	if c.HasSection("old") {
		t.Error("HasSection(old) = true after UnmarshalText; want replaced")
	}
	if !c.HasKey("new", "k") {
		t.Error("HasKey(new, k) = false after UnmarshalText")
	}
}

func TestUnmarshalTextError(t *testing.T) {
	c := New()
	c.SetString("old", "k", "v")
	if err := c.UnmarshalText([]byte("bad\n")); !errors.Is(err, ErrSyntax) {
		t.Fatalf("UnmarshalText error = %v; want ErrSyntax", err)
	}
	// The original content survives a failed unmarshal.
	if !c.HasKey("old", "k") {
		t.Error("HasKey(old, k) = false after failed UnmarshalText")
	}
}

func TestWriteTo(t *testing.T) {
	c := New()
	c.SetString("s", "k", "v")
	sb := new(strings.Builder)
	n, err := c.WriteTo(sb)
	if err != nil {
		t.Fatal("WriteTo:", err)
	}
	const want = "[s]\nk=v\n\n"
	if sb.String() != want {
		t.Errorf("WriteTo wrote %q; want %q", sb.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo returned %d; want %d", n, len(want))
	}
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	c := New()
	c.SetString("db", "host", "localhost")
	c.SetInt("db", "port", 5432)
	if err := c.WriteFile(path); err != nil {
		t.Fatal("WriteFile:", err)
	}

	got := New()
	if err := got.ReadFile(path); err != nil {
		t.Fatal("ReadFile:", err)
	}
	if port, err := got.ReadInt("db", "port", 0); err != nil || port != 5432 {
		t.Errorf("ReadInt(db, port) = %d, %v; want 5432, <nil>", port, err)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.ini"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ParseFile error = %v; want fs.ErrNotExist", err)
	}
}
