// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package configini is an in-memory store and text format for INI-style
configuration: named sections of ordered key/value pairs that can be parsed
from and serialized to a byte stream, with typed accessors that convert the
stored strings to integers, floats, and booleans with default-value fallback.

Syntax

An INI file is line-oriented text, one statement per line:

	[section-name]
	key = value
	; a comment (the comment character set is configurable)

A section header is an opening bracket ('['), the section name, and a closing
bracket (']'), each optionally surrounded by whitespace. Anything after the
closing bracket must be whitespace or a comment. A key/value line is a key,
the separator character ('=' unless configured otherwise), and a value.
Whitespace around the key and around the value is ignored, and a comment
character ends the meaningful content of any line, so values cannot contain
comment characters or leading/trailing whitespace. There is no escaping
mechanism and no multi-line values.

Keys declared before any section header belong to the default section,
identified by the empty string (""). The default section always exists and is
always first. Section names are unique within a Config and keys are unique
within their section; assigning to an existing key replaces its value in
place, keeping its position.

The parser rejects empty values; an empty value can only be stored through
the API. Round-tripping a Config through MarshalText and Parse preserves
sections and keys, in order, for comment-free, non-empty values.

A Config is not safe for concurrent mutation. Callers sharing one across
goroutines must serialize access themselves.
*/
package configini
