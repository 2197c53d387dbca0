// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package envvar

import "testing"

func TestGet(t *testing.T) {
	const name = "CONFIGINI_TEST_VAR"
	if got := Get(name, "dflt"); got != "dflt" {
		t.Errorf("Get(unset) = %q; want %q", got, "dflt")
	}
	t.Setenv(name, "value")
	if got := Get(name, "dflt"); got != "value" {
		t.Errorf("Get(set) = %q; want %q", got, "value")
	}
	t.Setenv(name, "")
	if got := Get(name, "dflt"); got != "dflt" {
		t.Errorf("Get(empty) = %q; want %q", got, "dflt")
	}
}
