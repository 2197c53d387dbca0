// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Command ini reads and edits INI configuration files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	app := &App{Out: os.Stdout}
	err := NewRootCmd(app).ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "ini:", err)
		os.Exit(1)
	}
}
