// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
)

// NewSetCmd creates the set command.
func NewSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set SECTION KEY VALUE",
		Short: "Store one value and rewrite the file",
		Long: `Store VALUE under KEY in SECTION and rewrite the file in
canonical form. The file is created if it does not exist. An existing key
keeps its position; a new key is appended to its section.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.openOrNew()
			if err != nil {
				return err
			}
			if err := cfg.SetString(args[0], args[1], args[2]); err != nil {
				return err
			}
			return cfg.WriteFile(app.Path)
		},
	}
}

// NewDelCmd creates the del command.
func NewDelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "del SECTION [KEY]",
		Short: "Remove a key or a whole section",
		Long: `Remove KEY from SECTION, or the whole SECTION and all its keys
when no KEY is given, then rewrite the file. Deleting the default section
("") removes its keys but keeps the section.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.open()
			if err != nil {
				return err
			}
			if len(args) == 2 {
				err = cfg.RemoveKey(args[0], args[1])
			} else {
				err = cfg.RemoveSection(args[0])
			}
			if err != nil {
				return err
			}
			return cfg.WriteFile(app.Path)
		},
	}
}
