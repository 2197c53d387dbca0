// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSectionsCmd creates the sections command.
func NewSectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section names in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.open()
			if err != nil {
				return err
			}
			for _, name := range cfg.SectionNames() {
				if name == "" {
					name = "(default)"
				}
				fmt.Fprintln(app.Out, name)
			}
			return nil
		},
	}
}

// NewKeysCmd creates the keys command.
func NewKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys SECTION",
		Short: "List the keys of one section in file order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.open()
			if err != nil {
				return err
			}
			keys, err := cfg.Keys(args[0])
			if err != nil {
				return err
			}
			for _, key := range keys {
				fmt.Fprintln(app.Out, key)
			}
			return nil
		},
	}
}

// NewPrintCmd creates the print command.
func NewPrintCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Render the file in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.open()
			if err != nil {
				return err
			}
			_, err = cfg.WriteTo(app.Out)
			return err
		},
	}
}
