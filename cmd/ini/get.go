// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yourbase/configini"
)

// NewGetCmd creates the get command.
func NewGetCmd(app *App) *cobra.Command {
	var typ, dflt string
	cmd := &cobra.Command{
		Use:   "get SECTION KEY",
		Short: "Print one value",
		Long: `Print the value stored for KEY in SECTION, optionally converted
to a scalar type. With --default, a missing section or key prints the
default value instead of failing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.open()
			if err != nil {
				return err
			}
			out, err := readTyped(cfg, typ, args[0], args[1], dflt)
			if err != nil {
				missing := errors.Is(err, configini.ErrNoSection) || errors.Is(err, configini.ErrNoKey)
				if !missing || !cmd.Flags().Changed("default") {
					return err
				}
			}
			fmt.Fprintln(app.Out, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "string", "value type: string, int, uint, float, bool")
	cmd.Flags().StringVar(&dflt, "default", "", "value to print when the section or key is missing")
	return cmd
}

// readTyped reads section.key from cfg as typ and renders the result,
// parsing dflt as the same type for the fallback value.
func readTyped(cfg *configini.Config, typ, section, key, dflt string) (string, error) {
	switch typ {
	case "string":
		return cfg.ReadString(section, key, dflt)
	case "int":
		var d int
		if dflt != "" {
			var err error
			if d, err = strconv.Atoi(dflt); err != nil {
				return "", fmt.Errorf("--default: %w", err)
			}
		}
		v, err := cfg.ReadInt(section, key, d)
		return strconv.Itoa(v), err
	case "uint":
		var d uint64
		if dflt != "" {
			var err error
			if d, err = strconv.ParseUint(dflt, 10, 0); err != nil {
				return "", fmt.Errorf("--default: %w", err)
			}
		}
		v, err := cfg.ReadUint(section, key, uint(d))
		return strconv.FormatUint(uint64(v), 10), err
	case "float":
		var d float64
		if dflt != "" {
			var err error
			if d, err = strconv.ParseFloat(dflt, 64); err != nil {
				return "", fmt.Errorf("--default: %w", err)
			}
		}
		v, err := cfg.ReadFloat64(section, key, d)
		return strconv.FormatFloat(v, 'f', -1, 64), err
	case "bool":
		var d bool
		if dflt != "" {
			var err error
			if d, err = strconv.ParseBool(dflt); err != nil {
				return "", fmt.Errorf("--default: %w", err)
			}
		}
		v, err := cfg.ReadBool(section, key, d)
		return strconv.FormatBool(v), err
	default:
		return "", fmt.Errorf("unknown type %q", typ)
	}
}
