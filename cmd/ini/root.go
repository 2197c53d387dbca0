// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/yourbase/configini"
	"github.com/yourbase/configini/envvar"
)

// App holds the state shared across all commands.
type App struct {
	Path     string
	Sep      string
	Comments string
	Out      io.Writer
}

// NewRootCmd returns the base command with all subcommands attached. Flag
// defaults come from the environment so scripts can set the file once.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ini",
		Short: "Read and edit INI configuration files",
		Long: `ini reads and edits INI configuration files: named sections of
key=value pairs, with configurable separator and comment characters.

Keys outside any [section] header belong to the default section, addressed
by an empty SECTION argument ("").`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&app.Path, "file", "f", envvar.Get("INI_FILE", ""), "path of the INI file (defaults to $INI_FILE)")
	root.PersistentFlags().StringVar(&app.Sep, "sep", envvar.Get("INI_SEP", "="), "key/value separator character")
	root.PersistentFlags().StringVar(&app.Comments, "comments", envvar.Get("INI_COMMENTS", configini.DefaultCommentChars), "comment character set")
	root.AddCommand(
		NewGetCmd(app),
		NewSetCmd(app),
		NewDelCmd(app),
		NewSectionsCmd(app),
		NewKeysCmd(app),
		NewPrintCmd(app),
		NewWatchCmd(app),
	)
	return root
}

var errNoFile = errors.New("no file given (use --file or $INI_FILE)")

// newConfig returns an empty Config with the flag settings applied.
func (a *App) newConfig() (*configini.Config, error) {
	if len(a.Sep) != 1 {
		return nil, fmt.Errorf("--sep must be a single character, got %q", a.Sep)
	}
	cfg := configini.New()
	if err := cfg.SetSeparator(a.Sep[0]); err != nil {
		return nil, err
	}
	if err := cfg.SetCommentChars(a.Comments); err != nil {
		return nil, err
	}
	return cfg, nil
}

// open parses the file named by the --file flag.
func (a *App) open() (*configini.Config, error) {
	if a.Path == "" {
		return nil, errNoFile
	}
	cfg, err := a.newConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ReadFile(a.Path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openOrNew is open, except a missing file yields an empty Config.
func (a *App) openOrNew() (*configini.Config, error) {
	cfg, err := a.open()
	if errors.Is(err, fs.ErrNotExist) {
		return a.newConfig()
	}
	return cfg, err
}
