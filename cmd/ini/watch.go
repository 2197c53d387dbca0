// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/yourbase/configini/watch"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the file and report each reload",
		Long: `Watch the file and re-parse it after every change, reporting
each reload until interrupted. Parses use the default syntax settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Path == "" {
				return errNoFile
			}
			ctx := cmd.Context()
			w, err := watch.NewWatcher(app.Path)
			if err != nil {
				return err
			}
			defer w.Close()

			done := make(chan error, 1)
			go func() { done <- w.Run(ctx) }()
			log.Infof(ctx, "watching %s", app.Path)
			for {
				select {
				case ev := <-w.Events():
					if ev.Err != nil {
						log.Warnf(ctx, "reload failed: %v", ev.Err)
						continue
					}
					log.Infof(ctx, "reloaded %s: %d sections, %d named",
						app.Path, ev.Config.SectionCount(), ev.Config.NamedSectionCount())
				case err := <-done:
					return err
				}
			}
		},
	}
}
