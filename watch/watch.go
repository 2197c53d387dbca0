// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package watch re-reads an INI configuration file whenever it changes on
// disk. Each successful reload delivers a fresh Config; the watcher never
// mutates a Config it has already handed out.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"zombiezen.com/go/log"

	"github.com/yourbase/configini"
)

// An Event reports one reload attempt. Exactly one of Config and Err is set.
type Event struct {
	Config *configini.Config
	Err    error
}

// A Watcher watches a single INI file.
type Watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	events   chan Event
}

// NewWatcher starts watching the directory containing path, so that
// rename-and-replace writes are observed as well as in-place ones. The file
// itself need not exist yet.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch ini file: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch ini file: %w", err)
	}
	return &Watcher{
		path:     path,
		debounce: 50 * time.Millisecond,
		fsw:      fsw,
		events:   make(chan Event),
	}, nil
}

// Events returns the channel reload attempts are delivered on. It is only
// serviced while Run is running.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Run watches until ctx is done, re-parsing the file after each burst of
// changes and delivering the result on Events. It returns ctx.Err() on
// cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				log.Debugf(ctx, "watch %s: ignoring %v", w.path, ev)
				continue
			}
			// Editors produce bursts of events; collapse each burst into
			// one reload.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				defer timer.Stop()
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload(ctx)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Warnf(ctx, "watch %s: %v", w.path, err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close releases the OS watcher. It does not interrupt Run; cancel the
// context passed to Run for that.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload(ctx context.Context) {
	cfg, err := configini.ParseFile(w.path)
	if err != nil {
		log.Warnf(ctx, "watch %s: %v", w.path, err)
	}
	select {
	case w.events <- Event{Config: cfg, Err: err}:
	case <-ctx.Done():
	}
}
