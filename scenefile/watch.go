// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchLag is the quiet time after a change before the scene is reloaded,
// so that a burst of writes reloads once.
var WatchLag = 100 * time.Millisecond

// Watch calls fn with the reloaded scene, or the error reading it, each
// time the scene file changes, until ctx is done. The directory of the
// file is watched so that editors replacing the file are seen.
func Watch(ctx context.Context, filename string, fn func(sc *Scene, err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	timer := time.NewTimer(WatchLag)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(WatchLag)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("scene watcher", "file", filename, "err", err)
		case <-timer.C:
			fn(Open(abs))
		}
	}
}
