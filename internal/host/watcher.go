// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/models"
)

const defaultDebounce = 2 * time.Second

// OwnWriteDetector recognises file contents written by this process.
type OwnWriteDetector interface {
	IsOwnWrite(data []byte) bool
}

// Watcher reports changes of one bookmarks file. Bursts of events are
// coalesced into one notification after the debounce window stays quiet.
//
// The parent directory is watched rather than the file, because hosts
// replace the file by renaming a temporary one over it.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(models.HostChange)
	own      OwnWriteDetector
	logger   *logger.Logger
}

// NewWatcher creates a watcher for path. own may be nil.
func NewWatcher(path string, debounce time.Duration, onChange func(models.HostChange), own OwnWriteDetector, log *logger.Logger) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyBookmarksPath
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve bookmarks path: %w", err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		own:      own,
		logger:   log,
	}, nil
}

// Run blocks until ctx is done or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err = fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory of %s: %w", w.path, err)
	}

	w.logger.Info().Str("func", "*Watcher.Run").Str("path", w.path).Dur("debounce", w.debounce).Msg("watching host bookmarks")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending *models.HostChange

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			change, relevant := w.convertEvent(event)
			if !relevant {
				continue
			}
			pending = &change
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("func", "*Watcher.Run").Msg("watcher error")

		case <-timer.C:
			if pending == nil {
				continue
			}
			change := *pending
			pending = nil
			if w.isOwnWrite() {
				w.logger.Debug().Str("func", "*Watcher.Run").Msg("ignoring change written by this client")
				continue
			}
			w.onChange(change)
		}
	}
}

func (w *Watcher) convertEvent(event fsnotify.Event) (models.HostChange, bool) {
	if filepath.Clean(event.Name) != w.path {
		return models.HostChange{}, false
	}

	var kind models.HostChangeKind
	switch {
	case event.Has(fsnotify.Create):
		kind = models.HostChangeCreated
	case event.Has(fsnotify.Write):
		kind = models.HostChangeModified
	case event.Has(fsnotify.Remove):
		kind = models.HostChangeRemoved
	case event.Has(fsnotify.Rename):
		kind = models.HostChangeMoved
	default:
		return models.HostChange{}, false
	}

	return models.HostChange{Kind: kind, Path: event.Name}, true
}

func (w *Watcher) isOwnWrite() bool {
	if w.own == nil {
		return false
	}
	data, err := os.ReadFile(w.path)
	if err != nil {
		return false
	}
	return w.own.IsOwnWrite(data)
}
