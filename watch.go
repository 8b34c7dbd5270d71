package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"codeberg.org/miketth/kbdconv/pkg/config"
	"codeberg.org/miketth/kbdconv/pkg/convert"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore"
	"github.com/fsnotify/fsnotify"
)

// watch exports once, then again every time the store file settles after a
// change.
func (a *app) watch(ctx context.Context) error {
	if a.cfg.Store.Type == config.StoreMemory {
		return errors.New("watch needs a file backed store")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watching the directory survives the store file being replaced.
	if err := watcher.Add(filepath.Dir(a.cfg.Store.Path)); err != nil {
		return fmt.Errorf("watch store directory: %w", err)
	}

	a.log.Infow("watching layout store", "path", a.cfg.Store.Path, "out", a.cfg.Export.OutputDir)

	errChan := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		err := a.exportLoop(ctx, watcher)
		if err != nil {
			errChan <- fmt.Errorf("export loop: %w", err)
		}
	}()

	go func() {
		defer wg.Done()
		err := systemdNotifyLoop(ctx)
		if err != nil {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	err = <-errChan
	switch {
	case errors.Is(err, context.Canceled):
		a.log.Info("shutting down")
		wg.Wait()
		return nil
	case err != nil:
		return err
	}

	return nil
}

func (a *app) exportLoop(ctx context.Context, watcher *fsnotify.Watcher) error {
	trigger := make(chan struct{}, 1)
	fire := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}
	fire()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if !a.isStoreEvent(event) {
				continue
			}
			a.log.Debugw("store changed", "event", event)

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(a.cfg.Watch.Debounce(), fire)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			a.log.Warnw("watcher error", "error", err)

		case <-trigger:
			err := a.withConverter(func(_ layoutstore.Store, c *convert.Converter) error {
				return a.exportOnce(c, a.cfg.Export.OutputDir, a.cfg.Export.Formats, nil)
			})
			if err != nil {
				a.log.Errorw("export failed", "error", err)
			}
		}
	}
}

// isStoreEvent matches writes to the store file and to the journal files
// sqlite keeps next to it.
func (a *app) isStoreEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), filepath.Base(a.cfg.Store.Path))
}
