package emoji

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Source provides the current emoji table
type Source interface {
	Table() *Table
}

// Store holds the live emoji table and swaps it atomically on reload
type Store struct {
	path    string
	current atomic.Pointer[Table]
}

// NewStore creates a store. With an empty path the store only ever serves the defaults.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	s.current.Store(Default())

	if path == "" {
		return s, nil
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// Table returns the current table
func (s *Store) Table() *Table {
	return s.current.Load()
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the emoji file. On failure the previous table stays active.
func (s *Store) Reload() error {
	if s.path == "" {
		return fmt.Errorf("no emoji file configured")
	}

	table, err := Load(s.path)
	if err != nil {
		return err
	}

	s.current.Store(table)
	return nil
}

// Watch reloads the table whenever the emoji file is written, until ctx is done.
// The parent directory is watched so editors that replace the file are handled.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create emoji watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch emoji file: %w", err)
	}

	go func() {
		defer func() {
			if closeErr := watcher.Close(); closeErr != nil {
				log.Printf("[Emoji] Failed to close watcher: %v", closeErr)
			}
		}()

		target := filepath.Clean(s.path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if reloadErr := s.Reload(); reloadErr != nil {
					log.Printf("[Emoji] Reload failed, keeping previous table: %v", reloadErr)
					continue
				}
				log.Printf("[Emoji] Reloaded %s", s.path)
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[Emoji] Watcher error: %v", watchErr)
			}
		}
	}()

	return nil
}
