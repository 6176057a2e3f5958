package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"contactbook/src/core/domain"
)

// FileStore persists the address book as a JSON snapshot file.
// The whole file is overwritten on save; there is no partial-write recovery.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore constructs a store writing to the given path.
func NewFileStore(path string, log *slog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the snapshot file. A missing file yields an empty address book;
// an unreadable or corrupted file is an error that aborts startup.
func (s *FileStore) Load(_ context.Context) (*domain.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("no snapshot file, starting with an empty book", "path", s.path)
			return domain.NewAddressBook(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", s.path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", s.path, err)
	}
	if snap.Version > snapshotVersion {
		return nil, fmt.Errorf("snapshot %s has unsupported version %d", s.path, snap.Version)
	}

	book, err := restoreBook(snap)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s is corrupted: %w", s.path, err)
	}
	s.log.Debug("snapshot loaded", "path", s.path, "records", book.Len())
	return book, nil
}

// Save overwrites the snapshot file with the book's full state.
func (s *FileStore) Save(_ context.Context, book *domain.AddressBook) error {
	data, err := json.MarshalIndent(takeSnapshot(book), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", s.path, err)
	}
	return nil
}

// Health checks that the snapshot's directory is accessible.
func (s *FileStore) Health(_ context.Context) error {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("snapshot directory %s is not accessible: %w", dir, err)
	}
	return nil
}
