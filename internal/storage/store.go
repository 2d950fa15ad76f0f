// Package storage provides the key-value blob store the ledger
// persists its snapshots to.
//
// The interface is deliberately small: opaque blobs keyed by string,
// overwritten on every save. FileStore keeps one file per key under a
// data directory; MemStore backs tests and ephemeral runs.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

// Common storage errors.
var (
	// ErrNotFound indicates no value has been saved under the key.
	// A load miss is not a failure; callers treat it as absent state.
	ErrNotFound = errors.New("storage key not found")

	// ErrInvalidKey indicates an empty or unsafe key.
	ErrInvalidKey = errors.New("invalid storage key")
)

// PersistenceError wraps an underlying store failure (disk full,
// permission denied) so callers can detect it with errors.As while
// preserving the cause for errors.Is.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store is the persistence boundary consumed by the ledger.
type Store interface {
	// Save overwrites any existing value at key.
	Save(key string, blob []byte) error

	// Load returns the previously saved blob, or ErrNotFound if the
	// key has never been written.
	Load(key string) ([]byte, error)
}

// keyPattern restricts keys to names that are safe as file names.
var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// FileStore persists blobs as individual files in a directory.
// Thread-safe for concurrent access.
type FileStore struct {
	directory string
	mu        sync.RWMutex
}

// NewFileStore creates a file-backed store rooted at directory,
// creating the directory if it does not exist.
func NewFileStore(directory string) (*FileStore, error) {
	if directory == "" {
		return nil, errors.New("storage directory cannot be empty")
	}
	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, &PersistenceError{Op: "init", Key: directory, Err: err}
	}
	return &FileStore{directory: directory}, nil
}

// Save writes blob to the key's file, replacing any previous value.
func (s *FileStore) Save(key string, blob []byte) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.keyToFilePath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0600); err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	return nil
}

// Load reads the blob stored under key. Returns ErrNotFound when the
// key has never been saved.
func (s *FileStore) Load(key string) ([]byte, error) {
	if !keyPattern.MatchString(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, err := os.ReadFile(s.keyToFilePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "load", Key: key, Err: err}
	}
	return blob, nil
}

// keyToFilePath maps a key to its file path within the store directory.
func (s *FileStore) keyToFilePath(key string) string {
	return filepath.Join(s.directory, key+".json")
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

// Save stores a copy of blob under key.
func (s *MemStore) Save(key string, blob []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(blob))
	copy(buf, blob)
	s.blobs[key] = buf
	return nil
}

// Load returns a copy of the blob stored under key, or ErrNotFound.
func (s *MemStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	buf := make([]byte, len(blob))
	copy(buf, blob)
	return buf, nil
}
