package store

import (
	"errors"
	"io/fs"
	"os"
)

// Slot is the single named location the session history lives in. The whole
// serialized history is read and written as one value, the way a browser
// would treat a single localStorage key. Injecting the slot keeps the store
// free of ambient global state and lets tests swap in a MemorySlot.
type Slot interface {
	Load() ([]byte, error)
	Store(data []byte) error
}

// FileSlot keeps the history in one local file.
type FileSlot struct {
	Path string
}

// Load reads the whole slot. A file that does not exist yet reads as empty.
func (s FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Store replaces the whole slot.
func (s FileSlot) Store(data []byte) error {
	return os.WriteFile(s.Path, data, 0o600)
}

// MemorySlot implements Slot in process, suitable for tests. Setting Err
// makes both operations fail, simulating an unavailable backing store.
type MemorySlot struct {
	Err  error
	data []byte
}

func (s *MemorySlot) Load() ([]byte, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.data, nil
}

func (s *MemorySlot) Store(data []byte) error {
	if s.Err != nil {
		return s.Err
	}
	s.data = append([]byte(nil), data...)
	return nil
}
