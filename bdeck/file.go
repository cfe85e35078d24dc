package bdeck

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotOpen is returned by Read on a File that has not been opened
// or has already been closed.
var ErrNotOpen = errors.New("bdeck: file not open")

// File reads best-track records from a deck file on disk. The
// lifecycle is explicit: NewFile records the path, Open acquires the
// handle, Read parses, Close releases. A single Open supports one
// full Read; reading again returns no records because the handle sits
// at EOF.
type File struct {
	path string
	f    *os.File
}

// NewFile returns a File for the deck at path without touching the
// filesystem.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the deck path this File was created with.
func (f *File) Path() string {
	return f.path
}

// Open acquires the underlying file handle. Opening an already open
// File releases the previous handle first.
func (f *File) Open() error {
	if f.f != nil {
		f.f.Close()
	}

	h, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("open deck file: %w", err)
	}
	f.f = h
	return nil
}

// Read parses the deck, returning its records and per-file metadata.
// It fails with ErrNotOpen unless Open has succeeded and Close has
// not been called since.
func (f *File) Read(opts ReadOptions) ([]Record, Metadata, error) {
	if f.f == nil {
		return nil, Metadata{}, ErrNotOpen
	}
	return Parse(f.f, opts)
}

// Close releases the file handle. Closing a File that is not open is
// a no-op.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}
