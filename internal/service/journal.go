package service

import (
	"fmt"
	"os"
)

// Journal is the canonical append-only text log. Append must flush the
// line to disk before returning; a failed append is unrecoverable.
type Journal interface {
	Append(message string) error
}

// FileJournal appends lines to a plain text file. The file is opened and
// closed on every write, so no handle is held across loop iterations.
type FileJournal struct {
	path string
}

func NewFileJournal(path string) *FileJournal {
	return &FileJournal{path: path}
}

// Ensure implementation of Journal interface at compile time.
var _ Journal = (*FileJournal)(nil)

// Append writes message plus a line terminator and syncs the file.
func (j *FileJournal) Append(message string) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal %q: %w", j.path, err)
	}

	if _, err := f.WriteString(message + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("append to journal %q: %w", j.path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync journal %q: %w", j.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close journal %q: %w", j.path, err)
	}
	return nil
}
