package store

import (
	"context"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	Close() error

	// Migrate creates the schema when it does not exist yet.
	Migrate(ctx context.Context) error

	// CreateNote writes a note under its identifier. The write is atomic
	// per record: readers never observe a partially written note.
	CreateNote(ctx context.Context, create *Note) (*Note, error)

	// GetNote returns the matching note, or (nil, nil) when absent.
	// A missing key is not an error.
	GetNote(ctx context.Context, find *FindNote) (*Note, error)

	// ListNotes returns every note for the caller. Ordering is a
	// presentation concern; callers must treat the result as a set.
	ListNotes(ctx context.Context, find *FindNote) ([]*Note, error)
}
