// Package memory provides an in-process store driver for demo mode and tests.
// It is the degenerate storage backend: same contract as the SQL drivers,
// no durability.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shail31-tech/Clinical-Notes-Summary/internal/profile"
	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

type DB struct {
	profile *profile.Profile

	mu    sync.RWMutex
	notes map[string]*store.Note
}

// NewDB creates an in-memory driver. All data is lost on shutdown.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	return &DB{
		profile: profile,
		notes:   make(map[string]*store.Note),
	}, nil
}

func (d *DB) Close() error {
	return nil
}

func (d *DB) Migrate(_ context.Context) error {
	return nil
}

func (d *DB) CreateNote(_ context.Context, create *store.Note) (*store.Note, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Overwrite semantics match the SQL drivers' put-by-key contract;
	// freshly generated ids make collisions a caller bug, not a race.
	d.notes[create.ID] = cloneNote(create)
	return create, nil
}

func (d *DB) GetNote(_ context.Context, find *store.FindNote) (*store.Note, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if find.ID == nil {
		return nil, nil
	}
	note, ok := d.notes[*find.ID]
	if !ok || note.CreatorID != find.CreatorID {
		return nil, nil
	}
	return cloneNote(note), nil
}

func (d *DB) ListNotes(_ context.Context, find *store.FindNote) ([]*store.Note, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := make([]*store.Note, 0)
	for _, note := range d.notes {
		if note.CreatorID != find.CreatorID {
			continue
		}
		list = append(list, cloneNote(note))
	}

	// Newest first, matching the SQL drivers.
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedTs != list[j].CreatedTs {
			return list[i].CreatedTs > list[j].CreatedTs
		}
		return list[i].ID < list[j].ID
	})

	return list, nil
}

// cloneNote copies a note so callers can never mutate stored state.
func cloneNote(note *store.Note) *store.Note {
	clone := *note
	clone.Medications = cloneStrings(note.Medications)
	clone.Allergies = cloneStrings(note.Allergies)
	if note.ICDCodes != nil {
		clone.ICDCodes = make([]store.ICDCode, len(note.ICDCodes))
		copy(clone.ICDCodes, note.ICDCodes)
	}
	return &clone
}

func cloneStrings(list []string) []string {
	if list == nil {
		return nil
	}
	clone := make([]string, len(list))
	copy(clone, list)
	return clone
}
