package store

import (
	"context"
	"time"

	"github.com/shail31-tech/Clinical-Notes-Summary/internal/profile"
	"github.com/shail31-tech/Clinical-Notes-Summary/store/cache"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver

	// Notes are immutable after creation, so cached reads never go stale.
	// The TTL only bounds memory held for notes nobody asks for anymore.
	// Entries are cloned on write and read so no caller ever holds a
	// pointer into the cache.
	noteCache *cache.Cache[string, *Note]
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:    driver,
		profile:   profile,
		noteCache: cache.New[string, *Note](1000, 10*time.Minute),
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Migrate(ctx context.Context) error {
	return s.driver.Migrate(ctx)
}

func (s *Store) Close() error {
	return s.driver.Close()
}

func (s *Store) CreateNote(ctx context.Context, create *Note) (*Note, error) {
	note, err := s.driver.CreateNote(ctx, create)
	if err != nil {
		return nil, err
	}
	s.noteCache.Set(note.ID, cloneNote(note))
	return note, nil
}

func (s *Store) GetNote(ctx context.Context, find *FindNote) (*Note, error) {
	if find.ID != nil {
		if note, ok := s.noteCache.Get(*find.ID); ok && note.CreatorID == find.CreatorID {
			return cloneNote(note), nil
		}
	}

	note, err := s.driver.GetNote(ctx, find)
	if err != nil {
		return nil, err
	}
	if note != nil {
		s.noteCache.Set(note.ID, cloneNote(note))
	}
	return note, nil
}

func (s *Store) ListNotes(ctx context.Context, find *FindNote) ([]*Note, error) {
	return s.driver.ListNotes(ctx, find)
}

func cloneNote(note *Note) *Note {
	clone := *note
	clone.Medications = cloneStrings(note.Medications)
	clone.Allergies = cloneStrings(note.Allergies)
	if note.ICDCodes != nil {
		clone.ICDCodes = append([]ICDCode(nil), note.ICDCodes...)
	}
	return &clone
}

func cloneStrings(list []string) []string {
	if list == nil {
		return nil
	}
	return append([]string(nil), list...)
}
