package daily

import (
	"context"
	"errors"
	"fmt"

	"github.com/robalobadob/wordle-cz/internal/store"
)

// OverridesKey is the global store key of the override map.
const OverridesKey = "overrides"

// Overrides maps a date key to the word that replaces the scheduled one.
type Overrides map[string]string

// overrideStore persists Overrides as one versioned record.
type overrideStore struct{ kv store.Store }

func (s overrideStore) load(ctx context.Context) (Overrides, error) {
	m := Overrides{}
	err := store.LoadRecord(ctx, s.kv, OverridesKey, &m)
	if errors.Is(err, store.ErrNotFound) {
		return Overrides{}, nil
	}
	if err != nil {
		return Overrides{}, fmt.Errorf("load overrides: %w", err)
	}
	if m == nil {
		m = Overrides{}
	}
	return m, nil
}

func (s overrideStore) save(ctx context.Context, m Overrides) error {
	if err := store.SaveRecord(ctx, s.kv, OverridesKey, m); err != nil {
		return fmt.Errorf("save overrides: %w", err)
	}
	return nil
}

// prune drops entries for dates before today. Date keys sort lexically.
func (m Overrides) prune(today string) {
	for k := range m {
		if k < today {
			delete(m, k)
		}
	}
}
