package seenstate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/seenstate"
)

func match(id string) models.EnrichedMatch {
	return models.EnrichedMatch{Match: models.Match{ID: id}}
}

func tempStore(t *testing.T) *seenstate.Store {
	t.Helper()
	return seenstate.NewStore(filepath.Join(t.TempDir(), "seen.json"))
}

func TestStore_StartsEmpty(t *testing.T) {
	store := tempStore(t)
	assert.Empty(t, store.SeenIDs())
}

func TestStore_MarkSeenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	store := seenstate.NewStore(path)

	store.MarkSeen([]models.EnrichedMatch{match("m1"), match("m2")})

	// A fresh store over the same file sees the same set.
	reopened := seenstate.NewStore(path)
	ids := reopened.SeenIDs()
	assert.Contains(t, ids, "m1")
	assert.Contains(t, ids, "m2")
	assert.Len(t, ids, 2)
}

func TestStore_MarkSeenIsIdempotent(t *testing.T) {
	store := tempStore(t)
	matches := []models.EnrichedMatch{match("m1"), match("m2")}

	store.MarkSeen(matches)
	once := store.SeenIDs()
	store.MarkSeen(matches)
	twice := store.SeenIDs()

	assert.Equal(t, once, twice)
}

func TestStore_SetOnlyGrows(t *testing.T) {
	store := tempStore(t)

	store.MarkSeen([]models.EnrichedMatch{match("m1")})
	store.MarkSeen([]models.EnrichedMatch{match("m2")})

	ids := store.SeenIDs()
	assert.Contains(t, ids, "m1")
	assert.Contains(t, ids, "m2")
}

func TestStore_CorruptStateFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := seenstate.NewStore(path)
	assert.Empty(t, store.SeenIDs())

	// Marking after corruption rewrites clean state.
	store.MarkSeen([]models.EnrichedMatch{match("m1")})
	assert.Contains(t, store.SeenIDs(), "m1")
}

func TestStore_Partition(t *testing.T) {
	store := tempStore(t)
	all := []models.EnrichedMatch{match("m1"), match("m2"), match("m3")}

	store.MarkSeen(all[:1])
	seen, unseen := store.Partition(all)

	require.Len(t, seen, 1)
	assert.Equal(t, "m1", seen[0].ID)
	require.Len(t, unseen, 2)

	// No id is ever reported on both sides.
	ids := map[string]int{}
	for _, m := range seen {
		ids[m.ID]++
	}
	for _, m := range unseen {
		ids[m.ID]++
	}
	for id, count := range ids {
		assert.Equal(t, 1, count, "match %s partitioned twice", id)
	}

	// After acknowledging everything, nothing is new.
	store.MarkSeen(all)
	seen, unseen = store.Partition(all)
	assert.Len(t, seen, 3)
	assert.Empty(t, unseen)
}
