// Package seenstate tracks which match records the local user has already
// acknowledged, for the celebration overlay and the unread badge. The set is
// persisted per machine profile and never synced; missing or corrupt state
// reads as empty so the UI can always render.
package seenstate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/nvargo-code/Spacematch/models"
)

const stateFileName = "spacematch_seen_matches.json"

// Store persists the set of seen match ids as a JSON array of strings.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore places the state file under the user config directory,
// falling back to the temp dir when none is available.
func DefaultStore() *Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return NewStore(filepath.Join(dir, "spacematch", stateFileName))
}

// SeenIDs loads the persisted set. Any read or parse failure yields an
// empty set.
func (s *Store) SeenIDs() map[string]struct{} {
	ids := map[string]struct{}{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ids
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return ids
	}
	for _, id := range list {
		ids[id] = struct{}{}
	}
	return ids
}

// MarkSeen adds every given match's id to the persisted set. The set only
// grows; marking already-seen matches again changes nothing. Write failures
// are swallowed — losing the marker re-shows a celebration, nothing worse.
func (s *Store) MarkSeen(matches []models.EnrichedMatch) {
	ids := s.SeenIDs()
	for _, m := range matches {
		ids[m.ID] = struct{}{}
	}

	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	sort.Strings(list)

	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}

// Partition splits matches into those already acknowledged and those the
// user has not seen yet. No match appears in both lists.
func (s *Store) Partition(matches []models.EnrichedMatch) (seen, unseen []models.EnrichedMatch) {
	ids := s.SeenIDs()
	for _, m := range matches {
		if _, ok := ids[m.ID]; ok {
			seen = append(seen, m)
		} else {
			unseen = append(unseen, m)
		}
	}
	return seen, unseen
}
