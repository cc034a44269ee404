// Package history holds the in-process record stores: ingredient search
// history, saved recipes and the user food log. Every store is an injected
// object guarded by its own mutex so concurrent handlers serialize
// correctly; none of this state survives a restart.
package history

import (
	"sort"
	"strings"
	"sync"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"
)

// SearchEntry is one ingredient-search history record.
type SearchEntry struct {
	ID          int    `json:"id"`
	Ingredients string `json:"ingredients"`
	Timestamp   string `json:"timestamp"`
	SearchCount int    `json:"search_count"`
}

// SearchHistory tracks ingredient searches. Repeating a search increments
// its count instead of adding a second entry.
type SearchHistory struct {
	mu      sync.Mutex
	entries []SearchEntry
}

// NewSearchHistory creates an empty search history.
func NewSearchHistory() *SearchHistory {
	return &SearchHistory{}
}

// Record logs one search. Matching is case-insensitive on the raw
// ingredients string.
func (h *SearchHistory) Record(ingredients string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.entries {
		if strings.EqualFold(h.entries[i].Ingredients, ingredients) {
			h.entries[i].SearchCount++
			h.entries[i].Timestamp = common.NowISO()
			return
		}
	}

	h.entries = append(h.entries, SearchEntry{
		ID:          len(h.entries) + 1,
		Ingredients: ingredients,
		Timestamp:   common.NowISO(),
		SearchCount: 1,
	})
}

// List returns the history sorted most-recent first.
func (h *SearchHistory) List() []SearchEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]SearchEntry, len(h.entries))
	copy(out, h.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// Len reports the number of distinct searches.
func (h *SearchHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
