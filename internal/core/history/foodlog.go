package history

import (
	"sync"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"
)

// FoodLogEntry is one logged set of user food preferences.
type FoodLogEntry struct {
	ID        int      `json:"id"`
	UserID    string   `json:"user_id"`
	Foods     []string `json:"foods"`
	Timestamp string   `json:"timestamp"`
	FoodCount int      `json:"food_count"`
}

// FoodLog is the mutex-guarded per-user food preference log.
type FoodLog struct {
	mu      sync.Mutex
	entries []FoodLogEntry
}

// NewFoodLog creates an empty food log.
func NewFoodLog() *FoodLog {
	return &FoodLog{}
}

// Append logs one entry, assigning its id and food count. A missing
// timestamp gets the current time and a missing user id logs as anonymous.
func (l *FoodLog) Append(userID string, foods []string, timestamp string) FoodLogEntry {
	if userID == "" {
		userID = "anonymous"
	}
	if timestamp == "" {
		timestamp = common.NowISO()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := FoodLogEntry{
		ID:        len(l.entries) + 1,
		UserID:    userID,
		Foods:     foods,
		Timestamp: timestamp,
		FoodCount: len(foods),
	}
	l.entries = append(l.entries, entry)
	return entry
}

// List returns every logged entry in insertion order.
func (l *FoodLog) List() []FoodLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]FoodLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ByUser returns the entries logged for one user.
func (l *FoodLog) ByUser(userID string) []FoodLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []FoodLogEntry
	for _, e := range l.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// Len reports the number of logged entries.
func (l *FoodLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
