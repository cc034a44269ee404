package mealplan

// Slot is one meal slot of a generated daily plan.
type Slot struct {
	// Name is the slot label used in the response ("breakfast", "lunch",
	// "dinner").
	Name string
	// MaxReadyTime is the ready-time ceiling in minutes for this slot.
	MaxReadyTime int
	// Queries are tried in order until one returns results; the first entry
	// is the primary term and doubles as the last-resort retry.
	Queries []string
	// Alternates back the duplicate-title repair pass.
	Alternates []string
}

// Slots is the fixed slot table. Breakfast, lunch and dinner share the same
// generation loop; only this table differs between them.
var Slots = []Slot{
	{
		Name:         "breakfast",
		MaxReadyTime: 30,
		Queries:      []string{"breakfast", "morning meal", "eggs", "pancakes", "oatmeal"},
		Alternates:   []string{"smoothie bowl", "french toast", "granola", "omelette"},
	},
	{
		Name:         "lunch",
		MaxReadyTime: 45,
		Queries:      []string{"lunch", "midday meal", "sandwich", "salad", "soup"},
		Alternates:   []string{"wrap", "grain bowl", "quesadilla", "pasta salad"},
	},
	{
		Name:         "dinner",
		MaxReadyTime: 60,
		Queries:      []string{"dinner", "evening meal", "chicken", "pasta", "stir fry"},
		Alternates:   []string{"salmon", "curry", "tacos", "roast vegetables"},
	},
}
