package mealplan

import (
	"strings"
)

// dietKeywords maps restriction keywords to provider diet filters, checked
// in priority order: the first match wins.
var dietKeywords = []struct {
	keyword string
	diet    string
}{
	{"vegetarian", "vegetarian"},
	{"vegan", "vegan"},
	{"gluten", "gluten free"},
	{"dairy", "dairy free"},
	{"keto", "ketogenic"},
	{"paleo", "paleo"},
}

// intoleranceKeywords maps restriction keywords to provider intolerance
// filters; every match is included.
var intoleranceKeywords = []struct {
	keyword     string
	intolerance string
}{
	{"gluten", "gluten"},
	{"dairy", "dairy"},
	{"nut", "tree nut"},
	{"shellfish", "shellfish"},
	{"soy", "soy"},
	{"egg", "egg"},
	{"fish", "fish"},
}

// ParseRestrictions turns free-text dietary restrictions into a diet filter
// and an intolerance list.
func ParseRestrictions(text string) (string, []string) {
	lowered := strings.ToLower(text)

	diet := ""
	for _, entry := range dietKeywords {
		if strings.Contains(lowered, entry.keyword) {
			diet = entry.diet
			break
		}
	}

	var intolerances []string
	for _, entry := range intoleranceKeywords {
		if strings.Contains(lowered, entry.keyword) {
			intolerances = append(intolerances, entry.intolerance)
		}
	}

	return diet, intolerances
}

// ParseLikedFoods turns comma-separated liked foods into an
// include-ingredients filter, capped at the first three terms.
func ParseLikedFoods(text string) []string {
	var foods []string
	for _, part := range strings.Split(text, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		foods = append(foods, trimmed)
		if len(foods) == 3 {
			break
		}
	}
	return foods
}
