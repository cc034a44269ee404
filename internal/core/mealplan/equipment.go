package mealplan

import (
	"strings"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/core/spoonacular"
)

// equipmentVocabulary is the fixed keyword list scanned when the provider
// returns no equipment. Output order follows this list, not the order of
// occurrence in the instructions.
var equipmentVocabulary = []string{
	"oven", "stove", "pan", "pot", "bowl", "whisk", "spoon", "knife",
	"cutting board", "baking sheet", "muffin tin", "blender", "mixer",
	"food processor", "grater", "measuring cup", "measuring spoon",
}

// InferEquipment scans cooking instructions for known kitchen equipment and
// returns one title-cased entry per matched keyword.
func InferEquipment(instructions string) []spoonacular.Equipment {
	if instructions == "" {
		return nil
	}

	lowered := strings.ToLower(instructions)
	var equipment []spoonacular.Equipment
	for _, keyword := range equipmentVocabulary {
		if strings.Contains(lowered, keyword) {
			equipment = append(equipment, spoonacular.Equipment{Name: titleCase(keyword)})
		}
	}
	return equipment
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
