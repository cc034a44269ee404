package mealplan

// defaultCalories is used when height or weight is missing.
const defaultCalories = 2000

// CalorieTarget computes the daily calorie target from height (cm), weight
// (kg) and goal. BMR uses the Mifflin-St Jeor equation with a fixed age-25
// term; "lose" scales it by 0.8 and "gain" by 1.2.
func CalorieTarget(height, weight float64, goal string) int {
	if height <= 0 || weight <= 0 {
		return defaultCalories
	}

	bmr := 10*weight + 6.25*height - 5*25

	switch goal {
	case "lose":
		return int(bmr * 0.8)
	case "gain":
		return int(bmr * 1.2)
	default:
		return int(bmr)
	}
}
