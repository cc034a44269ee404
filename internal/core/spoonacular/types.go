package spoonacular

// Nutrient is one named amount inside a recipe's nutrition summary.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Nutrition is the inline nutrition block returned by complexSearch when
// addRecipeNutrition is set.
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// CandidateRecipe is one complexSearch result.
type CandidateRecipe struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Image          string    `json:"image"`
	ReadyInMinutes int       `json:"readyInMinutes"`
	Servings       int       `json:"servings"`
	Cuisines       []string  `json:"cuisines"`
	Diets          []string  `json:"diets"`
	Nutrition      Nutrition `json:"nutrition"`
}

// SearchResult is the complexSearch response envelope.
type SearchResult struct {
	Results      []CandidateRecipe `json:"results"`
	Offset       int               `json:"offset"`
	Number       int               `json:"number"`
	TotalResults int               `json:"totalResults"`
}

// ExtendedIngredient is one entry of a detail fetch's ingredient list.
type ExtendedIngredient struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Original string  `json:"original"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Aisle    string  `json:"aisle,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// Equipment is a single piece of kitchen equipment.
type Equipment struct {
	Name string `json:"name"`
}

// DetailedRecipe is the per-recipe information fetch. The provider often
// returns no equipment; callers fall back to inferring it from instructions.
type DetailedRecipe struct {
	ID                  int                  `json:"id"`
	Title               string               `json:"title"`
	Instructions        string               `json:"instructions"`
	ExtendedIngredients []ExtendedIngredient `json:"extendedIngredients"`
	Equipment           []Equipment          `json:"equipment"`
	Summary             string               `json:"summary"`
	SourceURL           string               `json:"sourceUrl"`
	SourceName          string               `json:"sourceName"`
	PricePerServing     float64              `json:"pricePerServing"`
	HealthScore         float64              `json:"healthScore"`
	SpoonacularScore    float64              `json:"spoonacularScore"`
}

// RecipeStub is one findByIngredients result.
type RecipeStub struct {
	ID                    int    `json:"id"`
	Title                 string `json:"title"`
	Image                 string `json:"image"`
	UsedIngredientCount   int    `json:"usedIngredientCount"`
	MissedIngredientCount int    `json:"missedIngredientCount"`
	Likes                 int    `json:"likes"`
}

// SearchParams are the complexSearch filters the aggregator uses.
type SearchParams struct {
	Query              string
	Diet               string
	Cuisine            string
	Intolerances       []string
	IncludeIngredients []string
	MaxReadyTime       int
	Number             int
}
