package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/infrastructure/config"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// API is the upstream recipe provider surface the rest of the service
// depends on. The meal plan generator and handlers accept this interface so
// tests can swap in fakes.
type API interface {
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)
	GetRecipe(ctx context.Context, id int) (*DetailedRecipe, error)
	FindByIngredients(ctx context.Context, ingredients string, number int) ([]RecipeStub, error)
	GenerateTemplate(ctx context.Context) (json.RawMessage, error)
	RawSearch(ctx context.Context, query, diet, cuisine, maxReadyTime string) (json.RawMessage, error)
}

// Client talks to the Spoonacular API.
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient creates a Spoonacular client. All calls share the single
// configured timeout.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Spoonacular.BaseURL).
		SetTimeout(cfg.Spoonacular.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// get performs one authenticated GET and returns the raw body. A missing
// API key fails before any network call.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	if c.config.Spoonacular.APIKey == "" {
		return nil, common.ErrMissingAPIKey
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("apiKey", c.config.Spoonacular.APIKey).
		Get(endpoint)
	common.LogUpstreamCall("spoonacular", endpoint, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to reach recipe provider: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe provider error (status %d): %s", resp.StatusCode(), resp.String())
	}

	return resp.Body(), nil
}

// Search runs a complexSearch with nutrition data included inline.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	query := map[string]string{
		"query":              params.Query,
		"number":             strconv.Itoa(params.Number),
		"addRecipeNutrition": "true",
	}
	if params.Diet != "" {
		query["diet"] = params.Diet
	}
	if params.Cuisine != "" {
		query["cuisine"] = params.Cuisine
	}
	if len(params.Intolerances) > 0 {
		query["intolerances"] = strings.Join(params.Intolerances, ",")
	}
	if len(params.IncludeIngredients) > 0 {
		query["includeIngredients"] = strings.Join(params.IncludeIngredients, ",")
	}
	if params.MaxReadyTime > 0 {
		query["maxReadyTime"] = strconv.Itoa(params.MaxReadyTime)
	}

	body, err := c.get(ctx, "/recipes/complexSearch", query)
	if err != nil {
		return nil, err
	}

	var result SearchResult
	if err := common.ParseJSONBytes(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return &result, nil
}

// GetRecipe fetches full detail for one recipe id.
func (c *Client) GetRecipe(ctx context.Context, id int) (*DetailedRecipe, error) {
	body, err := c.get(ctx, fmt.Sprintf("/recipes/%d/information", id), map[string]string{})
	if err != nil {
		return nil, err
	}

	var detail DetailedRecipe
	if err := common.ParseJSONBytes(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse recipe detail: %w", err)
	}
	return &detail, nil
}

// FindByIngredients searches recipes using a comma-separated ingredient list,
// ranked to maximize used ingredients.
func (c *Client) FindByIngredients(ctx context.Context, ingredients string, number int) ([]RecipeStub, error) {
	body, err := c.get(ctx, "/recipes/findByIngredients", map[string]string{
		"ingredients": ingredients,
		"number":      strconv.Itoa(number),
		"ranking":     "1",
	})
	if err != nil {
		return nil, err
	}

	var stubs []RecipeStub
	if err := common.ParseJSONBytes(body, &stubs); err != nil {
		return nil, fmt.Errorf("failed to parse ingredient search response: %w", err)
	}
	return stubs, nil
}

// GenerateTemplate fetches a weekly vegetarian plan template from the
// provider's meal planner and returns it untouched.
func (c *Client) GenerateTemplate(ctx context.Context) (json.RawMessage, error) {
	body, err := c.get(ctx, "/mealplanner/generate", map[string]string{
		"timeFrame":      "week",
		"targetCalories": "2000",
		"diet":           "vegetarian",
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// RawSearch runs a complexSearch with caller-supplied filters and returns
// the provider response untouched. Backs the recipe-search passthrough
// endpoint.
func (c *Client) RawSearch(ctx context.Context, query, diet, cuisine, maxReadyTime string) (json.RawMessage, error) {
	params := map[string]string{
		"query":              query,
		"number":             strconv.Itoa(c.config.Spoonacular.ResultCount),
		"addRecipeNutrition": "true",
	}
	if diet != "" {
		params["diet"] = diet
	}
	if cuisine != "" {
		params["cuisine"] = cuisine
	}
	if maxReadyTime != "" {
		params["maxReadyTime"] = maxReadyTime
	}

	body, err := c.get(ctx, "/recipes/complexSearch", params)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
