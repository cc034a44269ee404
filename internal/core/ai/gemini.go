package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/timmyloos/Meal-Planner-for-Students/internal/infrastructure/config"
	"github.com/timmyloos/Meal-Planner-for-Students/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent API. Models from the
// configured priority list are tried in order until one returns content.
type GeminiClient struct {
	config *config.Config
	client *resty.Client
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
	} `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient creates a Gemini text generator.
func NewGeminiClient(cfg *config.Config) *GeminiClient {
	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetTimeout(cfg.AI.Timeout).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{
		config: cfg,
		client: client,
	}
}

// Generate tries each configured model in priority order and returns the
// first non-empty reply. When every model fails, the caller gets a single
// no-provider error.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.config.AI.Enabled || c.config.AI.APIKey == "" {
		return "", common.ErrNoProvider
	}

	var lastErr error
	for _, model := range c.config.AI.Models {
		text, err := c.generateWithModel(ctx, model, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		common.LogWarn("AI model failed, trying next",
			zap.String("model", model),
			zap.Error(err),
		)
	}

	common.LogError("all AI models failed", zap.Error(lastErr))
	return "", common.ErrNoProvider
}

func (c *GeminiClient) generateWithModel(ctx context.Context, model, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}
	req.GenerationConfig.MaxOutputTokens = c.config.AI.MaxTokens

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.config.AI.APIKey).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", model))
	common.LogUpstreamCall("gemini", model, time.Since(start), err)

	if err != nil {
		return "", fmt.Errorf("failed to reach AI provider: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("AI provider error (status %d): %s", resp.StatusCode(), resp.String())
	}

	var result geminiResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty AI response")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty AI response content")
	}
	return text, nil
}
