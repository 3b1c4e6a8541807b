package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/pranit96/life.me/internal/model"
)

// Fallback texts returned when the provider cannot be reached or replies
// with garbage. These are part of the API contract: clients may display
// them verbatim.
const (
	FallbackUnavailable = "Sorry, AI service is currently unavailable."
	FallbackFailed      = "Sorry, AI request failed."
	FallbackNoInsight   = "No insight available."
)

// GroqClient talks to Groq's OpenAI-compatible chat-completion API.
type GroqClient struct {
	client          *openai.Client
	insightModel    string
	categorizeModel string
	timeout         time.Duration
}

// NewGroqClient builds a client against baseURL (Groq's OpenAI-compatible
// endpoint). insightModel and categorizeModel are preferred model IDs; the
// actual model is resolved against the provider's listing per call.
func NewGroqClient(apiKey, baseURL, insightModel, categorizeModel string, timeout time.Duration) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &GroqClient{
		client:          openai.NewClientWithConfig(cfg),
		insightModel:    insightModel,
		categorizeModel: categorizeModel,
		timeout:         timeout,
	}
}

// ChooseModel picks preferred if the provider lists it, otherwise the first
// listed model, otherwise preferred itself. Failing open means callers
// always get a usable identifier even when the listing call broke.
func ChooseModel(available []string, preferred string) string {
	for _, id := range available {
		if id == preferred {
			return preferred
		}
	}
	if len(available) > 0 {
		slog.Warn("preferred model not available, using fallback",
			"preferred", preferred, "fallback", available[0])
		return available[0]
	}
	return preferred
}

func (g *GroqClient) resolveModel(ctx context.Context, preferred string) string {
	list, err := g.client.ListModels(ctx)
	if err != nil {
		slog.Error("model listing failed", "error", err)
		return preferred
	}
	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ChooseModel(ids, preferred)
}

// complete runs a single chat completion under the client timeout. The
// context deadline aborts the in-flight HTTP request, so a hung provider
// costs at most g.timeout and leaves nothing dangling.
func (g *GroqClient) complete(ctx context.Context, preferredModel, system, user string, maxTokens int, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	chosen := g.resolveModel(ctx, preferredModel)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chosen,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty choices in completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// fallbackFor distinguishes a provider-side rejection (HTTP error status)
// from everything else (timeout, network, malformed body).
func fallbackFor(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return FallbackUnavailable
	}
	return FallbackFailed
}

type expenseDigest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// GenerateGoalInsights embeds the goal's title and amounts plus up to the
// 10 most recent expenses. Only amount and category go into the prompt:
// descriptions stay out of the payload.
func (g *GroqClient) GenerateGoalInsights(ctx context.Context, goal model.Goal, expenses []model.Expense) string {
	recent := make([]expenseDigest, 0, 10)
	for i, e := range expenses {
		if i == 10 {
			break
		}
		recent = append(recent, expenseDigest{Amount: e.Amount, Category: e.Category})
	}
	recentJSON, _ := json.Marshal(recent)

	system := "You are a helpful financial advisor AI. Analyze the user's goal and spending, give clear practical insights."
	user := fmt.Sprintf("Goal: %s, Target: $%.2f, Current: $%.2f. Recent expenses: %s.",
		goal.Title, goal.TargetAmount, goal.CurrentAmount, recentJSON)

	text, err := g.complete(ctx, g.insightModel, system, user, 200, 0.7)
	if err != nil {
		slog.Error("goal insight generation failed", "goal_id", goal.ID, "error", err)
		return fallbackFor(err)
	}
	if text == "" {
		return FallbackNoInsight
	}
	return text
}

// GenerateSpendingInsights summarizes the whole collection into total spend
// and a category breakdown before asking for brief advice and 1-2 tips.
func (g *GroqClient) GenerateSpendingInsights(ctx context.Context, expenses []model.Expense) string {
	var total float64
	breakdown := make(map[string]float64)
	for _, e := range expenses {
		total += e.Amount
		breakdown[e.Category] += e.Amount
	}
	breakdownJSON, _ := json.Marshal(breakdown)

	system := "You are a personal finance advisor. Analyze spending and give short practical advice."
	user := fmt.Sprintf("Total spent: $%.2f. Breakdown: %s. Give brief insights & 1-2 tips.",
		total, breakdownJSON)

	text, err := g.complete(ctx, g.insightModel, system, user, 150, 0.7)
	if err != nil {
		slog.Error("spending insight generation failed", "error", err)
		return fallbackFor(err)
	}
	if text == "" {
		return FallbackNoInsight
	}
	return text
}

// CategorizeExpense classifies into the fixed label set with a low
// temperature, low token budget call. Only the first whitespace-delimited
// token of the reply counts; verbose replies and failures both land in the
// default category.
func (g *GroqClient) CategorizeExpense(ctx context.Context, description string, amount float64) string {
	system := fmt.Sprintf("Categorize this expense into one of: %s. Return only the category name.",
		model.CategoryPrompt())
	user := fmt.Sprintf("Expense: %s - $%.2f", description, amount)

	text, err := g.complete(ctx, g.categorizeModel, system, user, 10, 0.3)
	if err != nil {
		slog.Error("expense categorization failed", "error", err)
		return model.DefaultCategory
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return model.DefaultCategory
	}
	category := strings.TrimRight(fields[0], ".,:;")
	if !model.IsKnownCategory(category) {
		return model.DefaultCategory
	}
	return category
}
