package training

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Generator produces the text body of a training plan.
type Generator interface {
	GeneratePlan(ctx context.Context, req PlanRequest) (string, error)
}

const systemPrompt = "You are a climbing coach. Write a concise week-by-week " +
	"training plan in plain text. Stay within the requested number of weeks."

type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator returns nil when no API key is configured; the
// service then falls back to the template plan.
func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if apiKey == "" {
		return nil
	}
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (g *OpenAIGenerator) GeneratePlan(ctx context.Context, req PlanRequest) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildPrompt(req PlanRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\nPlan length: %d weeks\n", req.Goal, req.Weeks)
	if req.Focus != "" {
		fmt.Fprintf(&b, "Focus: %s\n", req.Focus)
	}
	if req.RecentClimbs > 0 {
		fmt.Fprintf(&b, "Recent volume: %d climbs in the last 60 days, hardest grade %s\n",
			req.RecentClimbs, req.HardestGrade)
	}
	return b.String()
}

// templatePlan is the deterministic fallback: a fixed base/build/peak
// split stretched over the requested weeks.
func templatePlan(req PlanRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Training plan: %s (%d weeks)\n", req.Goal, req.Weeks)
	if req.Focus != "" {
		fmt.Fprintf(&b, "Focus: %s\n", req.Focus)
	}
	b.WriteString("\n")

	buildStart := req.Weeks/3 + 1
	peakStart := 2*req.Weeks/3 + 1
	for week := 1; week <= req.Weeks; week++ {
		switch {
		case week < buildStart:
			fmt.Fprintf(&b, "Week %d: base volume. 3 sessions, stay 2 grades under your limit, long easy mileage.\n", week)
		case week < peakStart:
			fmt.Fprintf(&b, "Week %d: build. 2 limit-boulder sessions plus 1 endurance session of 4x4s.\n", week)
		default:
			fmt.Fprintf(&b, "Week %d: peak. Project attempts while fresh, full rest between goes, 1 light recovery session.\n", week)
		}
	}
	return b.String()
}
