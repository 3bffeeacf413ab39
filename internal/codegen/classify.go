package codegen

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/answer-cli/pkg/anthropic"
)

// Sentiment labels returned by Classifier.
const (
	Good    = "GOOD"
	Bad     = "BAD"
	Neutral = "NEUTRAL"
)

// Classifier labels sample text directly instead of emitting a program.
type Classifier struct {
	client       anthropic.Client
	model        string
	maxTokens    int64
	systemPrompt string
}

// NewClassifier creates a Classifier that asks model for a single label.
func NewClassifier(client anthropic.Client, model string, maxTokens int64, systemPrompt string) *Classifier {
	if maxTokens <= 0 {
		maxTokens = 16
	}
	return &Classifier{
		client:       client,
		model:        model,
		maxTokens:    maxTokens,
		systemPrompt: systemPrompt + " Reply with exactly one word.",
	}
}

// Classify returns GOOD, BAD or NEUTRAL for text.
func (c *Classifier) Classify(ctx context.Context, text string) (string, error) {
	temp := 0.0
	resp, err := c.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		System:      []anthropic.SystemBlock{{Text: c.systemPrompt}},
		Messages:    []anthropic.Message{{Role: "user", Content: text}},
		Temperature: &temp,
	})
	if err != nil {
		return "", eris.Wrap(err, "codegen: classify sentiment")
	}
	resp.Usage.LogCost(c.model, "sentiment")

	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	label, ok := parseLabel(sb.String())
	if !ok {
		return "", eris.Errorf("codegen: unexpected sentiment reply %q", sb.String())
	}
	return label, nil
}

func parseLabel(reply string) (string, bool) {
	word := strings.ToUpper(strings.Trim(strings.TrimSpace(reply), ".!\"'"))
	switch word {
	case Good, Bad, Neutral:
		return word, true
	}
	return "", false
}
