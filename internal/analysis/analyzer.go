package analysis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"acfinder/internal/model"
	"acfinder/internal/observability"
)

const NoProductsMessage = "No products found to analyze."

type Analyzer struct {
	Client *openai.Client
	Model  string
}

// Analyze asks the model to compare the given products. Failures come back as
// a readable string instead of an error; a bad analysis must never abort the
// run.
func (a *Analyzer) Analyze(products []model.Product) string {
	table := RenderProducts(products)
	if table == "" {
		return NoProductsMessage
	}

	resp, err := a.Client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: a.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt()},
				{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(promptTemplate, table)},
			},
			Temperature: 0.7,
			MaxTokens:   500,
		},
	)
	if err != nil {
		observability.AnalysisFailures.Inc()
		return fmt.Sprintf("AI analysis failed: %v", err)
	}

	return resp.Choices[0].Message.Content
}

// RenderProducts formats one line per product for the prompt.
func RenderProducts(products []model.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("- %s: %s | BTU: %s | Price: %s", p.Brand, p.Name, BtuString(p.Btu), p.Price))
	}
	return strings.Join(lines, "\n")
}

// BtuString renders an optional capacity for human-facing output.
func BtuString(btu *int) string {
	if btu == nil {
		return "unknown"
	}
	return strconv.Itoa(*btu)
}
