package services

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/wellforge/masterclass-backend/internal/logger"
)

// AIClient is the single seam to the model provider. Pod orchestration only
// ever needs one system prompt + one user turn and a plain-text reply.
type AIClient interface {
	GenerateReply(ctx context.Context, system string, userPrompt string) (string, error)
	Model() string
}

type anthropicClient struct {
	log       *logger.Logger
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func NewAnthropicClient(log *logger.Logger) (AIClient, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing ANTHROPIC_API_KEY")
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = string(anthropic.ModelClaude4Sonnet20250514)
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &anthropicClient{
		log:       log.With("service", "AnthropicClient"),
		client:    &client,
		model:     anthropic.Model(model),
		maxTokens: 1024,
	}, nil
}

func (c *anthropicClient) Model() string {
	return string(c.model)
}

func (c *anthropicClient) GenerateReply(ctx context.Context, system string, userPrompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages.create: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			text += b.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("anthropic response had no text content")
	}
	return text, nil
}
