// Package llm wraps the OpenAI API behind the Generator boundary the
// orchestrator depends on.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"outreach/internal/config"
	"outreach/internal/models"

	"github.com/sashabaranov/go-openai"
)

// Generator produces the raw model output for one prompt pair. The returned
// text is the fully drained response; callers never see partial streams.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, cfg models.GenerationConfig) (string, error)
}

// Unavailable is a Generator used when no API key is configured. Every call
// fails with the configuration error so batch results carry the real cause.
type Unavailable struct {
	Err error
}

func (u Unavailable) Generate(context.Context, string, string, models.GenerationConfig) (string, error) {
	return "", u.Err
}

// Client is the OpenAI-backed Generator.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

// NewClient builds the OpenAI client from configuration.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not configured")
	}
	return &Client{
		api:         openai.NewClient(cfg.OpenAIKey),
		model:       cfg.OpenAIModel,
		temperature: cfg.Temperature,
		timeout:     time.Duration(cfg.OpenAITimeout) * time.Second,
	}, nil
}

// Generate streams a chat completion and concatenates the deltas until
// end-of-stream. The stream is always drained fully before the text is
// returned, so JSON extraction never runs on partial output.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string, cfg models.GenerationConfig) (string, error) {
	model := c.model
	if cfg.Model != "" {
		model = cfg.Model
	}
	temperature := c.temperature
	if cfg.Temperature > 0 {
		temperature = cfg.Temperature
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Stream: true,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	defer stream.Close()

	var sb strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("OpenAI stream error: %w", err)
		}
		if len(resp.Choices) > 0 {
			sb.WriteString(resp.Choices[0].Delta.Content)
		}
	}
	return sb.String(), nil
}
