package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"goose-quotes/internal/config"
	"goose-quotes/internal/shared/utils"
)

var (
	ErrNotConfigured   = errors.New("ai: text generation is not configured")
	ErrEmptyCompletion = errors.New("ai: completion returned no text")
)

// CompletionOptions are the sampling settings of one completion
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int64
}

// Completer turns a system and user prompt into generated text
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompletionOptions) (string, error)
}

// Client calls an OpenAI compatible chat-completions endpoint
type Client struct {
	sdk     openai.Client
	model   string
	timeout time.Duration
}

var _ Completer = (*Client)(nil)

// NewClient creates a client from cfg.
// Retries are disabled: a failed call surfaces to the caller as is.
func NewClient(cfg config.AIConfig) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithMaxRetries(0),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}

	return &Client{
		sdk:     openai.NewClient(opts...),
		model:   strings.TrimSpace(cfg.Model),
		timeout: cfg.Timeout,
	}
}

// Complete sends both prompts, dedented, and returns the first choice.
// The call is bounded by the client timeout on top of ctx.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, opts CompletionOptions) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(utils.Dedent(systemPrompt)),
			openai.UserMessage(utils.Dedent(userPrompt)),
		},
		Temperature: openai.Float(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(opts.MaxTokens)
	}

	resp, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("ai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
