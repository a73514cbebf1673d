package openai

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Sandjune/resumebot/internal/ai"
	"github.com/Sandjune/resumebot/internal/logger"
	"github.com/Sandjune/resumebot/internal/prompt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	defaultModel        = openai.GPT4oMini
	defaultTemperature  = 0.2
	defaultMaxLogLength = 200
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator wraps the OpenAI chat-completions client. One blocking request
// per Complete call: no retry, no backoff, no streaming.
type Generator struct {
	chat        chatCompleter
	model       string
	temperature float32
	maxLogLen   int
	logger      *zap.Logger
}

// NewGenerator creates a Generator for the OpenAI API backend.
func NewGenerator(apiKey, model string, temperature float32, maxLogLength int, log *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	if temperature <= 0 {
		temperature = defaultTemperature
	}

	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Generator{
		chat:        openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
		maxLogLen:   maxLogLength,
		logger:      log,
	}, nil
}

// Complete sends the bundle as a two-message conversation and returns the
// first choice's content. Any service failure is logged and folded into a
// generic fallback; the causes (credential, billing, SDK, model name) are
// distinguished only in the prose guidance, not programmatically.
func (g *Generator) Complete(ctx context.Context, bundle prompt.Bundle) ai.Result {
	if g == nil || g.chat == nil {
		return ai.Failure(ai.FailureClientInit, ai.ClientInitFailureMessage)
	}

	g.logger.Debug("openai chat completion request",
		zap.String("model", g.model),
		zap.Int("prompt_length", utf8.RuneCountInString(bundle.User)),
		zap.String("prompt_preview", logger.TruncateForLog(bundle.User, g.maxLogLen)),
	)

	resp, err := g.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: bundle.System},
			{Role: openai.ChatMessageRoleUser, Content: bundle.User},
		},
	})
	if err != nil {
		g.logger.Error("openai call failed", zap.String("model", g.model), zap.Error(err))
		return ai.Failure(ai.FailureTransport, ai.TransportFailureMessage)
	}

	if len(resp.Choices) == 0 {
		g.logger.Error("openai returned no choices", zap.String("model", g.model))
		return ai.Failure(ai.FailureTransport, ai.TransportFailureMessage)
	}

	output := resp.Choices[0].Message.Content

	g.logger.Debug("openai chat completion response",
		zap.String("model", g.model),
		zap.Int("response_length", utf8.RuneCountInString(output)),
		zap.String("response_preview", logger.TruncateForLog(output, g.maxLogLen)),
	)

	return ai.Success(output)
}

// Model returns the configured model identifier.
func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}
