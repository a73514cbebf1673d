package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Sandjune/resumebot/internal/ai"
	"github.com/Sandjune/resumebot/internal/logger"
	"github.com/Sandjune/resumebot/internal/prompt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel        = "gemini-2.5-flash"
	defaultTemperature  = 0.2
	defaultMaxLogLength = 200
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client behind the same completion
// contract as the OpenAI backend.
type Generator struct {
	models      contentGenerator
	model       string
	temperature float32
	maxLogLen   int
	logger      *zap.Logger
}

// NewGenerator creates a Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, temperature float32, maxLogLength int, log *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
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
		models:      client.Models,
		model:       model,
		temperature: temperature,
		maxLogLen:   maxLogLength,
		logger:      log,
	}, nil
}

// Complete sends the user directive with the system directive attached as a
// system instruction and returns the first textual response.
func (g *Generator) Complete(ctx context.Context, bundle prompt.Bundle) ai.Result {
	if g == nil || g.models == nil {
		return ai.Failure(ai.FailureClientInit, ai.ClientInitFailureMessage)
	}

	g.logger.Debug("gemini generate content request",
		zap.String("model", g.model),
		zap.Int("prompt_length", utf8.RuneCountInString(bundle.User)),
		zap.String("prompt_preview", logger.TruncateForLog(bundle.User, g.maxLogLen)),
	)

	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: bundle.System}}},
		Temperature:       &temperature,
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(bundle.User), config)
	if err != nil {
		g.logger.Error("gemini call failed", zap.String("model", g.model), zap.Error(err))
		return ai.Failure(ai.FailureTransport, ai.TransportFailureMessage)
	}

	output := collectText(resp)
	if output == "" {
		g.logger.Error("gemini returned empty response", zap.String("model", g.model))
		return ai.Failure(ai.FailureTransport, ai.TransportFailureMessage)
	}

	g.logger.Debug("gemini generate content response",
		zap.String("model", g.model),
		zap.Int("response_length", utf8.RuneCountInString(output)),
		zap.String("response_preview", logger.TruncateForLog(output, g.maxLogLen)),
	)

	return ai.Success(output)
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	return strings.TrimSpace(builder.String())
}

// Model returns the configured model identifier.
func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}
