package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	VariationDelimiter = "---"

	generatorSystemInstruction = "You are a LinkedIn ghostwriter. Write posts that read naturally on LinkedIn: " +
		"a strong opening line, short paragraphs, and a clear takeaway. " +
		"Return only the post texts with no numbering, headings or commentary."
)

// TextGenerator produces raw model output for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Close() {
	if err := g.client.Close(); err != nil {
		zap.L().Warn("error closing genai client", zap.Error(err))
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(generatorSystemInstruction)},
	}

	temp := float32(0.8)
	maxTokens := int32(4096)
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: &maxTokens,
		Temperature:     &temp,
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation request failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return out.String(), nil
}

// SplitVariations cuts model output on the delimiter, trims each piece,
// drops empties and keeps at most max pieces.
func SplitVariations(output string, max int) []string {
	variations := []string{}
	for _, part := range strings.Split(output, VariationDelimiter) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		variations = append(variations, part)
		if max > 0 && len(variations) == max {
			break
		}
	}
	return variations
}

// DisabledGenerator stands in when no model is configured.
type DisabledGenerator struct{}

func (DisabledGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("content generation is not configured")
}
