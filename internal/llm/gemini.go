package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-pro"

type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("could not create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{client: client, model: client.GenerativeModel(model)}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.Error("gemini error: generate content failed", "error", err)
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return Clean(responseText(resp)), nil
}

func (g *Gemini) GenerateStream(ctx context.Context, prompt string, emit func(string) error) error {
	it := g.model.GenerateContentStream(ctx, genai.Text(prompt))
	for {
		resp, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			slog.Error("gemini error: stream aborted", "error", err)
			return fmt.Errorf("gemini stream failed: %w", err)
		}
		if fragment := stripMarkup(responseText(resp)); fragment != "" {
			if err := emit(fragment); err != nil {
				return err
			}
		}
	}
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
