package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultOpenAIModel = "gpt-4o"

type OpenAI struct {
	client openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Model:    o.model,
	})
	if err != nil {
		slog.Error("openai error: chat completions failed", "error", err)
		return "", fmt.Errorf("openai generation failed: %w", err)
	}
	return Clean(res.Choices[0].Message.Content), nil
}

func (o *OpenAI) GenerateStream(ctx context.Context, prompt string, emit func(string) error) error {
	stream := o.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Model:    o.model,
	})
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if fragment := stripMarkup(chunk.Choices[0].Delta.Content); fragment != "" {
			if err := emit(fragment); err != nil {
				return err
			}
		}
	}
	if err := stream.Err(); err != nil {
		slog.Error("openai error: stream aborted", "error", err)
		return fmt.Errorf("openai stream failed: %w", err)
	}
	return nil
}
