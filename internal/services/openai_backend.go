package services

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var ErrNoChoices = errors.New("generation returned no choices")

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAIBackend talks to the chat completions API, or any gateway that speaks it.
type OpenAIBackend struct {
	client openai.Client
	model  string
}

func NewOpenAIBackend(cfg OpenAIConfig) *OpenAIBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithMaxRetries(0),
	}
	if trimmed := strings.TrimSpace(cfg.BaseURL); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}

	return &OpenAIBackend{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (b *OpenAIBackend) Name() string {
	return "openai"
}

func (b *OpenAIBackend) Complete(ctx context.Context, system, user string) (string, error) {
	completion, err := b.client.Chat.Completions.New(ctx, b.params(system, user))
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrNoChoices
	}
	return completion.Choices[0].Message.Content, nil
}

func (b *OpenAIBackend) Stream(ctx context.Context, system, user string, onChunk func(string) error) (string, error) {
	stream := b.client.Chat.Completions.NewStreaming(ctx, b.params(system, user))
	defer stream.Close()

	var full strings.Builder
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		fragment := chunk.Choices[0].Delta.Content
		if fragment == "" {
			continue
		}
		full.WriteString(fragment)
		if err := onChunk(fragment); err != nil {
			return "", err
		}
	}
	if err := stream.Err(); err != nil {
		return "", err
	}
	return full.String(), nil
}

func (b *OpenAIBackend) params(system, user string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
}
