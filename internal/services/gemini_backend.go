package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GeminiConfig struct {
	APIKey string
	Model  string
}

type GeminiBackend struct {
	client *genai.Client
	model  string
}

func NewGeminiBackend(ctx context.Context, cfg GeminiConfig) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(strings.TrimSpace(cfg.APIKey)))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-1.5-flash"
	}

	return &GeminiBackend{
		client: client,
		model:  model,
	}, nil
}

func (b *GeminiBackend) Name() string {
	return "gemini"
}

func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

func (b *GeminiBackend) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := b.generativeModel(system).GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", err
	}
	text := responseText(resp)
	if text == "" && (resp == nil || len(resp.Candidates) == 0) {
		return "", ErrNoChoices
	}
	return text, nil
}

func (b *GeminiBackend) Stream(ctx context.Context, system, user string, onChunk func(string) error) (string, error) {
	iter := b.generativeModel(system).GenerateContentStream(ctx, genai.Text(user))

	var full strings.Builder
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return "", err
		}

		fragment := responseText(resp)
		if fragment == "" {
			continue
		}
		full.WriteString(fragment)
		if err := onChunk(fragment); err != nil {
			return "", err
		}
	}
	return full.String(), nil
}

func (b *GeminiBackend) generativeModel(system string) *genai.GenerativeModel {
	model := b.client.GenerativeModel(b.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}
	return model
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
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
