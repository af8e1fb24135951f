package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/aidyn-m/hf-gateway/internal/config"
)

// TextModel produces a textual continuation for a prompt.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder turns text into a fixed-length vector.
type Embedder interface {
	Embedding(ctx context.Context, text string) ([]float32, error)
}

// LLMClient talks to an OpenAI-compatible endpoint for generation and
// embeddings. Constructed once at startup and shared by every request.
type LLMClient struct {
	client      *openai.Client
	chatName    string
	embedName   string
	temperature float32
}

func NewLLMClient(cfg *config.Config) *LLMClient {
	key := cfg.APIKey
	if key == "" {
		key = "not-needed"
	}
	oaiCfg := openai.DefaultConfig(key)
	oaiCfg.BaseURL = cfg.LLMBaseURL
	client := openai.NewClientWithConfig(oaiCfg)

	return &LLMClient{
		client:      client,
		chatName:    cfg.ChatModel,
		embedName:   cfg.EmbedModel,
		temperature: cfg.Temperature,
	}
}

// Generate sends the prompt as a single user message and returns the
// model's reply.
func (l *LLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := l.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: l.chatName,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: l.temperature,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Embedding returns the vector for a single text.
func (l *LLMClient) Embedding(ctx context.Context, text string) ([]float32, error) {
	resp, err := l.client.CreateEmbeddings(
		ctx,
		openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(l.embedName),
			Input: []string{text},
		},
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no data")
	}
	return resp.Data[0].Embedding, nil
}

// ListModels returns the models the endpoint advertises.
func (l *LLMClient) ListModels(ctx context.Context) ([]openai.Model, error) {
	resp, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Models, nil
}
