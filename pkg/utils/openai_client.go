package utils

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAISessionFactory is the alternative completion backend, selected
// with AI_PROVIDER=openai.
type OpenAISessionFactory struct {
	client *openai.Client
	model  string
}

func NewOpenAISessionFactory(apiKey, model string) *OpenAISessionFactory {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISessionFactory{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (f *OpenAISessionFactory) Availability(ctx context.Context) AIAvailability {
	if f.client == nil {
		return AINotAvailable
	}
	return AIAvailable
}

func (f *OpenAISessionFactory) NewSession(ctx context.Context, systemInstruction string) (AISession, error) {
	return &openAISession{
		client: f.client,
		model:  f.model,
		messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
		},
	}, nil
}

type openAISession struct {
	client   *openai.Client
	model    string
	messages []openai.ChatCompletionMessage
}

func (s *openAISession) Prompt(ctx context.Context, prompt string) (string, error) {
	messages := append(s.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no content generated")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *openAISession) Destroy() error {
	s.messages = nil
	return nil
}

// EmbeddingClientInterface produces vectors for POI relevance ranking.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey string) *OpenAIEmbeddingClient {
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  openai.SmallEmbedding3,
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
