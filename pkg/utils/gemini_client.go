package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSessionFactory builds call-scoped sessions on Google's Gemini
// models. The underlying client is shared and long-lived; sessions are
// cheap per-call model handles.
type GeminiSessionFactory struct {
	client *genai.Client
	model  string
}

func NewGeminiSessionFactory(apiKey, model string) (*GeminiSessionFactory, error) {
	if model == "" {
		model = "gemini-1.5-flash" // free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSessionFactory{
		client: client,
		model:  model,
	}, nil
}

// Availability for a remote backend is binary: there is nothing to
// download on-device, so AIDownloadable never applies here.
func (f *GeminiSessionFactory) Availability(ctx context.Context) AIAvailability {
	if f.client == nil {
		return AINotAvailable
	}
	return AIAvailable
}

func (f *GeminiSessionFactory) NewSession(ctx context.Context, systemInstruction string) (AISession, error) {
	m := f.client.GenerativeModel(f.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	return &geminiSession{model: m}, nil
}

func (f *GeminiSessionFactory) Close() error {
	return f.client.Close()
}

type geminiSession struct {
	model *genai.GenerativeModel
}

func (s *geminiSession) Prompt(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Destroy releases the per-call handle. The remote API keeps no
// server-side session state, so dropping the model reference is enough.
func (s *geminiSession) Destroy() error {
	s.model = nil
	return nil
}
