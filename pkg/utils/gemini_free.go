package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiQuestionClient implements QuestionClientInterface using Google's
// Gemini models. Used as the fallback generator when no OpenAI key is
// configured (the free tier is good enough for short question lists).
type GeminiQuestionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiQuestionClient(apiKey, model string) (QuestionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiQuestionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiQuestionClient) GenerateJournalQuestions(ctx context.Context, seed string) (string, error) {
	if strings.TrimSpace(seed) == "" {
		return "", ErrEmptySeedPrompt
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(500)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(journalSystemPrompt(seed)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
