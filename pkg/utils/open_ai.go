package utils

import (
	"context"
	"fmt"
	openai "github.com/sashabaranov/go-openai"
	"strings"
)

// QuestionClientInterface generates journaling questions from a user's
// free-text seed. The raw response is newline-delimited, typically
// numbered 1-5; callers strip the numbering and accept whatever
// non-empty line count comes back.
type QuestionClientInterface interface {
	GenerateJournalQuestions(ctx context.Context, seed string) (string, error)
}

type OpenAIQuestionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIQuestionClient(apiKey, model string) QuestionClientInterface {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIQuestionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func journalSystemPrompt(seed string) string {
	return fmt.Sprintf(`Generate exactly 5 thoughtful journaling questions to help someone process their emotions.
The user said: "%s".
Create questions that:
1. Help explore the root of the feeling
2. Encourage self-compassion
3. Consider healthy coping strategies
4. Find meaning or lessons
5. Move toward resolution
Return ONLY the questions, numbered 1-5, with no additional text or commentary.`, seed)
}

func (c *OpenAIQuestionClient) GenerateJournalQuestions(ctx context.Context, seed string) (string, error) {
	if strings.TrimSpace(seed) == "" {
		return "", ErrEmptySeedPrompt
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: journalSystemPrompt(seed),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
