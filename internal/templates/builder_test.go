package templates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"haven/internal/models/db_models"
	"haven/internal/templates"
)

func TestBuildFreeWrite(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	entry := templates.BuildFreeWrite("a long day", at)

	assert.Equal(t, db_models.EntryTypeBlank, entry.Type)
	assert.Equal(t, "Free Writing", entry.Template)
	assert.Equal(t, 1, entry.TemplateID)
	assert.Equal(t, "a long day", entry.Body)
	assert.Nil(t, entry.Answers)
	assert.Equal(t, at, entry.EntryDate)
	assert.False(t, entry.Structured())
}

func TestBuildGuidedZipsPromptsAndAnswers(t *testing.T) {
	answers := map[int]string{
		0: "slept well",
		2: "a quiet walk",
	}
	entry := templates.BuildGuided(templates.Morning, answers, time.Now())

	prompts, _ := templates.Prompts(templates.Morning)
	assert.Len(t, entry.Answers, len(prompts))
	assert.True(t, entry.Structured())

	assert.Equal(t, "slept well", entry.Answers[0].Answer)
	// Missing answers become empty strings, never omitted.
	assert.Equal(t, "", entry.Answers[1].Answer)
	assert.Equal(t, "a quiet walk", entry.Answers[2].Answer)

	for i, pair := range entry.Answers {
		assert.Equal(t, i, pair.ID)
		assert.Equal(t, prompts[i], pair.Question)
	}
}

func TestBuildGuidedContentLengthMatchesPromptsForEveryTemplate(t *testing.T) {
	for _, name := range templates.Names() {
		info, _ := templates.Resolve(name)
		switch info.Type {
		case db_models.EntryTypeBlank, db_models.EntryTypeTodo,
			db_models.EntryTypeVoice, db_models.EntryTypeCamera:
			continue
		}

		entry := templates.BuildGuided(name, map[int]string{0: "x"}, time.Now())
		prompts, _ := templates.Prompts(name)
		assert.Len(t, entry.Answers, len(prompts), name)
	}
}

func TestBuildGuidedUnknownTemplateFallsBackToFreeWrite(t *testing.T) {
	entry := templates.BuildGuided("not-a-real-template", map[int]string{0: "first", 1: "second"}, time.Now())

	assert.Equal(t, db_models.EntryTypeBlank, entry.Type)
	assert.Nil(t, entry.Answers)
	assert.Equal(t, "first\n\nsecond", entry.Body)
}

func TestBuildAIGuided(t *testing.T) {
	questions := []string{
		"What is causing stress?",
		"How does it feel in your body?",
	}
	entry := templates.BuildAIGuided("I am stressed...", questions, map[int]string{0: "deadlines"}, time.Now())

	assert.Equal(t, db_models.EntryTypeAIPrompt, entry.Type)
	assert.Equal(t, "AI Guided Journal", entry.Template)
	assert.Equal(t, 0, entry.TemplateID)
	assert.Equal(t, "I am stressed...", entry.Question)
	assert.True(t, entry.Structured())
	assert.Len(t, entry.Answers, 2)
	assert.Equal(t, "deadlines", entry.Answers[0].Answer)
	assert.Equal(t, "", entry.Answers[1].Answer)
}

func TestParseGeneratedQuestionsStripsNumbering(t *testing.T) {
	raw := "1. What is causing stress?\n2. How does it feel in your body?\n\n3.Where do you notice it first?"
	questions := templates.ParseGeneratedQuestions(raw)

	assert.Equal(t, []string{
		"What is causing stress?",
		"How does it feel in your body?",
		"Where do you notice it first?",
	}, questions)
}

func TestParseGeneratedQuestionsAcceptsAnyCount(t *testing.T) {
	assert.Len(t, templates.ParseGeneratedQuestions("just one line, no numbering"), 1)
	assert.Empty(t, templates.ParseGeneratedQuestions("\n\n  \n"))
}
