package templates

import (
	"log"
	"regexp"
	"strings"
	"time"

	"haven/internal/models/db_models"
)

// BuildFreeWrite assembles an unstructured entry from raw text.
func BuildFreeWrite(text string, at time.Time) *db_models.JournalEntry {
	return &db_models.JournalEntry{
		EntryDate:  at,
		Type:       freeWriteIdentity.Type,
		Template:   freeWriteIdentity.Template,
		TemplateID: freeWriteIdentity.TemplateID,
		Body:       text,
	}
}

// BuildGuided assembles a structured entry from a completed template
// flow. Content is the ordered zip of the template's prompts and the
// provided answers; a missing answer becomes an empty string, so the
// pair count always equals the prompt count. An unknown template name
// falls back to the free-write identity (answers joined as plain text)
// and logs the miss.
func BuildGuided(name string, answers map[int]string, at time.Time) *db_models.JournalEntry {
	info, ok := Resolve(name)
	if !ok {
		log.Printf("unknown journal template %q, falling back to free write", name)
		return BuildFreeWrite(joinAnswers(answers), at)
	}

	promptList, _ := Prompts(name)
	return &db_models.JournalEntry{
		EntryDate:  at,
		Type:       info.Type,
		Template:   info.Template,
		TemplateID: info.TemplateID,
		Answers:    zipAnswers(promptList, answers),
	}
}

// BuildAIGuided assembles an entry from an AI-guided flow: the seed the
// user typed, the externally generated question list, and the answers
// collected one question at a time. The builder never generates
// questions itself.
func BuildAIGuided(seed string, questions []string, answers map[int]string, at time.Time) *db_models.JournalEntry {
	info, _ := Resolve(AIPrompt)
	return &db_models.JournalEntry{
		EntryDate:  at,
		Type:       info.Type,
		Template:   info.Template,
		TemplateID: info.TemplateID,
		Question:   seed,
		Answers:    zipAnswers(questions, answers),
	}
}

func zipAnswers(questions []string, answers map[int]string) db_models.QAList {
	pairs := make(db_models.QAList, 0, len(questions))
	for i, q := range questions {
		pairs = append(pairs, db_models.QAPair{
			ID:       i,
			Question: q,
			Answer:   answers[i],
		})
	}
	return pairs
}

func joinAnswers(answers map[int]string) string {
	max := -1
	for i := range answers {
		if i > max {
			max = i
		}
	}
	var parts []string
	for i := 0; i <= max; i++ {
		if a := strings.TrimSpace(answers[i]); a != "" {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, "\n\n")
}

var questionNumbering = regexp.MustCompile(`^\d+\.\s*`)

// ParseGeneratedQuestions splits the AI collaborator's newline-delimited
// response into a question list, stripping leading "1. "-style
// numbering. No exact count is enforced; whatever non-empty lines come
// back are accepted.
func ParseGeneratedQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, questionNumbering.ReplaceAllString(line, ""))
	}
	return questions
}
