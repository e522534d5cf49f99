package services

import (
	"context"
	"log"
	"strings"
	"time"

	"haven/internal/models/db_models"
	"haven/internal/models/response_models"
	"haven/internal/templates"
	mem "haven/pkg/memcache"
	"haven/pkg/utils"
)

// How long an abandoned guided session survives before it expires.
const sessionTTL = 2 * time.Hour

type PromptServiceInterface interface {
	// StartSession asks the AI collaborator for questions seeded by the
	// user's free text and opens a guided session holding them.
	StartSession(ctx context.Context, userId string, seed string) (*response_models.GuidedSessionResponse, error)

	// RecordAnswer stores the answer for the active question and
	// advances the index. Empty answers are recorded, not rejected; the
	// flow never blocks on a non-empty answer.
	RecordAnswer(ctx context.Context, userId string, sessionId string, answer string) (*response_models.GuidedSessionResponse, error)

	// FinishSession builds the journal entry from the session and
	// persists it. The session is consumed whether or not every
	// question was answered, but survives a failed save so the user
	// can retry.
	FinishSession(ctx context.Context, userId string, sessionId string) (*db_models.JournalEntry, error)
}

type PromptService struct {
	aiClient   utils.QuestionClientInterface
	sessions   mem.SessionStore
	journalSvc JournalServiceInterface
}

func NewPromptService(
	aiClient utils.QuestionClientInterface,
	sessions mem.SessionStore,
	journalSvc JournalServiceInterface,
) PromptServiceInterface {
	return &PromptService{
		aiClient:   aiClient,
		sessions:   sessions,
		journalSvc: journalSvc,
	}
}

func (p *PromptService) StartSession(ctx context.Context, userId string, seed string) (*response_models.GuidedSessionResponse, error) {
	if strings.TrimSpace(seed) == "" {
		return nil, utils.ErrEmptySeedPrompt
	}

	raw, err := p.aiClient.GenerateJournalQuestions(ctx, seed)
	if err != nil {
		log.Printf("question generation failed: %v", err)
		return nil, utils.ErrAIGenerationFailed
	}

	questions := templates.ParseGeneratedQuestions(raw)
	if len(questions) == 0 {
		return nil, utils.ErrAIGenerationFailed
	}

	sessionId, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrAIGenerationFailed
	}

	session := &mem.GuidedSession{
		UserID:    userId,
		Seed:      seed,
		Questions: questions,
		Answers:   make([]string, len(questions)),
		Index:     0,
	}
	p.sessions.Set(sessionId, session, sessionTTL)

	return sessionResponse(sessionId, session), nil
}

func (p *PromptService) RecordAnswer(ctx context.Context, userId string, sessionId string, answer string) (*response_models.GuidedSessionResponse, error) {
	// The store mutates under its own lock so two concurrent answer
	// submissions for the same session cannot race past each other.
	session := p.sessions.Advance(sessionId, userId, answer, sessionTTL)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}

	return sessionResponse(sessionId, session), nil
}

func (p *PromptService) FinishSession(ctx context.Context, userId string, sessionId string) (*db_models.JournalEntry, error) {
	session := p.sessions.Consume(sessionId)
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	if session.UserID != userId {
		// Not the owner's call; the owner keeps their session.
		p.sessions.Set(sessionId, session, sessionTTL)
		return nil, utils.ErrSessionNotFound
	}

	answers := make(map[int]string, len(session.Answers))
	for i, a := range session.Answers {
		answers[i] = a
	}

	entry := templates.BuildAIGuided(session.Seed, session.Questions, answers, time.Now())
	if err := p.journalSvc.SaveEntry(ctx, userId, entry); err != nil {
		// Put the session back so the collected answers survive a
		// transient save failure and the user can retry.
		p.sessions.Set(sessionId, session, sessionTTL)
		return nil, err
	}
	return entry, nil
}

func sessionResponse(sessionId string, s *mem.GuidedSession) *response_models.GuidedSessionResponse {
	return &response_models.GuidedSessionResponse{
		SessionID: sessionId,
		Seed:      s.Seed,
		Questions: s.Questions,
		Index:     s.Index,
		Done:      s.Done(),
	}
}
