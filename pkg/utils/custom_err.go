package utils

import "errors"

var (
	ErrEntryNotFound      = errors.New("journal entry not found")
	ErrEmptyEntry         = errors.New("entry content is empty")
	ErrEmptySeedPrompt    = errors.New("seed prompt is empty")
	ErrSessionNotFound    = errors.New("guided session not found or expired")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDatabaseError      = errors.New("database error")
	ErrAIGenerationFailed = errors.New("failed to generate journal questions")
)
