package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"haven/internal/models/db_models"
	"haven/internal/models/request_models"
	"haven/internal/repositories"
	"haven/internal/templates"
	"haven/pkg/utils"
)

type JournalServiceInterface interface {
	ListEntries(ctx context.Context, userId string) ([]db_models.JournalEntry, error)
	GetEntry(ctx context.Context, entryId string, userId string) (*db_models.JournalEntry, error)
	CreateEntry(ctx context.Context, userId string, req request_models.CreateEntryRequest) (*db_models.JournalEntry, error)
	SaveEntry(ctx context.Context, userId string, entry *db_models.JournalEntry) error
	DeleteEntry(ctx context.Context, entryId string, userId string) error
}

type JournalService struct {
	journalRepo repositories.JournalRepository
	accountRepo repositories.AccountRepository
}

func NewJournalService(
	journalRepo repositories.JournalRepository,
	accountRepo repositories.AccountRepository,
) JournalServiceInterface {
	return &JournalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// ListEntries returns the user's entries, newest first. The account's
// journal flag is consulted first: a user who has never journaled gets
// an empty list without a query against the entries table.
func (s *JournalService) ListEntries(ctx context.Context, userId string) ([]db_models.JournalEntry, error) {
	account, err := s.accountRepo.FindById(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if !account.Journal {
		return []db_models.JournalEntry{}, nil
	}

	entries, err := s.journalRepo.ListByUser(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

// GetEntry returns one entry for the detail view. Someone else's entry
// is indistinguishable from a missing one.
func (s *JournalService) GetEntry(ctx context.Context, entryId string, userId string) (*db_models.JournalEntry, error) {
	entry, err := s.journalRepo.GetOwned(ctx, entryId, userId)
	if err != nil {
		if err == utils.ErrEntryNotFound {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	return entry, nil
}

// CreateEntry builds and persists an entry from a free-write or guided
// template flow. The owning user is stamped here, never by callers.
func (s *JournalService) CreateEntry(ctx context.Context, userId string, req request_models.CreateEntryRequest) (*db_models.JournalEntry, error) {
	at, ok := utils.ParseEntryDate(req.Date)
	if !ok {
		at = time.Now()
	}

	info, known := templates.Resolve(req.Template)
	unstructured := info.Type == db_models.EntryTypeBlank || info.Type == db_models.EntryTypeTodo ||
		info.Type == db_models.EntryTypeVoice || info.Type == db_models.EntryTypeCamera

	var entry *db_models.JournalEntry
	switch {
	case known && unstructured:
		if strings.TrimSpace(req.Text) == "" {
			return nil, utils.ErrEmptyEntry
		}
		entry = templates.BuildFreeWrite(req.Text, at)
		entry.Type = info.Type
		entry.Template = info.Template
		entry.TemplateID = info.TemplateID
	case !known && strings.TrimSpace(req.Text) != "":
		log.Printf("unknown journal template %q, saving as free write", req.Template)
		entry = templates.BuildFreeWrite(req.Text, at)
	default:
		entry = templates.BuildGuided(req.Template, req.Answers, at)
		// An unknown template falls back to free write; with nothing
		// usable in the answers there is nothing to save.
		if !entry.Structured() && strings.TrimSpace(entry.Body) == "" {
			return nil, utils.ErrEmptyEntry
		}
	}

	if err := s.SaveEntry(ctx, userId, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SaveEntry persists an already-built entry and flips the account's
// journal first-entry flag, mirroring the store-side effect the mobile
// client relies on before listing.
func (s *JournalService) SaveEntry(ctx context.Context, userId string, entry *db_models.JournalEntry) error {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return utils.ErrAccountNotFound
	}
	entry.UserID = userUUID

	if err := s.journalRepo.Insert(ctx, entry); err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.accountRepo.SetFeatureFlag(ctx, userId, "journal"); err != nil {
		// The entry is saved; a failed flag flip only costs an extra
		// list query next time.
		log.Printf("failed to set journal flag for user %s: %v", userId, err)
	}
	return nil
}

// DeleteEntry removes one entry after verifying ownership. Local list
// state on the client is only mutated after this succeeds.
func (s *JournalService) DeleteEntry(ctx context.Context, entryId string, userId string) error {
	err := s.journalRepo.DeleteOwned(ctx, entryId, userId)
	if err != nil {
		if err == utils.ErrEntryNotFound {
			return err
		}
		return utils.ErrDatabaseError
	}
	return nil
}
