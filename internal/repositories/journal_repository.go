package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"haven/internal/models/db_models"
	"haven/pkg/utils"
)

type JournalRepository interface {
	ListByUser(ctx context.Context, userId string) ([]db_models.JournalEntry, error)
	Insert(ctx context.Context, entry *db_models.JournalEntry) error
	GetOwned(ctx context.Context, entryId string, userId string) (*db_models.JournalEntry, error)

	// DeleteOwned removes the entry only when both the id and the owning
	// user match; a mismatch on either surfaces as ErrEntryNotFound so a
	// caller cannot distinguish someone else's entry from a missing one.
	DeleteOwned(ctx context.Context, entryId string, userId string) error
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) ListByUser(ctx context.Context, userId string) ([]db_models.JournalEntry, error) {

	var entries []db_models.JournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("entry_date DESC").
		Find(&entries).Error

	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) Insert(ctx context.Context, entry *db_models.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) GetOwned(ctx context.Context, entryId string, userId string) (*db_models.JournalEntry, error) {
	entryUUID, err := uuid.Parse(entryId)
	if err != nil {
		return nil, utils.ErrEntryNotFound
	}

	var entry db_models.JournalEntry
	err = r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryUUID, userId).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrEntryNotFound
		}
		return nil, err
	}

	return &entry, nil
}

func (r *journalRepository) DeleteOwned(ctx context.Context, entryId string, userId string) error {
	entryUUID, err := uuid.Parse(entryId)
	if err != nil {
		return utils.ErrEntryNotFound
	}

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryUUID, userId).
		Delete(&db_models.JournalEntry{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrEntryNotFound
	}
	return nil
}
