package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"haven/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	SetFeatureFlag(ctx context.Context, userId string, feature string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// SetFeatureFlag flips the account's first-entry flag for a feature
// area ("journal", "therapy", "quiz", "activity"). Idempotent.
func (a *accountRepository) SetFeatureFlag(ctx context.Context, userId string, feature string) error {
	switch feature {
	case "journal", "therapy", "quiz", "activity":
	default:
		return errors.New("unknown feature flag: " + feature)
	}

	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", userId).
		Update(feature, true).Error
}
