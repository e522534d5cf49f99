package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"haven/pkg/utils"
)

// BaseModel is the common column set for Account, JournalEntry and
// DailyLog: a server-assigned uuid key, unix-second timestamps and a
// soft-delete marker. The mobile clients compare timestamps as plain
// integers, so int64 seconds rather than time.Time.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := utils.NowUnixSeconds()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = utils.NowUnixSeconds()
	return nil
}
