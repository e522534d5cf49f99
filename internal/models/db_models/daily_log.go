package db_models

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is one day's activity metrics, one row per user per day
// (LogDate is truncated to midnight before persisting).
type DailyLog struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	LogDate time.Time `gorm:"index"`

	ExerciseMinutes    float64
	SleepHours         float64
	SunlightHours      float64
	MindfulnessMinutes float64
	Vitamins           []string `gorm:"serializer:json"`

	ProteinGrams float64
	CarbsGrams   float64
	FatsGrams    float64
	FiberGrams   float64
	WaterGlasses float64

	TasksCompleted int
	TotalTasks     int
}
