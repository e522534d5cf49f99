package services

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"haven/internal/models/db_models"
	"haven/internal/models/request_models"
	"haven/internal/models/response_models"
	"haven/internal/repositories"
	"haven/pkg/utils"
)

// Mindfulness minutes a day must reach to count toward the consistency
// percentage.
const mindfulnessThreshold = 10

type ActivityServiceInterface interface {
	UpsertToday(ctx context.Context, userId string, req request_models.UpsertDailyLogRequest) (*db_models.DailyLog, error)
	Summary(ctx context.Context, userId string) (*response_models.ActivitySummaryResponse, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	accountRepo  repositories.AccountRepository
}

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	accountRepo repositories.AccountRepository,
) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		accountRepo:  accountRepo,
	}
}

func (s *ActivityService) UpsertToday(ctx context.Context, userId string, req request_models.UpsertDailyLogRequest) (*db_models.DailyLog, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	logEntry := &db_models.DailyLog{
		UserID:             userUUID,
		LogDate:            time.Now(),
		ExerciseMinutes:    req.Exercise,
		SleepHours:         req.Sleep,
		SunlightHours:      req.Sunlight,
		MindfulnessMinutes: req.Mindfulness,
		Vitamins:           req.Vitamins,
		ProteinGrams:       req.Nutrition.Protein,
		CarbsGrams:         req.Nutrition.Carbs,
		FatsGrams:          req.Nutrition.Fats,
		FiberGrams:         req.Nutrition.Fiber,
		WaterGlasses:       req.Nutrition.Water,
		TasksCompleted:     req.TasksCompleted,
		TotalTasks:         req.TotalTasks,
	}

	if err := s.activityRepo.UpsertForDay(ctx, logEntry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := s.accountRepo.SetFeatureFlag(ctx, userId, "activity"); err != nil {
		// Best effort, same as the journal flag.
		log.Printf("failed to set activity flag for user %s: %v", userId, err)
	}

	return logEntry, nil
}

// Summary recomputes averages and today's wellness score on demand;
// nothing is cached.
func (s *ActivityService) Summary(ctx context.Context, userId string) (*response_models.ActivitySummaryResponse, error) {
	now := time.Now()

	history, err := s.activityRepo.ListHistory(ctx, userId, now)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	today, err := s.activityRepo.GetForDay(ctx, userId, now)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	records := history
	if today != nil {
		records = append(records, *today)
	}

	summary := &response_models.ActivitySummaryResponse{
		Averages:    ComputeAverages(records),
		DaysTracked: len(records),
	}
	if today != nil {
		summary.WellnessScore = WellnessScore(today)
	}
	return summary, nil
}

// ComputeAverages is the arithmetic mean of each metric across the
// given records (saved days plus today's in-progress record). Task
// completion rate is nil when no record has any tasks, instead of the
// NaN a raw division would give.
func ComputeAverages(records []db_models.DailyLog) response_models.Averages {
	count := len(records)
	if count == 0 {
		return response_models.Averages{}
	}

	var totals struct {
		exercise, sleep, sunlight          float64
		protein, carbs, fats, fiber, water float64
		mindfulnessDays                    int
		tasksCompleted, totalTasks         int
	}

	for _, r := range records {
		totals.exercise += r.ExerciseMinutes
		totals.sleep += r.SleepHours
		totals.sunlight += r.SunlightHours
		totals.protein += r.ProteinGrams
		totals.carbs += r.CarbsGrams
		totals.fats += r.FatsGrams
		totals.fiber += r.FiberGrams
		totals.water += r.WaterGlasses
		if r.MindfulnessMinutes >= mindfulnessThreshold {
			totals.mindfulnessDays++
		}
		totals.tasksCompleted += r.TasksCompleted
		totals.totalTasks += r.TotalTasks
	}

	n := float64(count)
	averages := response_models.Averages{
		AvgExercise:            totals.exercise / n,
		AvgSleep:               totals.sleep / n,
		AvgSunlight:            totals.sunlight / n,
		AvgProtein:             totals.protein / n,
		AvgCarbs:               totals.carbs / n,
		AvgFats:                totals.fats / n,
		AvgFiber:               totals.fiber / n,
		AvgWater:               totals.water / n,
		MindfulnessConsistency: float64(totals.mindfulnessDays) / n * 100,
	}

	if totals.totalTasks > 0 {
		rate := float64(totals.tasksCompleted) / float64(totals.totalTasks) * 100
		averages.TaskCompletionRate = &rate
	}

	return averages
}

// WellnessScore is the additive point system for a single day:
// +20 exercise >= 30 min, +20 sleep >= 7 h, +10 sunlight >= 1 h,
// +10 any vitamin logged, +20 mindfulness >= 10 min, plus up to +20
// proportional to today's completed tasks. Clamped to 100, one decimal
// place. No history dependency.
func WellnessScore(today *db_models.DailyLog) float64 {
	var score float64
	if today.ExerciseMinutes >= 30 {
		score += 20
	}
	if today.SleepHours >= 7 {
		score += 20
	}
	if today.SunlightHours >= 1 {
		score += 10
	}
	if len(today.Vitamins) > 0 {
		score += 10
	}
	if today.MindfulnessMinutes >= mindfulnessThreshold {
		score += 20
	}
	if today.TotalTasks > 0 {
		score += float64(today.TasksCompleted) / float64(today.TotalTasks) * 20
	}

	score = math.Min(100, score)
	return math.Round(score*10) / 10
}
