package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"haven/internal/models/db_models"
	"haven/internal/services"
)

func fullDay() db_models.DailyLog {
	return db_models.DailyLog{
		ExerciseMinutes:    30,
		SleepHours:         7,
		SunlightHours:      1,
		MindfulnessMinutes: 10,
		Vitamins:           []string{"D"},
		ProteinGrams:       120,
		CarbsGrams:         200,
		FatsGrams:          50,
		FiberGrams:         25,
		WaterGlasses:       6,
		TasksCompleted:     4,
		TotalTasks:         4,
	}
}

func TestAveragesSingleRecordEqualsItself(t *testing.T) {
	day := fullDay()
	avg := services.ComputeAverages([]db_models.DailyLog{day})

	assert.Equal(t, day.ExerciseMinutes, avg.AvgExercise)
	assert.Equal(t, day.SleepHours, avg.AvgSleep)
	assert.Equal(t, day.SunlightHours, avg.AvgSunlight)
	assert.Equal(t, day.ProteinGrams, avg.AvgProtein)
	assert.Equal(t, day.CarbsGrams, avg.AvgCarbs)
	assert.Equal(t, day.FatsGrams, avg.AvgFats)
	assert.Equal(t, day.FiberGrams, avg.AvgFiber)
	assert.Equal(t, day.WaterGlasses, avg.AvgWater)
	if assert.NotNil(t, avg.TaskCompletionRate) {
		assert.Equal(t, 100.0, *avg.TaskCompletionRate)
	}
	assert.Equal(t, 100.0, avg.MindfulnessConsistency)
}

func TestAveragesAcrossDays(t *testing.T) {
	a := fullDay()
	b := db_models.DailyLog{SleepHours: 5, MindfulnessMinutes: 5, TasksCompleted: 1, TotalTasks: 4}
	avg := services.ComputeAverages([]db_models.DailyLog{a, b})

	assert.Equal(t, 6.0, avg.AvgSleep)
	assert.Equal(t, 15.0, avg.AvgExercise)
	// 4 of 8 tasks done across both days.
	if assert.NotNil(t, avg.TaskCompletionRate) {
		assert.InDelta(t, 62.5, *avg.TaskCompletionRate, 0.001)
	}
	// Only one of two days reached the mindfulness threshold.
	assert.Equal(t, 50.0, avg.MindfulnessConsistency)
}

func TestAveragesNoTaskDataHasNoRate(t *testing.T) {
	avg := services.ComputeAverages([]db_models.DailyLog{
		{SleepHours: 8},
		{SleepHours: 6},
	})
	assert.Nil(t, avg.TaskCompletionRate)
}

func TestAveragesEmptyInput(t *testing.T) {
	avg := services.ComputeAverages(nil)
	assert.Equal(t, 0.0, avg.AvgSleep)
	assert.Nil(t, avg.TaskCompletionRate)
}

func TestWellnessScorePerfectDayIsExactly100(t *testing.T) {
	day := fullDay()
	assert.Equal(t, 100.0, services.WellnessScore(&day))
}

func TestWellnessScoreZeroDayIsExactly0(t *testing.T) {
	day := db_models.DailyLog{}
	assert.Equal(t, 0.0, services.WellnessScore(&day))
}

func TestWellnessScoreBoundariesAreInclusive(t *testing.T) {
	day := db_models.DailyLog{ExerciseMinutes: 29.9, SleepHours: 6.9, SunlightHours: 0.9, MindfulnessMinutes: 9.9}
	assert.Equal(t, 0.0, services.WellnessScore(&day))

	day = db_models.DailyLog{ExerciseMinutes: 30, SleepHours: 7, SunlightHours: 1, MindfulnessMinutes: 10}
	assert.Equal(t, 70.0, services.WellnessScore(&day))
}

func TestWellnessScoreTodoPointsAreProportional(t *testing.T) {
	day := db_models.DailyLog{TasksCompleted: 1, TotalTasks: 4}
	assert.Equal(t, 5.0, services.WellnessScore(&day))

	day = db_models.DailyLog{TasksCompleted: 1, TotalTasks: 3}
	// 20/3 rounded to one decimal.
	assert.Equal(t, 6.7, services.WellnessScore(&day))
}

func TestWellnessScoreNoTodosScoresNoTodoPoints(t *testing.T) {
	day := fullDay()
	day.TasksCompleted = 0
	day.TotalTasks = 0
	assert.Equal(t, 80.0, services.WellnessScore(&day))
}
