package request_models

type NutritionInput struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
	Fiber   float64 `json:"fiber"`
	Water   float64 `json:"water"`
}

// UpsertDailyLogRequest is today's in-progress metrics. Sending it again
// replaces the day's values rather than appending a second row.
type UpsertDailyLogRequest struct {
	Exercise       float64        `json:"exercise"`
	Sleep          float64        `json:"sleep"`
	Sunlight       float64        `json:"sunlight"`
	Mindfulness    float64        `json:"mindfulness"`
	Vitamins       []string       `json:"vitamins"`
	Nutrition      NutritionInput `json:"nutrition"`
	TasksCompleted int            `json:"tasksCompleted"`
	TotalTasks     int            `json:"totalTasks"`
}
