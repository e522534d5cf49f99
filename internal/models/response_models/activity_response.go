package response_models

// Averages are arithmetic means across all saved days plus today's
// in-progress record. TaskCompletionRate is nil when no day has any
// tasks logged; the field is simply absent on the wire instead of NaN.
type Averages struct {
	AvgExercise            float64  `json:"avgExercise"`
	AvgSleep               float64  `json:"avgSleep"`
	AvgSunlight            float64  `json:"avgSunlight"`
	AvgProtein             float64  `json:"avgProtein"`
	AvgCarbs               float64  `json:"avgCarbs"`
	AvgFats                float64  `json:"avgFats"`
	AvgFiber               float64  `json:"avgFiber"`
	AvgWater               float64  `json:"avgWater"`
	TaskCompletionRate     *float64 `json:"taskCompletionRate,omitempty"`
	MindfulnessConsistency float64  `json:"mindfulnessConsistency"`
}

type ActivitySummaryResponse struct {
	Averages      Averages `json:"averages"`
	WellnessScore float64  `json:"wellnessScore"`
	DaysTracked   int      `json:"daysTracked"`
}
