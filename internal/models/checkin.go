package models

// Report is text produced by an earlier generation call, sent back for planning.
type Report struct {
	UserID string `json:"userId"`
	Report string `json:"report"`
}

// CheckIn carries last week's data for a client. Every field is forwarded
// to the generation backend untouched.
type CheckIn struct {
	UserID                     string `json:"userId"`
	MealPlanLastWeek           string `json:"mealPlanLastWeek"`
	AnalysisReportStart        string `json:"analysisReportStart"`
	BodyMeasurementsLastWeek   string `json:"bodyMeasurementsLastWeek"`
	DailyReportsLastWeek       string `json:"dailyReportsLastWeek"`
	ExercisesLogLastWeek       string `json:"exercisesLogLastWeek"`
	UserWorkoutDetailsLastWeek string `json:"userWorkoutDetailsLastWeek"`
}

type CheckInAdjustment struct {
	CheckInResponse    string
	AdjustPlanResponse string
}

type FirstReportRequest struct {
	UserID       string         `json:"userId"`
	Profile      map[string]any `json:"profile"`
	Measurements map[string]any `json:"measurements"`
}

type FirstReport struct {
	Report             string `json:"report"`
	BodyAnalysis       string `json:"body_analysis"`
	ClientInfoAnalysis string `json:"client_info_analysis"`
}
