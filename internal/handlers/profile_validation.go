package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saeid-a/CoachAIBack/internal/models"
)

func validateProfileRequest(req models.Profile) string {
	if strings.TrimSpace(req.UserID) == "" {
		return "userId is required"
	}
	return ""
}

func validateReportRequest(req reportRequest) string {
	if req.UserID == nil || strings.TrimSpace(*req.UserID) == "" {
		return "userId is required"
	}
	if req.Report == nil {
		return "report is required"
	}
	return ""
}

func validateCheckInRequest(req checkInRequest) string {
	if req.UserID == nil || strings.TrimSpace(*req.UserID) == "" {
		return "userId is required"
	}

	required := []struct {
		name  string
		value *string
	}{
		{"mealPlanLastWeek", req.MealPlanLastWeek},
		{"analysisReportStart", req.AnalysisReportStart},
		{"bodyMeasurementsLastWeek", req.BodyMeasurementsLastWeek},
		{"dailyReportsLastWeek", req.DailyReportsLastWeek},
		{"exercisesLogLastWeek", req.ExercisesLogLastWeek},
		{"userWorkoutDetailsLastWeek", req.UserWorkoutDetailsLastWeek},
	}
	for _, field := range required {
		if field.value == nil {
			return field.name + " is required"
		}
	}
	return ""
}

func validateFirstReportRequest(req models.FirstReportRequest) string {
	if strings.TrimSpace(req.UserID) == "" {
		return "userId is required"
	}
	if req.Profile == nil {
		return "profile is required"
	}
	if req.Measurements == nil {
		return "measurements is required"
	}
	return ""
}

// describeBodyError turns a decoding failure into a client-facing message.
func describeBodyError(err error) string {
	if errors.Is(err, models.ErrInvalidText) {
		return models.ErrInvalidText.Error()
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return "request body must be a JSON object"
		}
		return fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String())
	}
	return "Invalid request body"
}
