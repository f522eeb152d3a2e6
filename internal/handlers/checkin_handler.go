package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/CoachAIBack/internal/models"
)

type checkInService interface {
	CheckIn(ctx context.Context, checkIn models.CheckIn) (string, error)
	AdjustPlan(ctx context.Context, checkIn models.CheckIn) (string, error)
	CheckInAndAdjust(ctx context.Context, checkIn models.CheckIn) (*models.CheckInAdjustment, error)
}

type CheckInHandler struct {
	service checkInService
}

func NewCheckInHandler(service checkInService) *CheckInHandler {
	return &CheckInHandler{service: service}
}

type checkInRequest struct {
	UserID                     *string `json:"userId"`
	MealPlanLastWeek           *string `json:"mealPlanLastWeek"`
	AnalysisReportStart        *string `json:"analysisReportStart"`
	BodyMeasurementsLastWeek   *string `json:"bodyMeasurementsLastWeek"`
	DailyReportsLastWeek       *string `json:"dailyReportsLastWeek"`
	ExercisesLogLastWeek       *string `json:"exercisesLogLastWeek"`
	UserWorkoutDetailsLastWeek *string `json:"userWorkoutDetailsLastWeek"`
}

func (h *CheckInHandler) CheckIn(c *fiber.Ctx) error {
	checkIn, err := parseCheckIn(c)
	if err != nil {
		return err
	}

	response, err := h.service.CheckIn(c.UserContext(), checkIn)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "Check-in data received successfully!",
		"response": response,
	})
}

func (h *CheckInHandler) AdjustPlan(c *fiber.Ctx) error {
	checkIn, err := parseCheckIn(c)
	if err != nil {
		return err
	}

	response, err := h.service.AdjustPlan(c.UserContext(), checkIn)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "Check-in data received successfully!",
		"response": response,
	})
}

func (h *CheckInHandler) CheckInEntire(c *fiber.Ctx) error {
	checkIn, err := parseCheckIn(c)
	if err != nil {
		return err
	}

	out, err := h.service.CheckInAndAdjust(c.UserContext(), checkIn)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":             "Check-in and plan adjustment completed successfully!",
		"data_info":           checkIn,
		"checkIn_response":    out.CheckInResponse,
		"adjustPlan_response": out.AdjustPlanResponse,
	})
}

func parseCheckIn(c *fiber.Ctx) (models.CheckIn, error) {
	var req checkInRequest
	if err := c.BodyParser(&req); err != nil {
		return models.CheckIn{}, fiber.NewError(fiber.StatusUnprocessableEntity, describeBodyError(err))
	}
	if validationErr := validateCheckInRequest(req); validationErr != "" {
		return models.CheckIn{}, fiber.NewError(fiber.StatusUnprocessableEntity, validationErr)
	}

	return models.CheckIn{
		UserID:                     *req.UserID,
		MealPlanLastWeek:           *req.MealPlanLastWeek,
		AnalysisReportStart:        *req.AnalysisReportStart,
		BodyMeasurementsLastWeek:   *req.BodyMeasurementsLastWeek,
		DailyReportsLastWeek:       *req.DailyReportsLastWeek,
		ExercisesLogLastWeek:       *req.ExercisesLogLastWeek,
		UserWorkoutDetailsLastWeek: *req.UserWorkoutDetailsLastWeek,
	}, nil
}
