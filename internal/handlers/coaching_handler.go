package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/CoachAIBack/internal/models"
	"github.com/saeid-a/CoachAIBack/internal/services"
)

type coachingService interface {
	RunOptimization(ctx context.Context, profile models.Profile) (string, error)
	WorkoutPlan(ctx context.Context, report models.Report) (string, error)
	NutritionPlan(ctx context.Context, report models.Report) (string, error)
	FirstReport(ctx context.Context, req models.FirstReportRequest) (*models.FirstReport, error)
}

type CoachingHandler struct {
	service coachingService
}

func NewCoachingHandler(service coachingService) *CoachingHandler {
	return &CoachingHandler{service: service}
}

type reportRequest struct {
	UserID *string `json:"userId"`
	Report *string `json:"report"`
}

func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello, World!"})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *CoachingHandler) RunOptimization(c *fiber.Ctx) error {
	profile, err := parseProfile(c)
	if err != nil {
		return err
	}

	result, err := h.service.RunOptimization(c.UserContext(), profile)
	if errors.Is(err, services.ErrEmptyGeneration) {
		return detail(c, fiber.StatusInternalServerError, "Failed to generate optimization")
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Optimization complete",
		"result":  result,
	})
}

func (h *CoachingHandler) WorkoutPlan(c *fiber.Ctx) error {
	report, err := parseReport(c)
	if err != nil {
		return err
	}

	result, err := h.service.WorkoutPlan(c.UserContext(), report)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Optimization complete",
		"result":  result,
	})
}

func (h *CoachingHandler) NutritionPlan(c *fiber.Ctx) error {
	report, err := parseReport(c)
	if err != nil {
		return err
	}

	result, err := h.service.NutritionPlan(c.UserContext(), report)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Optimization complete",
		"result":  result,
	})
}

func (h *CoachingHandler) FirstReport(c *fiber.Ctx) error {
	var req models.FirstReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, describeBodyError(err))
	}
	if validationErr := validateFirstReportRequest(req); validationErr != "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, validationErr)
	}

	report, err := h.service.FirstReport(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":              "First report generated",
		"report":               report.Report,
		"body_analysis":        report.BodyAnalysis,
		"client_info_analysis": report.ClientInfoAnalysis,
	})
}

func parseReport(c *fiber.Ctx) (models.Report, error) {
	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return models.Report{}, fiber.NewError(fiber.StatusUnprocessableEntity, describeBodyError(err))
	}
	if validationErr := validateReportRequest(req); validationErr != "" {
		return models.Report{}, fiber.NewError(fiber.StatusUnprocessableEntity, validationErr)
	}
	return models.Report{UserID: *req.UserID, Report: *req.Report}, nil
}
