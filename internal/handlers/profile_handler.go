package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/saeid-a/CoachAIBack/internal/models"
	"github.com/saeid-a/CoachAIBack/internal/repository"
	"github.com/saeid-a/CoachAIBack/internal/services"
)

type profileService interface {
	SaveProfile(ctx context.Context, profile models.Profile) error
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	ListProfiles(ctx context.Context) (map[string]models.Profile, error)
}

type ProfileHandler struct {
	service profileService
}

func NewProfileHandler(service profileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) SaveUser(c *fiber.Ctx) error {
	profile, err := parseProfile(c)
	if err != nil {
		return err
	}

	if err := h.service.SaveProfile(c.UserContext(), profile); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "User info saved successfully",
		"data":    profile,
	})
}

func (h *ProfileHandler) GetUser(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrProfileNotFound) {
		return detail(c, fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) GetAllUsers(c *fiber.Ctx) error {
	profiles, err := h.service.ListProfiles(c.UserContext())
	if errors.Is(err, services.ErrNoProfiles) {
		return detail(c, fiber.StatusNotFound, "No users found")
	}
	if err != nil {
		return err
	}

	return c.JSON(profiles)
}

// parseProfile decodes and validates a profile body. Failures come back as
// *fiber.Error with status 422.
func parseProfile(c *fiber.Ctx) (models.Profile, error) {
	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		return profile, fiber.NewError(fiber.StatusUnprocessableEntity, describeBodyError(err))
	}
	if validationErr := validateProfileRequest(profile); validationErr != "" {
		return profile, fiber.NewError(fiber.StatusUnprocessableEntity, validationErr)
	}
	return profile, nil
}
