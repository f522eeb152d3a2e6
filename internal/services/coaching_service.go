package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saeid-a/CoachAIBack/internal/models"
	"github.com/saeid-a/CoachAIBack/internal/repository"
)

var (
	ErrEmptyGeneration = errors.New("generation returned an empty result")
	ErrNoProfiles      = errors.New("no profiles stored")
	ErrUnknownProvider = errors.New("unknown generation provider")
)

// Generator produces coaching text for each task.
type Generator interface {
	Optimize(ctx context.Context, profile models.Profile) (string, error)
	StreamOptimize(ctx context.Context, profile models.Profile, onChunk func(string) error) (string, error)
	WorkoutPlan(ctx context.Context, userID, report string) (string, error)
	NutritionPlan(ctx context.Context, userID, report string) (string, error)
	CheckIn(ctx context.Context, checkIn models.CheckIn) (string, error)
	AdjustPlan(ctx context.Context, checkIn models.CheckIn, checkInReport string) (string, error)
	AnalyzeBody(ctx context.Context, measurements map[string]any) (string, error)
	AnalyzeClientInfo(ctx context.Context, info map[string]any) (string, error)
	CompileReport(ctx context.Context, bodyAnalysis, infoAnalysis string) (string, error)
}

type CoachingService struct {
	store     repository.ProfileStore
	generator Generator
}

func NewCoachingService(store repository.ProfileStore, generator Generator) *CoachingService {
	return &CoachingService{
		store:     store,
		generator: generator,
	}
}

func (s *CoachingService) SaveProfile(ctx context.Context, profile models.Profile) error {
	if err := s.store.Put(ctx, profile); err != nil {
		return fmt.Errorf("save profile %s: %w", profile.UserID, err)
	}
	return nil
}

func (s *CoachingService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.store.Get(ctx, userID)
}

func (s *CoachingService) ListProfiles(ctx context.Context) (map[string]models.Profile, error) {
	profiles, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}
	return profiles, nil
}

// RunOptimization stores the profile and generates recommendations from the stored copy.
func (s *CoachingService) RunOptimization(ctx context.Context, profile models.Profile) (string, error) {
	stored, err := s.storeAndReload(ctx, profile)
	if err != nil {
		return "", err
	}

	result, err := s.generator.Optimize(ctx, *stored)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(result) == "" {
		return "", ErrEmptyGeneration
	}
	return result, nil
}

// StreamOptimization behaves like RunOptimization but forwards fragments as they arrive.
func (s *CoachingService) StreamOptimization(ctx context.Context, profile models.Profile, onChunk func(string) error) (string, error) {
	stored, err := s.storeAndReload(ctx, profile)
	if err != nil {
		return "", err
	}

	result, err := s.generator.StreamOptimize(ctx, *stored, onChunk)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(result) == "" {
		return "", ErrEmptyGeneration
	}
	return result, nil
}

func (s *CoachingService) WorkoutPlan(ctx context.Context, report models.Report) (string, error) {
	return s.generator.WorkoutPlan(ctx, report.UserID, report.Report)
}

func (s *CoachingService) NutritionPlan(ctx context.Context, report models.Report) (string, error) {
	return s.generator.NutritionPlan(ctx, report.UserID, report.Report)
}

func (s *CoachingService) CheckIn(ctx context.Context, checkIn models.CheckIn) (string, error) {
	return s.generator.CheckIn(ctx, checkIn)
}

func (s *CoachingService) AdjustPlan(ctx context.Context, checkIn models.CheckIn) (string, error) {
	return s.generator.AdjustPlan(ctx, checkIn, "")
}

// CheckInAndAdjust runs the check-in review and feeds its output into the plan adjustment.
func (s *CoachingService) CheckInAndAdjust(ctx context.Context, checkIn models.CheckIn) (*models.CheckInAdjustment, error) {
	review, err := s.generator.CheckIn(ctx, checkIn)
	if err != nil {
		return nil, err
	}

	adjusted, err := s.generator.AdjustPlan(ctx, checkIn, review)
	if err != nil {
		return nil, err
	}

	return &models.CheckInAdjustment{
		CheckInResponse:    review,
		AdjustPlanResponse: adjusted,
	}, nil
}

func (s *CoachingService) FirstReport(ctx context.Context, req models.FirstReportRequest) (*models.FirstReport, error) {
	body, err := s.generator.AnalyzeBody(ctx, req.Measurements)
	if err != nil {
		return nil, err
	}

	info, err := s.generator.AnalyzeClientInfo(ctx, req.Profile)
	if err != nil {
		return nil, err
	}

	report, err := s.generator.CompileReport(ctx, body, info)
	if err != nil {
		return nil, err
	}

	return &models.FirstReport{
		Report:             report,
		BodyAnalysis:       body,
		ClientInfoAnalysis: info,
	}, nil
}

func (s *CoachingService) storeAndReload(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	stored, err := s.store.Get(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("reload profile %s: %w", profile.UserID, err)
	}
	return stored, nil
}
