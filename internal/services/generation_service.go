package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/saeid-a/CoachAIBack/internal/config"
	"github.com/saeid-a/CoachAIBack/internal/models"
)

// ChatBackend is a text-generation provider taking a system and a user prompt.
type ChatBackend interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
	// Stream calls onChunk for each fragment and returns the full text.
	Stream(ctx context.Context, system, user string, onChunk func(string) error) (string, error)
}

// GenerationService builds prompts for each coaching task and sends them to a backend.
type GenerationService struct {
	backend ChatBackend
	timeout time.Duration
}

func NewGenerationService(backend ChatBackend, timeout time.Duration) *GenerationService {
	return &GenerationService{
		backend: backend,
		timeout: timeout,
	}
}

func (s *GenerationService) Optimize(ctx context.Context, profile models.Profile) (string, error) {
	return s.complete(ctx, "optimization", optimizationSystemPrompt, optimizationUserPrompt(profile))
}

func (s *GenerationService) StreamOptimize(ctx context.Context, profile models.Profile, onChunk func(string) error) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	text, err := s.backend.Stream(ctx, optimizationSystemPrompt, optimizationUserPrompt(profile), onChunk)
	s.logCall("optimization_stream", start, err)
	if err != nil {
		return "", fmt.Errorf("%s optimization stream: %w", s.backend.Name(), err)
	}
	return text, nil
}

func (s *GenerationService) WorkoutPlan(ctx context.Context, userID, report string) (string, error) {
	return s.complete(ctx, "workout_plan", workoutPlanSystemPrompt, workoutPlanUserPrompt(userID, report))
}

func (s *GenerationService) NutritionPlan(ctx context.Context, userID, report string) (string, error) {
	return s.complete(ctx, "nutrition_plan", nutritionPlanSystemPrompt, nutritionPlanUserPrompt(userID, report))
}

func (s *GenerationService) CheckIn(ctx context.Context, checkIn models.CheckIn) (string, error) {
	return s.complete(ctx, "check_in", checkInSystemPrompt, checkInUserPrompt(checkIn))
}

func (s *GenerationService) AdjustPlan(ctx context.Context, checkIn models.CheckIn, checkInReport string) (string, error) {
	return s.complete(ctx, "adjust_plan", adjustPlanSystemPrompt, adjustPlanUserPrompt(checkIn, checkInReport))
}

func (s *GenerationService) AnalyzeBody(ctx context.Context, measurements map[string]any) (string, error) {
	return s.complete(ctx, "body_analysis", firstReportSystemPrompt, bodyAnalysisUserPrompt(measurements))
}

func (s *GenerationService) AnalyzeClientInfo(ctx context.Context, info map[string]any) (string, error) {
	return s.complete(ctx, "client_info_analysis", firstReportSystemPrompt, clientInfoUserPrompt(info))
}

func (s *GenerationService) CompileReport(ctx context.Context, bodyAnalysis, infoAnalysis string) (string, error) {
	return s.complete(ctx, "first_report", firstReportSystemPrompt, compileReportUserPrompt(bodyAnalysis, infoAnalysis))
}

func (s *GenerationService) complete(ctx context.Context, task, system, user string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	text, err := s.backend.Complete(ctx, system, user)
	s.logCall(task, start, err)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", s.backend.Name(), task, err)
	}
	return text, nil
}

func (s *GenerationService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GenerationService) logCall(task string, start time.Time, err error) {
	event := log.Debug()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("provider", s.backend.Name()).
		Str("task", task).
		Dur("latency", time.Since(start)).
		Msg("generation call finished")
}

type BackendConfig struct {
	Provider string
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
}

// NewChatBackend builds the backend named by cfg.Provider. Callers should close
// the result when it implements io.Closer.
func NewChatBackend(ctx context.Context, cfg BackendConfig) (ChatBackend, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIBackend(cfg.OpenAI), nil
	case config.ProviderGemini:
		return NewGeminiBackend(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
