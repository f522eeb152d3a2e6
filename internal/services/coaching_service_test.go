package services

import (
	"context"
	"errors"
	"testing"

	"github.com/saeid-a/CoachAIBack/internal/models"
	"github.com/saeid-a/CoachAIBack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	optimizeResult string
	optimizeErr    error
	optimizedWith  models.Profile

	checkInResult string
	checkInErr    error
	adjustErr     error
	adjustReports []string

	workoutArgs []string
	calls       []string
}

func (g *stubGenerator) Optimize(_ context.Context, profile models.Profile) (string, error) {
	g.calls = append(g.calls, "optimize")
	g.optimizedWith = profile
	return g.optimizeResult, g.optimizeErr
}

func (g *stubGenerator) StreamOptimize(_ context.Context, profile models.Profile, onChunk func(string) error) (string, error) {
	g.calls = append(g.calls, "stream")
	g.optimizedWith = profile
	if g.optimizeErr != nil {
		return "", g.optimizeErr
	}
	if g.optimizeResult != "" {
		if err := onChunk(g.optimizeResult); err != nil {
			return "", err
		}
	}
	return g.optimizeResult, nil
}

func (g *stubGenerator) WorkoutPlan(_ context.Context, userID, report string) (string, error) {
	g.calls = append(g.calls, "workout")
	g.workoutArgs = []string{userID, report}
	return "workout for " + userID, nil
}

func (g *stubGenerator) NutritionPlan(_ context.Context, userID, _ string) (string, error) {
	g.calls = append(g.calls, "nutrition")
	return "meals for " + userID, nil
}

func (g *stubGenerator) CheckIn(_ context.Context, checkIn models.CheckIn) (string, error) {
	g.calls = append(g.calls, "checkin")
	if g.checkInErr != nil {
		return "", g.checkInErr
	}
	if g.checkInResult != "" {
		return g.checkInResult, nil
	}
	return "review:" + checkIn.UserID, nil
}

func (g *stubGenerator) AdjustPlan(_ context.Context, _ models.CheckIn, checkInReport string) (string, error) {
	g.calls = append(g.calls, "adjust")
	g.adjustReports = append(g.adjustReports, checkInReport)
	if g.adjustErr != nil {
		return "", g.adjustErr
	}
	return "adjusted after [" + checkInReport + "]", nil
}

func (g *stubGenerator) AnalyzeBody(_ context.Context, _ map[string]any) (string, error) {
	g.calls = append(g.calls, "body")
	return "body", nil
}

func (g *stubGenerator) AnalyzeClientInfo(_ context.Context, _ map[string]any) (string, error) {
	g.calls = append(g.calls, "info")
	return "info", nil
}

func (g *stubGenerator) CompileReport(_ context.Context, bodyAnalysis, infoAnalysis string) (string, error) {
	g.calls = append(g.calls, "compile")
	return bodyAnalysis + "+" + infoAnalysis, nil
}

func TestRunOptimizationStoresProfileFirst(t *testing.T) {
	store := repository.NewMemoryProfileRepository()
	gen := &stubGenerator{optimizeResult: "train more"}
	svc := NewCoachingService(store, gen)

	profile := models.Profile{UserID: "U1", Age: models.NewText("30")}
	result, err := svc.RunOptimization(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, "train more", result)
	assert.Equal(t, "U1", gen.optimizedWith.UserID)
	assert.Equal(t, "30", gen.optimizedWith.Age.String())

	stored, err := store.Get(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, "30", stored.Age.String())
}

func TestRunOptimizationEmptyResult(t *testing.T) {
	for _, result := range []string{"", "  \n"} {
		svc := NewCoachingService(repository.NewMemoryProfileRepository(), &stubGenerator{optimizeResult: result})
		_, err := svc.RunOptimization(context.Background(), models.Profile{UserID: "U1"})
		assert.ErrorIs(t, err, ErrEmptyGeneration)
	}
}

func TestRunOptimizationPropagatesGeneratorError(t *testing.T) {
	boom := errors.New("backend down")
	store := repository.NewMemoryProfileRepository()
	svc := NewCoachingService(store, &stubGenerator{optimizeErr: boom})

	_, err := svc.RunOptimization(context.Background(), models.Profile{UserID: "U1"})
	assert.ErrorIs(t, err, boom)

	// the profile is stored even though generation failed
	_, err = store.Get(context.Background(), "U1")
	assert.NoError(t, err)
}

func TestCheckInAndAdjustChainsResults(t *testing.T) {
	gen := &stubGenerator{checkInResult: "R1"}
	svc := NewCoachingService(repository.NewMemoryProfileRepository(), gen)

	out, err := svc.CheckInAndAdjust(context.Background(), models.CheckIn{UserID: "U1"})
	require.NoError(t, err)
	assert.Equal(t, "R1", out.CheckInResponse)
	assert.Equal(t, "adjusted after [R1]", out.AdjustPlanResponse)
	assert.Equal(t, []string{"R1"}, gen.adjustReports)
	assert.Equal(t, []string{"checkin", "adjust"}, gen.calls)
}

func TestCheckInAndAdjustStopsOnFirstFailure(t *testing.T) {
	boom := errors.New("check-in failed")
	gen := &stubGenerator{checkInErr: boom}
	svc := NewCoachingService(repository.NewMemoryProfileRepository(), gen)

	out, err := svc.CheckInAndAdjust(context.Background(), models.CheckIn{UserID: "U1"})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
	assert.Equal(t, []string{"checkin"}, gen.calls)
}

func TestAdjustPlanPassesEmptyPriorReport(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewCoachingService(repository.NewMemoryProfileRepository(), gen)

	_, err := svc.AdjustPlan(context.Background(), models.CheckIn{UserID: "U1"})
	require.NoError(t, err)
	assert.Equal(t, []string{""}, gen.adjustReports)
}

func TestPlansDoNotTouchStore(t *testing.T) {
	store := repository.NewMemoryProfileRepository()
	gen := &stubGenerator{}
	svc := NewCoachingService(store, gen)

	workout, err := svc.WorkoutPlan(context.Background(), models.Report{UserID: "U1", Report: "r"})
	require.NoError(t, err)
	assert.Equal(t, "workout for U1", workout)
	assert.Equal(t, []string{"U1", "r"}, gen.workoutArgs)

	meals, err := svc.NutritionPlan(context.Background(), models.Report{UserID: "U1", Report: "r"})
	require.NoError(t, err)
	assert.Equal(t, "meals for U1", meals)

	_, err = svc.ListProfiles(context.Background())
	assert.ErrorIs(t, err, ErrNoProfiles)
}

func TestListProfiles(t *testing.T) {
	svc := NewCoachingService(repository.NewMemoryProfileRepository(), &stubGenerator{})
	ctx := context.Background()

	_, err := svc.ListProfiles(ctx)
	assert.ErrorIs(t, err, ErrNoProfiles)

	require.NoError(t, svc.SaveProfile(ctx, models.Profile{UserID: "U1"}))
	require.NoError(t, svc.SaveProfile(ctx, models.Profile{UserID: "U2"}))

	profiles, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Contains(t, profiles, "U1")
	assert.Contains(t, profiles, "U2")
}

func TestFirstReportRunsThreeSteps(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewCoachingService(repository.NewMemoryProfileRepository(), gen)

	out, err := svc.FirstReport(context.Background(), models.FirstReportRequest{UserID: "U1"})
	require.NoError(t, err)
	assert.Equal(t, "body+info", out.Report)
	assert.Equal(t, "body", out.BodyAnalysis)
	assert.Equal(t, "info", out.ClientInfoAnalysis)
	assert.Equal(t, []string{"body", "info", "compile"}, gen.calls)
}

func TestStreamOptimizationForwardsChunks(t *testing.T) {
	gen := &stubGenerator{optimizeResult: "chunked"}
	svc := NewCoachingService(repository.NewMemoryProfileRepository(), gen)

	var chunks []string
	result, err := svc.StreamOptimization(context.Background(), models.Profile{UserID: "U1"}, func(s string) error {
		chunks = append(chunks, s)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "chunked", result)
	assert.Equal(t, []string{"chunked"}, chunks)
}
