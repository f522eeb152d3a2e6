package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/saeid-a/CoachAIBack/internal/models"
)

const notProvided = "N/A"

const coachPersona = `You are an evidence-based strength and hypertrophy coach in the Renaissance Periodization tradition. ` +
	`You favour accumulated volume over training to failure, reps in reserve, progressive overload and periodization, ` +
	`and you base nutrition advice on body weight, training demand and adherence.`

const optimizationSystemPrompt = coachPersona + `

Analyse the client's fitness profile and recommend an approach, not a full programme.
Cover: the training style and methodology that suit the client's goals; macronutrient targets, meal timing and supplements;
recovery, deloading and adherence strategies. Finish with a 1-week goal, a 4-week goal and a 12-week goal.
Answer in plain text only, without markdown, headings or bullet characters.`

const workoutPlanSystemPrompt = coachPersona + `

Write a 12-week workout plan with weekly check-ins. Start with the line "Workout Plan: <name>" followed by a short description.
Lay out 7 days; rest days are written as "Rest Day". For every exercise give the name, sets, reps, rest in seconds,
intensity (Low, Medium or High) and form notes.`

const nutritionPlanSystemPrompt = coachPersona + `

Write a structured meal plan. Start with "Name of The Meal:" and a one-line description.
Provide Training Day meals marked (T) and Non-Training Day meals marked (NT), each as "MEAL n: <type> (T|NT) + HH:MM"
with food names, quantities and per-meal protein, carbohydrates, fat and calories.
End each day type with totals written as Total-Protein-N, Total-Carbohydrates-N, Total-Fat-N, Total-Calories-N
for training days and Total-Protein-NT, Total-Carbohydrates-NT, Total-Fat-NT, Total-Calories-NT for rest days.
Answer in plain text only.`

const checkInSystemPrompt = coachPersona + `

Review the client's weekly check-in: meal plan adherence, training performance and progression, body composition trends,
daily reports and the goals set at the start. Highlight what is working and what must change, with specific recommendations.
Always end the report with this block, filled in even when data is missing:
--------
GoalOne: <1-week goal>
GoalFour: <4-week goal>
GoalTwelve: <12-week goal>
--------`

const adjustPlanSystemPrompt = coachPersona + `

Decide whether the client's workout plan, nutrition plan, or both need to change after this check-in, and explain why.
When a plan changes, rewrite it in full using exactly the format of the previous plan: the workout plan starts with
"Workout Plan:" and the meal plan starts with "Name of The Meal:" with (T) and (NT) meals and daily totals.
State the new 4-week goal when it changes. Answer in plain text only, without markdown.`

const firstReportSystemPrompt = `You are an expert in exercise science and bodybuilding. ` +
	`Analyse client data and provide a comprehensive, clearly structured report.`

func optimizationUserPrompt(profile models.Profile) string {
	var b strings.Builder
	b.WriteString("Analyse the following client's fitness profile.\n\n")
	for _, field := range profile.Fields() {
		value := notProvided
		if field.Value != nil && strings.TrimSpace(field.Value.String()) != "" {
			value = field.Value.String()
		}
		fmt.Fprintf(&b, "%s: %s\n", field.Label, value)
	}
	return b.String()
}

func workoutPlanUserPrompt(userID, report string) string {
	return fmt.Sprintf("Client: %s\n\nAnalysis report:\n%s\n\nCreate the workout plan for this client.", userID, report)
}

func nutritionPlanUserPrompt(userID, report string) string {
	return fmt.Sprintf("Client: %s\n\nAnalysis report:\n%s\n\nCreate the meal plan for this client.", userID, report)
}

func checkInUserPrompt(checkIn models.CheckIn) string {
	return fmt.Sprintf(`Weekly check-in for client %s

Meal plan last week:
%s

Workout plan last week:
%s

Body measurements last week:
%s

Daily reports last week:
%s

Exercise log last week:
%s

Report and goals set at the start:
%s
`,
		checkIn.UserID,
		checkIn.MealPlanLastWeek,
		checkIn.UserWorkoutDetailsLastWeek,
		checkIn.BodyMeasurementsLastWeek,
		checkIn.DailyReportsLastWeek,
		checkIn.ExercisesLogLastWeek,
		checkIn.AnalysisReportStart,
	)
}

func adjustPlanUserPrompt(checkIn models.CheckIn, checkInReport string) string {
	previous := checkInReport
	if strings.TrimSpace(previous) == "" {
		previous = notProvided
	}
	return fmt.Sprintf("Previous check-in report:\n%s\n\n%s\nDecide which adjustments are required and write the updated plans.",
		previous, checkInUserPrompt(checkIn))
}

func bodyAnalysisUserPrompt(measurements map[string]any) string {
	return fmt.Sprintf("Analyse the following body measurements:\n%s\n\n"+
		"Provide insights on body structure, muscle mass distribution, potential imbalances and training implications. "+
		"Use clear section headings.", formatPairs(measurements))
}

func clientInfoUserPrompt(info map[string]any) string {
	return fmt.Sprintf("Analyse the following client information:\n%s\n\n"+
		"Give an overview of the client's fitness level, training history, goals and recovery capacity.", formatPairs(info))
}

func compileReportUserPrompt(bodyAnalysis, infoAnalysis string) string {
	return fmt.Sprintf("Using the two analyses below, write a detailed report with these sections:\n"+
		"1. Detailed Body Analysis\n2. Client Information Analysis\n"+
		"3. Overall Recommendations (training, nutrition and progression)\n\n"+
		"Body Analysis:\n%s\n\nClient Info Analysis:\n%s", bodyAnalysis, infoAnalysis)
}

// formatPairs renders one "key: value" line per entry, sorted by key.
func formatPairs(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, values[k]))
	}
	return strings.Join(lines, "\n")
}
