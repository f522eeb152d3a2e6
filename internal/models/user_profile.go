package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrInvalidText is returned when a profile field is neither a JSON string nor a number.
var ErrInvalidText = errors.New("profile fields must be text or numbers")

// Text is a loosely typed profile value. Clients send numbers and strings
// interchangeably, so numbers are kept as their literal text.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrInvalidText
	}

	switch c := trimmed[0]; {
	case c == 'n':
		if string(trimmed) != "null" {
			return ErrInvalidText
		}
		return nil
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return ErrInvalidText
		}
		*t = Text(n.String())
		return nil
	default:
		return ErrInvalidText
	}
}

func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return string(*t)
}

func NewText(value string) *Text {
	t := Text(value)
	return &t
}

// Profile is the fitness questionnaire submitted for one client. Only UserID
// is mandatory; JSON names follow what the mobile client already sends.
type Profile struct {
	UserID string `json:"userId"`

	Age                  *Text `json:"age"`
	Gender               *Text `json:"gender"`
	Height               *Text `json:"height"`
	Weight               *Text `json:"weight"`
	FitnessKnowledge     *Text `json:"fitnessKnowledge"`
	ExerciseRoutine      *Text `json:"exerciseRoutine"`
	BodyParts            *Text `json:"bodyParts"`
	MealSize             *Text `json:"mealSize"`
	MealsPerDay          *Text `json:"mealsPerDay"`
	MealTime             *Text `json:"mealTime"`
	DietPreference       *Text `json:"dietPreference"`
	EatingHabits         *Text `json:"eatingHabits"`
	AlcoholUnits         *Text `json:"alcoholUnits"`
	Supplements          *Text `json:"supplements"`
	MotivationLevel      *Text `json:"motivationLevel"`
	TimeToSeeChanges     *Text `json:"timeToSeeChanges"`
	MainGoals            *Text `json:"main_goals"`
	WaterIntake          *Text `json:"waterIntake"`
	ActivityLevel        *Text `json:"activityLevel"`
	CurrentlyExercise    *Text `json:"currentlyExercise"`
	ExerciseTypeDoYouDo  *Text `json:"exerciseTypeDoYouDo"`
	ExerciseLeastLiked   *Text `json:"exercise_leastLiked"`
	ExerciseMostLiked    *Text `json:"exercise_mostLiked"`
	ExpectedBarriers     *Text `json:"expectedBarriers"`
	FitnessEquipment     *Text `json:"fitnessEquipment"`
	HowDayLook           *Text `json:"howDayLook"`
	Motivation           *Text `json:"motivation"`
	MuscleFocus          *Text `json:"muscle_focus"`
	PreviousExercise     *Text `json:"previousExercise"`
	RateYourFitnessLevel *Text `json:"rateYourFitnessLevel"`
	SkipMeals            *Text `json:"skipMeals"`
	Sports               *Text `json:"sports"`
	StressLevel          *Text `json:"stressLevel"`
	WeeklyExerciseTime   *Text `json:"weeklyExerciseTime"`
	WorkEnvironment      *Text `json:"workEnvironment"`
	WorkHours            *Text `json:"workHours"`
	Name                 *Text `json:"name"`
}

// ProfileField is one labelled answer of a profile, in questionnaire order.
type ProfileField struct {
	Label string
	Value *Text
}

func (p *Profile) Fields() []ProfileField {
	return []ProfileField{
		{"Name", p.Name},
		{"Age", p.Age},
		{"Gender", p.Gender},
		{"Height", p.Height},
		{"Weight", p.Weight},
		{"Main goals", p.MainGoals},
		{"Muscle focus", p.MuscleFocus},
		{"Body parts to improve", p.BodyParts},
		{"Expected time to see changes", p.TimeToSeeChanges},
		{"Fitness knowledge", p.FitnessKnowledge},
		{"Self-rated fitness level", p.RateYourFitnessLevel},
		{"Motivation", p.Motivation},
		{"Motivation level", p.MotivationLevel},
		{"Expected barriers", p.ExpectedBarriers},
		{"Meals per day", p.MealsPerDay},
		{"Meal size", p.MealSize},
		{"Meal time", p.MealTime},
		{"Skips meals", p.SkipMeals},
		{"Diet preference", p.DietPreference},
		{"Eating habits", p.EatingHabits},
		{"Alcohol units", p.AlcoholUnits},
		{"Supplements", p.Supplements},
		{"Water intake", p.WaterIntake},
		{"Work environment", p.WorkEnvironment},
		{"Work hours", p.WorkHours},
		{"Stress level", p.StressLevel},
		{"Typical day", p.HowDayLook},
		{"Activity level", p.ActivityLevel},
		{"Currently exercises", p.CurrentlyExercise},
		{"Exercise types", p.ExerciseTypeDoYouDo},
		{"Exercise routine", p.ExerciseRoutine},
		{"Previous exercise", p.PreviousExercise},
		{"Weekly exercise time", p.WeeklyExerciseTime},
		{"Sports", p.Sports},
		{"Fitness equipment", p.FitnessEquipment},
		{"Least liked exercise", p.ExerciseLeastLiked},
		{"Most liked exercise", p.ExerciseMostLiked},
	}
}

// Clone returns a deep copy so stored records never share field pointers with callers.
func (p Profile) Clone() Profile {
	out := p
	fields := []**Text{
		&out.Age, &out.Gender, &out.Height, &out.Weight, &out.FitnessKnowledge,
		&out.ExerciseRoutine, &out.BodyParts, &out.MealSize, &out.MealsPerDay,
		&out.MealTime, &out.DietPreference, &out.EatingHabits, &out.AlcoholUnits,
		&out.Supplements, &out.MotivationLevel, &out.TimeToSeeChanges, &out.MainGoals,
		&out.WaterIntake, &out.ActivityLevel, &out.CurrentlyExercise,
		&out.ExerciseTypeDoYouDo, &out.ExerciseLeastLiked, &out.ExerciseMostLiked,
		&out.ExpectedBarriers, &out.FitnessEquipment, &out.HowDayLook, &out.Motivation,
		&out.MuscleFocus, &out.PreviousExercise, &out.RateYourFitnessLevel,
		&out.SkipMeals, &out.Sports, &out.StressLevel, &out.WeeklyExerciseTime,
		&out.WorkEnvironment, &out.WorkHours, &out.Name,
	}
	for _, f := range fields {
		if *f != nil {
			v := **f
			*f = &v
		}
	}
	return out
}
