package model

import "time"

// Profile is the demographic record for one user.
type Profile struct {
	ProfileID        string           `json:"profile_id"`
	Age              int              `json:"age"`
	Gender           Gender           `json:"gender"`
	Location         string           `json:"location"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`
	WorkSchedule     *string          `json:"work_schedule,omitempty"`
	Ethnicity        *string          `json:"ethnicity,omitempty"`
	CreationTime     time.Time        `json:"created_at"`
}

// Assessment is one completed grief-intake questionnaire, linked to a profile.
// It carries the full profile field set so the archive document is self-contained.
type Assessment struct {
	AssessmentID string `json:"assessment_id"`
	ProfileID    string `json:"profile_id"`

	Age              int              `json:"age"`
	Gender           Gender           `json:"gender"`
	Location         string           `json:"location"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`
	WorkSchedule     *string          `json:"work_schedule,omitempty"`
	Ethnicity        *string          `json:"ethnicity,omitempty"`

	Relationship            Relationship    `json:"relationship"`
	CauseOfDeath            CauseOfDeath    `json:"cause_of_death"`
	TimeSinceLoss           TimeSinceLoss   `json:"time_since_loss"`
	CurrentSupport          []SupportSystem `json:"current_support"`
	CopingMethods           []CopingMethod  `json:"coping_methods"`
	SleepQuality            int             `json:"sleep_quality"` // 1-5 scale
	AppetiteChanges         bool            `json:"appetite_changes"`
	EnergyLevel             int             `json:"energy_level"` // 1-5 scale
	SocialWithdrawal        bool            `json:"social_withdrawal"`
	DifficultyConcentrating bool            `json:"difficulty_concentrating"`
	PhysicalSymptoms        []string        `json:"physical_symptoms"`
	Story                   string          `json:"story"`

	CreationTime time.Time `json:"created_at"`
}

// DailyActivity is one scheduled item in a routine day.
type DailyActivity struct {
	TimePeriod  string `json:"time_period"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
}

// WeeklySchedule holds an ordered activity list per weekday.
type WeeklySchedule struct {
	Monday    []DailyActivity `json:"monday"`
	Tuesday   []DailyActivity `json:"tuesday"`
	Wednesday []DailyActivity `json:"wednesday"`
	Thursday  []DailyActivity `json:"thursday"`
	Friday    []DailyActivity `json:"friday"`
	Saturday  []DailyActivity `json:"saturday"`
	Sunday    []DailyActivity `json:"sunday"`
}

// EmptyWeeklySchedule returns a schedule with all seven days present and empty.
func EmptyWeeklySchedule() WeeklySchedule {
	return WeeklySchedule{
		Monday:    []DailyActivity{},
		Tuesday:   []DailyActivity{},
		Wednesday: []DailyActivity{},
		Thursday:  []DailyActivity{},
		Friday:    []DailyActivity{},
		Saturday:  []DailyActivity{},
		Sunday:    []DailyActivity{},
	}
}

// ReflectiveQuestion is a journaling question with context and starter prompts.
type ReflectiveQuestion struct {
	Question         string   `json:"question"`
	Context          string   `json:"context"`
	SuggestedPrompts []string `json:"suggested_prompts"`
}

// Resource is a support resource suggestion.
type Resource struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	URL         *string `json:"url,omitempty"`
	Contact     *string `json:"contact,omitempty"`
}

// Guide is a generated support plan derived from a profile+assessment pair.
type Guide struct {
	GuideID             string               `json:"id"`
	CreationTime        time.Time            `json:"created_at"`
	ProfileID           string               `json:"profile_id"`
	DetectedMood        string               `json:"detected_mood"`
	MoodEmoji           string               `json:"mood_emoji"`
	Overview            string               `json:"overview"`
	WeeklyRoutine       WeeklySchedule       `json:"weekly_routine"`
	ReflectiveQuestions []ReflectiveQuestion `json:"reflective_questions"`
	PhysicalActivity    string               `json:"physical_activity"`
	MealPlan            string               `json:"meal_plan"`
	EveningRitual       string               `json:"evening_ritual"`
	Resources           []Resource           `json:"resources"`
	CopingStrategies    []string             `json:"coping_strategies"`
}
