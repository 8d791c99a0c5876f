package model

// Closed vocabularies for profile and assessment fields. Values are the
// wire strings; clients submit them verbatim.

type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderOther          Gender = "Other"
	GenderPreferNotToSay Gender = "Prefer not to say"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay}

func (g Gender) Valid() bool { return contains(Genders, g) }

type EmploymentStatus string

const (
	EmploymentEmployed   EmploymentStatus = "Employed"
	EmploymentUnemployed EmploymentStatus = "Unemployed"
	EmploymentStudent    EmploymentStatus = "Student"
	EmploymentRetired    EmploymentStatus = "Retired"
	EmploymentOther      EmploymentStatus = "Other"
)

var EmploymentStatuses = []EmploymentStatus{
	EmploymentEmployed, EmploymentUnemployed, EmploymentStudent, EmploymentRetired, EmploymentOther,
}

func (e EmploymentStatus) Valid() bool { return contains(EmploymentStatuses, e) }

type Relationship string

const (
	RelationshipParent      Relationship = "Parent"
	RelationshipChild       Relationship = "Child"
	RelationshipSpouse      Relationship = "Spouse"
	RelationshipSibling     Relationship = "Sibling"
	RelationshipFriend      Relationship = "Friend"
	RelationshipGrandparent Relationship = "Grandparent"
	RelationshipOther       Relationship = "Other"
)

var Relationships = []Relationship{
	RelationshipParent, RelationshipChild, RelationshipSpouse, RelationshipSibling,
	RelationshipFriend, RelationshipGrandparent, RelationshipOther,
}

func (r Relationship) Valid() bool { return contains(Relationships, r) }

type CauseOfDeath string

const (
	CauseIllness  CauseOfDeath = "Illness"
	CauseAccident CauseOfDeath = "Accident"
	CauseAge      CauseOfDeath = "Age-related"
	CauseSudden   CauseOfDeath = "Sudden/Unexpected"
	CauseSuicide  CauseOfDeath = "Suicide"
	CauseOther    CauseOfDeath = "Other"
)

var CausesOfDeath = []CauseOfDeath{
	CauseIllness, CauseAccident, CauseAge, CauseSudden, CauseSuicide, CauseOther,
}

func (c CauseOfDeath) Valid() bool { return contains(CausesOfDeath, c) }

type TimeSinceLoss string

const (
	TimeSinceDays   TimeSinceLoss = "Less than a week"
	TimeSinceWeeks  TimeSinceLoss = "Weeks"
	TimeSinceMonths TimeSinceLoss = "Months"
	TimeSinceYear   TimeSinceLoss = "About a year"
	TimeSinceYears  TimeSinceLoss = "Multiple years"
)

var TimesSinceLoss = []TimeSinceLoss{
	TimeSinceDays, TimeSinceWeeks, TimeSinceMonths, TimeSinceYear, TimeSinceYears,
}

func (t TimeSinceLoss) Valid() bool { return contains(TimesSinceLoss, t) }

type SupportSystem string

const (
	SupportFamily    SupportSystem = "Family"
	SupportFriends   SupportSystem = "Friends"
	SupportTherapist SupportSystem = "Professional therapist"
	SupportGroup     SupportSystem = "Support group"
	SupportReligious SupportSystem = "Religious/Spiritual community"
	SupportNone      SupportSystem = "No current support"
)

var SupportSystems = []SupportSystem{
	SupportFamily, SupportFriends, SupportTherapist, SupportGroup, SupportReligious, SupportNone,
}

func (s SupportSystem) Valid() bool { return contains(SupportSystems, s) }

type CopingMethod string

const (
	CopingExercise   CopingMethod = "Exercise"
	CopingMeditation CopingMethod = "Meditation"
	CopingJournaling CopingMethod = "Journaling"
	CopingArt        CopingMethod = "Art/Creative expression"
	CopingNature     CopingMethod = "Time in nature"
	CopingWork       CopingMethod = "Work/Keeping busy"
	CopingTalking    CopingMethod = "Talking with others"
	CopingNone       CopingMethod = "No specific methods"
)

var CopingMethods = []CopingMethod{
	CopingExercise, CopingMeditation, CopingJournaling, CopingArt,
	CopingNature, CopingWork, CopingTalking, CopingNone,
}

func (c CopingMethod) Valid() bool { return contains(CopingMethods, c) }

// Moods is the closed list of words the mood classifier may return.
var Moods = []string{
	"devastated", "sad", "anxious", "angry", "numb", "hopeful", "accepting", "grateful",
}

// MoodEmojis maps each recognized mood word to its emoji.
var MoodEmojis = map[string]string{
	"devastated": "😢",
	"sad":        "😔",
	"anxious":    "😰",
	"angry":      "😠",
	"numb":       "😶",
	"hopeful":    "🌱",
	"accepting":  "🙏",
	"grateful":   "💗",
}

// DefaultMoodEmoji is used when the classifier returns an unrecognized word.
const DefaultMoodEmoji = "😔"

// TimePeriods labels the slots a routine activity may be scheduled into.
var TimePeriods = []string{
	"Early morning",
	"Morning",
	"Late morning",
	"Noon",
	"Early afternoon",
	"Afternoon",
	"Late afternoon",
	"Evening",
	"Night",
}

// ReflectivePrompts are the canned journaling prompts; the first one backs
// the fallback reflective question.
var ReflectivePrompts = []string{
	"What memory brings you the most comfort?",
	"How has this loss changed your perspective?",
	"What would you want them to know?",
	"What are you grateful for in your relationship?",
	"How have you grown through this experience?",
	"What helps you feel connected to them?",
}

// ResourceCategories are the recognized resource groupings.
var ResourceCategories = []string{
	"Support Groups",
	"Professional Support",
	"Crisis Support",
	"Self-Care Activities",
	"Educational Resources",
	"Community Services",
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
