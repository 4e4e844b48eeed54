package domain

import "strings"

// Goal is the training goal, which drives the set/rep prescription
type Goal string

const (
	GoalStrength    Goal = "STRENGTH"
	GoalHypertrophy Goal = "HYPERTROPHY"
	GoalEndurance   Goal = "ENDURANCE"
	GoalFatLoss     Goal = "FAT LOSS"
)

// EquipmentChoice is the equipment filter picked by the user
type EquipmentChoice string

const (
	EquipmentChoiceBodyweight EquipmentChoice = "BODYWEIGHT"
	EquipmentChoiceBands      EquipmentChoice = "BANDS"
	EquipmentChoiceDumbbells  EquipmentChoice = "DUMBBELLS"
	EquipmentChoiceAll        EquipmentChoice = "ALL"
)

// Focus selects which categories a suggestion must cover
type Focus string

const (
	FocusFullBody Focus = "FULL BODY"
	FocusUpper    Focus = "UPPER"
	FocusLower    Focus = "LOWER"
	FocusPush     Focus = "PUSH"
	FocusPull     Focus = "PULL"
	FocusCore     Focus = "CORE"
)

// Level is the user's experience level
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
)

// Duration is the session length bucket
type Duration string

const (
	Duration20   Duration = "20 MIN"
	Duration3045 Duration = "30-45 MIN"
	Duration60   Duration = "60 MIN"
)

// SuggestionConstraints are the inputs of the suggestion engine
type SuggestionConstraints struct {
	Goal      Goal            `json:"goal"`
	Equipment EquipmentChoice `json:"equipment"`
	Focus     Focus           `json:"focus"`
	Level     Level           `json:"level"`
	Duration  Duration        `json:"duration"`
}

// DefaultConstraints mirrors the initial selection of the suggest screen
func DefaultConstraints() SuggestionConstraints {
	return SuggestionConstraints{
		Goal:      GoalHypertrophy,
		Equipment: EquipmentChoiceBodyweight,
		Focus:     FocusFullBody,
		Level:     LevelIntermediate,
		Duration:  Duration3045,
	}
}

// Normalize upper-cases and trims every field, fills blanks with the
// defaults and maps the en-dash duration spelling onto Duration3045.
func (c SuggestionConstraints) Normalize() SuggestionConstraints {
	def := DefaultConstraints()
	out := SuggestionConstraints{
		Goal:      Goal(normalizeChoice(string(c.Goal))),
		Equipment: EquipmentChoice(normalizeChoice(string(c.Equipment))),
		Focus:     Focus(normalizeChoice(string(c.Focus))),
		Level:     Level(normalizeChoice(string(c.Level))),
		Duration:  Duration(strings.ReplaceAll(normalizeChoice(string(c.Duration)), "–", "-")),
	}
	if out.Goal == "" {
		out.Goal = def.Goal
	}
	if out.Equipment == "" {
		out.Equipment = def.Equipment
	}
	if out.Focus == "" {
		out.Focus = def.Focus
	}
	if out.Level == "" {
		out.Level = def.Level
	}
	if out.Duration == "" {
		out.Duration = def.Duration
	}
	return out
}

func normalizeChoice(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Prescription is the sets/reps/rest attached to every suggested item
type Prescription struct {
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
	Rest string `json:"rest"`
}
