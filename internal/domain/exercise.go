package domain

import (
	"errors"
	"strings"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("exercise id already exists")
)

// Category is the primary muscle group an exercise trains
type Category string

const (
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryShoulders Category = "shoulders"
	CategoryArms      Category = "arms"
	CategoryLegs      Category = "legs"
	CategoryGlutes    Category = "glutes"
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryChest,
	CategoryBack,
	CategoryShoulders,
	CategoryArms,
	CategoryLegs,
	CategoryGlutes,
	CategoryCore,
	CategoryCardio,
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the capitalized label used in coverage charts ("Chest")
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Equipment is what an exercise needs
type Equipment string

const (
	EquipmentBodyweight Equipment = "bw"
	EquipmentBand       Equipment = "band"
	EquipmentDumbbell   Equipment = "db"
)

// Valid reports whether e is a known equipment code
func (e Equipment) Valid() bool {
	switch e {
	case EquipmentBodyweight, EquipmentBand, EquipmentDumbbell:
		return true
	}
	return false
}

// Label returns the short upper-case tag (BW, BAND, DB)
func (e Equipment) Label() string {
	return strings.ToUpper(string(e))
}

// Exercise represents a move in the static library.
// Label and Cue are only set for trackable exercises.
type Exercise struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Icon      string    `json:"icon" yaml:"icon"`
	Tip       string    `json:"tip" yaml:"tip"`
	Muscle    string    `json:"muscle" yaml:"muscle"`
	Category  Category  `json:"category" yaml:"category"`
	Equipment Equipment `json:"equipment" yaml:"equipment"`
	Trackable bool      `json:"trackable" yaml:"trackable"`
	Timed     bool      `json:"timed" yaml:"timed"`
	Label     string    `json:"label,omitempty" yaml:"label,omitempty"`
	Cue       string    `json:"cue,omitempty" yaml:"cue,omitempty"`
}

// ExerciseCatalog is the read-only exercise library
type ExerciseCatalog interface {
	// ByID returns the exercise with the given id, or nil and false.
	ByID(id string) (*Exercise, bool)
	// All returns every exercise in catalog order.
	All() []*Exercise
	// Filter returns the exercises matching pred, in catalog order.
	Filter(pred func(*Exercise) bool) []*Exercise
}
