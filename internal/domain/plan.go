package domain

import (
	"context"
	"errors"
)

var ErrPlanNotFound = errors.New("saved plan not found")

// Display layouts for dates (M/D/YYYY) and times of day (HH:MM AM)
const (
	DateLayout      = "1/2/2006"
	TimeOfDayLayout = "03:04 PM"
)

// Plan limits
const (
	MaxSavedPlans   = 30
	MaxPlanNameLen  = 40
	DefaultSets     = 3
	DefaultReps     = 10
	MinSetsOrReps   = 1
	defaultNameStem = "My Workout"
)

// PlanItem is one exercise in a workout plan with its prescription.
// Exercise is a non-owning reference into the catalog.
type PlanItem struct {
	Exercise *Exercise `json:"exercise"`
	Sets     int       `json:"sets"`
	Reps     int       `json:"reps"`
	Rest     string    `json:"rest,omitempty"`
}

// SavedExercise is the persisted form of a PlanItem
type SavedExercise struct {
	ExerciseID string `json:"exId"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
}

// SavedPlan is a named, persisted plan. ID is a unix-millis timestamp.
type SavedPlan struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Exercises []SavedExercise `json:"exercises"`
	Date      string          `json:"date"`
	Count     int             `json:"count"`
}

// DefaultPlanName is used when a plan is saved with a blank name
func DefaultPlanName(date string) string {
	return defaultNameStem + " " + date
}

// Hydrate resolves the saved exercise ids through the catalog.
// Ids the catalog no longer knows are dropped.
func (p *SavedPlan) Hydrate(catalog ExerciseCatalog) []PlanItem {
	items := make([]PlanItem, 0, len(p.Exercises))
	for _, se := range p.Exercises {
		ex, ok := catalog.ByID(se.ExerciseID)
		if !ok {
			continue
		}
		items = append(items, PlanItem{
			Exercise: ex,
			Sets:     atLeastOne(se.Sets),
			Reps:     atLeastOne(se.Reps),
		})
	}
	return items
}

func atLeastOne(n int) int {
	if n < MinSetsOrReps {
		return MinSetsOrReps
	}
	return n
}

// PlanRepository stores saved plans, most recent first.
// Persistence failures are logged by implementations, never returned.
type PlanRepository interface {
	List(ctx context.Context) []*SavedPlan
	Get(ctx context.Context, id int64) (*SavedPlan, error)
	Save(ctx context.Context, plan *SavedPlan) *SavedPlan
	Delete(ctx context.Context, id int64)
}
