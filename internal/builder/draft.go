// Package builder holds the editable workout plan draft.
package builder

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mansoorceksport/kinetic/internal/domain"
)

// Field is an editable numeric column of a plan item
type Field string

const (
	FieldSets Field = "sets"
	FieldReps Field = "reps"
)

const (
	minutesPerSet  = 2.5
	maxCountDigits = 9
)

// Draft is the plan being edited. It is not safe for concurrent use;
// the owning service serializes access.
type Draft struct {
	items []domain.PlanItem
	name  string
}

func NewDraft() *Draft {
	return &Draft{}
}

// Items returns a copy of the current plan items
func (d *Draft) Items() []domain.PlanItem {
	out := make([]domain.PlanItem, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Draft) Len() int {
	return len(d.items)
}

func (d *Draft) IsEmpty() bool {
	return len(d.items) == 0
}

// Name is the name of the saved plan the draft was loaded from, if any
func (d *Draft) Name() string {
	return d.name
}

func (d *Draft) SetName(name string) {
	d.name = name
}

// Contains reports whether an exercise is already in the plan
func (d *Draft) Contains(exerciseID string) bool {
	return d.indexOf(exerciseID) >= 0
}

func (d *Draft) indexOf(exerciseID string) int {
	for i, item := range d.items {
		if item.Exercise.ID == exerciseID {
			return i
		}
	}
	return -1
}

// Toggle removes the exercise when present, otherwise appends it with
// the default 3x10. Returns true when the exercise was added.
func (d *Draft) Toggle(ex *domain.Exercise) bool {
	if i := d.indexOf(ex.ID); i >= 0 {
		d.items = append(d.items[:i:i], d.items[i+1:]...)
		return false
	}
	d.items = append(d.items, domain.PlanItem{
		Exercise: ex,
		Sets:     domain.DefaultSets,
		Reps:     domain.DefaultReps,
	})
	return true
}

// Replace swaps the whole plan, e.g. with a suggestion or a hydrated saved plan
func (d *Draft) Replace(items []domain.PlanItem, name string) {
	d.items = make([]domain.PlanItem, len(items))
	copy(d.items, items)
	d.name = name
}

// UpdateItem sets sets or reps of item i from raw user input.
// The input is parsed leniently and clamped to at least 1.
func (d *Draft) UpdateItem(i int, field Field, value string) error {
	if !d.inRange(i) {
		return domain.ErrIndexOutOfRange
	}
	n := CoerceCount(value)
	switch field {
	case FieldSets:
		d.items[i].Sets = n
	case FieldReps:
		d.items[i].Reps = n
	default:
		return domain.NewValidationError("field", "must be sets or reps")
	}
	return nil
}

// RemoveItem deletes item i
func (d *Draft) RemoveItem(i int) error {
	if !d.inRange(i) {
		return domain.ErrIndexOutOfRange
	}
	d.items = append(d.items[:i:i], d.items[i+1:]...)
	return nil
}

// MoveItem swaps item i with its neighbour in direction dir (-1 up, +1 down).
// Moving past either end is a no-op.
func (d *Draft) MoveItem(i, dir int) error {
	if !d.inRange(i) {
		return domain.ErrIndexOutOfRange
	}
	switch {
	case dir < 0:
		dir = -1
	case dir > 0:
		dir = 1
	default:
		return nil
	}
	target := i + dir
	if !d.inRange(target) {
		return nil
	}
	d.items[i], d.items[target] = d.items[target], d.items[i]
	return nil
}

// Clear empties the draft and forgets its name
func (d *Draft) Clear() {
	d.items = nil
	d.name = ""
}

func (d *Draft) inRange(i int) bool {
	return i >= 0 && i < len(d.items)
}

// Save persists the draft under name (blank means "My Workout <date>").
// An empty draft is rejected without touching the repository.
func (d *Draft) Save(ctx context.Context, repo domain.PlanRepository, name string, now time.Time) (*domain.SavedPlan, error) {
	if d.IsEmpty() {
		return nil, domain.NewValidationError("plan", "add exercises before saving")
	}

	date := now.Format(domain.DateLayout)
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultPlanName(date)
	}
	name = truncateRunes(name, domain.MaxPlanNameLen)

	plan := &domain.SavedPlan{
		ID:        now.UnixMilli(),
		Name:      name,
		Exercises: make([]domain.SavedExercise, 0, len(d.items)),
		Date:      date,
		Count:     len(d.items),
	}
	for _, item := range d.items {
		plan.Exercises = append(plan.Exercises, domain.SavedExercise{
			ExerciseID: item.Exercise.ID,
			Sets:       item.Sets,
			Reps:       item.Reps,
		})
	}

	saved := repo.Save(ctx, plan)
	d.name = saved.Name
	return saved, nil
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:max]))
}

// CoerceCount parses a leading integer from user input the way a lenient
// numeric field does ("12abc" is 12) and clamps the result to at least 1.
// Digits past the ninth are ignored.
func CoerceCount(value string) int {
	s := strings.TrimSpace(value)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' || digits == maxCountDigits {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if neg || n < domain.MinSetsOrReps {
		return domain.MinSetsOrReps
	}
	return n
}
