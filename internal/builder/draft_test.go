package builder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mansoorceksport/kinetic/internal/catalog"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	saved []*domain.SavedPlan
}

func (r *recordingRepo) List(context.Context) []*domain.SavedPlan { return r.saved }

func (r *recordingRepo) Get(_ context.Context, id int64) (*domain.SavedPlan, error) {
	for _, p := range r.saved {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPlanNotFound
}

func (r *recordingRepo) Save(_ context.Context, p *domain.SavedPlan) *domain.SavedPlan {
	r.saved = append([]*domain.SavedPlan{p}, r.saved...)
	return p
}

func (r *recordingRepo) Delete(context.Context, int64) {}

func ex(t *testing.T, id string) *domain.Exercise {
	t.Helper()
	e, ok := catalog.Default().ByID(id)
	require.True(t, ok, id)
	return e
}

func ids(d *Draft) []string {
	var out []string
	for _, item := range d.Items() {
		out = append(out, item.Exercise.ID)
	}
	return out
}

func TestToggleIsIdempotentInPairs(t *testing.T) {
	d := NewDraft()
	d.Toggle(ex(t, "pushup"))
	d.Toggle(ex(t, "squat"))
	before := d.Items()

	assert.True(t, d.Toggle(ex(t, "plank")))
	assert.Equal(t, []string{"pushup", "squat", "plank"}, ids(d))
	assert.False(t, d.Toggle(ex(t, "plank")))
	assert.Equal(t, before, d.Items())

	// removing an existing item and re-adding appends with defaults
	require.NoError(t, d.UpdateItem(0, FieldSets, "5"))
	d.Toggle(ex(t, "pushup"))
	d.Toggle(ex(t, "pushup"))
	assert.Equal(t, []string{"squat", "pushup"}, ids(d))
	item := d.Items()[1]
	assert.Equal(t, 3, item.Sets)
	assert.Equal(t, 10, item.Reps)
}

func TestUpdateItemClampsInput(t *testing.T) {
	d := NewDraft()
	d.Toggle(ex(t, "pushup"))

	tests := []struct {
		input string
		want  int
	}{
		{"5", 5},
		{" 12 ", 12},
		{"0", 1},
		{"-4", 1},
		{"abc", 1},
		{"", 1},
		{"8x", 8},
		{"3.7", 3},
		{"+6", 6},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.NoError(t, d.UpdateItem(0, FieldReps, tt.input))
			assert.Equal(t, tt.want, d.Items()[0].Reps)
			require.NoError(t, d.UpdateItem(0, FieldSets, tt.input))
			assert.Equal(t, tt.want, d.Items()[0].Sets)
		})
	}
}

func TestUpdateItemErrors(t *testing.T) {
	d := NewDraft()
	d.Toggle(ex(t, "pushup"))

	assert.ErrorIs(t, d.UpdateItem(1, FieldSets, "4"), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.UpdateItem(-1, FieldSets, "4"), domain.ErrIndexOutOfRange)
	assert.True(t, domain.IsValidation(d.UpdateItem(0, "rest", "4")))
	assert.Equal(t, 3, d.Items()[0].Sets)
}

func TestRemoveItem(t *testing.T) {
	d := NewDraft()
	for _, id := range []string{"pushup", "squat", "plank"} {
		d.Toggle(ex(t, id))
	}
	require.NoError(t, d.RemoveItem(1))
	assert.Equal(t, []string{"pushup", "plank"}, ids(d))
	assert.ErrorIs(t, d.RemoveItem(2), domain.ErrIndexOutOfRange)
	assert.Equal(t, 2, d.Len())
}

func TestMoveItemBounds(t *testing.T) {
	d := NewDraft()
	for _, id := range []string{"pushup", "squat", "plank"} {
		d.Toggle(ex(t, id))
	}

	require.NoError(t, d.MoveItem(0, -1))
	assert.Equal(t, []string{"pushup", "squat", "plank"}, ids(d))

	require.NoError(t, d.MoveItem(2, 1))
	assert.Equal(t, []string{"pushup", "squat", "plank"}, ids(d))

	require.NoError(t, d.MoveItem(0, 1))
	assert.Equal(t, []string{"squat", "pushup", "plank"}, ids(d))

	require.NoError(t, d.MoveItem(2, -1))
	assert.Equal(t, []string{"squat", "plank", "pushup"}, ids(d))

	require.NoError(t, d.MoveItem(1, 0))
	assert.Equal(t, []string{"squat", "plank", "pushup"}, ids(d))

	assert.ErrorIs(t, d.MoveItem(3, -1), domain.ErrIndexOutOfRange)
}

func TestSummary(t *testing.T) {
	d := NewDraft()
	s := d.Summary()
	assert.Equal(t, 0, s.TotalSets)
	assert.Equal(t, 0, s.EstimatedMinutes)
	assert.Equal(t, "—", s.Equipment)
	assert.Equal(t, 1, s.Coverage.Max)
	assert.Len(t, s.Coverage.Categories, 8)

	d.Toggle(ex(t, "pushup"))
	d.Toggle(ex(t, "dbcurl"))
	d.Toggle(ex(t, "widepushup"))
	d.Toggle(ex(t, "bandrow"))
	require.NoError(t, d.UpdateItem(1, FieldSets, "4"))

	s = d.Summary()
	assert.Equal(t, 4, s.Exercises)
	assert.Equal(t, 13, s.TotalSets)
	assert.Equal(t, 33, s.EstimatedMinutes) // 32.5 rounds half away from zero
	assert.Equal(t, "BW · DB · BAND", s.Equipment)
	assert.Equal(t, 2, s.Coverage.Max)

	counts := map[domain.Category]int{}
	for _, c := range s.Coverage.Categories {
		counts[c.Category] = c.Count
	}
	assert.Equal(t, 2, counts[domain.CategoryChest])
	assert.Equal(t, 1, counts[domain.CategoryArms])
	assert.Equal(t, 1, counts[domain.CategoryBack])
	assert.Equal(t, 0, counts[domain.CategoryCardio])
	assert.Equal(t, "Chest", s.Coverage.Categories[0].Label)
}

func TestSaveRejectsEmptyPlan(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDraft()

	_, err := d.Save(context.Background(), repo, "", time.Now())
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, repo.saved)
}

func TestSave(t *testing.T) {
	now := time.Date(2025, time.March, 4, 9, 30, 0, 0, time.UTC)
	repo := &recordingRepo{}
	d := NewDraft()
	d.Toggle(ex(t, "pushup"))
	d.Toggle(ex(t, "plank"))
	require.NoError(t, d.UpdateItem(0, FieldReps, "15"))

	saved, err := d.Save(context.Background(), repo, "  ", now)
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "My Workout 3/4/2025", saved.Name)
	assert.Equal(t, now.UnixMilli(), saved.ID)
	assert.Equal(t, "3/4/2025", saved.Date)
	assert.Equal(t, 2, saved.Count)
	assert.Equal(t, []domain.SavedExercise{
		{ExerciseID: "pushup", Sets: 3, Reps: 15},
		{ExerciseID: "plank", Sets: 3, Reps: 10},
	}, saved.Exercises)

	long := strings.Repeat("x", 55)
	saved, err = d.Save(context.Background(), repo, long, now.Add(time.Second))
	require.NoError(t, err)
	assert.Len(t, saved.Name, domain.MaxPlanNameLen)
	assert.Equal(t, saved.Name, d.Name())
}

func TestReplaceAndClear(t *testing.T) {
	d := NewDraft()
	d.Replace([]domain.PlanItem{{Exercise: ex(t, "situp"), Sets: 4, Reps: 15, Rest: "30 sec"}}, "Core day")
	assert.Equal(t, "Core day", d.Name())
	assert.True(t, d.Contains("situp"))

	d.Clear()
	assert.True(t, d.IsEmpty())
	assert.Empty(t, d.Name())
}

func TestCoreScenario(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDraft()
	for _, id := range []string{"situp", "plank", "mountclimber"} {
		d.Toggle(ex(t, id))
	}
	require.NoError(t, d.UpdateItem(1, FieldSets, "4"))

	s := d.Summary()
	assert.Equal(t, 10, s.TotalSets)
	assert.Equal(t, 25, s.EstimatedMinutes)

	saved, err := d.Save(context.Background(), repo, "Core Crusher", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, saved.Count)

	hydrated := saved.Hydrate(catalog.Default())
	assert.Equal(t, d.Items(), hydrated)
}
