package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultCatalogIsConsistent(t *testing.T) {
	c := Default()
	require.Greater(t, c.Len(), 0)

	seen := map[domain.Category]bool{}
	for _, ex := range c.All() {
		seen[ex.Category] = true
		if ex.Trackable {
			assert.NotEmpty(t, ex.Label, "trackable %s needs a label", ex.ID)
			assert.NotEmpty(t, ex.Cue, "trackable %s needs a cue", ex.ID)
		}
	}
	for _, cat := range domain.Categories {
		assert.True(t, seen[cat], "no exercise in category %s", cat)
	}
}

func TestDefaultCatalogKnownIDs(t *testing.T) {
	c := Default()
	ids := []string{
		"pushup", "widepushup", "diapushup", "pikedpu", "squat", "sumoSq", "lunge", "calfraise",
		"situp", "plank", "dip", "jumpingjack", "burpee", "mountclimber", "bandcurl", "bandshpress",
		"dbshpress", "dbcurl", "dbgobsq",
	}
	for _, id := range ids {
		ex, ok := c.ByID(id)
		require.True(t, ok, id)
		assert.True(t, ex.Trackable, id)
	}

	plank, _ := c.ByID("plank")
	assert.True(t, plank.Timed)

	for _, id := range []string{"pistolsq", "pullup", "chinup", "archerpushup", "dbmanmaker", "dbthrusters", "boxjump"} {
		_, ok := c.ByID(id)
		assert.True(t, ok, id)
	}

	_, ok := c.ByID("nope")
	assert.False(t, ok)
}

func TestNewRejectsInvalidExercises(t *testing.T) {
	tests := []struct {
		name string
		in   []domain.Exercise
	}{
		{"missing id", []domain.Exercise{{Name: "X", Category: domain.CategoryCore, Equipment: bw}}},
		{"bad category", []domain.Exercise{{ID: "x", Name: "X", Category: "neck", Equipment: bw}}},
		{"bad equipment", []domain.Exercise{{ID: "x", Name: "X", Category: domain.CategoryCore, Equipment: "kettlebell"}}},
		{"timed but not trackable", []domain.Exercise{{ID: "x", Name: "X", Category: domain.CategoryCore, Equipment: bw, Timed: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.in)
			assert.Error(t, err)
		})
	}

	_, err := New([]domain.Exercise{
		{ID: "x", Name: "X", Category: domain.CategoryCore, Equipment: bw},
		{ID: "x", Name: "Y", Category: domain.CategoryCore, Equipment: bw},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateExercise)
}

func TestSearch(t *testing.T) {
	c := Default()

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, c.Search(Query{}), c.Len())
	})

	t.Run("text matches name muscle or category", func(t *testing.T) {
		for _, ex := range c.Search(Query{Text: "TRICEPS"}) {
			assert.Contains(t, ex.Muscle+ex.Name, "riceps")
		}
		byCat := c.Search(Query{Text: "glute"})
		assert.NotEmpty(t, byCat)
	})

	t.Run("filters combine", func(t *testing.T) {
		got := c.Search(Query{Equipment: band, Category: domain.CategoryArms})
		require.NotEmpty(t, got)
		for _, ex := range got {
			assert.Equal(t, band, ex.Equipment)
			assert.Equal(t, domain.CategoryArms, ex.Category)
		}
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Search(Query{Text: "zzzz"}))
	})
}

func TestTrackable(t *testing.T) {
	for _, ex := range Default().Trackable() {
		assert.True(t, ex.Trackable)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeTemp(t, `
exercises:
  - id: hold
    name: Hollow Hold
    muscle: Abs
    category: core
    equipment: bw
    trackable: true
    timed: true
    label: HOLLOW
    cue: Lower back glued down
  - id: row
    name: Band Row
    category: back
    equipment: band
`)
	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	hold, ok := c.ByID("hold")
	require.True(t, ok)
	assert.True(t, hold.Timed)
	assert.Equal(t, "HOLLOW", hold.Label)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeTemp(t, "exercises: []\n"))
	assert.Error(t, err)

	_, err = LoadFile(writeTemp(t, "exercises: [: bad"))
	assert.Error(t, err)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), c)
}

func TestExportRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Export(&buf))

	c, err := LoadFile(writeTemp(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), c.Len())

	plank, ok := c.ByID("plank")
	require.True(t, ok)
	assert.True(t, plank.Timed)
}
