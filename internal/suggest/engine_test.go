package suggest

import (
	"math/rand/v2"
	"testing"

	"github.com/mansoorceksport/kinetic/internal/catalog"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepOrder leaves the pool in catalog order
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var (
	goals     = []domain.Goal{domain.GoalStrength, domain.GoalHypertrophy, domain.GoalEndurance, domain.GoalFatLoss}
	equipment = []domain.EquipmentChoice{domain.EquipmentChoiceBodyweight, domain.EquipmentChoiceBands, domain.EquipmentChoiceDumbbells, domain.EquipmentChoiceAll}
	focuses   = []domain.Focus{domain.FocusFullBody, domain.FocusUpper, domain.FocusLower, domain.FocusPush, domain.FocusPull, domain.FocusCore}
	levels    = []domain.Level{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced}
	durations = []domain.Duration{domain.Duration20, domain.Duration3045, domain.Duration60}
)

func TestGenerateCountBoundAndNoDuplicates(t *testing.T) {
	engine := NewEngine(catalog.Default(), seeded(7))

	for _, g := range goals {
		for _, eq := range equipment {
			for _, f := range focuses {
				for _, l := range levels {
					for _, d := range durations {
						c := domain.SuggestionConstraints{Goal: g, Equipment: eq, Focus: f, Level: l, Duration: d}
						res := engine.Generate(c)

						require.LessOrEqual(t, len(res.Items), targetCount(d), "%+v", c)
						seen := map[string]bool{}
						for _, item := range res.Items {
							require.False(t, seen[item.Exercise.ID], "duplicate %s for %+v", item.Exercise.ID, c)
							seen[item.Exercise.ID] = true
						}
					}
				}
			}
		}
	}
}

func TestGenerateBreadthBeforeDepth(t *testing.T) {
	for seed := uint64(0); seed < 25; seed++ {
		engine := NewEngine(catalog.Default(), seeded(seed))

		for _, eq := range equipment {
			for _, f := range focuses {
				c := domain.SuggestionConstraints{Equipment: eq, Focus: f, Duration: domain.Duration60}
				res := engine.Generate(c)
				cats := focusCategories(f)

				// every focus category with at least one candidate is represented
				pool := engine.pool(c.Normalize(), cats)
				available := map[domain.Category]bool{}
				for _, ex := range pool {
					available[ex.Category] = true
				}
				got := map[domain.Category]bool{}
				for _, item := range res.Items {
					got[item.Exercise.Category] = true
				}
				for cat := range available {
					assert.True(t, got[cat], "seed %d %s/%s missing %s", seed, eq, f, cat)
				}
			}
		}
	}
}

func TestGenerateShortSessionUsesDistinctCategories(t *testing.T) {
	engine := NewEngine(catalog.Default(), seeded(42))
	res := engine.Generate(domain.SuggestionConstraints{
		Equipment: domain.EquipmentChoiceBodyweight,
		Focus:     domain.FocusFullBody,
		Duration:  domain.Duration20,
	})

	require.Len(t, res.Items, 4)
	cats := map[domain.Category]bool{}
	for _, item := range res.Items {
		cats[item.Exercise.Category] = true
	}
	assert.Len(t, cats, 4)
}

func TestGenerateCoverageOrderWithoutShuffle(t *testing.T) {
	engine := NewEngine(catalog.Default(), keepOrder{})
	res := engine.Generate(domain.SuggestionConstraints{
		Goal:      domain.GoalStrength,
		Equipment: domain.EquipmentChoiceBodyweight,
		Focus:     domain.FocusFullBody,
		Duration:  domain.Duration3045,
	})

	var ids []string
	for _, item := range res.Items {
		ids = append(ids, item.Exercise.ID)
	}
	assert.Equal(t, []string{"pushup", "pullup", "pikedpu", "diapushup", "squat", "glutebridge", "situp"}, ids)
}

func TestGenerateBeginnerExclusions(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		engine := NewEngine(catalog.Default(), seeded(seed))
		for _, eq := range equipment {
			for _, f := range focuses {
				res := engine.Generate(domain.SuggestionConstraints{
					Equipment: eq, Focus: f, Level: domain.LevelBeginner, Duration: domain.Duration60,
				})
				for _, item := range res.Items {
					_, excluded := beginnerExcluded[item.Exercise.ID]
					assert.False(t, excluded, "%s suggested to a beginner", item.Exercise.ID)
				}
			}
		}
	}
}

func TestGenerateEquipmentFilter(t *testing.T) {
	engine := NewEngine(catalog.Default(), seeded(3))
	tests := []struct {
		choice domain.EquipmentChoice
		want   domain.Equipment
	}{
		{domain.EquipmentChoiceBodyweight, domain.EquipmentBodyweight},
		{domain.EquipmentChoiceBands, domain.EquipmentBand},
		{domain.EquipmentChoiceDumbbells, domain.EquipmentDumbbell},
	}
	for _, tt := range tests {
		t.Run(string(tt.choice), func(t *testing.T) {
			res := engine.Generate(domain.SuggestionConstraints{Equipment: tt.choice, Duration: domain.Duration60})
			require.NotEmpty(t, res.Items)
			for _, item := range res.Items {
				assert.Equal(t, tt.want, item.Exercise.Equipment)
			}
		})
	}
}

func TestGeneratePrescription(t *testing.T) {
	engine := NewEngine(catalog.Default(), seeded(1))
	tests := []struct {
		goal domain.Goal
		want domain.Prescription
	}{
		{domain.GoalStrength, domain.Prescription{Sets: 4, Reps: 5, Rest: "3 min"}},
		{domain.GoalHypertrophy, domain.Prescription{Sets: 3, Reps: 10, Rest: "90 sec"}},
		{domain.GoalEndurance, domain.Prescription{Sets: 3, Reps: 20, Rest: "45 sec"}},
		{domain.GoalFatLoss, domain.Prescription{Sets: 4, Reps: 15, Rest: "30 sec"}},
		{"POWERLIFTING", domain.Prescription{Sets: 3, Reps: 10, Rest: "90 sec"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			res := engine.Generate(domain.SuggestionConstraints{Goal: tt.goal})
			assert.Equal(t, tt.want, res.Prescription)
			for _, item := range res.Items {
				assert.Equal(t, tt.want.Sets, item.Sets)
				assert.Equal(t, tt.want.Reps, item.Reps)
				assert.Equal(t, tt.want.Rest, item.Rest)
			}
		})
	}
}

func TestGenerateDefaults(t *testing.T) {
	engine := NewEngine(catalog.Default(), seeded(9))

	res := engine.Generate(domain.SuggestionConstraints{})
	assert.Equal(t, domain.DefaultConstraints(), res.Constraints)
	assert.Len(t, res.Items, 7)
	assert.Equal(t, "FULL BODY HYPERTROPHY", res.Title)

	res = engine.Generate(domain.SuggestionConstraints{Duration: "90 MIN", Focus: "ARMS DAY", Equipment: "KETTLEBELL"})
	assert.Len(t, res.Items, 7)
	assert.Equal(t, focusCategories(domain.FocusFullBody), focusCategories("ARMS DAY"))
}

func TestGenerateSmallPoolReturnsFewer(t *testing.T) {
	engine := NewEngine(catalog.Default(), seeded(5))
	res := engine.Generate(domain.SuggestionConstraints{
		Equipment: domain.EquipmentChoiceBands,
		Focus:     domain.FocusCore,
		Duration:  domain.Duration60,
	})
	assert.Len(t, res.Items, 2)
	for _, item := range res.Items {
		assert.Equal(t, domain.CategoryCore, item.Exercise.Category)
	}
}

func TestGenerateEmptyCatalog(t *testing.T) {
	empty, err := catalog.New(nil)
	require.NoError(t, err)
	res := NewEngine(empty, seeded(1)).Generate(domain.DefaultConstraints())
	assert.Empty(t, res.Items)
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	c := domain.SuggestionConstraints{Equipment: domain.EquipmentChoiceAll, Duration: domain.Duration60}
	a := NewEngine(catalog.Default(), seeded(11)).Generate(c)
	b := NewEngine(catalog.Default(), seeded(11)).Generate(c)
	assert.Equal(t, a, b)
}
