// Package suggest builds workout plans from user constraints.
//
// Generation filters the catalog by equipment, focus categories and level,
// shuffles the pool, takes one exercise per focus category (coverage pass),
// then fills up to the duration's target count from the reshuffled remainder.
package suggest

import (
	"math/rand/v2"
	"sync"

	"github.com/mansoorceksport/kinetic/internal/domain"
)

// RandomSource shuffles a collection of n elements. *rand.Rand satisfies it.
type RandomSource interface {
	Shuffle(n int, swap func(i, j int))
}

// Result is a generated plan with the values used to build it
type Result struct {
	Title        string                       `json:"title"`
	Constraints  domain.SuggestionConstraints `json:"constraints"`
	Prescription domain.Prescription          `json:"prescription"`
	Items        []domain.PlanItem            `json:"items"`
}

// Engine generates plans against a catalog
type Engine struct {
	catalog domain.ExerciseCatalog

	mu  sync.Mutex
	rnd RandomSource
}

// NewEngine creates an engine. A nil rnd uses a randomly seeded PCG source.
func NewEngine(catalog domain.ExerciseCatalog, rnd RandomSource) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{catalog: catalog, rnd: rnd}
}

// Generate returns at most the target count of distinct exercises,
// covering each focus category once before repeating any.
// A small pool yields fewer items, never an error.
func (e *Engine) Generate(c domain.SuggestionConstraints) Result {
	c = c.Normalize()
	count := targetCount(c.Duration)
	rx := prescriptionFor(c.Goal)
	cats := focusCategories(c.Focus)

	pool := e.pool(c, cats)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.shuffle(pool)

	chosen := make([]*domain.Exercise, 0, count)
	used := make(map[string]struct{}, count)

	for _, cat := range cats {
		for _, ex := range pool {
			if ex.Category != cat {
				continue
			}
			if _, dup := used[ex.ID]; dup {
				continue
			}
			chosen = append(chosen, ex)
			used[ex.ID] = struct{}{}
			break
		}
	}

	rest := make([]*domain.Exercise, 0, len(pool))
	for _, ex := range pool {
		if _, dup := used[ex.ID]; !dup {
			rest = append(rest, ex)
		}
	}
	e.shuffle(rest)
	for _, ex := range rest {
		if len(chosen) >= count {
			break
		}
		chosen = append(chosen, ex)
	}

	if len(chosen) > count {
		chosen = chosen[:count]
	}

	items := make([]domain.PlanItem, 0, len(chosen))
	for _, ex := range chosen {
		items = append(items, domain.PlanItem{
			Exercise: ex,
			Sets:     rx.Sets,
			Reps:     rx.Reps,
			Rest:     rx.Rest,
		})
	}

	return Result{
		Title:        string(c.Focus) + " " + string(c.Goal),
		Constraints:  c,
		Prescription: rx,
		Items:        items,
	}
}

func (e *Engine) pool(c domain.SuggestionConstraints, cats []domain.Category) []*domain.Exercise {
	eq, filterEq := equipmentFilter(c.Equipment)
	inFocus := make(map[domain.Category]struct{}, len(cats))
	for _, cat := range cats {
		inFocus[cat] = struct{}{}
	}
	beginner := c.Level == domain.LevelBeginner

	return e.catalog.Filter(func(ex *domain.Exercise) bool {
		if filterEq && ex.Equipment != eq {
			return false
		}
		if _, ok := inFocus[ex.Category]; !ok {
			return false
		}
		if beginner {
			if _, excluded := beginnerExcluded[ex.ID]; excluded {
				return false
			}
		}
		return true
	})
}

func (e *Engine) shuffle(list []*domain.Exercise) {
	e.rnd.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
}
