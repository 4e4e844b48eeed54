package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mansoorceksport/kinetic/internal/domain"
)

// Catalog is an immutable, ordered exercise library with an id index.
// It implements domain.ExerciseCatalog and is safe for concurrent use.
type Catalog struct {
	exercises []*domain.Exercise
	byID      map[string]*domain.Exercise
}

var builtin = sync.OnceValue(func() *Catalog {
	c, err := New(builtinExercises)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog is invalid: %v", err))
	}
	return c
})

// Default returns the catalog shipped with the app
func Default() *Catalog {
	return builtin()
}

// New validates and indexes the given exercises
func New(exercises []domain.Exercise) (*Catalog, error) {
	c := &Catalog{
		exercises: make([]*domain.Exercise, 0, len(exercises)),
		byID:      make(map[string]*domain.Exercise, len(exercises)),
	}
	for i := range exercises {
		ex := exercises[i]
		if err := validate(&ex); err != nil {
			return nil, fmt.Errorf("exercise #%d: %w", i, err)
		}
		if _, exists := c.byID[ex.ID]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateExercise, ex.ID)
		}
		c.exercises = append(c.exercises, &ex)
		c.byID[ex.ID] = &ex
	}
	return c, nil
}

func validate(ex *domain.Exercise) error {
	if strings.TrimSpace(ex.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(ex.Name) == "" {
		return fmt.Errorf("%s: name is required", ex.ID)
	}
	if !ex.Category.Valid() {
		return fmt.Errorf("%s: unknown category %q", ex.ID, ex.Category)
	}
	if !ex.Equipment.Valid() {
		return fmt.Errorf("%s: unknown equipment %q", ex.ID, ex.Equipment)
	}
	if ex.Timed && !ex.Trackable {
		return fmt.Errorf("%s: timed exercises must be trackable", ex.ID)
	}
	return nil
}

func (c *Catalog) ByID(id string) (*domain.Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

func (c *Catalog) All() []*domain.Exercise {
	out := make([]*domain.Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

func (c *Catalog) Filter(pred func(*domain.Exercise) bool) []*domain.Exercise {
	var out []*domain.Exercise
	for _, ex := range c.exercises {
		if pred(ex) {
			out = append(out, ex)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.exercises)
}

// Trackable returns the exercises the session tracker can count
func (c *Catalog) Trackable() []*domain.Exercise {
	return c.Filter(func(ex *domain.Exercise) bool { return ex.Trackable })
}

// Query narrows a library listing. Zero fields match everything.
type Query struct {
	Text      string
	Equipment domain.Equipment
	Category  domain.Category
}

// Search matches Text case-insensitively against name, muscle and category,
// after applying the equipment and category filters.
func (c *Catalog) Search(q Query) []*domain.Exercise {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	return c.Filter(func(ex *domain.Exercise) bool {
		if q.Equipment != "" && ex.Equipment != q.Equipment {
			return false
		}
		if q.Category != "" && ex.Category != q.Category {
			return false
		}
		if text == "" {
			return true
		}
		return strings.Contains(strings.ToLower(ex.Name), text) ||
			strings.Contains(strings.ToLower(ex.Muscle), text) ||
			strings.Contains(string(ex.Category), text)
	})
}
