package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/mansoorceksport/kinetic/internal/domain"
)

// PlanStore implements domain.PlanRepository as one JSON array under the
// "plans" key, most recent first. Read failures degrade to an empty list
// and write failures are logged and dropped.
type PlanStore struct {
	kv domain.KeyValueStore
	mu sync.Mutex
}

func NewPlanStore(kv domain.KeyValueStore) *PlanStore {
	return &PlanStore{kv: kv}
}

func (s *PlanStore) List(ctx context.Context) []*domain.SavedPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

func (s *PlanStore) Get(ctx context.Context, id int64) (*domain.SavedPlan, error) {
	for _, p := range s.List(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPlanNotFound
}

// Save prepends plan and keeps the newest MaxSavedPlans. A plan whose id
// collides with a stored one is moved past the highest stored id.
func (s *PlanStore) Save(ctx context.Context, plan *domain.SavedPlan) *domain.SavedPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *plan
	saved.Exercises = append([]domain.SavedExercise(nil), plan.Exercises...)
	saved.Count = len(saved.Exercises)

	plans := s.read(ctx)
	var maxID int64
	collides := false
	for _, p := range plans {
		if p.ID == saved.ID {
			collides = true
		}
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	if collides {
		saved.ID = maxID + 1
	}

	plans = append([]*domain.SavedPlan{&saved}, plans...)
	if len(plans) > domain.MaxSavedPlans {
		plans = plans[:domain.MaxSavedPlans]
	}
	s.write(ctx, plans)

	out := saved
	return &out
}

// Delete removes the plan with id; unknown ids are ignored
func (s *PlanStore) Delete(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := s.read(ctx)
	kept := plans[:0]
	for _, p := range plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(plans) {
		return
	}
	s.write(ctx, kept)
}

func (s *PlanStore) read(ctx context.Context) []*domain.SavedPlan {
	data, err := s.kv.Get(ctx, domain.KeyPlans)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			log.Printf("Warning: failed to read saved plans: %v", err)
		}
		return []*domain.SavedPlan{}
	}

	var plans []*domain.SavedPlan
	if err := json.Unmarshal(data, &plans); err != nil {
		log.Printf("Warning: discarding unreadable saved plans: %v", err)
		return []*domain.SavedPlan{}
	}
	out := make([]*domain.SavedPlan, 0, len(plans))
	for _, p := range plans {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (s *PlanStore) write(ctx context.Context, plans []*domain.SavedPlan) {
	data, err := json.Marshal(plans)
	if err != nil {
		log.Printf("Warning: failed to encode saved plans: %v", err)
		return
	}
	if err := s.kv.Set(ctx, domain.KeyPlans, data); err != nil {
		log.Printf("Warning: failed to persist saved plans: %v", err)
	}
}
