package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mansoorceksport/kinetic/internal/builder"
	"github.com/mansoorceksport/kinetic/internal/catalog"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/mansoorceksport/kinetic/internal/notify"
	"github.com/mansoorceksport/kinetic/internal/session"
	"github.com/mansoorceksport/kinetic/internal/suggest"
	"github.com/mansoorceksport/kinetic/internal/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const tracerName = "kinetic-service"

// Options carries the injectable collaborators. Zero values use real time
// and a randomly seeded shuffle.
type Options struct {
	Random    suggest.RandomSource
	Scheduler session.Scheduler
	Clock     func() time.Time
	Notifier  *notify.Notifier
	Metrics   *telemetry.WorkoutMetrics
}

// DraftView is the builder screen: the plan being edited and its overview
type DraftView struct {
	Name    string            `json:"name"`
	Items   []domain.PlanItem `json:"items"`
	Summary builder.Summary   `json:"summary"`
}

// WorkoutService owns the application state shared by every screen:
// the draft plan, the latest suggestion, saved plans and the live session.
// Every user action runs to completion under one mutex.
type WorkoutService struct {
	catalog  *catalog.Catalog
	engine   *suggest.Engine
	plans    domain.PlanRepository
	tracker  *session.Tracker
	notifier *notify.Notifier
	metrics  *telemetry.WorkoutMetrics
	now      func() time.Time

	mu         sync.Mutex
	draft      *builder.Draft
	suggestion *suggest.Result
}

// NewWorkoutService creates a new WorkoutService instance
func NewWorkoutService(
	cat *catalog.Catalog,
	plans domain.PlanRepository,
	history domain.HistoryRepository,
	opts Options,
) *WorkoutService {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.New()
	}
	if opts.Metrics == nil {
		opts.Metrics = telemetry.NewWorkoutMetrics()
	}
	return &WorkoutService{
		catalog: cat,
		engine:  suggest.NewEngine(cat, opts.Random),
		plans:   plans,
		tracker: session.NewTracker(history, cat, session.Options{
			Scheduler: opts.Scheduler,
			Clock:     opts.Clock,
			Notifier:  opts.Notifier,
		}),
		notifier: opts.Notifier,
		metrics:  opts.Metrics,
		now:      opts.Clock,
		draft:    builder.NewDraft(),
	}
}

// Notifier exposes the change feed for presentation layers
func (s *WorkoutService) Notifier() *notify.Notifier {
	return s.notifier
}

func (s *WorkoutService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Load reads saved plans and the set log concurrently at startup
func (s *WorkoutService) Load(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	var planCount int
	g.Go(func() error {
		planCount = len(s.plans.List(gCtx))
		return nil
	})

	g.Go(func() error {
		s.tracker.Load(gCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("Loaded %d saved plans and %d logged sets", planCount, len(s.tracker.History()))
	return nil
}

// --- Library ---

func (s *WorkoutService) Exercises(q catalog.Query) []*domain.Exercise {
	return s.catalog.Search(q)
}

func (s *WorkoutService) Exercise(id string) (*domain.Exercise, error) {
	ex, ok := s.catalog.ByID(id)
	if !ok {
		return nil, domain.ErrExerciseNotFound
	}
	return ex, nil
}

// --- Suggestions ---

// Suggest generates a plan and keeps it as the current suggestion
func (s *WorkoutService) Suggest(ctx context.Context, c domain.SuggestionConstraints) suggest.Result {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "suggest.Generate")
	defer span.End()

	result := s.engine.Generate(c)
	s.metrics.SuggestionGenerated(ctx, string(result.Constraints.Focus), string(result.Constraints.Goal))
	span.SetAttributes(
		attribute.String("suggest.goal", string(result.Constraints.Goal)),
		attribute.String("suggest.focus", string(result.Constraints.Focus)),
		attribute.String("suggest.duration", string(result.Constraints.Duration)),
		attribute.Int("suggest.count", len(result.Items)),
	)

	s.mu.Lock()
	s.suggestion = &result
	s.mu.Unlock()
	return result
}

// Suggestion returns the current suggestion, if one was generated
func (s *WorkoutService) Suggestion() (suggest.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suggestion == nil {
		return suggest.Result{}, false
	}
	return *s.suggestion, true
}

func (s *WorkoutService) currentSuggestionLocked() ([]domain.PlanItem, error) {
	if s.suggestion == nil || len(s.suggestion.Items) == 0 {
		return nil, domain.NewValidationError("suggestion", "generate a plan first")
	}
	return copyItems(s.suggestion.Items), nil
}

// SendSuggestionToBuilder replaces the draft with the current suggestion
func (s *WorkoutService) SendSuggestionToBuilder() (DraftView, error) {
	s.mu.Lock()
	items, err := s.currentSuggestionLocked()
	if err != nil {
		s.mu.Unlock()
		return DraftView{}, err
	}
	s.draft.Replace(items, "")
	view := s.draftViewLocked()
	s.mu.Unlock()

	s.notifier.Publish(notify.PlanChanged)
	return view, nil
}

// LoadSuggestionToTracker makes the current suggestion the active plan
func (s *WorkoutService) LoadSuggestionToTracker() (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.currentSuggestionLocked()
	if err != nil {
		return session.Snapshot{}, err
	}
	s.tracker.LoadPlan(items)
	return s.tracker.Snapshot(), nil
}

// --- Builder ---

func (s *WorkoutService) Draft() DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftViewLocked()
}

func (s *WorkoutService) draftViewLocked() DraftView {
	return DraftView{
		Name:    s.draft.Name(),
		Items:   s.draft.Items(),
		Summary: s.draft.Summary(),
	}
}

// Toggle adds the exercise to the draft, or removes it when already present.
// It reports whether the exercise is in the draft afterwards.
func (s *WorkoutService) Toggle(exerciseID string) (bool, error) {
	ex, ok := s.catalog.ByID(exerciseID)
	if !ok {
		return false, domain.ErrExerciseNotFound
	}
	s.mu.Lock()
	added := s.draft.Toggle(ex)
	s.mu.Unlock()

	s.notifier.Publish(notify.PlanChanged)
	return added, nil
}

func (s *WorkoutService) UpdateItem(index int, field builder.Field, value string) (DraftView, error) {
	return s.editDraft(func(d *builder.Draft) error {
		return d.UpdateItem(index, field, value)
	})
}

func (s *WorkoutService) RemoveItem(index int) (DraftView, error) {
	return s.editDraft(func(d *builder.Draft) error {
		return d.RemoveItem(index)
	})
}

func (s *WorkoutService) MoveItem(index, dir int) (DraftView, error) {
	return s.editDraft(func(d *builder.Draft) error {
		return d.MoveItem(index, dir)
	})
}

func (s *WorkoutService) ClearDraft() DraftView {
	view, _ := s.editDraft(func(d *builder.Draft) error {
		d.Clear()
		return nil
	})
	return view
}

func (s *WorkoutService) editDraft(edit func(*builder.Draft) error) (DraftView, error) {
	s.mu.Lock()
	if err := edit(s.draft); err != nil {
		s.mu.Unlock()
		return DraftView{}, err
	}
	view := s.draftViewLocked()
	s.mu.Unlock()

	s.notifier.Publish(notify.PlanChanged)
	return view, nil
}

// SaveDraft stores the draft as a saved plan. The draft itself is kept.
func (s *WorkoutService) SaveDraft(ctx context.Context, name string) (*domain.SavedPlan, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "plans.Save")
	defer span.End()

	s.mu.Lock()
	saved, err := s.draft.Save(ctx, s.plans, name, s.now())
	s.mu.Unlock()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("plan.id", saved.ID),
		attribute.Int("plan.count", saved.Count),
	)
	s.metrics.PlanSaved(ctx)
	s.notifier.Publish(notify.PlansChanged)
	return saved, nil
}

// TrackDraft makes the draft the tracker's active plan
func (s *WorkoutService) TrackDraft() (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.IsEmpty() {
		return session.Snapshot{}, domain.NewValidationError("plan", "add exercises before tracking")
	}
	s.tracker.LoadPlan(s.draft.Items())
	return s.tracker.Snapshot(), nil
}

// --- Saved plans ---

func (s *WorkoutService) ListPlans(ctx context.Context) []*domain.SavedPlan {
	return s.plans.List(ctx)
}

// DeletePlan is idempotent
func (s *WorkoutService) DeletePlan(ctx context.Context, id int64) {
	s.plans.Delete(ctx, id)
	s.notifier.Publish(notify.PlansChanged)
}

// EditPlan loads a saved plan into the builder, dropping exercises the
// catalog no longer knows
func (s *WorkoutService) EditPlan(ctx context.Context, id int64) (DraftView, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return DraftView{}, err
	}
	items := plan.Hydrate(s.catalog)

	s.mu.Lock()
	s.draft.Replace(items, plan.Name)
	view := s.draftViewLocked()
	s.mu.Unlock()

	s.notifier.Publish(notify.PlanChanged)
	return view, nil
}

// TrackPlan makes a saved plan the tracker's active plan
func (s *WorkoutService) TrackPlan(ctx context.Context, id int64) (session.Snapshot, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return session.Snapshot{}, err
	}
	items := plan.Hydrate(s.catalog)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.LoadPlan(items)
	return s.tracker.Snapshot(), nil
}

// --- Session ---

func (s *WorkoutService) Session() session.Snapshot {
	return s.tracker.Snapshot()
}

func (s *WorkoutService) SelectExercise(exerciseID string) (session.Snapshot, error) {
	return s.sessionAction(func(t *session.Tracker) error {
		return t.SelectByID(exerciseID)
	})
}

func (s *WorkoutService) ToggleTracking() (session.Snapshot, error) {
	return s.sessionAction(func(t *session.Tracker) error {
		return t.Toggle()
	})
}

func (s *WorkoutService) AddRep() (session.Snapshot, error) {
	return s.sessionAction(func(t *session.Tracker) error {
		return t.AddRep()
	})
}

func (s *WorkoutService) ClearActivePlan() session.Snapshot {
	snap, _ := s.sessionAction(func(t *session.Tracker) error {
		t.ClearPlan()
		return nil
	})
	return snap
}

func (s *WorkoutService) sessionAction(action func(*session.Tracker) error) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := action(s.tracker); err != nil {
		return session.Snapshot{}, err
	}
	return s.tracker.Snapshot(), nil
}

func (s *WorkoutService) LogSet(ctx context.Context) (domain.HistoryEntry, error) {
	s.mu.Lock()
	entry, err := s.tracker.LogSet(ctx)
	s.mu.Unlock()
	if err != nil {
		return entry, err
	}
	s.metrics.SetLogged(ctx, entry.Exercise, entry.Timed, entry.Value.Reps)
	return entry, nil
}

// --- History ---

func (s *WorkoutService) History() []domain.HistoryEntry {
	return s.tracker.History()
}

func (s *WorkoutService) ClearHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.ClearHistory(ctx)
}

// Close stops the session timer
func (s *WorkoutService) Close() {
	s.tracker.Close()
}

func copyItems(items []domain.PlanItem) []domain.PlanItem {
	out := make([]domain.PlanItem, len(items))
	copy(out, items)
	return out
}
