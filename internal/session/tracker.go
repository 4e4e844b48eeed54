// Package session implements the live set tracker: exercise selection,
// manual rep counting, a one-second timer for timed holds, and the set log.
package session

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/mansoorceksport/kinetic/internal/notify"
	"github.com/oklog/ulid/v2"
)

// State of the tracker
type State string

const (
	StateIdle     State = "idle"
	StateTracking State = "tracking"
)

const tickInterval = time.Second

// Options configures a Tracker. Zero values get real-time defaults.
type Options struct {
	Scheduler Scheduler
	Clock     func() time.Time
	Notifier  *notify.Notifier
}

// Snapshot is a consistent read of the tracker for display
type Snapshot struct {
	State           State              `json:"state"`
	Selected        *domain.Exercise   `json:"selected,omitempty"`
	Reps            int                `json:"reps"`
	Seconds         int                `json:"seconds"`
	Clock           string             `json:"clock"`
	SetsThisSession int                `json:"sets_this_session"`
	TotalReps       int                `json:"total_reps"`
	Plan            []domain.PlanItem  `json:"plan"`
	Choices         []*domain.Exercise `json:"choices"`
}

// Tracker is safe for concurrent use; timer ticks arrive on another goroutine.
//
// Session counters (sets this session, total reps) live only in memory and
// are not derived from the persisted log.
type Tracker struct {
	history  domain.HistoryRepository
	catalog  domain.ExerciseCatalog
	sched    Scheduler
	now      func() time.Time
	notifier *notify.Notifier

	mu        sync.Mutex
	plan      []domain.PlanItem
	selected  *domain.Exercise
	state     State
	reps      int
	seconds   int
	sets      int
	totalReps int
	log       []domain.HistoryEntry
	stopTick  func()
	tickGen   uint64
}

func NewTracker(history domain.HistoryRepository, catalog domain.ExerciseCatalog, opts Options) *Tracker {
	if opts.Scheduler == nil {
		opts.Scheduler = TickerScheduler{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Tracker{
		history:  history,
		catalog:  catalog,
		sched:    opts.Scheduler,
		now:      opts.Clock,
		notifier: opts.Notifier,
		state:    StateIdle,
		log:      []domain.HistoryEntry{},
	}
}

// Load reads the persisted log into memory
func (t *Tracker) Load(ctx context.Context) {
	entries := t.history.Load(ctx)
	t.mu.Lock()
	t.log = entries
	t.mu.Unlock()
	t.notifier.Publish(notify.LogChanged)
}

// LoadPlan makes items the active plan and selects its first trackable exercise
func (t *Tracker) LoadPlan(items []domain.PlanItem) {
	t.mu.Lock()
	t.plan = make([]domain.PlanItem, len(items))
	copy(t.plan, items)
	for _, item := range t.plan {
		if item.Exercise != nil && item.Exercise.Trackable {
			t.selectLocked(item.Exercise)
			break
		}
	}
	t.mu.Unlock()
	t.notifier.Publish(notify.SessionChanged)
}

// ClearPlan drops the active plan; the current selection stays
func (t *Tracker) ClearPlan() {
	t.mu.Lock()
	t.plan = nil
	t.mu.Unlock()
	t.notifier.Publish(notify.SessionChanged)
}

// Choices are the exercises the user can pick: the active plan's trackable
// items when there are any, otherwise every trackable catalog exercise
func (t *Tracker) Choices() []*domain.Exercise {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.choicesLocked()
}

func (t *Tracker) choicesLocked() []*domain.Exercise {
	var out []*domain.Exercise
	for _, item := range t.plan {
		if item.Exercise != nil && item.Exercise.Trackable {
			out = append(out, item.Exercise)
		}
	}
	if len(out) > 0 {
		return out
	}
	return t.catalog.Filter(func(ex *domain.Exercise) bool { return ex.Trackable })
}

// Select switches to ex, stopping any running set and resetting the counter
func (t *Tracker) Select(ex *domain.Exercise) error {
	if ex == nil || !ex.Trackable {
		return domain.NewValidationError("exercise", "exercise cannot be tracked")
	}
	t.mu.Lock()
	t.selectLocked(ex)
	t.mu.Unlock()
	t.notifier.Publish(notify.SessionChanged)
	return nil
}

// SelectByID looks the exercise up in the catalog and selects it
func (t *Tracker) SelectByID(id string) error {
	ex, ok := t.catalog.ByID(id)
	if !ok {
		return domain.ErrExerciseNotFound
	}
	return t.Select(ex)
}

func (t *Tracker) selectLocked(ex *domain.Exercise) {
	t.stopLocked()
	t.selected = ex
	t.reps = 0
	t.seconds = 0
}

// Start begins a set. The counter resets; timed exercises start the timer.
func (t *Tracker) Start() error {
	t.mu.Lock()
	changed, err := t.startLocked()
	t.mu.Unlock()
	if changed {
		t.notifier.Publish(notify.SessionChanged)
	}
	return err
}

func (t *Tracker) startLocked() (bool, error) {
	if t.selected == nil {
		return false, domain.NewValidationError("exercise", "select an exercise first")
	}
	if t.state == StateTracking {
		return false, nil
	}
	t.state = StateTracking
	t.reps = 0
	t.seconds = 0
	if t.selected.Timed {
		t.tickGen++
		gen := t.tickGen
		t.stopTick = t.sched.Every(tickInterval, func() { t.tick(gen) })
	}
	return true, nil
}

// Stop pauses tracking; the counter is kept until logged or reset
func (t *Tracker) Stop() {
	t.mu.Lock()
	changed := t.stopLocked()
	t.mu.Unlock()
	if changed {
		t.notifier.Publish(notify.SessionChanged)
	}
}

// Toggle starts when idle and stops when tracking, as one step under the lock
func (t *Tracker) Toggle() error {
	t.mu.Lock()
	var (
		changed bool
		err     error
	)
	if t.state == StateTracking {
		changed = t.stopLocked()
	} else {
		changed, err = t.startLocked()
	}
	t.mu.Unlock()
	if changed {
		t.notifier.Publish(notify.SessionChanged)
	}
	return err
}

func (t *Tracker) stopLocked() bool {
	if t.stopTick != nil {
		t.stopTick()
		t.stopTick = nil
		t.tickGen++
	}
	if t.state != StateTracking {
		return false
	}
	t.state = StateIdle
	return true
}

func (t *Tracker) tick(gen uint64) {
	t.mu.Lock()
	if gen != t.tickGen || t.state != StateTracking {
		t.mu.Unlock()
		return
	}
	t.seconds++
	t.mu.Unlock()
	t.notifier.Publish(notify.SessionChanged)
}

// AddRep counts one repetition of the selected rep-based exercise
func (t *Tracker) AddRep() error {
	t.mu.Lock()
	switch {
	case t.selected == nil:
		t.mu.Unlock()
		return domain.NewValidationError("exercise", "select an exercise first")
	case t.selected.Timed:
		t.mu.Unlock()
		return domain.NewValidationError("exercise", "timed exercises count seconds, not reps")
	}
	t.reps++
	t.mu.Unlock()
	t.notifier.Publish(notify.SessionChanged)
	return nil
}

// LogSet records the current counter as a history entry and persists the log.
// A zero counter is rejected with a ValidationError.
func (t *Tracker) LogSet(ctx context.Context) (domain.HistoryEntry, error) {
	t.mu.Lock()
	ex := t.selected
	if ex == nil {
		t.mu.Unlock()
		return domain.HistoryEntry{}, domain.NewValidationError("exercise", "select an exercise first")
	}
	if (ex.Timed && t.seconds == 0) || (!ex.Timed && t.reps == 0) {
		t.mu.Unlock()
		return domain.HistoryEntry{}, domain.NewValidationError("reps", "no reps recorded")
	}

	t.stopLocked()

	now := t.now()
	value := domain.RepsValue(t.reps)
	if ex.Timed {
		value = domain.DurationValue(t.seconds)
	}
	entry := domain.HistoryEntry{
		ID:        ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Exercise:  ex.Name,
		Value:     value,
		Timed:     ex.Timed,
		Timestamp: now.Format(domain.TimeOfDayLayout),
		Date:      now.Format(domain.DateLayout),
	}

	updated := make([]domain.HistoryEntry, 0, len(t.log)+1)
	updated = append(updated, entry)
	updated = append(updated, t.log...)
	if len(updated) > domain.MaxHistoryEntries {
		updated = updated[:domain.MaxHistoryEntries]
	}
	t.log = updated
	t.history.Replace(ctx, updated)

	t.sets++
	if !ex.Timed {
		t.totalReps += t.reps
	}
	t.reps = 0
	t.seconds = 0
	t.mu.Unlock()

	t.notifier.Publish(notify.LogChanged)
	t.notifier.Publish(notify.SessionChanged)
	return entry, nil
}

// ClearHistory empties the persisted log and resets the session counters
func (t *Tracker) ClearHistory(ctx context.Context) {
	t.mu.Lock()
	t.history.Clear(ctx)
	t.log = []domain.HistoryEntry{}
	t.sets = 0
	t.totalReps = 0
	t.mu.Unlock()
	t.notifier.Publish(notify.LogChanged)
	t.notifier.Publish(notify.SessionChanged)
}

// History returns the in-memory log, newest first
func (t *Tracker) History() []domain.HistoryEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.HistoryEntry, len(t.log))
	copy(out, t.log)
	return out
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	plan := make([]domain.PlanItem, len(t.plan))
	copy(plan, t.plan)
	return Snapshot{
		State:           t.state,
		Selected:        t.selected,
		Reps:            t.reps,
		Seconds:         t.seconds,
		Clock:           domain.FormatClock(t.seconds),
		SetsThisSession: t.sets,
		TotalReps:       t.totalReps,
		Plan:            plan,
		Choices:         t.choicesLocked(),
	}
}

// Close stops the timer. The tracker stays usable.
func (t *Tracker) Close() {
	t.Stop()
}
