package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

const meterName = "kinetic"

// WorkoutMetrics counts user activity. Instruments come from the global
// meter provider, so they are no-ops until Initialize installs one.
type WorkoutMetrics struct {
	suggestions otelmetric.Int64Counter
	plansSaved  otelmetric.Int64Counter
	setsLogged  otelmetric.Int64Counter
	repsLogged  otelmetric.Int64Counter
}

func NewWorkoutMetrics() *WorkoutMetrics {
	meter := otel.Meter(meterName)
	m := &WorkoutMetrics{}
	var err error

	if m.suggestions, err = meter.Int64Counter("kinetic.suggestions",
		otelmetric.WithDescription("Generated workout suggestions")); err != nil {
		log.Printf("Warning: failed to create suggestions counter: %v", err)
	}
	if m.plansSaved, err = meter.Int64Counter("kinetic.plans.saved",
		otelmetric.WithDescription("Saved workout plans")); err != nil {
		log.Printf("Warning: failed to create plans counter: %v", err)
	}
	if m.setsLogged, err = meter.Int64Counter("kinetic.sets.logged",
		otelmetric.WithDescription("Logged sets")); err != nil {
		log.Printf("Warning: failed to create sets counter: %v", err)
	}
	if m.repsLogged, err = meter.Int64Counter("kinetic.reps.logged",
		otelmetric.WithDescription("Repetitions in logged rep-based sets"),
		otelmetric.WithUnit("{rep}")); err != nil {
		log.Printf("Warning: failed to create reps counter: %v", err)
	}
	return m
}

func (m *WorkoutMetrics) SuggestionGenerated(ctx context.Context, focus, goal string) {
	if m == nil || m.suggestions == nil {
		return
	}
	m.suggestions.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("focus", focus),
		attribute.String("goal", goal),
	))
}

func (m *WorkoutMetrics) PlanSaved(ctx context.Context) {
	if m == nil || m.plansSaved == nil {
		return
	}
	m.plansSaved.Add(ctx, 1)
}

// SetLogged records one set; reps are counted only for rep-based sets
func (m *WorkoutMetrics) SetLogged(ctx context.Context, exercise string, timed bool, reps int) {
	if m == nil || m.setsLogged == nil {
		return
	}
	m.setsLogged.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("exercise", exercise),
		attribute.Bool("timed", timed),
	))
	if !timed && m.repsLogged != nil {
		m.repsLogged.Add(ctx, int64(reps))
	}
}
