package telemetry

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/mansoorceksport/kinetic/internal/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "kinetic-api"

// FiberMiddleware traces each request. Spans are named after the matched
// route template ("POST /v1/plans/:id/track"), which is only known once the
// handler chain has run.
func FiberMiddleware() fiber.Handler {
	tracer := otel.Tracer(tracerName)
	propagator := otel.GetTextMapPropagator()

	return func(c *fiber.Ctx) error {
		ctx := propagator.Extract(c.Context(), propagation.HeaderCarrier(c.GetReqHeaders()))

		ctx, span := tracer.Start(ctx, "HTTP "+c.Method(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Method()),
				attribute.String("http.target", c.OriginalURL()),
				attribute.String("http.user_agent", c.Get(fiber.HeaderUserAgent)),
				attribute.String("http.client_ip", c.IP()),
			),
		)
		defer span.End()

		c.SetUserContext(ctx)
		if span.SpanContext().HasTraceID() {
			c.Set("X-Trace-ID", span.SpanContext().TraceID().String())
		}

		err := c.Next()

		route := c.Route().Path
		span.SetName(c.Method() + " " + route)
		span.SetAttributes(attribute.String("http.route", route))
		if deviceID, ok := c.Locals(middleware.DeviceIDKey).(string); ok && deviceID != "" {
			span.SetAttributes(attribute.String("kinetic.device_id", deviceID))
		}

		// the error handler has not run yet, so a returned error decides the status
		statusCode := c.Response().StatusCode()
		if err != nil {
			statusCode = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				statusCode = fe.Code
			}
			span.RecordError(err)
		}
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
		if statusCode >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", statusCode))
		}

		return err
	}
}

// RecordPlanID tags the request span with the saved plan it acts on
func RecordPlanID(c *fiber.Ctx, id int64) {
	trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.Int64("kinetic.plan_id", id))
}

// RecordPlanSaved adds a "plan.saved" event to the request span
func RecordPlanSaved(c *fiber.Ctx, plan *domain.SavedPlan) {
	trace.SpanFromContext(c.UserContext()).AddEvent("plan.saved", trace.WithAttributes(
		attribute.Int64("kinetic.plan_id", plan.ID),
		attribute.Int("kinetic.plan.exercises", plan.Count),
	))
}

// RecordSetLogged adds a "set.logged" event to the request span
func RecordSetLogged(c *fiber.Ctx, entry domain.HistoryEntry) {
	trace.SpanFromContext(c.UserContext()).AddEvent("set.logged", trace.WithAttributes(
		attribute.String("kinetic.exercise", entry.Exercise),
		attribute.String("kinetic.value", entry.Value.String()),
		attribute.Bool("kinetic.timed", entry.Timed),
	))
}
