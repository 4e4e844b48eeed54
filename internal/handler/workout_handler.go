package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/kinetic/internal/builder"
	"github.com/mansoorceksport/kinetic/internal/catalog"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/mansoorceksport/kinetic/internal/service"
	"github.com/mansoorceksport/kinetic/internal/telemetry"
)

type WorkoutHandler struct {
	workoutService *service.WorkoutService
}

func NewWorkoutHandler(workoutService *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
	}
}

// respondError maps core errors onto HTTP statuses
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": vErr.Message,
			"field": vErr.Field,
		})
	case errors.Is(err, domain.ErrExerciseNotFound),
		errors.Is(err, domain.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func itemIndex(c *fiber.Ctx) (int, error) {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, domain.ErrIndexOutOfRange
	}
	return index, nil
}

func planID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrPlanNotFound
	}
	telemetry.RecordPlanID(c, id)
	return id, nil
}

// --- Library ---

// ListExercises supports ?q=, ?equipment= and ?category= filters
func (h *WorkoutHandler) ListExercises(c *fiber.Ctx) error {
	q := catalog.Query{
		Text:      c.Query("q"),
		Equipment: domain.Equipment(c.Query("equipment")),
		Category:  domain.Category(c.Query("category")),
	}
	if q.Equipment != "" && !q.Equipment.Valid() {
		return respondError(c, domain.NewValidationError("equipment", "unknown equipment"))
	}
	if q.Category != "" && !q.Category.Valid() {
		return respondError(c, domain.NewValidationError("category", "unknown category"))
	}
	return c.JSON(h.workoutService.Exercises(q))
}

func (h *WorkoutHandler) GetExercise(c *fiber.Ctx) error {
	ex, err := h.workoutService.Exercise(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ex)
}

// --- Suggestions ---

func (h *WorkoutHandler) Suggest(c *fiber.Ctx) error {
	var req SuggestRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	result := h.workoutService.Suggest(c.UserContext(), req.Constraints())
	return c.JSON(result)
}

func (h *WorkoutHandler) SendSuggestionToBuilder(c *fiber.Ctx) error {
	view, err := h.workoutService.SendSuggestionToBuilder()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *WorkoutHandler) LoadSuggestionToTracker(c *fiber.Ctx) error {
	snap, err := h.workoutService.LoadSuggestionToTracker()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

// --- Builder ---

func (h *WorkoutHandler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(h.workoutService.Draft())
}

func (h *WorkoutHandler) ToggleExercise(c *fiber.Ctx) error {
	var req ExerciseRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	added, err := h.workoutService.Toggle(req.ExerciseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"added": added,
		"draft": h.workoutService.Draft(),
	})
}

func (h *WorkoutHandler) UpdateItem(c *fiber.Ctx) error {
	index, err := itemIndex(c)
	if err != nil {
		return respondError(c, err)
	}
	var req UpdateItemRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	view, err := h.workoutService.UpdateItem(index, builder.Field(req.Field), string(req.Value))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *WorkoutHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := itemIndex(c)
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.workoutService.RemoveItem(index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *WorkoutHandler) MoveItem(c *fiber.Ctx) error {
	index, err := itemIndex(c)
	if err != nil {
		return respondError(c, err)
	}
	var req MoveItemRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	view, err := h.workoutService.MoveItem(index, req.Direction)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *WorkoutHandler) ClearDraft(c *fiber.Ctx) error {
	return c.JSON(h.workoutService.ClearDraft())
}

func (h *WorkoutHandler) SaveDraft(c *fiber.Ctx) error {
	var req SavePlanRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	saved, err := h.workoutService.SaveDraft(c.UserContext(), req.Name)
	if err != nil {
		return respondError(c, err)
	}
	telemetry.RecordPlanSaved(c, saved)
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *WorkoutHandler) TrackDraft(c *fiber.Ctx) error {
	snap, err := h.workoutService.TrackDraft()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

// --- Saved plans ---

func (h *WorkoutHandler) ListPlans(c *fiber.Ctx) error {
	return c.JSON(h.workoutService.ListPlans(c.UserContext()))
}

func (h *WorkoutHandler) DeletePlan(c *fiber.Ctx) error {
	id, err := planID(c)
	if err != nil {
		return respondError(c, err)
	}
	h.workoutService.DeletePlan(c.UserContext(), id)
	return c.JSON(fiber.Map{"message": "deleted"})
}

func (h *WorkoutHandler) EditPlan(c *fiber.Ctx) error {
	id, err := planID(c)
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.workoutService.EditPlan(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *WorkoutHandler) TrackPlan(c *fiber.Ctx) error {
	id, err := planID(c)
	if err != nil {
		return respondError(c, err)
	}
	snap, err := h.workoutService.TrackPlan(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

// --- Session ---

func (h *WorkoutHandler) GetSession(c *fiber.Ctx) error {
	return c.JSON(h.workoutService.Session())
}

func (h *WorkoutHandler) SelectExercise(c *fiber.Ctx) error {
	var req ExerciseRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	snap, err := h.workoutService.SelectExercise(req.ExerciseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

func (h *WorkoutHandler) ToggleTracking(c *fiber.Ctx) error {
	snap, err := h.workoutService.ToggleTracking()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

func (h *WorkoutHandler) AddRep(c *fiber.Ctx) error {
	snap, err := h.workoutService.AddRep()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snap)
}

func (h *WorkoutHandler) LogSet(c *fiber.Ctx) error {
	entry, err := h.workoutService.LogSet(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	telemetry.RecordSetLogged(c, entry)
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *WorkoutHandler) ClearActivePlan(c *fiber.Ctx) error {
	return c.JSON(h.workoutService.ClearActivePlan())
}

// --- History ---

func (h *WorkoutHandler) ListHistory(c *fiber.Ctx) error {
	return c.JSON(h.workoutService.History())
}

func (h *WorkoutHandler) ClearHistory(c *fiber.Ctx) error {
	h.workoutService.ClearHistory(c.UserContext())
	return c.JSON(fiber.Map{"message": "cleared"})
}
