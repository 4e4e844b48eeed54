package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/kinetic/internal/domain"
)

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SuggestRequest carries the suggest screen selections. Blank fields take the
// screen defaults and unknown values fall back inside the engine.
type SuggestRequest struct {
	Goal      string `json:"goal" validate:"max=32"`
	Equipment string `json:"equipment" validate:"max=32"`
	Focus     string `json:"focus" validate:"max=32"`
	Level     string `json:"level" validate:"max=32"`
	Duration  string `json:"duration" validate:"max=32"`
}

func (r SuggestRequest) Constraints() domain.SuggestionConstraints {
	return domain.SuggestionConstraints{
		Goal:      domain.Goal(r.Goal),
		Equipment: domain.EquipmentChoice(r.Equipment),
		Focus:     domain.Focus(r.Focus),
		Level:     domain.Level(r.Level),
		Duration:  domain.Duration(r.Duration),
	}
}

type ExerciseRequest struct {
	ExerciseID string `json:"exercise_id" validate:"required,max=64"`
}

// CountInput is a sets/reps field as typed by the user. It accepts a JSON
// number or a JSON string; coercion to a count happens in the builder.
type CountInput string

func (v *CountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = CountInput(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("value must be a number or a string")
	}
	*v = CountInput(n.String())
	return nil
}

type UpdateItemRequest struct {
	Field string     `json:"field" validate:"required,oneof=sets reps"`
	Value CountInput `json:"value" validate:"max=32"`
}

type MoveItemRequest struct {
	Direction int `json:"direction" validate:"gte=-1,lte=1"`
}

type SavePlanRequest struct {
	Name string `json:"name" validate:"max=200"`
}

// parseBody decodes the JSON body into req and runs its validation tags.
// An empty body leaves req at its zero value.
func parseBody(c *fiber.Ctx, req interface{}) error {
	if len(bytes.TrimSpace(c.Body())) > 0 {
		if err := c.BodyParser(req); err != nil {
			return domain.NewValidationError("body", "invalid request body")
		}
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return domain.NewValidationError(fe.Field(), "failed on "+fe.Tag())
		}
		return domain.NewValidationError("body", err.Error())
	}
	return nil
}
