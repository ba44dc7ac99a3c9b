package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ymatsuda/go-api-sample/models"
)

// StructValidator applies `validate` struct tags to request DTOs and
// translates failures into the same field-error shape the schema validator
// produces.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a validator that reports field names from
// `json` tags, so error paths match the wire representation of the body.
func NewStructValidator() *StructValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &StructValidator{validate: v}
}

// ValidateStruct checks s against its `validate` tags and returns one
// [models.FieldError] per violated rule, or nil when s is valid.
func (v *StructValidator) ValidateStruct(s any) []models.FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{
			Type: KindJSONInvalid,
			Loc:  []string{"body"},
			Msg:  err.Error(),
		}}
	}

	fieldErrors := make([]models.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, fieldErrorFromTag(fe))
	}

	return fieldErrors
}

func fieldErrorFromTag(fe validator.FieldError) models.FieldError {
	loc := []string{"body", fe.Field()}

	switch fe.Tag() {
	case "required":
		return models.FieldError{Type: KindMissing, Loc: loc, Msg: "Field required"}
	case "min":
		return models.FieldError{
			Type: "string_too_short",
			Loc:  loc,
			Msg:  fmt.Sprintf("String should have at least %s characters", fe.Param()),
		}
	case "max":
		return models.FieldError{
			Type: "string_too_long",
			Loc:  loc,
			Msg:  fmt.Sprintf("String should have at most %s characters", fe.Param()),
		}
	case "email":
		return models.FieldError{
			Type: "value_error",
			Loc:  loc,
			Msg:  "value is not a valid email address",
		}
	default:
		return models.FieldError{
			Type: "value_error",
			Loc:  loc,
			Msg:  fmt.Sprintf("failed validation rule %q", fe.Tag()),
		}
	}
}
