package rest

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator checks dashboard forms before they reach the CMS. Fields are
// reported by their JSON names.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors turns a validation error into a field to message map.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}

	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without_all":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "hexcolor":
		return "must be a hex color"
	case "datetime":
		return "must be a date formatted as " + fe.Param()
	default:
		return "is invalid"
	}
}

// bind decodes and validates a form. When it reports false the request has
// already been answered with the returned error.
func (h *Handler) bind(c echo.Context, form any) (bool, error) {
	if err := c.Bind(form); err != nil {
		return false, h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(form); err != nil {
		h.log.Warn("form validation failed", "path", c.Path(), "error", err)
		return false, c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": FieldErrors(err),
		})
	}

	return true, nil
}
