// Package validation implements the event form schema: each rule maps to a
// field-scoped message attached to the offending input. There is no
// partial-success state; a form either normalizes cleanly or fails with the
// full set of violations.
package validation

import (
	"errors"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Field messages mirror the form's inline error copy.
var eventMessages = map[string]string{
	"Title.min":       "Title must be larger than 3 characters!",
	"Description.min": "Description must be larger than 3 characters!",
	"Description.max": "Description must be smaller than 400 characters!",
	"Location.min":    "Location must be atleast 3 characters!",
	"Location.max":    "Location must not exceed 400 characters!",
	"StartAt.required": "Start date is required!",
	"EndAt.required":   "End date is required!",
	"URL.url":          "URL must be a valid URL!",
}

// Field names as they appear on the form inputs.
var fieldNames = map[string]string{
	"Title":       "title",
	"Description": "description",
	"Location":    "location",
	"ImageURL":    "image_url",
	"StartAt":     "start_at",
	"EndAt":       "end_at",
	"CategoryID":  "category_id",
	"Price":       "price",
	"IsFree":      "is_free",
	"URL":         "url",
}

// ValidateEventForm checks the candidate payload against the event schema.
// It returns nil on success or a ValidationFailure-class error carrying one
// message per violated field.
//
// End before start is not rejected, and is_free=true with a non-empty price
// is accepted as-is.
func ValidateEventForm(form *dto.EventForm) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Unhandled(err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldNames[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		msg := eventMessages[fe.StructField()+"."+fe.Tag()]
		if msg == "" {
			msg = "Invalid value"
		}
		fields[name] = msg
	}

	return domain.Validation(fields)
}
