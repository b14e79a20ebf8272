package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
)

func validForm() *dto.EventForm {
	return &dto.EventForm{
		Title:       "Gig night",
		Description: "live music",
		Location:    "Hall A",
		ImageURL:    "",
		StartAt:     time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC),
		CategoryID:  "C1",
		Price:       "0",
		IsFree:      true,
		URL:         "https://x.test",
	}
}

func TestValidateEventForm_Valid(t *testing.T) {
	if err := ValidateEventForm(validForm()); err != nil {
		t.Errorf("Expected valid form, got %v", err)
	}
}

func TestValidateEventForm_TitleLength(t *testing.T) {
	form := validForm()

	form.Title = "ab"
	err := ValidateEventForm(form)
	if err == nil {
		t.Fatal("Expected error for 2-char title")
	}
	fields := domain.FieldErrors(err)
	if fields["title"] != "Title must be larger than 3 characters!" {
		t.Errorf("title message = %q", fields["title"])
	}

	form.Title = "abc"
	if err := ValidateEventForm(form); err != nil {
		t.Errorf("Expected 3-char title to pass, got %v", err)
	}
}

func TestValidateEventForm_DescriptionTooLong(t *testing.T) {
	form := validForm()
	form.Description = strings.Repeat("x", 401)

	err := ValidateEventForm(form)
	if err == nil {
		t.Fatal("Expected error for 401-char description")
	}
	fields := domain.FieldErrors(err)
	if fields["description"] != "Description must be smaller than 400 characters!" {
		t.Errorf("description message = %q", fields["description"])
	}

	form.Description = strings.Repeat("x", 400)
	if err := ValidateEventForm(form); err != nil {
		t.Errorf("Expected 400-char description to pass, got %v", err)
	}
}

func TestValidateEventForm_LocationBounds(t *testing.T) {
	form := validForm()
	form.Location = "ab"

	err := ValidateEventForm(form)
	if err == nil {
		t.Fatal("Expected error for 2-char location")
	}
	if domain.FieldErrors(err)["location"] != "Location must be atleast 3 characters!" {
		t.Errorf("location message = %q", domain.FieldErrors(err)["location"])
	}
}

func TestValidateEventForm_URLMissingScheme(t *testing.T) {
	form := validForm()
	form.URL = "x.test/events"

	err := ValidateEventForm(form)
	if err == nil {
		t.Fatal("Expected error for scheme-less URL")
	}
	if !domain.IsValidation(err) {
		t.Errorf("Expected validation kind, got %v", domain.KindOf(err))
	}
	if domain.FieldErrors(err)["url"] != "URL must be a valid URL!" {
		t.Errorf("url message = %q", domain.FieldErrors(err)["url"])
	}
}

func TestValidateEventForm_FreeWithEmptyPrice(t *testing.T) {
	// is_free=true with an empty price string is not a violation; the price
	// field has no schema constraint at all.
	form := validForm()
	form.IsFree = true
	form.Price = ""

	if err := ValidateEventForm(form); err != nil {
		t.Errorf("Expected free event with empty price to pass, got %v", err)
	}
}

func TestValidateEventForm_EndBeforeStartAccepted(t *testing.T) {
	// Ordering is deliberately not enforced by the schema.
	form := validForm()
	form.StartAt = time.Date(2026, 9, 2, 19, 0, 0, 0, time.UTC)
	form.EndAt = time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)

	if err := ValidateEventForm(form); err != nil {
		t.Errorf("Expected end-before-start to pass, got %v", err)
	}
}

func TestValidateEventForm_MissingDates(t *testing.T) {
	form := validForm()
	form.StartAt = time.Time{}

	err := ValidateEventForm(form)
	if err == nil {
		t.Fatal("Expected error for missing start date")
	}
	if domain.FieldErrors(err)["start_at"] == "" {
		t.Error("Expected start_at message")
	}
}

func TestValidateEventForm_MultipleViolations(t *testing.T) {
	form := validForm()
	form.Title = "ab"
	form.Location = "x"
	form.URL = "not a url"

	err := ValidateEventForm(form)
	if err == nil {
		t.Fatal("Expected error")
	}
	fields := domain.FieldErrors(err)
	if len(fields) != 3 {
		t.Errorf("Expected 3 field errors, got %d: %v", len(fields), fields)
	}
}
