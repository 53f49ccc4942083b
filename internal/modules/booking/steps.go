package booking

import (
	"strconv"
	"time"

	"goeventcity/internal/pkg/validator"
)

// The wizard is a fixed forward-only sequence. CurrentStep on the session is
// the highest step whose fields were accepted; submitting the review step
// materializes a Booking instead of advancing further.
const (
	StepEventDetails = 1
	StepRequirements = 2
	StepServices     = 3
	StepPayment      = 4
	StepReview       = 5
)

var stepsByName = map[string]int{
	"event-details": StepEventDetails,
	"requirements":  StepRequirements,
	"services":      StepServices,
	"payment":       StepPayment,
	"review":        StepReview,
}

var stepNames = map[int]string{
	StepEventDetails: "event-details",
	StepRequirements: "requirements",
	StepServices:     "services",
	StepPayment:      "payment",
	StepReview:       "review",
}

func StepIndex(name string) (int, bool) {
	i, ok := stepsByName[name]
	return i, ok
}

func StepName(index int) string { return stepNames[index] }

// validateStep checks that fields contains everything the step requires.
// Returns nil when the step is valid.
func validateStep(step int, fields map[string]string) FieldErrors {
	errs := FieldErrors{}

	switch step {
	case StepEventDetails:
		if fields["event_name"] == "" {
			errs["event_name"] = "required"
		}
		if fields["event_type"] == "" {
			errs["event_type"] = "required"
		}
		if raw := fields["event_date"]; raw == "" {
			errs["event_date"] = "required"
		} else if _, err := time.Parse("2006-01-02", raw); err != nil {
			errs["event_date"] = "invalid date, expected YYYY-MM-DD"
		}

	case StepRequirements:
		if fields["venue_id"] == "" {
			errs["venue_id"] = "required"
		}
		if raw := fields["guest_count"]; raw == "" {
			errs["guest_count"] = "required"
		} else if n, err := strconv.Atoi(raw); err != nil || n < 1 {
			errs["guest_count"] = "must be an integer of at least 1"
		}

	case StepServices:
		// Add-ons are optional; nothing to require.

	case StepPayment:
		if raw := fields["base_price"]; raw == "" {
			errs["base_price"] = "required"
		} else if cents, err := ParseCents(raw); err != nil || cents <= 0 {
			errs["base_price"] = "must be a positive amount"
		}
		if email := fields["contact_email"]; email == "" {
			errs["contact_email"] = "required"
		} else if !validator.Var(email, "email") {
			errs["contact_email"] = "invalid email"
		}
		if fields["payment_method"] == "" {
			errs["payment_method"] = "required"
		}

	case StepReview:
		if fields["agree_terms"] != "true" {
			errs["agree_terms"] = "terms must be accepted"
		}

	default:
		errs["step"] = "unknown step"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
