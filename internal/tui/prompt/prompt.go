// ABOUTME: Interactive huh form collecting a utilization reading
// ABOUTME: Validators are exported so flag parsing and the form agree on input rules

package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/markalston/campboard/internal/utilization"
)

// ValidateNumber accepts any float, including negatives and values over 100
func ValidateNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// ValidateOptionalNumber accepts a blank value or any float
func ValidateOptionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return ValidateNumber(s)
}

// ValidateCount accepts any integer
func ValidateCount(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

// Fields holds the raw form values
type Fields struct {
	Utilization string
	Occupancy   string
	Capacity    string
}

// Reading converts validated fields into a reading. A blank utilization is
// derived from the submitted occupancy and capacity.
func (f Fields) Reading() (utilization.Reading, error) {
	occupancy, err := strconv.Atoi(strings.TrimSpace(f.Occupancy))
	if err != nil {
		return utilization.Reading{}, fmt.Errorf("occupancy: %w", err)
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(f.Capacity))
	if err != nil {
		return utilization.Reading{}, fmt.Errorf("capacity: %w", err)
	}

	raw := strings.TrimSpace(f.Utilization)
	if raw == "" {
		return utilization.Reading{
			Utilization: utilization.PercentOf(occupancy, capacity),
			Occupancy:   occupancy,
			Capacity:    capacity,
		}, nil
	}
	percent, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return utilization.Reading{}, fmt.Errorf("utilization: %w", err)
	}
	return utilization.Reading{Utilization: percent, Occupancy: occupancy, Capacity: capacity}, nil
}

// Form builds the huh form bound to f
func Form(f *Fields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Occupancy").
				Description("Campers currently booked").
				Value(&f.Occupancy).
				Validate(ValidateCount),
			huh.NewInput().
				Title("Capacity").
				Description("Beds or slots available").
				Value(&f.Capacity).
				Validate(ValidateCount),
			huh.NewInput().
				Title("Utilization %").
				Description("Leave blank to derive from occupancy and capacity").
				Placeholder("derived").
				Value(&f.Utilization).
				Validate(ValidateOptionalNumber),
		),
	).WithTheme(huh.ThemeBase())
}

// Seed returns form values for initial. The utilization field stays blank
// unless it was given explicitly, so edited counts are re-derived.
func Seed(initial utilization.Reading, explicit bool) Fields {
	f := Fields{
		Occupancy: strconv.Itoa(initial.Occupancy),
		Capacity:  strconv.Itoa(initial.Capacity),
	}
	if explicit {
		f.Utilization = strconv.FormatFloat(initial.Utilization, 'f', -1, 64)
	}
	return f
}

// Run shows the form seeded with initial and returns the entered reading
func Run(initial utilization.Reading, explicit bool) (utilization.Reading, error) {
	f := Seed(initial, explicit)
	if err := Form(&f).Run(); err != nil {
		return utilization.Reading{}, err
	}
	return f.Reading()
}
