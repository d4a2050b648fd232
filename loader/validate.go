package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/aventura/engine/entity"
	"github.com/nathoo/aventura/types"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Validate checks the structure of decoded world data. Missing locations or
// items, empty names, duplicate names, characters without a description and
// an unknown start are errors.
// Dangling takes_to targets and unknown item types are only warnings; the
// world still plays.
func Validate(data *types.WorldData) ([]string, error) {
	ve := &ValidationError{}
	var warnings []string

	if len(data.Locations) == 0 {
		ve.Errors = append(ve.Errors, "world has no locations")
	}
	if len(data.Items) == 0 {
		ve.Errors = append(ve.Errors, "world has no items")
	}

	locations := map[string]bool{}
	for i, loc := range data.Locations {
		if strings.TrimSpace(loc.Name) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("location #%d has an empty name", i+1))
			continue
		}
		if locations[loc.Name] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate location %q", loc.Name))
		}
		locations[loc.Name] = true
	}

	if data.Start != "" && !locations[data.Start] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start location %q not found in defined locations", data.Start))
	}

	for _, loc := range data.Locations {
		for _, dest := range loc.TakesTo {
			if !locations[dest] {
				warnings = append(warnings, fmt.Sprintf(
					"location %q leads to undefined location %q", loc.Name, dest))
			}
		}
	}

	items := map[string]bool{}
	for i, it := range data.Items {
		if strings.TrimSpace(it.Name) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("item #%d has an empty name", i+1))
			continue
		}
		if items[it.Name] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate item %q", it.Name))
		}
		items[it.Name] = true
		if it.Type != "" && !entity.KnownItemType(it.Type) {
			warnings = append(warnings, fmt.Sprintf(
				"item %q has unknown type %q, treated as generic", it.Name, it.Type))
		}
	}

	characters := map[string]bool{}
	for i, c := range data.Characters {
		if strings.TrimSpace(c.Name) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("character #%d has an empty name", i+1))
			continue
		}
		if characters[c.Name] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate character %q", c.Name))
		}
		characters[c.Name] = true
		if strings.TrimSpace(c.Description) == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("character %q has an empty description", c.Name))
		}
	}

	if len(ve.Errors) > 0 {
		return warnings, ve
	}
	return warnings, nil
}
