// Package units wires github.com/bcicen/go-units into the ambiguous-measure
// corner of ingredient classification and into the CLI's human-readable unit
// descriptions. It never overrides Chef's own literal measure table; it
// only cross-checks it and records a warning when go-units disagrees.
package units

import (
	"fmt"
	"strings"

	goUnits "github.com/bcicen/go-units"
)

// chefMeasureName maps the measure spellings Chef's grammar accepts to the
// canonical unit names go-units recognises.
var chefMeasureName = map[string]string{
	"g": "Gram", "kg": "Kilogram",
	"ml": "Milliliter", "l": "Liter",
	"cup": "Cup", "cups": "Cup",
	"teaspoon": "Teaspoon", "teaspoons": "Teaspoon",
	"tablespoon": "Tablespoon", "tablespoons": "Tablespoon",
}

// Describe returns a short human label for a Chef measure word ("mass",
// "volume", or "unknown"), consulting go-units' unit registry. It is used
// only by the CLI's --detailed recipe dump; it never participates in
// parsing decisions.
func Describe(measure string) string {
	name, ok := chefMeasureName[strings.ToLower(measure)]
	if !ok {
		return "unknown"
	}
	u, err := goUnits.Find(name)
	if err != nil {
		return "unknown"
	}
	return strings.ToLower(u.Kind().String())
}

// CrossCheckAmbiguous reports whether go-units' own classification of one of
// Chef's ambiguous measures (cup, teaspoon, tablespoon) agrees that it is a
// volume unit. It returns a warning string (empty if no disagreement or the
// unit isn't recognised) suitable for surfacing through parser.Result's
// Warnings slice; it never changes the Flavor the parser assigns, since
// Chef's own rule for ambiguous measures is to leave flavor Unknown
// regardless of what any unit registry thinks.
func CrossCheckAmbiguous(measure string) (warning string) {
	name, ok := chefMeasureName[strings.ToLower(measure)]
	if !ok {
		return ""
	}
	u, err := goUnits.Find(name)
	if err != nil {
		return ""
	}
	kind := strings.ToLower(u.Kind().String())
	if kind != "volume" {
		return fmt.Sprintf(
			"measure %q is ambiguous in Chef but go-units classifies it as %s, not volume",
			measure, kind)
	}
	return ""
}

// Convert converts a quantity expressed in one Chef measure to another,
// using go-units' conversion tables. It is a CLI convenience (pretty-
// printing shopping-list-style totals), never invoked by the parser or
// evaluator.
func Convert(value float64, from, to string) (float64, error) {
	fromName, ok := chefMeasureName[strings.ToLower(from)]
	if !ok {
		return 0, fmt.Errorf("unrecognised measure %q", from)
	}
	toName, ok := chefMeasureName[strings.ToLower(to)]
	if !ok {
		return 0, fmt.Errorf("unrecognised measure %q", to)
	}
	fromUnit, err := goUnits.Find(fromName)
	if err != nil {
		return 0, fmt.Errorf("find unit %q: %w", fromName, err)
	}
	toUnit, err := goUnits.Find(toName)
	if err != nil {
		return 0, fmt.Errorf("find unit %q: %w", toName, err)
	}
	converted, err := goUnits.NewValue(value, fromUnit).Convert(toUnit)
	if err != nil {
		return 0, fmt.Errorf("convert %s to %s: %w", fromName, toName, err)
	}
	return converted.Float(), nil
}
