package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kitchenscript/chef"
	cerrors "github.com/kitchenscript/chef/errors"
	"github.com/kitchenscript/chef/units"
	"github.com/kitchenscript/chef/validators"
)

var dryMeasures = map[string]bool{
	"g": true, "kg": true, "pinch": true, "pinches": true,
}

var liquidMeasures = map[string]bool{
	"ml": true, "l": true, "dash": true, "dashes": true,
}

var ambiguousMeasures = map[string]bool{
	"cup": true, "cups": true, "teaspoon": true, "teaspoons": true,
	"tablespoon": true, "tablespoons": true,
}

func isMeasureToken(tok string) bool {
	return dryMeasures[tok] || liquidMeasures[tok] || ambiguousMeasures[tok]
}

// ingredientLinePattern captures, in order: an optional leading integer, an
// optional "heaped"/"level" measure type, an optional measure word, and the
// (mandatory) remaining name.
var ingredientLinePattern = regexp.MustCompile(
	`^(?:([0-9]+)\s+)?(?:(heaped|level)\s+)?(?:([a-z]+)\s+)?(.+)$`,
)

type ingredientBlockResult struct {
	table    *chef.Ingredients
	warnings []string
}

// parseIngredientBlock parses the body of an Ingredients. paragraph (one
// declaration per line) into an ordered ingredient table. A name repeated
// across lines has its later declaration win, per §8's boundary test.
func parseIngredientBlock(body string, startLine int) (*ingredientBlockResult, error) {
	res := &ingredientBlockResult{table: chef.NewIngredients()}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lineno := startLine + i
		ing, warning, err := parseIngredientLine(line, lineno)
		if err != nil {
			return nil, err
		}
		if warning != "" {
			res.warnings = append(res.warnings, warning)
		}
		res.table.Assign(ing)
	}
	return res, nil
}

func parseIngredientLine(line string, lineno int) (chef.Ingredient, string, error) {
	m := ingredientLinePattern.FindStringSubmatch(line)
	if m == nil || m[4] == "" {
		return chef.Ingredient{}, "", cerrors.InvalidCommand("ingredient", lineno)
	}

	valueTok, measureType, measureTok, name := m[1], m[2], m[3], m[4]

	// A bare word preceding the name that is not a recognised measure is
	// actually part of the name (e.g. "red pepper"); only consume it as a
	// measure token when it's one of Chef's known measure words.
	if measureTok != "" && !isMeasureToken(measureTok) {
		name = strings.TrimSpace(measureTok + " " + name)
		measureTok = ""
	}

	if measureType != "" {
		if err := validators.ValidateMeasureType(measureTok, measureType, lineno); err != nil {
			return chef.Ingredient{}, "", err
		}
	}

	var value *int
	if valueTok != "" {
		n, err := strconv.Atoi(valueTok)
		if err != nil {
			return chef.Ingredient{}, "", cerrors.InvalidCommand("ingredient", lineno)
		}
		value = &n
	}

	props := chef.IngredientProps{Value: value, Measure: measureTok}
	var warning string

	switch {
	case measureType != "":
		props.Dry = chef.FlavorTrue
		props.Liquid = chef.FlavorFalse
	case measureTok == "":
		props.Dry = chef.FlavorFalse
		props.Liquid = chef.FlavorFalse
	case dryMeasures[measureTok]:
		props.Dry = chef.FlavorTrue
		props.Liquid = chef.FlavorFalse
	case liquidMeasures[measureTok]:
		props.Dry = chef.FlavorFalse
		props.Liquid = chef.FlavorTrue
	case ambiguousMeasures[measureTok]:
		props.Dry = chef.FlavorUnknown
		props.Liquid = chef.FlavorUnknown
		warning = units.CrossCheckAmbiguous(measureTok)
	}

	return chef.Ingredient{Name: name, Props: props}, warning, nil
}
