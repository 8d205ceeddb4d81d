// Package validators holds the pure predicates the parser calls to enforce
// Chef's English-concord grammar rules: ordinal suffixes, measure/
// measure-type agreement, and cooking-time/refrigeration plural agreement.
// Each validator either returns nil or a *errors.SyntaxError describing
// exactly which rule failed, grounded on chef/validators.py.
package validators

import (
	"strconv"
	"strings"

	cerrors "github.com/kitchenscript/chef/errors"
)

// ValidateTitle checks that title is non-empty and ends in a full stop.
func ValidateTitle(title string) error {
	if title == "" {
		return cerrors.MissingTitle()
	}
	if !strings.HasSuffix(title, ".") {
		return cerrors.MissingTrailingFullStop(1)
	}
	return nil
}

// ValidateOrdinalSuffix checks English concord between a number and its
// ordinal suffix (st/nd/rd/th).
func ValidateOrdinalSuffix(number int, suffix string, lineno int) error {
	numStr := strconv.Itoa(number)
	lastDigit := numStr[len(numStr)-1]
	switch suffix {
	case "st":
		if !(number != 11 && lastDigit == '1') {
			return cerrors.NonMatchingSuffix(number, suffix, lineno)
		}
	case "nd":
		if !(number != 12 && lastDigit == '2') {
			return cerrors.NonMatchingSuffix(number, suffix, lineno)
		}
	case "rd":
		if !(number != 13 && lastDigit == '3') {
			return cerrors.NonMatchingSuffix(number, suffix, lineno)
		}
	default: // "th"
		if !(number == 11 || number == 12 || number == 13 ||
			(lastDigit != '1' && lastDigit != '2' && lastDigit != '3')) {
			return cerrors.NonMatchingSuffix(number, suffix, lineno)
		}
	}
	return nil
}

// measureTypeValues are the only measures a "heaped"/"level" measure-type
// may qualify.
var measureTypeValues = map[string]bool{
	"pinch": true, "pinches": true,
	"cup": true, "cups": true,
	"teaspoon": true, "teaspoons": true,
	"tablespoon": true, "tablespoons": true,
}

// ValidateMeasureType checks that measureType is "heaped" or "level", and
// that measure is one of the dry-or-ambiguous measures that may carry a
// measure type.
func ValidateMeasureType(measure, measureType string, lineno int) error {
	if measureType != "heaped" && measureType != "level" {
		return cerrors.InvalidMeasureTypeValue(measureType, lineno)
	}
	if !measureTypeValues[measure] {
		return cerrors.NonMatchingMeasureType(measure, measureType, lineno)
	}
	return nil
}

// ValidateCookingTime checks that time is a positive integer and that unit
// agrees with it in number ("1 minute" / "2 minutes", never "1 minutes").
func ValidateCookingTime(value int, unit string, lineno int) error {
	if value < 1 {
		return cerrors.NotAllowedTime(value, lineno)
	}
	plural := strings.HasSuffix(unit, "s")
	if (value == 1 && plural) || (value > 1 && !plural) {
		return cerrors.NonMatchingUnit(value, unit, lineno)
	}
	return nil
}

// ValidateTimeDeclaration checks plural concord for a refrigeration hours
// declaration. A nil hours (no "for N hours" clause at all) is always valid.
func ValidateTimeDeclaration(hours *int, format string, lineno int) error {
	if hours == nil {
		return nil
	}
	h := *hours
	if (h == 1 && format == "hours") || (h > 1 && format == "hour") {
		return cerrors.InvalidTimeDeclaration(h, format, lineno)
	}
	return nil
}
