package errors

import "fmt"

// SyntaxError is the family of errors the parser can raise. A
// *SyntaxError always satisfies ChefError.
type SyntaxError struct {
	lineInfo
	Kind    string
	Message string
}

func (e *SyntaxError) Error() string {
	if line, ok := e.Lineno(); ok {
		return fmt.Sprintf("%s (line %d)", e.Message, line)
	}
	return e.Message
}

func syntaxErr(lineno int, kind, message string) *SyntaxError {
	return &SyntaxError{lineInfo: newLineInfo(lineno), Kind: kind, Message: message}
}

// MissingTitle is raised when the recipe's first line is empty.
func MissingTitle() *SyntaxError {
	return syntaxErr(1, "missing_title", "missing title")
}

// MissingTrailingFullStop is raised when the title does not end in ".".
func MissingTrailingFullStop(lineno int) *SyntaxError {
	return syntaxErr(lineno, "missing_trailing_full_stop", "missing trailing full stop")
}

// MissingEmptyLine is raised when a paragraph separator blank line is absent.
func MissingEmptyLine(lineno int) *SyntaxError {
	return syntaxErr(lineno, "missing_empty_line", "missing empty line")
}

// InvalidCookingTime is raised when the cooking-time line fails to parse.
func InvalidCookingTime(lineno int) *SyntaxError {
	return syntaxErr(lineno, "invalid_cooking_time", "invalid cooking time")
}

// InvalidOvenTemperature is raised when the oven-temperature line fails to parse.
func InvalidOvenTemperature(lineno int) *SyntaxError {
	return syntaxErr(lineno, "invalid_oven_temperature", "invalid oven temperature")
}

// InvalidMeasureTypeValue is raised when measure_type isn't "heaped"/"level".
func InvalidMeasureTypeValue(measureType string, lineno int) *SyntaxError {
	msg := fmt.Sprintf(
		"invalid measure type value (%q); only the values \"heaped\" and \"level\" are allowed",
		measureType)
	return syntaxErr(lineno, "invalid_measure_type_value", msg)
}

// NonMatchingMeasureType is raised when measure_type and measure don't pair up.
func NonMatchingMeasureType(measure, measureType string, lineno int) *SyntaxError {
	msg := fmt.Sprintf(
		"the measure %q and the measure type %q do not form a valid measure declaration",
		measure, measureType)
	return syntaxErr(lineno, "non_matching_measure_type", msg)
}

// NotAllowedTime is raised when a cooking/refrigeration time is non-positive.
func NotAllowedTime(value, lineno int) *SyntaxError {
	msg := fmt.Sprintf("the time %d is too low; only positive values are allowed", value)
	return syntaxErr(lineno, "not_allowed_time", msg)
}

// OrdinalIdentifierError is raised when a token isn't a number+suffix at all.
func OrdinalIdentifierError(identifier string, lineno int) *SyntaxError {
	msg := fmt.Sprintf("not a valid ordinal identifier: %q", identifier)
	return syntaxErr(lineno, "ordinal_identifier", msg)
}

// NonMatchingSuffix is raised when the number and suffix don't agree in English.
func NonMatchingSuffix(number int, suffix string, lineno int) *SyntaxError {
	msg := fmt.Sprintf(
		"the number %d and the suffix %q do not form a valid ordinal identifier", number, suffix)
	return syntaxErr(lineno, "non_matching_suffix", msg)
}

// NonMatchingUnit is raised when a cooking-time value and its hour/minute
// unit disagree in number.
func NonMatchingUnit(number int, unit string, lineno int) *SyntaxError {
	msg := fmt.Sprintf(
		"the number %d and the unit %q do not form a valid cooking time", number, unit)
	return syntaxErr(lineno, "non_matching_unit", msg)
}

// InvalidTimeDeclaration is raised when refrigeration hours/unit disagree in number.
func InvalidTimeDeclaration(hours int, format string, lineno int) *SyntaxError {
	msg := fmt.Sprintf("invalid time declaration: '%d %s'", hours, format)
	return syntaxErr(lineno, "invalid_time_declaration", msg)
}

// InvalidCommand is raised when an instruction's statement doesn't match its
// opcode's grammar, or the leading verb isn't a recognised opcode or a valid
// loop open/close.
func InvalidCommand(command string, lineno int) *SyntaxError {
	msg := fmt.Sprintf("invalid command %q", command)
	return syntaxErr(lineno, "invalid_command", msg)
}

// MissingMethod is raised when a recipe has no Method. paragraph.
func MissingMethod(lineno int) *SyntaxError {
	return syntaxErr(lineno, "missing_method", "missing method section")
}

// TrailingContent is raised when non-blank content follows the recipe's
// final recognised paragraph.
func TrailingContent(lineno int) *SyntaxError {
	return syntaxErr(lineno, "trailing_content", "unexpected content after recipe end")
}
