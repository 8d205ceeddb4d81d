package errors

import "fmt"

// RuntimeError is the family of errors the evaluator can raise.
type RuntimeError struct {
	lineInfo
	Kind    string
	Message string
}

func (e *RuntimeError) Error() string {
	if line, ok := e.Lineno(); ok {
		return fmt.Sprintf("%s (line %d)", e.Message, line)
	}
	return e.Message
}

func runtimeErr(lineno int, kind, message string) *RuntimeError {
	return &RuntimeError{lineInfo: newLineInfo(lineno), Kind: kind, Message: message}
}

// InvalidInput is raised by Take when stdin's line isn't a signed decimal integer.
func InvalidInput(value string, lineno int) *RuntimeError {
	msg := fmt.Sprintf("invalid input: %q", value)
	return runtimeErr(lineno, "invalid_input", msg)
}

// UndefinedIngredient is raised when an instruction names a global that was
// never declared (or never assigned, for the rare operations that require
// that).
func UndefinedIngredient(name string, lineno int) *RuntimeError {
	msg := fmt.Sprintf("undefined ingredient: %q", name)
	return runtimeErr(lineno, "undefined_ingredient", msg)
}

// InvalidContainerID is raised when an ordinal bowl/dish id is less than 1.
func InvalidContainerID(kind string, id, lineno int) *RuntimeError {
	msg := fmt.Sprintf("invalid ordinal identifier for %s: %d", kind, id)
	return runtimeErr(lineno, "invalid_container_id", msg)
}

// NonExistingContainer is raised when an ordinal id addresses a bowl/dish
// beyond the current count and the operation does not auto-grow.
func NonExistingContainer(kind string, id, lineno int) *RuntimeError {
	msg := fmt.Sprintf("the %s #%d does not exist", kind, id)
	return runtimeErr(lineno, "non_existing_container", msg)
}

// EmptyContainer is raised by Pop/Top on an empty bowl.
func EmptyContainer(kind string, id, lineno int) *RuntimeError {
	msg := fmt.Sprintf("the %s #%d is empty", kind, id)
	return runtimeErr(lineno, "empty_container", msg)
}

// MissingLoopEnd is raised when a loop_start has no matching loop_end before
// the end of the program.
func MissingLoopEnd(verb string, lineno int) *RuntimeError {
	msg := fmt.Sprintf(
		"the loop with the verb %q does not have a matching until-statement to mark the end of the loop",
		verb)
	return runtimeErr(lineno, "missing_loop_end", msg)
}
