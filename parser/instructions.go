package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kitchenscript/chef"
	cerrors "github.com/kitchenscript/chef/errors"
	"github.com/kitchenscript/chef/validators"
)

var cookingTimePattern = regexp.MustCompile(
	`^Cooking time: ([0-9]+) (hours?|minutes?)\.$`,
)

func isCookingTimeLine(line string) bool {
	return cookingTimePattern.MatchString(line)
}

func parseCookingTimeLine(line string, lineno int) (*chef.CookingTime, error) {
	m := cookingTimePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, cerrors.InvalidCookingTime(lineno)
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, cerrors.InvalidCookingTime(lineno)
	}
	if err := validators.ValidateCookingTime(value, m[2], lineno); err != nil {
		return nil, err
	}
	return &chef.CookingTime{Value: value, Unit: chef.TimeUnit(m[2])}, nil
}

var ovenTemperaturePattern = regexp.MustCompile(
	`^Pre-heat oven to ([0-9]+) degrees Celsius(?: \(gas mark ([0-9]+)\))?\.$`,
)

func isOvenTemperatureLine(line string) bool {
	return ovenTemperaturePattern.MatchString(line)
}

func parseOvenTemperatureLine(line string, lineno int) (*chef.OvenTemperature, error) {
	m := ovenTemperaturePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, cerrors.InvalidOvenTemperature(lineno)
	}
	celsius, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, cerrors.InvalidOvenTemperature(lineno)
	}
	ot := &chef.OvenTemperature{Celsius: celsius}
	if m[2] != "" {
		gasMark, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, cerrors.InvalidOvenTemperature(lineno)
		}
		ot.GasMark = &gasMark
	}
	return ot, nil
}

// parseMethodBody parses one instruction per non-blank line of the Method
// paragraph's body (the "Method.\n" header already stripped), grounded on
// chef/parser.py's parse_method/parse_instruction dispatch.
func parseMethodBody(body string, startLine int) ([]chef.Instruction, error) {
	var instrs []chef.Instruction
	for i, line := range strings.Split(body, "\n") {
		if line == "" {
			continue
		}
		lineno := startLine + i
		instr, err := parseInstructionLine(line, lineno)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, instr)
	}
	return instrs, nil
}

func parseInstructionLine(line string, lineno int) (chef.Instruction, error) {
	verb, statement, ok := strings.Cut(line, " ")
	if !ok {
		return nil, cerrors.InvalidCommand(line, lineno)
	}

	switch verb {
	case "Take":
		return parseTake(statement, lineno)
	case "Put":
		return parseIngredientIntoBowl("Put", "put", "into", statement, lineno)
	case "Fold":
		return parseIngredientIntoBowl("Fold", "fold", "into", statement, lineno)
	case "Add":
		return parseAdd(statement, lineno)
	case "Remove":
		return parseIngredientOptionalBowl("Remove", "remove", "from", statement, lineno)
	case "Combine":
		return parseIngredientOptionalBowl("Combine", "combine", "into", statement, lineno)
	case "Divide":
		return parseIngredientOptionalBowl("Divide", "divide", "into", statement, lineno)
	case "Liquefy":
		return parseLiquefyContents(statement, lineno)
	case "Stir":
		return parseStir(statement, lineno)
	case "Mix":
		return parseMix(statement, lineno)
	case "Clean":
		return parseClean(statement, lineno)
	case "Pour":
		return parsePour(statement, lineno)
	case "Refrigerate":
		return parseRefrigerate(statement, lineno)
	default:
		return parseLoop(verb, statement, lineno)
	}
}

// ordToken matches a bare ordinal identifier like "21st" as a single token,
// for embedding inside larger statement patterns; parseOrdinal re-validates
// English concord on the captured text.
const ordToken = `[1-9][0-9]*(?:st|nd|rd|th)`

func optionalOrdinal(token string, lineno int) (*int, error) {
	if token == "" {
		return nil, nil
	}
	n, err := parseOrdinal(token, lineno)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

var takePattern = regexp.MustCompile(`^(.+?) from refrigerator\.$`)

func parseTake(statement string, lineno int) (chef.Instruction, error) {
	m := takePattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand("Take", lineno)
	}
	instr := chef.TakeInstr{Name: m[1]}
	instr.Line = lineno
	return instr, nil
}

// parseIngredientIntoBowl handles the mandatory "ingredient PREP [ordinal]
// mixing bowl." form used by Put and Fold.
func parseIngredientIntoBowl(cmd, opcode, preposition, statement string, lineno int) (chef.Instruction, error) {
	pattern := regexp.MustCompile(
		`^(.+?) ` + preposition + ` (?:(` + ordToken + `) )?mixing bowl\.$`)
	m := pattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand(cmd, lineno)
	}
	bowlID, err := optionalOrdinal(m[2], lineno)
	if err != nil {
		return nil, err
	}
	instr := chef.BowlOp{Verb: opcode, Name: m[1], BowlID: bowlID}
	instr.Line = lineno
	return instr, nil
}

// parseIngredientOptionalBowl handles "ingredient [PREP [ordinal] mixing
// bowl]." used by Remove/Combine/Divide and, as a fallback, Add.
func parseIngredientOptionalBowl(cmd, opcode, preposition, statement string, lineno int) (chef.Instruction, error) {
	withBowl := regexp.MustCompile(
		`^(.+?) ` + preposition + ` (?:(` + ordToken + `) )?mixing bowl\.$`)
	if m := withBowl.FindStringSubmatch(statement); m != nil {
		bowlID, err := optionalOrdinal(m[2], lineno)
		if err != nil {
			return nil, err
		}
		instr := chef.BowlOp{Verb: opcode, Name: m[1], BowlID: bowlID}
		instr.Line = lineno
		return instr, nil
	}
	bare := regexp.MustCompile(`^(.+?)\.$`)
	m := bare.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand(cmd, lineno)
	}
	instr := chef.BowlOp{Verb: opcode, Name: m[1]}
	instr.Line = lineno
	return instr, nil
}

var addDryPattern = regexp.MustCompile(
	`^dry ingredients(?: to (` + ordToken + `) mixing bowl)?\.$`,
)

func parseAdd(statement string, lineno int) (chef.Instruction, error) {
	if m := addDryPattern.FindStringSubmatch(statement); m != nil {
		bowlID, err := optionalOrdinal(m[1], lineno)
		if err != nil {
			return nil, err
		}
		instr := chef.AddDryInstr{BowlID: bowlID}
		instr.Line = lineno
		return instr, nil
	}
	if strings.HasPrefix(statement, "dry ingredients") {
		return nil, cerrors.InvalidCommand("Add dry", lineno)
	}
	return parseIngredientOptionalBowl("Add", "add", "to", statement, lineno)
}

var liquefyIngredientPattern = regexp.MustCompile(`^(.+?)\.$`)

func parseLiquefyIngredient(statement string, lineno int) (chef.Instruction, error) {
	m := liquefyIngredientPattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand("Liquefy", lineno)
	}
	instr := chef.LiquefyIngredientInstr{Name: m[1]}
	instr.Line = lineno
	return instr, nil
}

var liquefyContentsPattern = regexp.MustCompile(
	`^contents of the(?: (` + ordToken + `))? mixing bowl\.$`,
)

func parseLiquefyContents(statement string, lineno int) (chef.Instruction, error) {
	m := liquefyContentsPattern.FindStringSubmatch(statement)
	if m == nil {
		return parseLiquefyIngredient(statement, lineno)
	}
	bowlID, err := optionalOrdinal(m[1], lineno)
	if err != nil {
		return nil, err
	}
	instr := chef.BowlOnlyOp{Verb: "liquefy_contents", BowlID: bowlID}
	instr.Line = lineno
	return instr, nil
}

var stirMinutesPattern = regexp.MustCompile(
	`^(?:the(?: (` + ordToken + `))? mixing bowl )?for ([0-9]+) minutes\.$`,
)

func parseStirMinutes(statement string, lineno int) (chef.Instruction, error) {
	m := stirMinutesPattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand("Stir", lineno)
	}
	bowlID, err := optionalOrdinal(m[1], lineno)
	if err != nil {
		return nil, err
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, cerrors.InvalidCommand("Stir", lineno)
	}
	instr := chef.StirMinutesInstr{BowlID: bowlID, Minutes: minutes}
	instr.Line = lineno
	return instr, nil
}

var stirIngredientPattern = regexp.MustCompile(
	`^(.+?) into the(?: (` + ordToken + `))? mixing bowl\.$`,
)

func parseStirIngredient(statement string, lineno int) (chef.Instruction, error) {
	m := stirIngredientPattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand("Stir", lineno)
	}
	bowlID, err := optionalOrdinal(m[2], lineno)
	if err != nil {
		return nil, err
	}
	instr := chef.BowlOp{Verb: "stir_ingredient", Name: m[1], BowlID: bowlID}
	instr.Line = lineno
	return instr, nil
}

// parseStir dispatches on the statement's first word, mirroring
// chef/parser.py's parse_stir: "the"/"for" mean the fixed-duration form,
// anything else is an ingredient name for the rotate-by-value form.
func parseStir(statement string, lineno int) (chef.Instruction, error) {
	first, _, _ := strings.Cut(statement, " ")
	if first == "the" || first == "for" {
		return parseStirMinutes(statement, lineno)
	}
	return parseStirIngredient(statement, lineno)
}

var mixPattern = regexp.MustCompile(
	`^(?:the(?: (` + ordToken + `))? mixing bowl )?well\.$`,
)

func parseMix(statement string, lineno int) (chef.Instruction, error) {
	m := mixPattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand("Mix", lineno)
	}
	bowlID, err := optionalOrdinal(m[1], lineno)
	if err != nil {
		return nil, err
	}
	instr := chef.BowlOnlyOp{Verb: "mix", BowlID: bowlID}
	instr.Line = lineno
	return instr, nil
}

var cleanPattern = regexp.MustCompile(`^(?:(` + ordToken + `) )?mixing bowl\.$`)

func parseClean(statement string, lineno int) (chef.Instruction, error) {
	m := cleanPattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand("Clean", lineno)
	}
	bowlID, err := optionalOrdinal(m[1], lineno)
	if err != nil {
		return nil, err
	}
	instr := chef.BowlOnlyOp{Verb: "clean", BowlID: bowlID}
	instr.Line = lineno
	return instr, nil
}

var pourPattern = regexp.MustCompile(
	`^contents of the(?: (` + ordToken + `))? mixing bowl into the(?: (` + ordToken + `))? baking dish\.$`,
)

func parsePour(statement string, lineno int) (chef.Instruction, error) {
	m := pourPattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand("Pour", lineno)
	}
	bowlID, err := optionalOrdinal(m[1], lineno)
	if err != nil {
		return nil, err
	}
	dishID, err := optionalOrdinal(m[2], lineno)
	if err != nil {
		return nil, err
	}
	instr := chef.PourInstr{BowlID: bowlID, DishID: dishID}
	instr.Line = lineno
	return instr, nil
}

var refrigeratePattern = regexp.MustCompile(`^(?:for ([1-9][0-9]*) (hours?))?\.$`)

func parseRefrigerate(statement string, lineno int) (chef.Instruction, error) {
	m := refrigeratePattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand("Refrigerate", lineno)
	}
	var hours *int
	if m[1] != "" {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, cerrors.InvalidCommand("Refrigerate", lineno)
		}
		hours = &h
		if err := validators.ValidateTimeDeclaration(hours, m[2], lineno); err != nil {
			return nil, err
		}
	}
	instr := chef.RefrigerateInstr{Hours: hours}
	instr.Line = lineno
	return instr, nil
}

var loopStartPattern = regexp.MustCompile(`^the (.+?)\.$`)
var loopEndPattern = regexp.MustCompile(`^(?:the (.+?) )?until ([a-z]+ed)\.$`)

func parseLoopStart(verb, statement string, lineno int) (chef.Instruction, error) {
	m := loopStartPattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand(verb, lineno)
	}
	instr := chef.LoopStartInstr{Verb: verb, Name: m[1]}
	instr.Line = lineno
	return instr, nil
}

func parseLoopEnd(verb, statement string, lineno int) (chef.Instruction, error) {
	m := loopEndPattern.FindStringSubmatch(statement)
	if m == nil {
		return nil, cerrors.InvalidCommand(verb, lineno)
	}
	instr := chef.LoopEndInstr{PastParticiple: m[2], Name: m[1]}
	instr.Line = lineno
	return instr, nil
}

// parseLoop tries the loop_end ("until ...") form first since it is a
// strict superset of the loop_start form's leading words; on any unknown
// verb that matches neither, the line is an invalid command.
func parseLoop(verb, statement string, lineno int) (chef.Instruction, error) {
	if instr, err := parseLoopEnd(verb, statement, lineno); err == nil {
		return instr, nil
	}
	if instr, err := parseLoopStart(verb, statement, lineno); err == nil {
		return instr, nil
	}
	return nil, cerrors.InvalidCommand(verb, lineno)
}
