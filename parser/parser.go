// Package parser implements the line-oriented recursive-descent parser for
// Chef recipe source: a title, an optional ingredient list, optional cooking
// time and oven temperature declarations, a method, and an optional serves
// count, in that fixed order.
package parser

import (
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/kitchenscript/chef"
	cerrors "github.com/kitchenscript/chef/errors"
	"github.com/kitchenscript/chef/lexical"
	"github.com/kitchenscript/chef/validators"
)

// Parser parses Chef recipe source into a *chef.Recipe.
type Parser struct{}

// New returns a ready-to-use Parser.
func New() *Parser {
	return &Parser{}
}

// Result is the outcome of a successful parse: the recipe itself, plus any
// non-fatal warnings collected along the way (currently: go-units
// disagreeing with Chef's own classification of an ambiguous measure). A
// Warnings entry never changes Recipe; it is purely diagnostic.
type Result struct {
	Recipe   *chef.Recipe
	Warnings []string
}

// ParseString parses a recipe held in a string.
func (p *Parser) ParseString(input string) (*Result, error) {
	return p.parse(strings.NewReader(input))
}

// ParseBytes parses a recipe held in a byte slice.
func (p *Parser) ParseBytes(input []byte) (*Result, error) {
	return p.parse(bytes.NewReader(input))
}

// ParseReader parses a recipe read from r.
func (p *Parser) ParseReader(r io.Reader) (*Result, error) {
	return p.parse(r)
}

var ordinalPattern = regexp.MustCompile(`^([1-9][0-9]*)(st|nd|rd|th)$`)

// parseOrdinal parses a "1st"/"2nd"/... token, validating English concord.
func parseOrdinal(token string, lineno int) (int, error) {
	m := ordinalPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, cerrors.OrdinalIdentifierError(token, lineno)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, cerrors.OrdinalIdentifierError(token, lineno)
	}
	if err := validators.ValidateOrdinalSuffix(n, m[2], lineno); err != nil {
		return 0, err
	}
	return n, nil
}

type parseState struct {
	warnings []string
}

// parse drives the recipe grammar in its fixed order: a title paragraph, an
// optional freestanding comment paragraph, then the optional Ingredients,
// cooking-time, and oven-temperature paragraphs in that sequence, the
// mandatory Method paragraph, and an optional trailing Serves line.
func (p *Parser) parse(r io.Reader) (*Result, error) {
	pr := lexical.NewParagraphReader(r)
	st := &parseState{}

	title, _, err := pr.ReadParagraph()
	if err != nil {
		return nil, cerrors.MissingTitle()
	}
	if strings.Contains(title, "\n") {
		return nil, cerrors.MissingEmptyLine(2)
	}
	if err := validators.ValidateTitle(title); err != nil {
		return nil, err
	}

	recipe := &chef.Recipe{Ingredients: chef.NewIngredients()}

	par, startLine, rerr := pr.ReadParagraph()
	if rerr == io.EOF {
		return nil, cerrors.MissingMethod(startLine)
	}
	firstLine := firstLineOf(par)

	// (CommentParagraph BlankLine)? — a single freestanding paragraph that
	// is none of the recognised section headers is tolerated once, right
	// after the title, and otherwise ignored.
	if firstLine != "Ingredients." && firstLine != "Method." &&
		!isCookingTimeLine(firstLine) && !isOvenTemperatureLine(firstLine) {
		par, startLine, rerr = pr.ReadParagraph()
		if rerr == io.EOF {
			return nil, cerrors.MissingMethod(startLine)
		}
		firstLine = firstLineOf(par)
	}

	if firstLine == "Ingredients." {
		rest := strings.TrimPrefix(par, "Ingredients.\n")
		ingredients, werr := parseIngredientBlock(rest, startLine+1)
		if werr != nil {
			return nil, werr
		}
		recipe.Ingredients = ingredients.table
		st.warnings = append(st.warnings, ingredients.warnings...)

		par, startLine, rerr = pr.ReadParagraph()
		if rerr == io.EOF {
			return nil, cerrors.MissingMethod(startLine)
		}
		firstLine = firstLineOf(par)
	}

	if isCookingTimeLine(firstLine) {
		ct, werr := parseCookingTimeLine(firstLine, startLine)
		if werr != nil {
			return nil, werr
		}
		recipe.CookingTime = ct

		par, startLine, rerr = pr.ReadParagraph()
		if rerr == io.EOF {
			return nil, cerrors.MissingMethod(startLine)
		}
		firstLine = firstLineOf(par)
	}

	if isOvenTemperatureLine(firstLine) {
		ot, werr := parseOvenTemperatureLine(firstLine, startLine)
		if werr != nil {
			return nil, werr
		}
		recipe.OvenTemperature = ot

		par, startLine, rerr = pr.ReadParagraph()
		if rerr == io.EOF {
			return nil, cerrors.MissingMethod(startLine)
		}
		firstLine = firstLineOf(par)
	}

	if firstLine != "Method." {
		return nil, cerrors.InvalidCommand(firstLine, startLine)
	}

	body := strings.TrimPrefix(par, "Method.\n")
	instrs, werr := parseMethodBody(body, startLine+1)
	if werr != nil {
		return nil, werr
	}
	recipe.Instructions = instrs

	serves, werr := parseServesIfPresent(pr)
	if werr != nil {
		return nil, werr
	}
	recipe.Serves = serves
	return &Result{Recipe: recipe, Warnings: st.warnings}, nil
}

func firstLineOf(paragraph string) string {
	if i := strings.IndexByte(paragraph, '\n'); i >= 0 {
		return paragraph[:i]
	}
	return paragraph
}

// parseServesIfPresent consumes at most one trailing paragraph after the
// Method. A clean EOF is fine (Serves is optional); anything else that
// follows the Method must be a valid Serves line, and nothing may follow
// that — mirroring chef/parser.py's `rest = f.read(); assert rest == ''`
// check at the very end of parsing.
func parseServesIfPresent(pr *lexical.ParagraphReader) (*int, error) {
	par, startLine, err := pr.ReadParagraph()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !isServesLine(par) {
		return nil, cerrors.TrailingContent(startLine)
	}
	v, werr := parseServesLine(par, startLine)
	if werr != nil {
		return nil, werr
	}
	_, nextLine, nerr := pr.ReadParagraph()
	if nerr == io.EOF {
		return &v, nil
	}
	if nerr != nil {
		return nil, nerr
	}
	return nil, cerrors.TrailingContent(nextLine)
}

var servesPattern = regexp.MustCompile(`^Serves ([1-9][0-9]*)\.$`)

func isServesLine(line string) bool {
	return servesPattern.MatchString(line)
}

func parseServesLine(line string, lineno int) (int, error) {
	m := servesPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, cerrors.InvalidCommand("Serves", lineno)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, cerrors.InvalidCommand("Serves", lineno)
	}
	return n, nil
}
