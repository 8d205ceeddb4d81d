// Package runtime implements Chef's evaluator: the mutable global ingredient
// table, the bowls and dishes, and the instruction dispatch loop, grounded on
// chef/interpreter.py's Interpreter class.
package runtime

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/kitchenscript/chef"
	cerrors "github.com/kitchenscript/chef/errors"
	"github.com/kitchenscript/chef/lexical"
)

// errHalt is an internal sentinel: Refrigerate is treated as an early exit
// that triggers the Serves output (if declared) and stops execution, per the
// chosen resolution of the source's unexecuted Refrigerate opcode.
var errHalt = errors.New("runtime: refrigerate halt")

// Evaluator executes a parsed *chef.Recipe against injected I/O
// collaborators. It owns all mutable evaluation state; nothing is shared
// across Evaluator instances.
type Evaluator struct {
	recipe *chef.Recipe

	globals *chef.Ingredients
	bowls   []*chef.Ingredients
	dishes  []*chef.Ingredients

	in  *bufio.Reader
	out *bufio.Writer

	shuffler     Shuffler
	loopEndCache map[int]int
}

// New returns an Evaluator ready to run recipe. in feeds Take; out receives
// Serves' bytes. A nil shuffler defaults to a process-seeded RNG.
func New(recipe *chef.Recipe, in io.Reader, out io.Writer, shuffler Shuffler) *Evaluator {
	if shuffler == nil {
		shuffler = NewRandShuffler(1)
	}
	globals := chef.NewIngredients()
	globals.Extend(recipe.Ingredients)
	return &Evaluator{
		recipe:       recipe,
		globals:      globals,
		bowls:        []*chef.Ingredients{chef.NewIngredients()},
		dishes:       []*chef.Ingredients{chef.NewIngredients()},
		in:           bufio.NewReader(in),
		out:          bufio.NewWriter(out),
		shuffler:     shuffler,
		loopEndCache: make(map[int]int),
	}
}

// Run executes the recipe's method to completion (or until a Refrigerate
// halts it early), then drains Serves if declared, and flushes output.
func (e *Evaluator) Run() error {
	instrs := e.recipe.Instructions
	err := e.run(instrs, 0, len(instrs)-1)
	if err == errHalt {
		return e.out.Flush()
	}
	if err != nil {
		return err
	}
	if err := e.serves(); err != nil {
		return err
	}
	return e.out.Flush()
}

// run executes instrs[start:end+1], resolving loop_start/loop_end pairs
// recursively so nested loops are bounded by an explicit span rather than
// unbounded recursion depth beyond the nesting the recipe itself declares.
func (e *Evaluator) run(instrs []chef.Instruction, start, end int) error {
	i := start
	for i <= end {
		switch v := instrs[i].(type) {
		case chef.LoopStartInstr:
			j, err := e.findLoopEnd(instrs, i, end, v.Verb)
			if err != nil {
				return err
			}
			for {
				ing, ok := e.globals.Lookup(v.Name)
				if !ok {
					return cerrors.UndefinedIngredient(v.Name, v.Lineno())
				}
				val, _ := ing.IntValue()
				if val == 0 {
					break
				}
				if err := e.run(instrs, i+1, j); err != nil {
					return err
				}
			}
			i = j + 1
		case chef.LoopEndInstr:
			if v.Name != "" {
				if err := e.decrement(v.Name, v.Lineno()); err != nil {
					return err
				}
			}
			i++
		default:
			if err := e.exec(instrs[i]); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

// findLoopEnd scans instrs[start+1:end+1] for the first loop_end whose
// past-participle agrees with verb, caching the result by start index.
func (e *Evaluator) findLoopEnd(instrs []chef.Instruction, start, end int, verb string) (int, error) {
	if j, ok := e.loopEndCache[start]; ok {
		return j, nil
	}
	for k := start + 1; k <= end; k++ {
		if le, ok := instrs[k].(chef.LoopEndInstr); ok && lexical.VerbsMatch(verb, le.PastParticiple) {
			e.loopEndCache[start] = k
			return k, nil
		}
	}
	return 0, cerrors.MissingLoopEnd(verb, instrs[start].Lineno())
}

func (e *Evaluator) exec(instr chef.Instruction) error {
	switch v := instr.(type) {
	case chef.TakeInstr:
		return e.execTake(v)
	case chef.BowlOp:
		switch v.Verb {
		case "put":
			return e.execPut(v)
		case "fold":
			return e.execFold(v)
		case "stir_ingredient":
			return e.execStirIngredient(v)
		default:
			return e.execArith(v)
		}
	case chef.AddDryInstr:
		return e.execAddDry(v)
	case chef.LiquefyIngredientInstr:
		return e.execLiquefyIngredient(v)
	case chef.BowlOnlyOp:
		switch v.Verb {
		case "liquefy_contents":
			return e.execLiquefyContents(v)
		case "mix":
			return e.execMix(v)
		case "clean":
			return e.execClean(v)
		}
	case chef.StirMinutesInstr:
		return e.execStirMinutes(v)
	case chef.PourInstr:
		return e.execPour(v)
	case chef.RefrigerateInstr:
		return e.execRefrigerate(v)
	}
	return nil
}

func idOrDefault(id *int) int {
	if id == nil {
		return 1
	}
	return *id
}

// resolveBowl implements §4.5's addressing rule. grow is true only for put,
// the sole operation allowed to auto-extend the bowl sequence.
func (e *Evaluator) resolveBowl(id *int, lineno int, grow bool) (*chef.Ingredients, error) {
	n := idOrDefault(id)
	if n < 1 {
		return nil, cerrors.InvalidContainerID("mixing bowl", n, lineno)
	}
	if n <= len(e.bowls) {
		return e.bowls[n-1], nil
	}
	if n == len(e.bowls)+1 && grow {
		b := chef.NewIngredients()
		e.bowls = append(e.bowls, b)
		return b, nil
	}
	return nil, cerrors.NonExistingContainer("mixing bowl", n, lineno)
}

func (e *Evaluator) resolveDish(id *int, lineno int) (*chef.Ingredients, error) {
	n := idOrDefault(id)
	if n < 1 {
		return nil, cerrors.InvalidContainerID("baking dish", n, lineno)
	}
	if n <= len(e.dishes) {
		return e.dishes[n-1], nil
	}
	return nil, cerrors.NonExistingContainer("baking dish", n, lineno)
}

func (e *Evaluator) execTake(instr chef.TakeInstr) error {
	line, rerr := e.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if rerr != nil && line == "" {
		return cerrors.InvalidInput("", instr.Lineno())
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return cerrors.InvalidInput(line, instr.Lineno())
	}
	existing, ok := e.globals.Lookup(instr.Name)
	if !ok {
		return cerrors.UndefinedIngredient(instr.Name, instr.Lineno())
	}
	existing.Props = existing.Props.WithValue(v)
	e.globals.Assign(existing)
	return nil
}

func (e *Evaluator) execPut(instr chef.BowlOp) error {
	ing, ok := e.globals.Lookup(instr.Name)
	if !ok {
		return cerrors.UndefinedIngredient(instr.Name, instr.Lineno())
	}
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), true)
	if err != nil {
		return err
	}
	bowl.Push(ing)
	return nil
}

func (e *Evaluator) execFold(instr chef.BowlOp) error {
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	top, ok := bowl.Pop()
	if !ok {
		return cerrors.EmptyContainer("mixing bowl", idOrDefault(instr.BowlID), instr.Lineno())
	}
	// Fold replaces the name-of-record with the operand name; the popped
	// ingredient's own name is discarded, not retained.
	e.globals.Assign(chef.Ingredient{Name: instr.Name, Props: top.Props})
	return nil
}

// floorDiv implements Chef's floor division, which Go's truncating "/" does
// not give for mixed-sign operands.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (e *Evaluator) execArith(instr chef.BowlOp) error {
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	top, ok := bowl.Top()
	if !ok {
		return cerrors.EmptyContainer("mixing bowl", idOrDefault(instr.BowlID), instr.Lineno())
	}
	operand, ok := e.globals.Lookup(instr.Name)
	if !ok {
		return cerrors.UndefinedIngredient(instr.Name, instr.Lineno())
	}
	bowlVal, _ := top.IntValue()
	opVal, _ := operand.IntValue()

	var result int
	switch instr.Verb {
	case "add":
		result = bowlVal + opVal
	case "remove":
		result = bowlVal - opVal
	case "combine":
		result = bowlVal * opVal
	case "divide":
		if opVal == 0 {
			result = 0
		} else {
			result = floorDiv(bowlVal, opVal)
		}
	}

	bowl.Pop()
	bowl.Push(chef.Ingredient{
		Name: instr.Name,
		Props: chef.IngredientProps{
			Value:  &result,
			Dry:    operand.Props.Dry,
			Liquid: operand.Props.Liquid,
		},
	})
	return nil
}

func (e *Evaluator) execAddDry(instr chef.AddDryInstr) error {
	sum := 0
	for _, ing := range e.globals.Items() {
		if ing.Props.Dry == chef.FlavorTrue {
			v, _ := ing.IntValue()
			sum += v
		}
	}
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	bowl.Push(chef.Ingredient{
		Name: "dry ingredients",
		Props: chef.IngredientProps{
			Value: &sum, Dry: chef.FlavorTrue, Liquid: chef.FlavorFalse,
		},
	})
	return nil
}

func (e *Evaluator) execLiquefyIngredient(instr chef.LiquefyIngredientInstr) error {
	ing, ok := e.globals.Lookup(instr.Name)
	if !ok {
		return cerrors.UndefinedIngredient(instr.Name, instr.Lineno())
	}
	ing.Props.Dry = chef.FlavorFalse
	ing.Props.Liquid = chef.FlavorTrue
	e.globals.Assign(ing)
	return nil
}

func (e *Evaluator) execLiquefyContents(instr chef.BowlOnlyOp) error {
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	items := bowl.Items()
	bowl.Clear()
	for _, it := range items {
		it.Props.Dry = chef.FlavorFalse
		it.Props.Liquid = chef.FlavorTrue
		bowl.Push(it)
	}
	return nil
}

func (e *Evaluator) execStirMinutes(instr chef.StirMinutesInstr) error {
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	bowl.Stir(instr.Minutes)
	return nil
}

func (e *Evaluator) execStirIngredient(instr chef.BowlOp) error {
	ing, ok := e.globals.Lookup(instr.Name)
	if !ok {
		return cerrors.UndefinedIngredient(instr.Name, instr.Lineno())
	}
	v, _ := ing.IntValue()
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	bowl.Stir(v)
	return nil
}

func (e *Evaluator) execMix(instr chef.BowlOnlyOp) error {
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	perm := e.shuffler.Shuffle(bowl.Len())
	bowl.Shuffle(perm)
	return nil
}

func (e *Evaluator) execClean(instr chef.BowlOnlyOp) error {
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	bowl.Clear()
	return nil
}

func (e *Evaluator) execPour(instr chef.PourInstr) error {
	bowl, err := e.resolveBowl(instr.BowlID, instr.Lineno(), false)
	if err != nil {
		return err
	}
	dish, err := e.resolveDish(instr.DishID, instr.Lineno())
	if err != nil {
		return err
	}
	dish.Extend(bowl)
	return nil
}

func (e *Evaluator) execRefrigerate(instr chef.RefrigerateInstr) error {
	if err := e.serves(); err != nil {
		return err
	}
	return errHalt
}

func (e *Evaluator) decrement(name string, lineno int) error {
	ing, ok := e.globals.Lookup(name)
	if !ok {
		return cerrors.UndefinedIngredient(name, lineno)
	}
	v, _ := ing.IntValue()
	ing.Props = ing.Props.WithValue(v - 1)
	e.globals.Assign(ing)
	return nil
}

// serves drains the first min(serves, len(dishes)) dishes, ascending id,
// each top-first, encoding liquid ingredients as a UTF-8 code point and
// everything else as decimal ASCII.
func (e *Evaluator) serves() error {
	if e.recipe.Serves == nil {
		return nil
	}
	n := *e.recipe.Serves
	if n > len(e.dishes) {
		n = len(e.dishes)
	}
	for k := 0; k < n; k++ {
		dish := e.dishes[k]
		for {
			ing, ok := dish.Pop()
			if !ok {
				break
			}
			if err := e.emit(ing); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Evaluator) emit(ing chef.Ingredient) error {
	v, _ := ing.IntValue()
	if ing.Props.Liquid == chef.FlavorTrue {
		_, err := e.out.WriteRune(rune(v))
		return err
	}
	_, err := e.out.WriteString(strconv.Itoa(v))
	return err
}
