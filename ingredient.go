package chef

// Flavor is a tri-state flag: an ingredient's dryness or liquidity is either
// known true, known false, or Unknown until later resolved by a Liquefy
// instruction. Modelling this as a three-valued enum instead of a pair of
// booleans is deliberate: the ambiguous measures (cup, teaspoon, tablespoon)
// are neither dry nor liquid until the recipe says otherwise.
type Flavor int

const (
	FlavorFalse Flavor = iota
	FlavorTrue
	FlavorUnknown
)

func (f Flavor) String() string {
	switch f {
	case FlavorTrue:
		return "true"
	case FlavorFalse:
		return "false"
	default:
		return "unknown"
	}
}

// IngredientProps is the value-side of an ingredient: its quantity and
// flavor. Value is nil when the ingredient was declared without an initial
// quantity; that is a distinct state from a present value of 0.
type IngredientProps struct {
	Value  *int
	Dry    Flavor
	Liquid Flavor

	// Measure is the declaration's original measure word ("g", "ml", "cup"),
	// or empty when the ingredient was declared without one. It plays no
	// part in evaluation; the CLI's detailed recipe dump uses it to show
	// units.Describe's classification alongside Dry/Liquid.
	Measure string
}

// IntValue returns the props's value and whether it is present.
func (p IngredientProps) IntValue() (int, bool) {
	if p.Value == nil {
		return 0, false
	}
	return *p.Value, true
}

// WithValue returns a copy of p with the value replaced, flavor untouched.
func (p IngredientProps) WithValue(v int) IngredientProps {
	p.Value = &v
	return p
}

// Ingredient is a named value with its flavor metadata. Names are not unique
// within a bowl or dish once the evaluator starts pushing copies around;
// uniqueness is only an invariant of the parser-declared global table.
type Ingredient struct {
	Name  string
	Props IngredientProps
}

// IntValue returns the ingredient's value and whether it is present.
func (i Ingredient) IntValue() (int, bool) {
	return i.Props.IntValue()
}
