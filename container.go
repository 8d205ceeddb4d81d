package chef

import "encoding/json"

// Ingredients is the ordered, stack-like container used for the global
// ingredient table as well as every mixing bowl and baking dish. It is
// grounded on the same shape as the Python source's Ingredients(list)
// subclass: positional order with name-keyed lookup layered on top.
type Ingredients struct {
	items []Ingredient
}

// NewIngredients returns an empty container.
func NewIngredients() *Ingredients {
	return &Ingredients{}
}

// Len reports the number of ingredients currently held.
func (c *Ingredients) Len() int {
	return len(c.items)
}

// Items returns the container's contents bottom-to-top. The slice is a copy;
// callers must not mutate it expecting it to alias the container.
func (c *Ingredients) Items() []Ingredient {
	out := make([]Ingredient, len(c.items))
	copy(out, c.items)
	return out
}

// Push appends an ingredient to the top of the container (stack push).
func (c *Ingredients) Push(ing Ingredient) {
	c.items = append(c.items, ing)
}

// Pop removes and returns the top ingredient. The second return is false if
// the container was empty.
func (c *Ingredients) Pop() (Ingredient, bool) {
	if len(c.items) == 0 {
		return Ingredient{}, false
	}
	last := len(c.items) - 1
	top := c.items[last]
	c.items = c.items[:last]
	return top, true
}

// Top returns the last (top) ingredient without removing it.
func (c *Ingredients) Top() (Ingredient, bool) {
	if len(c.items) == 0 {
		return Ingredient{}, false
	}
	return c.items[len(c.items)-1], true
}

// Clear empties the container.
func (c *Ingredients) Clear() {
	c.items = c.items[:0]
}

// Extend appends a copy of other's contents, in order, on top of c's current
// contents. c's previous contents are retained (this is Pour's "does not
// clear the source" semantics, applied to the destination side).
func (c *Ingredients) Extend(other *Ingredients) {
	c.items = append(c.items, other.items...)
}

// MarshalJSON renders the container as its bottom-to-top item list; items is
// unexported so the CLI's AST dump (encoding/json and goccy/go-yaml, which
// both honour json.Marshaler) would otherwise see an empty object.
func (c *Ingredients) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

// Lookup finds an ingredient by name. The second return is false if no such
// name is present.
func (c *Ingredients) Lookup(name string) (Ingredient, bool) {
	for _, ing := range c.items {
		if ing.Name == name {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// Assign replaces the named ingredient in place, preserving its position, or
// appends a new one if the name is not present. This is the operation the
// global ingredient table uses to stay unique-by-name across Take/Fold/
// Liquefy, and that bowls use when Add/Remove/Combine/Divide replace the top
// entry.
func (c *Ingredients) Assign(ing Ingredient) {
	for i := range c.items {
		if c.items[i].Name == ing.Name {
			c.items[i] = ing
			return
		}
	}
	c.items = append(c.items, ing)
}

// Stir removes the last element and reinserts it n positions down from the
// top: at index max(0, len-1-n). n >= len places it at the very front. Stir
// with n == 0 is the identity (the element is popped and immediately
// reinserted in the same place).
func (c *Ingredients) Stir(n int) {
	l := len(c.items)
	if l == 0 {
		return
	}
	last := l - 1
	top := c.items[last]
	c.items = c.items[:last]

	idx := l - 1 - n
	if n >= l || idx < 0 {
		idx = 0
	}
	c.items = append(c.items, Ingredient{})
	copy(c.items[idx+1:], c.items[idx:])
	c.items[idx] = top
}

// Shuffle reorders the container's contents in place according to perm, a
// permutation of [0, Len()) mapping new position -> old position. Callers
// normally obtain perm from a Shuffler (see package runtime).
func (c *Ingredients) Shuffle(perm []int) {
	if len(perm) != len(c.items) {
		return
	}
	out := make([]Ingredient, len(c.items))
	for newPos, oldPos := range perm {
		out[newPos] = c.items[oldPos]
	}
	c.items = out
}
