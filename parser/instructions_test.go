package parser

import (
	"testing"

	"github.com/kitchenscript/chef"
)

func TestCookingTimeLine(t *testing.T) {
	if !isCookingTimeLine("Cooking time: 30 minutes.") {
		t.Fatal("expected recognised cooking time line")
	}
	ct, err := parseCookingTimeLine("Cooking time: 30 minutes.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct.Value != 30 || ct.Unit != chef.UnitMinutes {
		t.Errorf("got %+v", ct)
	}

	if _, err := parseCookingTimeLine("Cooking time: 1 minutes.", 1); err == nil {
		t.Fatal("expected non-matching unit error")
	}
}

func TestOvenTemperatureLine(t *testing.T) {
	if !isOvenTemperatureLine("Pre-heat oven to 180 degrees Celsius (gas mark 4).") {
		t.Fatal("expected recognised oven temperature line")
	}
	ot, err := parseOvenTemperatureLine("Pre-heat oven to 180 degrees Celsius (gas mark 4).", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ot.Celsius != 180 || ot.GasMark == nil || *ot.GasMark != 4 {
		t.Errorf("got %+v", ot)
	}

	ot2, err := parseOvenTemperatureLine("Pre-heat oven to 200 degrees Celsius.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ot2.GasMark != nil {
		t.Errorf("expected nil gas mark, got %v", *ot2.GasMark)
	}
}

func TestParsePutAndFold(t *testing.T) {
	instr, err := parseInstructionLine("Put water into the 2nd mixing bowl.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op, ok := instr.(chef.BowlOp)
	if !ok || op.Verb != "put" || op.Name != "water" || op.BowlID == nil || *op.BowlID != 2 {
		t.Fatalf("got %+v (ok=%v)", instr, ok)
	}

	instr2, err := parseInstructionLine("Fold the mixture into mixing bowl.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op2 := instr2.(chef.BowlOp)
	if op2.Verb != "fold" || op2.Name != "the mixture" || op2.BowlID != nil {
		t.Fatalf("got %+v", op2)
	}
}

func TestParseAddDry(t *testing.T) {
	instr, err := parseInstructionLine("Add dry ingredients to the 2nd mixing bowl.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ad, ok := instr.(chef.AddDryInstr)
	if !ok || ad.BowlID == nil || *ad.BowlID != 2 {
		t.Fatalf("got %+v (ok=%v)", instr, ok)
	}
}

func TestParseAddFallsBackToIngredient(t *testing.T) {
	instr, err := parseInstructionLine("Add egg.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op, ok := instr.(chef.BowlOp)
	if !ok || op.Verb != "add" || op.Name != "egg" {
		t.Fatalf("got %+v (ok=%v)", instr, ok)
	}
}

func TestParseStirDispatch(t *testing.T) {
	instr, err := parseInstructionLine("Stir for 5 minutes.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sm, ok := instr.(chef.StirMinutesInstr)
	if !ok || sm.Minutes != 5 {
		t.Fatalf("got %+v (ok=%v)", instr, ok)
	}

	instr2, err := parseInstructionLine("Stir sticks into the mixing bowl.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	si, ok := instr2.(chef.BowlOp)
	if !ok || si.Verb != "stir_ingredient" || si.Name != "sticks" {
		t.Fatalf("got %+v (ok=%v)", instr2, ok)
	}
}

func TestParsePour(t *testing.T) {
	instr, err := parseInstructionLine("Pour contents of the 2nd mixing bowl into the 3rd baking dish.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := instr.(chef.PourInstr)
	if !ok || p.BowlID == nil || *p.BowlID != 2 || p.DishID == nil || *p.DishID != 3 {
		t.Fatalf("got %+v (ok=%v)", instr, ok)
	}
}

func TestParseRefrigerate(t *testing.T) {
	instr, err := parseInstructionLine("Refrigerate for 2 hours.", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := instr.(chef.RefrigerateInstr)
	if !ok || r.Hours == nil || *r.Hours != 2 {
		t.Fatalf("got %+v (ok=%v)", instr, ok)
	}

	if _, err := parseInstructionLine("Refrigerate for 1 hours.", 1); err == nil {
		t.Fatal("expected plural-concord error")
	}
}

func TestParseIngredientBlockClassifiesMeasures(t *testing.T) {
	body := "111 ml water\n42 g salt\n2 cups flour\nsome onions\n"
	res, err := parseIngredientBlock(body, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.table.Len() != 4 {
		t.Fatalf("expected 4 ingredients, got %d", res.table.Len())
	}
	water, _ := res.table.Lookup("water")
	if water.Props.Liquid != chef.FlavorTrue {
		t.Errorf("expected water to be liquid, got %+v", water.Props)
	}
	salt, _ := res.table.Lookup("salt")
	if salt.Props.Dry != chef.FlavorTrue {
		t.Errorf("expected salt to be dry, got %+v", salt.Props)
	}
	flour, _ := res.table.Lookup("flour")
	if flour.Props.Dry != chef.FlavorUnknown || flour.Props.Liquid != chef.FlavorUnknown {
		t.Errorf("expected flour to be ambiguous, got %+v", flour.Props)
	}
	onions, ok := res.table.Lookup("some onions")
	if !ok || onions.Props.Dry != chef.FlavorFalse {
		t.Errorf("expected measure-less 'some onions', got %+v (ok=%v)", onions, ok)
	}
}

func TestParseIngredientBlockLaterDeclarationWins(t *testing.T) {
	body := "1 g sugar\n2 g sugar\n"
	res, err := parseIngredientBlock(body, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.table.Len() != 1 {
		t.Fatalf("expected repeated name to collapse to 1 entry, got %d", res.table.Len())
	}
	sugar, _ := res.table.Lookup("sugar")
	v, _ := sugar.IntValue()
	if v != 2 {
		t.Errorf("expected later declaration (2) to win, got %d", v)
	}
}
