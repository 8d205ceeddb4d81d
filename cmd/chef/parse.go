package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kitchenscript/chef/parser"
	"github.com/kitchenscript/chef/units"
	"github.com/spf13/cobra"
)

var parseDetailed bool

var parseCmd = &cobra.Command{
	Use:   "parse [recipe]",
	Short: "parse a recipe and print its AST without running it",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseDetailed, "detailed", false, "also print each ingredient's unit-system classification")
	parseCmd.Flags().StringVar(&runConfigPath, "config", defaultConfigPath(), "path to an optional .chef.toml settings file")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(runConfigPath)

	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	res, err := parser.New().ParseBytes(source)
	if err != nil {
		return reportChefError(err, source)
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	format := cfg.Format
	if format == "" {
		format = "text"
	}
	return printRecipe(os.Stdout, res, format)
}

// printRecipe renders a parsed recipe in one of three formats: a plain,
// emoji-labelled summary, an indented JSON dump, or a YAML dump via
// goccy/go-yaml.
func printRecipe(w io.Writer, res *parser.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Recipe)
	case "yaml":
		data, err := yaml.Marshal(res.Recipe)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return printRecipeText(w, res)
	}
}

func printRecipeText(w io.Writer, res *parser.Result) error {
	r := res.Recipe
	fmt.Fprintln(w, "📋 ingredients:")
	for _, ing := range r.Ingredients.Items() {
		v, ok := ing.IntValue()
		if !ok {
			fmt.Fprintf(w, "  🥕 %s\n", ing.Name)
			continue
		}
		fmt.Fprintf(w, "  🥕 %-20s %6d  dry=%s liquid=%s\n", ing.Name, v, ing.Props.Dry, ing.Props.Liquid)
	}
	if r.CookingTime != nil {
		fmt.Fprintf(w, "⏲️  cooking time: %d %s\n", r.CookingTime.Value, r.CookingTime.Unit)
	}
	if r.OvenTemperature != nil {
		if r.OvenTemperature.GasMark != nil {
			fmt.Fprintf(w, "🍳 oven: %d°C (gas mark %d)\n", r.OvenTemperature.Celsius, *r.OvenTemperature.GasMark)
		} else {
			fmt.Fprintf(w, "🍳 oven: %d°C\n", r.OvenTemperature.Celsius)
		}
	}
	fmt.Fprintln(w, "📝 method:")
	for _, instr := range r.Instructions {
		fmt.Fprintf(w, "  %3d: %s\n", instr.Lineno(), instr.Opcode())
	}
	if r.Serves != nil {
		fmt.Fprintf(w, "🍽️  serves %d\n", *r.Serves)
	}
	if parseDetailed {
		fmt.Fprintln(w, "unit classifications:")
		for _, ing := range r.Ingredients.Items() {
			if ing.Props.Measure == "" {
				continue
			}
			fmt.Fprintf(w, "  %-20s %-8s %s\n", ing.Name, ing.Props.Measure, units.Describe(ing.Props.Measure))
		}
	}
	return nil
}
