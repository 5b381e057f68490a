package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/envcheck/compare"
	"github.com/ardnew/envcheck/envfile"
	"github.com/ardnew/envcheck/log"
	"github.com/ardnew/envcheck/pkg"
)

// Explain describes a variable declared in an example file using its
// documenting comments and an inferred value type.
type Explain struct {
	Format string `default:"text" enum:"text,json,yaml" help:"Output format." short:"f"`

	Variable string `arg:"" optional:""             help:"Variable to describe (interactive picker when omitted)." name:"variable"`
	Example  string `arg:"" default:".env.example"  help:"Ground truth example file."                              name:"example"`
}

// Run executes the explain command.
func (c *Explain) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	example := envfile.ParseFile(c.Example)
	if example.HasErrors() {
		return pkg.ErrFileNotFound.Wrapf("%q", c.Example)
	}

	variable := c.Variable
	if variable == "" {
		variable, err = pickVariable(ctx, example.Keys())
		if err != nil {
			return err
		}

		if variable == "" {
			// Picker dismissed without a selection.
			return nil
		}
	}

	result := compare.Explain(example, variable)
	if !result.Found {
		log.DebugContext(ctx, "variable not found",
			slog.String("variable", variable),
			slog.String("example", example.Path()),
		)

		err := pkg.ErrVariableNotFound.Wrapf("%q", variable)
		if best := closestMatch(variable, example.Keys()); best != "" {
			err = err.Wrapf("did you mean %q?", best)
		}

		return err
	}

	if c.Format == formatText {
		renderExplain(os.Stdout, result)

		return nil
	}

	return encode(ctx, os.Stdout, c.Format, result)
}

// closestMatch returns the best fuzzy match for input among keys, or the
// empty string when nothing matches at all.
func closestMatch(input string, keys []string) string {
	matches := fuzzy.Find(input, keys)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}
