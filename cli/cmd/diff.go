package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/envcheck/compare"
	"github.com/ardnew/envcheck/envfile"
	"github.com/ardnew/envcheck/log"
	"github.com/ardnew/envcheck/pkg"
)

// Diff compares the keys and values of two environment files.
type Diff struct {
	Values bool   `help:"Report value differences for keys present in both files."                    short:"v"`
	Mask   bool   `default:"true" help:"Mask values of sensitive-looking variables in text output."   negatable:""`
	Where  string `help:"Keep only entries matching a boolean expression over key, value, and line." placeholder:"EXPR" short:"w"`
	Format string `default:"text" enum:"text,json,yaml" help:"Output format."                        short:"f"`

	A string `arg:"" help:"First environment file."  name:"a"`
	B string `arg:"" help:"Second environment file." name:"b"`
}

// Run executes the diff command.
func (c *Diff) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	a := envfile.ParseFile(c.A)
	if a.HasErrors() {
		return pkg.ErrFileNotFound.Wrapf("%q", c.A)
	}

	b := envfile.ParseFile(c.B)
	if b.HasErrors() {
		return pkg.ErrFileNotFound.Wrapf("%q", c.B)
	}

	docs, err := applyFilter(c.Where, a, b)
	if err != nil {
		return err
	}

	a, b = docs[0], docs[1]

	result := compare.Diff(a, b, c.Values)

	log.DebugContext(ctx, "diff complete",
		slog.String("a", a.Path()),
		slog.String("b", b.Path()),
		slog.Int("onlyInA", len(result.OnlyInA)),
		slog.Int("onlyInB", len(result.OnlyInB)),
		slog.Int("valueDifferences", len(result.ValueDifferences)),
	)

	if c.Format == formatText {
		renderDiff(os.Stdout, result, a, b, c.Mask)

		return nil
	}

	return encode(ctx, os.Stdout, c.Format, result)
}
