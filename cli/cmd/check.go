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

// Check validates an environment file against its example file.
type Check struct {
	Strict bool   `help:"Treat warnings as errors when computing exit status."                        short:"s"`
	Where  string `help:"Keep only entries matching a boolean expression over key, value, and line." placeholder:"EXPR" short:"w"`
	Format string `default:"text" enum:"text,json,yaml" help:"Output format."                        short:"f"`

	Example string `arg:"" default:".env.example" help:"Ground truth example file."     name:"example"`
	Env     string `arg:"" default:".env"         help:"Environment file to validate."  name:"env"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	example := envfile.ParseFile(c.Example)
	if example.HasErrors() {
		// Nothing can be validated against an unreadable example file.
		return pkg.ErrFileNotFound.Wrapf("%q", c.Example)
	}

	// A missing environment file is not fatal. The parser records the
	// failure as a diagnostic, and every declared variable reports missing.
	env := envfile.ParseFile(c.Env)

	docs, err := applyFilter(c.Where, example, env)
	if err != nil {
		return err
	}

	example, env = docs[0], docs[1]

	result := compare.Check(example, env)

	log.DebugContext(ctx, "check complete",
		slog.String("example", example.Path()),
		slog.String("env", env.Path()),
		slog.Int("errors", result.ErrorCount),
		slog.Int("warnings", result.WarningCount),
	)

	if c.Format == formatText {
		renderCheck(os.Stdout, result, example, env)
	} else if err := encode(ctx, os.Stdout, c.Format, result); err != nil {
		return err
	}

	if result.ErrorCount > 0 || (c.Strict && result.WarningCount > 0) {
		return pkg.ErrCheckFailed
	}

	return nil
}
