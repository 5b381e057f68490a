package cmd

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/envcheck/envfile"
	"github.com/ardnew/envcheck/log"
	"github.com/ardnew/envcheck/pkg"
)

// filterEnv is the expression environment available to --where filters.
// Each entry of a document is evaluated independently.
type filterEnv struct {
	Key   string `expr:"key"`
	Value string `expr:"value"`
	Line  int    `expr:"line"`
}

// compileFilter compiles a boolean --where expression into an entry
// predicate. Entries whose evaluation fails are excluded and logged.
func compileFilter(src string) (func(envfile.Entry) bool, error) {
	program, err := expr.Compile(src,
		expr.Env(filterEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, pkg.ErrFilterCompile.Wrap(err)
	}

	return func(e envfile.Entry) bool {
		keep, err := runFilter(program, e)
		if err != nil {
			log.Warn("filter evaluation failed",
				slog.String("key", e.Key),
				slog.Int("line", e.Line),
				slog.String("error", err.Error()),
			)

			return false
		}

		return keep
	}, nil
}

func runFilter(program *vm.Program, e envfile.Entry) (bool, error) {
	out, err := expr.Run(program, filterEnv{
		Key:   e.Key,
		Value: e.Value,
		Line:  e.Line,
	})
	if err != nil {
		return false, err
	}

	keep, ok := out.(bool)

	return keep && ok, nil
}

// applyFilter narrows both documents to the entries matching the --where
// expression. An empty expression leaves the documents untouched.
func applyFilter(
	where string, docs ...*envfile.Document,
) ([]*envfile.Document, error) {
	if where == "" {
		return docs, nil
	}

	keep, err := compileFilter(where)
	if err != nil {
		return nil, err
	}

	filtered := make([]*envfile.Document, len(docs))
	for i, doc := range docs {
		filtered[i] = doc.Filter(keep)
	}

	return filtered, nil
}
