package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/envcheck/pkg"
)

// Output format identifiers accepted by the --format flag.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

const defaultIndent = 2

// encode marshals v to w in the requested machine-readable format.
func encode(ctx context.Context, w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(
			v, "", strings.Repeat(" ", defaultIndent),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", pkg.ErrJSONMarshal, err)
		}

		fmt.Fprintln(w, string(data))

	case formatYAML:
		data, err := yaml.MarshalContext(ctx, v, yaml.Indent(defaultIndent))
		if err != nil {
			return fmt.Errorf("%w: %w", pkg.ErrYAMLMarshal, err)
		}

		fmt.Fprint(w, string(data))

	default:
		return pkg.ErrInvalidFormat.Wrapf(
			"%q (expected %s or %s)", format, formatJSON, formatYAML,
		)
	}

	return nil
}
