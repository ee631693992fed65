// Package report renders inspected exchanges for the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rpclens/rpclens/inspect"
)

// Render writes the projections of a batch of exchanges in the requested
// format ("text" or "json").
func Render(w io.Writer, exchanges []*inspect.ApiExchange, format string) error {
	switch format {
	case "json":
		return renderJSON(w, exchanges)
	case "text", "":
		return renderText(w, exchanges)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

type jsonExchange struct {
	Service   inspect.ServiceView   `json:"service"`
	Operation inspect.OperationView `json:"operation"`
	Request   inspect.RequestView   `json:"request"`
	Response  *inspect.ResponseView `json:"response,omitempty"`
	Matched   bool                  `json:"matched"`
}

func renderJSON(w io.Writer, exchanges []*inspect.ApiExchange) error {
	out := make([]jsonExchange, 0, len(exchanges))
	for _, x := range exchanges {
		out = append(out, jsonExchange{
			Service:   x.Service,
			Operation: x.Operation,
			Request:   x.Request,
			Response:  x.Response,
			Matched:   x.Matched(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderText(w io.Writer, exchanges []*inspect.ApiExchange) error {
	for i, x := range exchanges {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderExchange(w, x)
	}
	return nil
}

func renderExchange(w io.Writer, x *inspect.ApiExchange) {
	fmt.Fprintf(w, "%s :: %s\n", x.Service.Name, x.Operation.Name)
	if x.Operation.Description != "" {
		fmt.Fprintf(w, "  %s\n", firstLine(x.Operation.Description))
	}
	if x.Operation.DocsURL != "" {
		fmt.Fprintf(w, "  docs: %s\n", x.Operation.DocsURL)
	}
	for _, warning := range x.Operation.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}

	for _, p := range x.Request.Parameters {
		renderParameter(w, p)
	}

	if x.Response != nil {
		fmt.Fprintln(w, "  response:")
		if x.Response.Description != "" {
			fmt.Fprintf(w, "    %s\n", firstLine(x.Response.Description))
		}
		if t, ok := x.Response.BodySchema["type"].(string); ok {
			fmt.Fprintf(w, "    schema type: %s\n", t)
		}
	}
}

func renderParameter(w io.Writer, p inspect.ParameterView) {
	var attrs []string
	if p.Required {
		attrs = append(attrs, "required")
	}
	if p.Deprecated {
		attrs = append(attrs, "deprecated")
	}

	line := fmt.Sprintf("  param %s", p.Name)
	if len(attrs) > 0 {
		line += " (" + strings.Join(attrs, ", ") + ")"
	}
	if p.ValueSet {
		value, _ := json.Marshal(p.Value)
		line += " = " + string(value)
	} else if p.HasDefault {
		value, _ := json.Marshal(p.DefaultValue)
		line += " (default " + string(value) + ")"
	}
	fmt.Fprintln(w, line)

	for _, warning := range p.Warnings {
		fmt.Fprintf(w, "    warning: %s\n", warning)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
