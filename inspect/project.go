package inspect

import (
	"fmt"
	"strings"

	"github.com/rpclens/rpclens/openrpc"
)

// unmatchedOperationName is the display name for exchanges whose request
// could not be matched to any declared method.
const unmatchedOperationName = "Unrecognized request to JSON-RPC API"

// ParameterLocation is where a parameter travels in the request. JSON-RPC
// carries every parameter in the body.
const ParameterLocation = "body"

// ServiceView summarizes the API itself, independent of match outcome.
type ServiceView struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty"`
	DocsURL     string `json:"docsUrl,omitempty"`
}

// OperationView summarizes the invoked method, or the unmatched placeholder.
type OperationView struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	DocsURL     string   `json:"docsUrl,omitempty"`
	Warnings    []string `json:"warnings"`
}

type RequestView struct {
	Parameters []ParameterView `json:"parameters"`
}

// ParameterView projects one declared parameter onto the value the request
// supplied for it. ValueSet distinguishes a supplied JSON null from no value
// at all; HasDefault does the same for the declared default.
type ParameterView struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	In           string   `json:"in"`
	Required     bool     `json:"required"`
	Deprecated   bool     `json:"deprecated"`
	Value        any      `json:"value"`
	ValueSet     bool     `json:"valueSupplied"`
	DefaultValue any      `json:"defaultValue,omitempty"`
	HasDefault   bool     `json:"hasDefault"`
	Warnings     []string `json:"warnings"`
}

// ResponseView surfaces the method's declared result: its description and
// the declared schema shape, not the observed response body.
type ResponseView struct {
	Description string         `json:"description,omitempty"`
	BodySchema  map[string]any `json:"bodySchema,omitempty"`
}

func newServiceView(meta *openrpc.Metadata, opts *Options) ServiceView {
	info := meta.Spec.Info
	view := ServiceView{
		Name:        info.Title,
		LogoURL:     info.LogoURL,
		Description: opts.render(info.Description),
	}
	if meta.Spec.ExternalDocs != nil {
		view.DocsURL = meta.Spec.ExternalDocs.URL
	}
	return view
}

func newOperationView(m *openrpc.Method, opts *Options) OperationView {
	view := OperationView{
		Name:        m.Name,
		Description: opts.render(joinBlocks(m.Summary, m.Description)),
		DocsURL:     methodDocsURL(m, opts.DocsBaseURL),
	}
	if m.Deprecated {
		view.Warnings = append(view.Warnings, fmt.Sprintf("The '%s' method is deprecated.", m.Name))
	}
	return view
}

func unmatchedOperationView(failure string) OperationView {
	return OperationView{
		Name:     unmatchedOperationName,
		Warnings: []string{failure},
	}
}

func methodDocsURL(m *openrpc.Method, baseURL string) string {
	if m.ExternalDocs != nil && m.ExternalDocs.URL != "" {
		return m.ExternalDocs.URL
	}
	if baseURL != "" {
		return baseURL + strings.ToLower(m.Name)
	}
	return ""
}

func newRequestView(op *matchedOperation, opts *Options) RequestView {
	view := RequestView{}
	for i, spec := range op.method.Params {
		value, ok := paramAt(op.params, i)
		view.Parameters = append(view.Parameters, projectParameter(spec, value, ok, opts))
	}
	return view
}

// parameterWarnings are checked in order for every projected parameter.
var parameterWarnings = []struct {
	applies func(spec openrpc.ContentDescriptor, view ParameterView) bool
	message string
}{
	{
		applies: func(spec openrpc.ContentDescriptor, _ ParameterView) bool {
			return spec.Deprecated
		},
		message: "The '%s' parameter is deprecated.",
	},
	{
		applies: func(spec openrpc.ContentDescriptor, view ParameterView) bool {
			return spec.Required && !view.ValueSet && !view.HasDefault
		},
		message: "The '%s' parameter is required.",
	},
}

// projectParameter maps one declared parameter and the value supplied at its
// position into a display view.
func projectParameter(spec openrpc.ContentDescriptor, value any, valueSet bool, opts *Options) ParameterView {
	view := ParameterView{
		Name:       spec.Name,
		In:         ParameterLocation,
		Required:   spec.Required,
		Deprecated: spec.Deprecated,
		Value:      value,
		ValueSet:   valueSet,
	}

	var title string
	if spec.Schema != nil {
		title = spec.Schema.Title
		view.DefaultValue = spec.Schema.Default
		view.HasDefault = spec.Schema.HasDefault
	}
	view.Description = opts.render(joinBlocks(spec.Summary, spec.Description, title))

	for _, rule := range parameterWarnings {
		if rule.applies(spec, view) {
			view.Warnings = append(view.Warnings, fmt.Sprintf(rule.message, spec.Name))
		}
	}

	return view
}

func newResponseView(op *matchedOperation, opts *Options) *ResponseView {
	view := &ResponseView{}
	if result := op.method.Result; result != nil {
		view.Description = opts.render(result.Description)
		if result.Schema != nil {
			view.BodySchema = result.Schema.Raw
		}
	}
	return view
}

// joinBlocks concatenates markdown blocks with blank-line separators,
// skipping empty ones.
func joinBlocks(blocks ...string) string {
	var kept []string
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
