package openrpc

// Document is a parsed OpenRPC description.
type Document struct {
	OpenRPC      string
	Info         Info
	Servers      []Server
	Methods      []Method
	ExternalDocs *ExternalDocs
}

// MethodByName returns the declared method with the given name.
// Returns nil if the document declares no such method.
func (d *Document) MethodByName(name string) *Method {
	for i := range d.Methods {
		if d.Methods[i].Name == name {
			return &d.Methods[i]
		}
	}
	return nil
}

type Info struct {
	Title       string
	Description string
	Version     string
	// LogoURL comes from the x-logo extension, when present.
	LogoURL string
}

type Server struct {
	Name        string
	URL         string
	Description string
}

type ExternalDocs struct {
	Description string
	URL         string
}

type Method struct {
	Name         string
	Summary      string
	Description  string
	Deprecated   bool
	ExternalDocs *ExternalDocs
	Params       []ContentDescriptor
	Result       *ContentDescriptor
}

// ContentDescriptor is a named, schema-bearing value declaration:
// one method parameter, or a method result.
type ContentDescriptor struct {
	Name        string
	Summary     string
	Description string
	Required    bool
	Deprecated  bool
	Schema      *Schema
}

// Schema keeps the declared JSON Schema of a content descriptor.
// Only the fields the inspector projects are lifted into struct fields;
// Raw preserves the full declared shape verbatim for display.
type Schema struct {
	Title       string
	Type        string
	Description string
	Default     any
	// HasDefault distinguishes an explicit null default from no default.
	HasDefault bool

	Raw map[string]any
}
