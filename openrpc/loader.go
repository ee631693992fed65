package openrpc

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Load parses an OpenRPC document from JSON or YAML bytes.
func Load(data []byte) (*Document, error) {
	var root map[string]any

	if err := json.Unmarshal(data, &root); err != nil {
		if yamlErr := yaml.Unmarshal(data, &root); yamlErr != nil {
			return nil, fmt.Errorf("parsing OpenRPC document: %w", yamlErr)
		}
	}

	version := getString(root, "openrpc")
	if version == "" {
		return nil, fmt.Errorf("not an OpenRPC document: missing 'openrpc' version field")
	}

	t := &transformer{components: getMap(root, "components")}

	doc := &Document{
		OpenRPC: version,
		Info:    transformInfo(getMap(root, "info")),
		Servers: transformServers(getSlice(root, "servers")),
	}

	if ed := getMap(root, "externalDocs"); ed != nil {
		doc.ExternalDocs = &ExternalDocs{
			Description: getString(ed, "description"),
			URL:         getString(ed, "url"),
		}
	}

	for i, raw := range getSlice(root, "methods") {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("methods[%d]: expected an object", i)
		}
		method, err := t.transformMethod(m)
		if err != nil {
			return nil, fmt.Errorf("methods[%d]: %w", i, err)
		}
		doc.Methods = append(doc.Methods, *method)
	}

	return doc, nil
}

// LoadFile reads and parses an OpenRPC document from disk.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OpenRPC document: %w", err)
	}
	return Load(data)
}

type transformer struct {
	components map[string]any
}

func transformInfo(info map[string]any) Info {
	return Info{
		Title:       getString(info, "title"),
		Description: getString(info, "description"),
		Version:     getString(info, "version"),
		LogoURL:     getString(getMap(info, "x-logo"), "url"),
	}
}

func transformServers(servers []any) []Server {
	var result []Server
	for _, raw := range servers {
		s, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		result = append(result, Server{
			Name:        getString(s, "name"),
			URL:         getString(s, "url"),
			Description: getString(s, "description"),
		})
	}
	return result
}

func (t *transformer) transformMethod(m map[string]any) (*Method, error) {
	name := getString(m, "name")
	if name == "" {
		return nil, fmt.Errorf("method has no name")
	}

	method := &Method{
		Name:        name,
		Summary:     getString(m, "summary"),
		Description: getString(m, "description"),
		Deprecated:  getBool(m, "deprecated"),
	}

	if ed := getMap(m, "externalDocs"); ed != nil {
		method.ExternalDocs = &ExternalDocs{
			Description: getString(ed, "description"),
			URL:         getString(ed, "url"),
		}
	}

	for i, raw := range getSlice(m, "params") {
		p, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("params[%d]: expected an object", i)
		}
		cd, err := t.transformContentDescriptor(p)
		if err != nil {
			return nil, fmt.Errorf("params[%d]: %w", i, err)
		}
		method.Params = append(method.Params, *cd)
	}

	if res := getMap(m, "result"); res != nil {
		cd, err := t.transformContentDescriptor(res)
		if err != nil {
			return nil, fmt.Errorf("result: %w", err)
		}
		method.Result = cd
	}

	return method, nil
}

func (t *transformer) transformContentDescriptor(cd map[string]any) (*ContentDescriptor, error) {
	resolved, err := t.resolveRef(cd, "contentDescriptors")
	if err != nil {
		return nil, err
	}
	cd = resolved

	desc := &ContentDescriptor{
		Name:        getString(cd, "name"),
		Summary:     getString(cd, "summary"),
		Description: getString(cd, "description"),
		Required:    getBool(cd, "required"),
		Deprecated:  getBool(cd, "deprecated"),
	}

	if s := getMap(cd, "schema"); s != nil {
		schema, err := t.transformSchema(s)
		if err != nil {
			return nil, err
		}
		desc.Schema = schema
	}

	return desc, nil
}

func (t *transformer) transformSchema(s map[string]any) (*Schema, error) {
	resolved, err := t.resolveRef(s, "schemas")
	if err != nil {
		return nil, err
	}
	s = resolved

	schema := &Schema{
		Title:       getString(s, "title"),
		Type:        getString(s, "type"),
		Description: getString(s, "description"),
		Raw:         s,
	}
	if def, ok := s["default"]; ok {
		schema.Default = def
		schema.HasDefault = true
	}
	return schema, nil
}

// resolveRef follows a local "#/components/<section>/<name>" reference.
// Objects without a $ref pass through unchanged.
func (t *transformer) resolveRef(obj map[string]any, section string) (map[string]any, error) {
	ref := getString(obj, "$ref")
	if ref == "" {
		return obj, nil
	}

	prefix := "#/components/" + section + "/"
	if len(ref) <= len(prefix) || ref[:len(prefix)] != prefix {
		return nil, fmt.Errorf("unsupported reference %q", ref)
	}
	name := ref[len(prefix):]

	target := getMap(getMap(t.components, section), name)
	if target == nil {
		return nil, fmt.Errorf("unresolved reference %q", ref)
	}
	return target, nil
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBool(m map[string]any, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

func getSlice(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return nil
}
