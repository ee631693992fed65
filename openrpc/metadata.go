package openrpc

import (
	"fmt"
	"regexp"
	"strings"
)

// Metadata is the indexed form of a loaded document, ready for exchange
// matching: a server-URL matcher plus a by-name method index.
type Metadata struct {
	Spec            *Document
	ServerMatcher   *regexp.Regexp
	RequestMatchers map[string]*Method
}

// BuildMetadata indexes a loaded document. Duplicate method names are an
// error: the matcher must be able to select exactly one method per name.
func BuildMetadata(doc *Document) (*Metadata, error) {
	matchers := make(map[string]*Method, len(doc.Methods))
	for i := range doc.Methods {
		m := &doc.Methods[i]
		if _, exists := matchers[m.Name]; exists {
			return nil, fmt.Errorf("duplicate method name %q", m.Name)
		}
		matchers[m.Name] = m
	}

	return &Metadata{
		Spec:            doc,
		ServerMatcher:   buildServerMatcher(doc.Servers),
		RequestMatchers: matchers,
	}, nil
}

// MatchesURL reports whether a request URL is addressed to one of the
// document's declared servers.
func (m *Metadata) MatchesURL(url string) bool {
	return m.ServerMatcher.MatchString(url)
}

func buildServerMatcher(servers []Server) *regexp.Regexp {
	var alts []string
	for _, s := range servers {
		u := strings.TrimSuffix(s.URL, "/")
		if u == "" {
			continue
		}
		alts = append(alts, regexp.QuoteMeta(u))
	}
	if len(alts) == 0 {
		// A document with no servers matches no URLs.
		return regexp.MustCompile(`\A\z`)
	}
	return regexp.MustCompile(`^(?:` + strings.Join(alts, "|") + `)(?:/|$)`)
}
