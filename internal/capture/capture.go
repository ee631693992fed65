// Package capture reads recorded request/response traces from a capture
// file: a JSON array of exchanges as exported by HTTP capture tooling.
package capture

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/rpclens/rpclens/exchange"
)

// Entry is one recorded exchange in a capture file.
type Entry struct {
	Request  Request   `json:"request"`
	Response *Response `json:"response,omitempty"`
	// Aborted marks exchanges torn down before a response completed.
	Aborted bool `json:"aborted,omitempty"`
}

type Request struct {
	Method  string              `json:"method"`
	URL     string              `json:"url"`
	Headers map[string][]string `json:"headers,omitempty"`
	Body    string              `json:"body,omitempty"`
}

type Response struct {
	StatusCode int                 `json:"statusCode"`
	Headers    map[string][]string `json:"headers,omitempty"`
	Body       string              `json:"body,omitempty"`
}

// LoadFile reads a capture file and converts its entries into exchanges.
// Captured bodies are already decoded text, so every body future resolves
// immediately.
func LoadFile(path string) ([]*exchange.Exchange, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing capture file: %w", err)
	}

	exchanges := make([]*exchange.Exchange, 0, len(entries))
	for _, e := range entries {
		exchanges = append(exchanges, e.ToExchange())
	}
	return exchanges, nil
}

// ToExchange converts a capture entry into an exchange value.
func (e Entry) ToExchange() *exchange.Exchange {
	ex := &exchange.Exchange{
		Request: exchange.Request{
			Method:  e.Request.Method,
			URL:     e.Request.URL,
			Headers: http.Header(e.Request.Headers),
			Body:    exchange.ResolvedBody([]byte(e.Request.Body)),
		},
	}

	switch {
	case e.Aborted:
		ex.Response = &exchange.Response{Aborted: true}
	case e.Response != nil:
		ex.Response = &exchange.Response{
			StatusCode: e.Response.StatusCode,
			Headers:    http.Header(e.Response.Headers),
			Body:       []byte(e.Response.Body),
		}
	}

	return ex
}
