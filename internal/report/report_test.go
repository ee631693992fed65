package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpclens/rpclens/inspect"
)

func sampleExchange() *inspect.ApiExchange {
	return &inspect.ApiExchange{
		Service: inspect.ServiceView{Name: "Wallet API"},
		Operation: inspect.OperationView{
			Name:    "transfer",
			DocsURL: "https://docs.example/transfer",
			Warnings: []string{
				"The 'transfer' method is deprecated.",
			},
		},
		Request: inspect.RequestView{
			Parameters: []inspect.ParameterView{
				{
					Name:     "from",
					In:       "body",
					Required: true,
					Value:    "0xabc",
					ValueSet: true,
				},
				{
					Name:         "amount",
					In:           "body",
					Required:     true,
					DefaultValue: float64(1),
					HasDefault:   true,
				},
			},
		},
		Response: &inspect.ResponseView{
			Description: "The transfer receipt.",
			BodySchema:  map[string]any{"type": "object"},
		},
	}
}

func TestRenderText(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Render(&buf, []*inspect.ApiExchange{sampleExchange()}, "text"))
	out := buf.String()

	require.Contains(t, out, "Wallet API :: transfer")
	require.Contains(t, out, "docs: https://docs.example/transfer")
	require.Contains(t, out, "warning: The 'transfer' method is deprecated.")
	require.Contains(t, out, `param from (required) = "0xabc"`)
	require.Contains(t, out, "param amount (required) (default 1)")
	require.Contains(t, out, "The transfer receipt.")
	require.Contains(t, out, "schema type: object")
}

func TestRenderJSON(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Render(&buf, []*inspect.ApiExchange{sampleExchange()}, "json"))
	out := buf.String()

	require.Contains(t, out, `"name": "transfer"`)
	require.Contains(t, out, `"valueSupplied": true`)
	require.Contains(t, out, `"bodySchema"`)
	require.Contains(t, out, `"matched": false`)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf strings.Builder
	err := Render(&buf, nil, "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}
