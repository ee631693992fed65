package inspect

import "encoding/json"

// envelope is the JSON-RPC 2.0 request envelope. Protocol fields are decoded
// loosely and validated field by field afterwards, so a request with e.g. a
// numeric "jsonrpc" still parses and can be reported precisely.
type envelope struct {
	JSONRPC any             `json:"jsonrpc"`
	Method  any             `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

// paramList returns the positional parameter values, one raw JSON value per
// array element. A missing or non-array params field yields nil: positional
// lookups then find no value, mirroring how lenient JSON-RPC servers treat
// such requests.
func (e *envelope) paramList() []json.RawMessage {
	if len(e.Params) == 0 {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(e.Params, &list); err != nil {
		return nil
	}
	return list
}

// paramAt returns the decoded value at position i and whether the request
// supplied one. A supplied JSON null is a present value.
func paramAt(params []json.RawMessage, i int) (any, bool) {
	if i >= len(params) {
		return nil, false
	}
	var value any
	if err := json.Unmarshal(params[i], &value); err != nil {
		return nil, false
	}
	return value, true
}
