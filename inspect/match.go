package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rpclens/rpclens/exchange"
	"github.com/rpclens/rpclens/openrpc"
)

// matchedOperation pairs the selected method spec with the positional
// parameter values of the request's parsed envelope. It lives for a single
// exchange inspection.
type matchedOperation struct {
	method *openrpc.Method
	params []json.RawMessage
}

// matchMethod resolves which declared method an exchange invokes.
//
// It waits for the request body to finish decoding, parses it as a JSON-RPC
// 2.0 envelope, and looks the method up in the metadata index. All protocol
// level problems come back as a *MatchError; the error return carries only
// transport failures (body decode errors, context cancellation), which are
// the caller's problem.
func matchMethod(ctx context.Context, meta *openrpc.Metadata, ex *exchange.Exchange, log *slog.Logger) (*matchedOperation, *MatchError, error) {
	body, err := ex.Request.Body.Decoded(ctx)
	if err != nil {
		return nil, nil, err
	}

	if len(body) == 0 {
		return nil, newMatchError(ErrEmptyBody, "Request had no body"), nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		log.Debug("request body is not valid JSON", "error", err)
		return nil, newMatchError(ErrMalformedBody, "Request body was not valid JSON"), nil
	}

	if env.JSONRPC != "2.0" {
		msg := "Request had no 'jsonrpc' field"
		if env.JSONRPC != nil {
			msg = fmt.Sprintf("Request had a bad 'jsonrpc' field: %v", env.JSONRPC)
		}
		return nil, newMatchError(ErrBadEnvelope, msg), nil
	}

	name, ok := env.Method.(string)
	if !ok {
		msg := "Request had no 'method' field"
		if env.Method != nil {
			msg = fmt.Sprintf("Request had a bad 'method' field: %v", env.Method)
		}
		return nil, newMatchError(ErrBadEnvelope, msg), nil
	}
	method, ok := meta.RequestMatchers[name]
	if !ok {
		msg := fmt.Sprintf("The '%s' method is not recognized", name)
		return nil, newMatchError(ErrUnknownMethod, msg), nil
	}

	params := env.paramList()
	if params == nil && len(env.Params) > 0 {
		log.Debug("request 'params' field is not an array", "method", name)
	}

	return &matchedOperation{method: method, params: params}, nil, nil
}
