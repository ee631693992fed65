// Package inspect interprets captured HTTP exchanges against a loaded
// OpenRPC description. Given an exchange whose request body parses as a
// JSON-RPC 2.0 call to a declared method, it projects the method's formal
// specification onto the concrete values, producing display-ready views of
// the service, operation, parameters, and declared result. Exchanges that
// fail to match still produce a complete, degraded view: the failure becomes
// a single warning on a placeholder operation.
package inspect

import (
	"context"

	"github.com/rpclens/rpclens/exchange"
	"github.com/rpclens/rpclens/openrpc"
)

// ApiExchange is the projection of one captured exchange. Service,
// Operation, and Request are fixed at construction; Response is attached at
// most once via UpdateWithResponse after the paired response arrives.
type ApiExchange struct {
	Service   ServiceView
	Operation OperationView
	Request   RequestView
	Response  *ResponseView

	matched *matchedOperation
	opts    *Options
}

// Inspect matches an exchange's request against the API metadata and builds
// its projection. It blocks until the request body finishes decoding; cancel
// ctx to abandon an exchange whose body never resolves.
//
// Match failures do not fail inspection: the result then carries a
// placeholder operation whose single warning explains the failure, and an
// empty parameter list. The error return is reserved for transport problems
// (body decode failure, context cancellation).
func Inspect(ctx context.Context, meta *openrpc.Metadata, ex *exchange.Exchange, opts *Options) (*ApiExchange, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result := &ApiExchange{
		Service: newServiceView(meta, opts),
		opts:    opts,
	}

	matched, matchErr, err := matchMethod(ctx, meta, ex, opts.logger())
	if err != nil {
		return nil, err
	}
	if matchErr != nil {
		result.Operation = unmatchedOperationView(matchErr.Message)
		return result, nil
	}

	result.matched = matched
	result.Operation = newOperationView(matched.method, opts)
	result.Request = newRequestView(matched, opts)
	return result, nil
}

// UpdateWithResponse attaches the declared-result projection once the
// exchange's response is known. Absent (nil) and aborted responses leave the
// projection untouched, as do unmatched exchanges. Callers invoke this at
// most once per exchange.
func (x *ApiExchange) UpdateWithResponse(res *exchange.Response) {
	if res == nil || res.Aborted || x.matched == nil {
		return
	}
	x.Response = newResponseView(x.matched, x.opts)
}

// Matched reports whether the request was matched to a declared method.
func (x *ApiExchange) Matched() bool {
	return x.matched != nil
}
