// Package exchange holds captured HTTP request/response pairs as seen by an
// inspection pipeline. Request bodies decode asynchronously: the capture
// transport may still be streaming or decompressing when inspection starts.
package exchange

import (
	"context"
	"net/http"
	"sync"
)

// Exchange is one captured request and, eventually, its response.
type Exchange struct {
	Request  Request
	Response *Response
}

type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    *Body
}

// Response is the captured response of an exchange. Aborted marks exchanges
// whose connection was torn down before a response completed. A nil
// *Response means no response has been observed.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Aborted    bool
}

// Body is a one-shot future for a request body's decoded bytes.
// Resolve or Fail settles it exactly once; Decoded blocks until settled.
type Body struct {
	once sync.Once
	done chan struct{}
	data []byte
	err  error
}

func NewBody() *Body {
	return &Body{done: make(chan struct{})}
}

// ResolvedBody returns a body already settled with the given bytes.
func ResolvedBody(data []byte) *Body {
	b := NewBody()
	b.Resolve(data)
	return b
}

// Resolve settles the body with its decoded bytes. Later calls to Resolve
// or Fail are ignored.
func (b *Body) Resolve(data []byte) {
	b.once.Do(func() {
		b.data = data
		close(b.done)
	})
}

// Fail settles the body with a decode error.
func (b *Body) Fail(err error) {
	b.once.Do(func() {
		b.err = err
		close(b.done)
	})
}

// Decoded waits for the body to settle and returns its bytes. It returns the
// context error if ctx is done first.
func (b *Body) Decoded(ctx context.Context) ([]byte, error) {
	select {
	case <-b.done:
		return b.data, b.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
