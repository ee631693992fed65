package exchange

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBodyResolve(t *testing.T) {
	b := NewBody()
	go func() {
		time.Sleep(10 * time.Millisecond)
		b.Resolve([]byte(`{"jsonrpc":"2.0"}`))
	}()

	data, err := b.Decoded(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte(`{"jsonrpc":"2.0"}`), data)
}

func TestBodyFail(t *testing.T) {
	b := NewBody()
	b.Fail(errors.New("stream reset"))

	_, err := b.Decoded(context.Background())
	require.EqualError(t, err, "stream reset")
}

func TestBodySettlesOnce(t *testing.T) {
	b := NewBody()
	b.Resolve([]byte("first"))
	b.Resolve([]byte("second"))
	b.Fail(errors.New("ignored"))

	data, err := b.Decoded(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("first"), data)
}

func TestBodyDecodedCancellation(t *testing.T) {
	b := NewBody()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Decoded(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolvedBody(t *testing.T) {
	b := ResolvedBody([]byte("data"))
	data, err := b.Decoded(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("data"), data)
}
