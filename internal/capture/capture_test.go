package capture

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCapture = `[
  {
    "request": {
      "method": "POST",
      "url": "https://rpc.wallet.example/",
      "headers": {"Content-Type": ["application/json"]},
      "body": "{\"jsonrpc\":\"2.0\",\"method\":\"getBalance\",\"params\":[\"0xabc\"]}"
    },
    "response": {
      "statusCode": 200,
      "body": "{\"jsonrpc\":\"2.0\",\"result\":\"100\"}"
    }
  },
  {
    "request": {"method": "POST", "url": "https://rpc.wallet.example/"},
    "aborted": true
  },
  {
    "request": {"method": "POST", "url": "https://rpc.wallet.example/", "body": "{}"}
  }
]`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.json")
	require.NoError(t, os.WriteFile(path, []byte(testCapture), 0o644))

	exchanges, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, exchanges, 3)

	first := exchanges[0]
	require.Equal(t, "POST", first.Request.Method)
	require.Equal(t, "application/json", first.Request.Headers.Get("Content-Type"))
	body, err := first.Request.Body.Decoded(context.Background())
	require.NoError(t, err)
	require.Contains(t, string(body), `"getBalance"`)
	require.NotNil(t, first.Response)
	require.Equal(t, 200, first.Response.StatusCode)
	require.False(t, first.Response.Aborted)

	aborted := exchanges[1]
	require.NotNil(t, aborted.Response)
	require.True(t, aborted.Response.Aborted)

	pending := exchanges[2]
	require.Nil(t, pending.Response)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading capture file")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing capture file")
}
