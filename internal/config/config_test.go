package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Spec:    "api.json",
				Capture: "capture.json",
				Output:  OutputConfig{Format: "json"},
			},
			wantErr: false,
		},
		{
			name:        "missing spec",
			config:      Config{Capture: "capture.json"},
			wantErr:     true,
			errContains: "spec file is required",
		},
		{
			name: "invalid output format",
			config: Config{
				Spec:   "api.json",
				Output: OutputConfig{Format: "xml"},
			},
			wantErr:     true,
			errContains: "invalid output format",
		},
		{
			name: "negative debounce",
			config: Config{
				Spec:  "api.json",
				Watch: WatchConfig{DebounceMillis: -1},
			},
			wantErr:     true,
			errContains: "debounce must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	BindCommonFlags(cmd)
	return cmd
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "rpclens.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
spec: api.json
capture: capture.json
docs-base-url: https://docs.example/methods/
output:
  format: json
watch:
  debounce: 250
`), 0o644))

	cmd := newTestCommand()
	require.NoError(t, cmd.PersistentFlags().Set("config", configPath))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "api.json", cfg.Spec)
	require.Equal(t, "capture.json", cfg.Capture)
	require.Equal(t, "https://docs.example/methods/", cfg.DocsBaseURL)
	require.Equal(t, "json", cfg.Format())
	require.Equal(t, 250, cfg.Watch.DebounceMillis)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "rpclens.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
spec: from-file.json
output:
  format: json
`), 0o644))

	cmd := newTestCommand()
	require.NoError(t, cmd.PersistentFlags().Set("config", configPath))
	require.NoError(t, cmd.PersistentFlags().Set("spec", "from-flag.json"))
	require.NoError(t, cmd.PersistentFlags().Set("format", "text"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "from-flag.json", cfg.Spec)
	require.Equal(t, "text", cfg.Format())
}

func TestLoadDefaults(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.PersistentFlags().Set("spec", "api.json"))

	cfg, err := Load(cmd)
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Format())
	require.Equal(t, 500, cfg.Watch.DebounceMillis)
}

func TestLoadMissingSpec(t *testing.T) {
	cmd := newTestCommand()

	_, err := Load(cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "spec file is required")
}
