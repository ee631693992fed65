package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec        string       `koanf:"spec"`
	Capture     string       `koanf:"capture"`
	DocsBaseURL string       `koanf:"docs-base-url"`
	Output      OutputConfig `koanf:"output"`
	Watch       WatchConfig  `koanf:"watch"`
}

type OutputConfig struct {
	Format string `koanf:"format"`
}

type WatchConfig struct {
	DebounceMillis int `koanf:"debounce"`
}

// BindCommonFlags binds the flags shared by inspection commands.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: rpclens.yaml)")
	flags.StringP("spec", "s", "", "OpenRPC document path")
	flags.String("capture", "", "Captured exchanges file path")
	flags.String("docs-base-url", "", "Base URL for per-method documentation links")
	flags.StringP("format", "f", "", "Output format: text, json")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("rpclens.yaml"); err == nil {
			configFile = "rpclens.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Watch.DebounceMillis == 0 {
		cfg.Watch.DebounceMillis = 500
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("capture"); v != "" {
		m["capture"] = v
	}
	if v := getString("docs-base-url"); v != "" {
		m["docs-base-url"] = v
	}
	if v := getString("format"); v != "" {
		m["output.format"] = v
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}

	validFormats := map[string]bool{"": true, "text": true, "json": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output format: %s (valid: text, json)", c.Output.Format)
	}

	if c.Watch.DebounceMillis < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}

	return nil
}

// Format returns the effective output format.
func (c *Config) Format() string {
	if c.Output.Format == "" {
		return "text"
	}
	return c.Output.Format
}
