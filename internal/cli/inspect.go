package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpclens/rpclens/inspect"
	"github.com/rpclens/rpclens/internal/capture"
	"github.com/rpclens/rpclens/internal/config"
	"github.com/rpclens/rpclens/internal/report"
	"github.com/rpclens/rpclens/openrpc"
)

func InspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect captured exchanges against an OpenRPC document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			if cfg.Capture == "" {
				return fmt.Errorf("capture file is required")
			}

			results, err := inspectCapture(cmd, cfg)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), results, cfg.Format())
		},
	}

	config.BindCommonFlags(cmd)
	return cmd
}

// inspectCapture loads the OpenRPC document and the capture file, then runs
// every captured exchange through the inspector, attaching responses where
// the capture recorded one.
func inspectCapture(cmd *cobra.Command, cfg *config.Config) ([]*inspect.ApiExchange, error) {
	doc, err := openrpc.LoadFile(cfg.Spec)
	if err != nil {
		return nil, err
	}
	meta, err := openrpc.BuildMetadata(doc)
	if err != nil {
		return nil, err
	}

	exchanges, err := capture.LoadFile(cfg.Capture)
	if err != nil {
		return nil, err
	}

	opts := &inspect.Options{
		DocsBaseURL: cfg.DocsBaseURL,
		Logger:      newLogger(cmd),
	}

	results := make([]*inspect.ApiExchange, 0, len(exchanges))
	for _, ex := range exchanges {
		x, err := inspect.Inspect(cmd.Context(), meta, ex, opts)
		if err != nil {
			return nil, fmt.Errorf("inspecting exchange: %w", err)
		}
		x.UpdateWithResponse(ex.Response)
		results = append(results, x)
	}
	return results, nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
