package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpclens/rpclens/internal/config"
	"github.com/rpclens/rpclens/openrpc"
)

func MethodsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the methods declared by an OpenRPC document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}

			doc, err := openrpc.LoadFile(cfg.Spec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d methods)\n", doc.Info.Title, len(doc.Methods))
			for _, m := range doc.Methods {
				line := "  " + m.Name
				if m.Deprecated {
					line += " (deprecated)"
				}
				if m.Summary != "" {
					line += ": " + m.Summary
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	config.BindCommonFlags(cmd)
	return cmd
}
