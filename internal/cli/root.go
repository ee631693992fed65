package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "rpclens",
		Short:   "rpclens - inspect captured JSON-RPC exchanges against an OpenRPC document",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(InspectCommand())
	root.AddCommand(MethodsCommand())
	root.AddCommand(WatchCommand())

	return root
}
