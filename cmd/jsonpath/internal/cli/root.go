// Package cli implements the jsonpath CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root jsonpath command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsonpath",
		Short:         "jsonpath - evaluate JSONPath expressions against JSON documents",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewEvalCmd())
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
