package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "recordlink",
		Short: "Entity resolution with blocking and agglomerative clustering",
		Long: `recordlink groups records that refer to the same real-world entity.

Records are read as JSON lines from a local path, s3://bucket/key or
minio://bucket/key. Blocking (none, canopies, lego) limits which records
are compared; agglomerative clustering merges records inside each block.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newResolveCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "recordlink %s\n", version)
		},
	}
}
