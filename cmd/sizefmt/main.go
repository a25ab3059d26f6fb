package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sizefmt",
		Short: "Convert between byte counts and human-readable sizes",
		Long: `sizefmt formats byte counts as human-readable sizes such as "1.50 MiB",
parses such sizes back into byte counts, and measures files, directories and URLs.`,
		SilenceUsage: true,
	}

	addConverterFlags(cmd)

	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newMeasureCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
