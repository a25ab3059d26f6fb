package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <bytes>...",
		Short: "Format byte counts as human-readable sizes",
		Long:  `Format each byte count argument as "<number> <unit>", one per line.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFormat,
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, arg := range args {
		bytes, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid byte count %q: %w", arg, err)
		}

		formatted, err := e.conv.Format(bytes)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out, formatted); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}
