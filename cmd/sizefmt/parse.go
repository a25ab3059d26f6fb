package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <size>...",
		Short: "Parse human-readable sizes into byte counts",
		Long:  `Parse each size argument such as "1.5 KiB" and print its byte count, one per line.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, arg := range args {
		bytes, err := e.conv.Parse(arg)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(out, strconv.FormatFloat(bytes, 'f', -1, 64)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	return nil
}
