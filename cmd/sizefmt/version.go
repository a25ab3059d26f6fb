package main

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		RunE:  version,
	}
}

func version(cmd *cobra.Command, args []string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("could not read embedded build info ('go build -buildvcs=true')")
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "sizefmt %s (%s)\n", info.Main.Version, info.GoVersion); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
