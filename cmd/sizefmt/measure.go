package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dennisklein/sizefmt/internal/measure"
	"github.com/dennisklein/sizefmt/internal/size"
)

const (
	minNameWidth = 10
	sizeWidth    = 14
	filesWidth   = 8
)

var (
	nameStyle      = lipgloss.NewStyle().Bold(true).Align(lipgloss.Left)
	sizeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Width(sizeWidth).Align(lipgloss.Right)
	totalSizeStyle = sizeStyle.Bold(true)
	filesStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(filesWidth).Align(lipgloss.Right)
)

func newMeasureCmd() *cobra.Command {
	var limit size.Size

	cmd := &cobra.Command{
		Use:   "measure <path|url>...",
		Short: "Show the size of files, directories and URLs",
		Long: `Show the size of each argument. Directories are summed recursively;
http(s) URLs are downloaded and the received bytes counted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(cmd, args, limit)
		},
	}

	cmd.Flags().Var(&limit, "max", "Fail when the total exceeds this size (e.g. 10GiB)")
	cmd.Flags().Bool("progress", true, "Show a progress bar while downloading URLs")

	return cmd
}

func runMeasure(cmd *cobra.Command, args []string, limit size.Size) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return fmt.Errorf("failed to get --progress flag: %w", err)
	}

	if !cmd.Flags().Changed("max") {
		limit = e.cfg.MaxSize
	}

	var progress io.Writer
	if showProgress {
		progress = cmd.ErrOrStderr()
	}

	client := measure.NewClient()
	entries := make([]measure.Entry, 0, len(args))

	for _, target := range args {
		e.log.Debug("measuring", "target", target)

		var entry measure.Entry

		if measure.IsURL(target) {
			entry, err = measure.URL(cmd.Context(), client, target, progress, e.conv)
		} else {
			entry, err = measure.Path(appFs, target)
		}

		if err != nil {
			return fmt.Errorf("failed to measure %s: %w", target, err)
		}

		entries = append(entries, entry)
	}

	out := cmd.OutOrStdout()

	// Size the name column to the longest target so paths never wrap
	width := minNameWidth
	for _, entry := range entries {
		width = max(width, lipgloss.Width(entry.Name))
	}

	names := nameStyle.Width(width)

	for _, entry := range entries {
		if err := printEntry(out, e.conv, names, entry); err != nil {
			return err
		}
	}

	total := measure.Total(entries)

	if len(entries) > 1 {
		formatted, err := e.conv.FormatInt64(total)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(out, "\n%s  %s\n", names.Render("total"), totalSizeStyle.Render(formatted)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if limit > 0 && uint64(total) > limit.Bytes() {
		formatted, err := e.conv.FormatInt64(total)
		if err != nil {
			return err
		}

		limitStr, err := e.conv.FormatUint64(limit.Bytes())
		if err != nil {
			return err
		}

		return fmt.Errorf("total %s exceeds limit %s", formatted, limitStr)
	}

	return nil
}

func printEntry(out io.Writer, conv *size.Converter, names lipgloss.Style, entry measure.Entry) error {
	formatted, err := conv.FormatInt64(entry.Size)
	if err != nil {
		return err
	}

	name := names.Render(entry.Name)
	styledSize := sizeStyle.Render(formatted)
	files := filesStyle.Render(strconv.Itoa(entry.Files))

	if _, err := fmt.Fprintf(out, "%s  %s  %s\n", name, styledSize, files); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
