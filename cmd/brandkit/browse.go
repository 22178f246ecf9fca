package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/tui"
)

type browseOptions struct {
	seed  seedFlags
	notes string
	width int
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Explore generated tokens in the terminal",
		Long: `Browse opens an interactive viewer with tabs for colors, typography,
spacing, radius and the flat token table. When stdout is not a terminal every
tab is printed in sequence instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, root, opts)
		},
	}

	opts.seed.register(cmd)
	cmd.Flags().StringVar(&opts.notes, "notes", "", "Notes shown above the color ramps")
	cmd.Flags().IntVar(&opts.width, "width", 80, "Render width when stdout is not a terminal")

	return cmd
}

func runBrowse(cmd *cobra.Command, root *rootFlags, opts *browseOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	s, err := opts.seed.resolve(cmd)
	if err != nil {
		return err
	}

	ts, err := buildTokens(s, false, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		_, err := fmt.Fprint(out, tui.RenderAll(ts, tui.RenderOptions{Notes: opts.notes, Width: opts.width}))
		return err
	}

	program := tea.NewProgram(tui.NewModel(ts, tui.Options{Notes: opts.notes}), tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		return newCommandError("run token browser", ts.BrandName, err, "Run with output redirected to print every tab instead")
	}
	return nil
}
