package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wovenui/weft/internal/tui"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the component catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(flags)
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.NewModel(reg), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	return cmd
}
