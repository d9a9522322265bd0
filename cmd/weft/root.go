package main

import (
	"github.com/spf13/cobra"

	"github.com/wovenui/weft/internal/component"
	"github.com/wovenui/weft/internal/config"
	"github.com/wovenui/weft/internal/logger"
	"github.com/wovenui/weft/internal/widgets"
)

type rootFlags struct {
	verbose bool
	defs    string
	log     *logger.Logger
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{log: log}

	cmd := &cobra.Command{
		Use:           "weft",
		Short:         "weft renders declaratively specified, reusable UI widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.defs, "defs", "", "Directory of YAML component definitions to load alongside the built-in catalog")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// buildRegistry compiles the built-in catalog, plus any definitions from the
// --defs directory, into a fresh registry.
func buildRegistry(flags *rootFlags) (*component.Registry, error) {
	reg := component.NewRegistry()
	if err := widgets.RegisterAll(reg); err != nil {
		return nil, err
	}

	if flags.defs != "" {
		n, err := config.LoadDir(reg, flags.defs)
		if err != nil {
			return nil, err
		}
		if flags.verbose {
			flags.log.WithFields(map[string]any{"count": n, "dir": flags.defs}).Info("loaded component definitions")
		}
	}

	return reg, nil
}
