package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wovenui/weft/internal/tui"
)

type renderOptions struct {
	attrs  []string
	sample bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Render a component to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.attrs, "attr", nil, "Attribute binding as name=value (repeatable; values are strings)")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "Render with the component's built-in sample attributes")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, name string) error {
	reg, err := buildRegistry(flags)
	if err != nil {
		return err
	}

	unit, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("component %q is not registered (try `weft list`)", name)
	}

	bag := map[string]any{}
	if opts.sample {
		bag = tui.SampleBag(name)
	}
	for _, binding := range opts.attrs {
		key, value, found := strings.Cut(binding, "=")
		if !found || key == "" {
			return fmt.Errorf("invalid --attr %q: expected name=value", binding)
		}
		bag[key] = value
	}

	markup, err := unit.RenderString(cmd.Context(), bag)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), markup)
	return nil
}
