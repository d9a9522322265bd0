package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wovenui/weft/internal/component"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(flags)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderListJSON(cmd, reg)
			}
			return renderListTable(cmd, reg)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type componentSummary struct {
	Name       string             `json:"name"`
	BaseClass  string             `json:"base_class"`
	Doc        string             `json:"doc,omitempty"`
	Attributes []attributeSummary `json:"attributes"`
}

type attributeSummary struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Allowed  []string `json:"allowed,omitempty"`
	Default  *string  `json:"default,omitempty"`
	Required bool     `json:"required,omitempty"`
	Doc      string   `json:"doc,omitempty"`
}

func summarize(unit *component.RenderUnit) componentSummary {
	decls := unit.Accepted()
	summaries := make([]attributeSummary, len(decls))
	for i, decl := range decls {
		summaries[i] = attributeSummary{
			Name:     decl.Name,
			Type:     string(decl.Type),
			Allowed:  decl.Allowed,
			Default:  decl.Default,
			Required: decl.Required,
			Doc:      decl.Doc,
		}
	}
	return componentSummary{
		Name:       unit.Name(),
		BaseClass:  unit.BaseClass(),
		Doc:        unit.Doc(),
		Attributes: summaries,
	}
}

func renderListJSON(cmd *cobra.Command, reg *component.Registry) error {
	units := reg.List()
	summaries := make([]componentSummary, len(units))
	for i, unit := range units {
		summaries[i] = summarize(unit)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(summaries)
}

func renderListTable(cmd *cobra.Command, reg *component.Registry) error {
	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tBASE CLASS\tATTRS\tDESCRIPTION")
	for _, unit := range reg.List() {
		doc := unit.Doc()
		if limit := width - 50; limit > 10 && len(doc) > limit {
			doc = strings.TrimSpace(doc[:limit-1]) + "…"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", unit.Name(), unit.BaseClass(), len(unit.Accepted()), doc)
	}
	return tw.Flush()
}
