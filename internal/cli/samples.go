package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchtrace/graphfile"
)

func (c *CLI) samplesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "samples [name]",
		Short: "List the embedded sample graphs, or print one",
		Example: `  searchtrace samples
  searchtrace samples weighted --format toml`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return graphfile.Samples(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f, err := outputFormat(format, "")
				if err != nil {
					return err
				}
				doc, err := graphfile.Sample(args[0])
				if err != nil {
					return err
				}

				return graphfile.EncodeDocument(c.out, doc, f)
			}

			for _, name := range graphfile.Samples() {
				doc, err := graphfile.Sample(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.out, styleTitle.Render(name)+" "+styleDim.Render(fmt.Sprintf("%d nodes · %d edges · %s %s %s",
					len(doc.Nodes), len(doc.Edges), doc.Start, iconArrow, doc.Goal)))
				if doc.Description != "" {
					printDetail(c.out, "%s", doc.Description)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "yaml, toml or json (default yaml)")

	return cmd
}
