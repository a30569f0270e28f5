package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchtrace/graphfile"
)

func (c *CLI) generateCommand() *cobra.Command {
	var (
		gf     graphFlags
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a graph as YAML, TOML or JSON",
		Long: `Write a graph file. The source is a generated grid by default, or an
embedded --sample, or an existing --graph file (which converts it).

The output format follows --format, else the extension of --output, else YAML.`,
		Example: `  searchtrace generate --grid 8x8 --seed 4 -o grid.toml
  searchtrace generate --sample diamond --format json
  searchtrace generate --graph city.yaml -o city.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := outputFormat(format, out)
			if err != nil {
				return err
			}
			lg, err := c.loadGraph(cmd, &gf)
			if err != nil {
				return err
			}

			doc := graphfile.FromGraph(lg.g)
			doc.Start, doc.Goal = lg.start, lg.goal
			if lg.doc != nil {
				doc.Name, doc.Description = lg.doc.Name, lg.doc.Description
			} else {
				doc.Name = lg.source
			}

			if out == "" {
				return graphfile.EncodeDocument(c.out, doc, f)
			}
			fh, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := graphfile.EncodeDocument(fh, doc, f); err != nil {
				fh.Close()

				return err
			}
			if err := fh.Close(); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("graph written", "path", out, "format", f)
			printSuccess(c.out, "Wrote %d nodes and %d edges", lg.g.NodeCount(), lg.g.EdgeCount())
			printFile(c.out, out)

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "yaml, toml or json")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	gf.register(cmd, true)
	gf.endpointsOptional = true

	return cmd
}

func outputFormat(name, path string) (graphfile.Format, error) {
	switch {
	case name != "":
		return graphfile.ParseFormat(name)
	case path != "":
		return graphfile.FormatOf(path)
	}

	return graphfile.FormatYAML, nil
}
