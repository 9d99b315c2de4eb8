package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/transitlab/netlint/pkg/network"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a network file to node-link JSON",
		Long: `Convert exports the road graph as a directed multigraph in node-link
JSON form, the layout common graph tooling reads directly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := network.ImportFile(args[0])
			if err != nil {
				return err
			}

			if output == "" {
				return network.WriteNodeLink(net, os.Stdout)
			}
			if err := network.ExportNodeLink(net, output); err != nil {
				return err
			}
			printSuccess("Converted %d nodes, %d sections", net.NodeCount(), net.SectionCount())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if omitted)")
	return cmd
}
