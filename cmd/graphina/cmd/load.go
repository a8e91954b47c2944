package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a graph and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraphFromFlags()
		if err != nil {
			return err
		}
		fmt.Printf("nodes: %d\nedges: %d\ndirected: %t\ndensity: %.4f\n",
			g.NodeCount(), g.EdgeCount(), g.IsDirected(), g.Density())
		return nil
	},
}
