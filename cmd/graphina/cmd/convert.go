package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	convertOut       string
	convertOutFormat string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Load a graph in one format and save it in another",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraphFromFlags()
		if err != nil {
			return err
		}
		if convertOut == "" {
			return fmt.Errorf("--out is required")
		}
		if err := saveGraphTo(g, convertOut, convertOutFormat); err != nil {
			return err
		}
		fmt.Printf("wrote %d nodes, %d edges to %s (%s)\n", g.NodeCount(), g.EdgeCount(), convertOut, convertOutFormat)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output graph file")
	convertCmd.Flags().StringVar(&convertOutFormat, "out-format", "json", "output format: edgelist|adjlist|graphml|json|binary")
	_ = convertCmd.MarkFlagRequired("out")
}
