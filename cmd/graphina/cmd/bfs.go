package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphina/bfs"
)

var bfsStart string

var bfsCmd = &cobra.Command{
	Use:   "bfs",
	Short: "Run a breadth-first traversal from --start",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraphFromFlags()
		if err != nil {
			return err
		}
		start, ok := nodeByLabel(g, bfsStart)
		if !ok {
			return fmt.Errorf("node %q not found", bfsStart)
		}
		res, gerr := bfs.BFS(g, start)
		if gerr != nil {
			return gerr
		}
		for _, id := range res.Order {
			payload, _ := g.NodePayload(id)
			depth, _ := res.Depth.Get(id)
			fmt.Printf("%s\t%d\n", payload, depth)
		}
		return nil
	},
}

func init() {
	bfsCmd.Flags().StringVar(&bfsStart, "start", "", "label of the starting node")
	_ = bfsCmd.MarkFlagRequired("start")
}
