package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphina/dijkstra"
)

var (
	dijkstraStart  string
	dijkstraTarget string
)

var dijkstraCmd = &cobra.Command{
	Use:   "dijkstra",
	Short: "Find the shortest path from --start to --target",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraphFromFlags()
		if err != nil {
			return err
		}
		start, ok := nodeByLabel(g, dijkstraStart)
		if !ok {
			return fmt.Errorf("node %q not found", dijkstraStart)
		}
		res, gerr := dijkstra.Dijkstra(g, start)
		if gerr != nil {
			return gerr
		}
		target, ok := nodeByLabel(g, dijkstraTarget)
		if !ok {
			return fmt.Errorf("node %q not found", dijkstraTarget)
		}
		path, reached := res.PathTo(target)
		if !reached {
			return fmt.Errorf("%s is unreachable from %s", dijkstraTarget, dijkstraStart)
		}
		dist, _ := res.Dist.Get(target)

		labels := make([]string, len(path))
		for i, id := range path {
			payload, _ := g.NodePayload(id)
			labels[i] = payload
		}
		fmt.Printf("distance: %v\npath: %s\n", dist.MustGet(), strings.Join(labels, " -> "))
		return nil
	},
}

func init() {
	dijkstraCmd.Flags().StringVar(&dijkstraStart, "start", "", "label of the starting node")
	dijkstraCmd.Flags().StringVar(&dijkstraTarget, "target", "", "label of the destination node")
	_ = dijkstraCmd.MarkFlagRequired("start")
	_ = dijkstraCmd.MarkFlagRequired("target")
}
