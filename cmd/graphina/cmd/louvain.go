package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphina/community"
)

var (
	louvainSeed      int64
	louvainMaxSweeps int
)

var louvainCmd = &cobra.Command{
	Use:   "louvain",
	Short: "Partition a graph into communities via Louvain modularity optimization",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraphFromFlags()
		if err != nil {
			return err
		}
		partition := community.Louvain(g,
			community.WithLouvainSeed(louvainSeed),
			community.WithLouvainMaxSweeps(louvainMaxSweeps),
		)
		for _, id := range partition.Community.Keys() {
			payload, _ := g.NodePayload(id)
			cid, _ := partition.Community.Get(id)
			fmt.Printf("%s\t%d\n", payload, cid)
		}
		fmt.Printf("# communities: %d\n", partition.Count)
		return nil
	},
}

func init() {
	louvainCmd.Flags().Int64Var(&louvainSeed, "seed", 0, "random seed for tie-breaking")
	louvainCmd.Flags().IntVar(&louvainMaxSweeps, "max-sweeps", 100, "maximum local-moving sweeps per level")
}
