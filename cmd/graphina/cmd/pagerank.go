package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphina/centrality"
)

var (
	pagerankDamping   float64
	pagerankTolerance float64
	pagerankMaxIter   int
)

var pagerankCmd = &cobra.Command{
	Use:   "pagerank",
	Short: "Rank nodes by PageRank score",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraphFromFlags()
		if err != nil {
			return err
		}
		scores, gerr := centrality.PageRank(g,
			centrality.WithDamping(pagerankDamping),
			centrality.WithTolerance(pagerankTolerance),
			centrality.WithMaxIter(pagerankMaxIter),
		)
		if gerr != nil {
			return gerr
		}

		type row struct {
			label string
			score float64
		}
		rows := make([]row, 0, scores.Len())
		for _, id := range scores.Keys() {
			payload, _ := g.NodePayload(id)
			score, _ := scores.Get(id)
			rows = append(rows, row{payload, score})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].score > rows[j].score })
		for _, r := range rows {
			fmt.Printf("%s\t%.6f\n", r.label, r.score)
		}
		return nil
	},
}

func init() {
	pagerankCmd.Flags().Float64Var(&pagerankDamping, "damping", 0.85, "PageRank damping factor")
	pagerankCmd.Flags().Float64Var(&pagerankTolerance, "tolerance", 1e-6, "convergence tolerance")
	pagerankCmd.Flags().IntVar(&pagerankMaxIter, "max-iter", 100, "maximum iterations before giving up")
}
