// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grblas/builder"
	"github.com/katalvlaran/grblas/coo"
)

func newGenerateCommand(e *env) *cobra.Command {
	var (
		kind     string
		n        int
		p        float64
		seed     int64
		directed bool
		weights  []int
		format   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph as a coordinate list",
		Long: fmt.Sprintf("Kinds: %s. For random, --p is the edge probability; "+
			"for regular, --p is the degree.", strings.Join(builder.Kinds(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			con, err := builder.ByName(kind, n, p)
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if directed {
				opts = append(opts, builder.WithDirected())
			}
			switch len(weights) {
			case 0:
			case 2:
				if weights[1] < weights[0] {
					return fmt.Errorf("--weights: max %d < min %d", weights[1], weights[0])
				}
				if !builder.IntegerWeightInRange(weights[0]) || !builder.IntegerWeightInRange(weights[1]) {
					return fmt.Errorf("--weights: bounds must lie within ±%d, got %v", builder.MaxIntegerWeight, weights)
				}
				opts = append(opts, builder.WithIntegerWeight(weights[0], weights[1]))
			default:
				return fmt.Errorf("--weights wants min,max, got %v", weights)
			}

			g, err := builder.Build(opts, con)
			if err != nil {
				return err
			}
			e.logger.Info("graph generated", "kind", kind, "size", g.Size, "edges", g.Edges())

			return coo.Encode(cmd.OutOrStdout(), g, coo.Format(strings.ToLower(format)))
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", builder.KindPath, "graph family")
	f.IntVar(&n, "n", 5, "vertex count (side length for grid)")
	f.Float64Var(&p, "p", 0.5, "edge probability (random) or degree (regular)")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.BoolVar(&directed, "directed", false, "emit forward arcs only")
	f.IntSliceVar(&weights, "weights", nil, "integer weight range min,max (unweighted if unset)")
	f.StringVar(&format, "format", string(coo.FormatJSON), "output format: json or yaml")

	return cmd
}
