// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/grblas/shortestpath"
)

func (e *env) distanceOptions() []shortestpath.Option {
	return []shortestpath.Option{
		shortestpath.WithLogger(e.logger),
		shortestpath.WithWorkers(e.workers()),
	}
}

func newSSSPCommand(e *env) *cobra.Command {
	var start int
	cmd := &cobra.Command{
		Use:   "sssp",
		Short: "Shortest distances from --start (\"inf\" = unreachable)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := e.loadGraph(cmd)
			if err != nil {
				return err
			}
			m, err := g.Float()
			if err != nil {
				return err
			}
			dist, err := shortestpath.SSSP(m, start, e.distanceOptions()...)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), distancesOut{Source: start, Dist: toJSONFloats(dist)})
		},
	}
	addGraphFlag(cmd)
	cmd.Flags().IntVar(&start, "start", 0, "start vertex")

	return cmd
}

func newMSSPCommand(e *env) *cobra.Command {
	var starts []int
	cmd := &cobra.Command{
		Use:   "mssp",
		Short: "Shortest distances from every --starts vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := e.loadGraph(cmd)
			if err != nil {
				return err
			}
			m, err := g.Float()
			if err != nil {
				return err
			}
			res, err := shortestpath.MSSP(m, starts, e.distanceOptions()...)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), toDistancesOut(res))
		},
	}
	addGraphFlag(cmd)
	cmd.Flags().IntSliceVar(&starts, "starts", []int{0}, "start vertices (comma separated)")

	return cmd
}

func newAPSPCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apsp",
		Short: "All-pairs shortest distances (Floyd-Warshall)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := e.loadGraph(cmd)
			if err != nil {
				return err
			}
			m, err := g.Float()
			if err != nil {
				return err
			}
			res, err := shortestpath.FloydWarshall(m, e.distanceOptions()...)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), toDistancesOut(res))
		},
	}
	addGraphFlag(cmd)

	return cmd
}
