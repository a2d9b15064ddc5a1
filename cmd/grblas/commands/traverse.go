// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/grblas/bfs"
)

func newBFSCommand(e *env) *cobra.Command {
	var start int
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Hop count from --start to every vertex (-1 = unreached)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := e.loadGraph(cmd)
			if err != nil {
				return err
			}
			m, err := g.Bool()
			if err != nil {
				return err
			}
			steps, err := bfs.BFS(m, start, bfs.WithLogger(e.logger))
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), struct {
				Source int   `json:"source"`
				Steps  []int `json:"steps"`
			}{start, steps})
		},
	}
	addGraphFlag(cmd)
	cmd.Flags().IntVar(&start, "start", 0, "start vertex")

	return cmd
}

func newMSBFSCommand(e *env) *cobra.Command {
	var starts []int
	cmd := &cobra.Command{
		Use:   "msbfs",
		Short: "Shortest-path parent tree per --starts vertex (-1 = root, -2 = unreached)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := e.loadGraph(cmd)
			if err != nil {
				return err
			}
			m, err := g.Bool()
			if err != nil {
				return err
			}
			trees, err := bfs.MultiSourceBFS(m, starts, bfs.WithLogger(e.logger), bfs.WithWorkers(e.workers()))
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), trees)
		},
	}
	addGraphFlag(cmd)
	cmd.Flags().IntSliceVar(&starts, "starts", []int{0}, "start vertices (comma separated)")

	return cmd
}
