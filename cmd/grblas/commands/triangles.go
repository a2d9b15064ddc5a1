// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/grblas/sparse"
	"github.com/katalvlaran/grblas/triangles"
)

func newTrianglesCommand(e *env) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "triangles",
		Short: "Count triangles of an undirected graph (--method cohen|sandia|vertex)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := triangles.ParseMethod(method)
			if err != nil {
				return err
			}
			g, err := e.loadGraph(cmd)
			if err != nil {
				return err
			}
			a, err := g.Bool()
			if err != nil {
				return err
			}
			opts := []triangles.Option{triangles.WithLogger(e.logger), triangles.WithWorkers(e.workers())}

			out := struct {
				Method    string `json:"method"`
				Count     int    `json:"count"`
				PerVertex []int  `json:"per_vertex,omitempty"`
			}{Method: m.String()}
			if m == triangles.MethodForEachVertex {
				if out.PerVertex, err = triangles.ForEachVertex(a, opts...); err != nil {
					return err
				}
				out.Count = triangles.Total(out.PerVertex)
			} else if out.Count, err = triangles.Count(a, m, opts...); err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	addGraphFlag(cmd)
	cmd.Flags().StringVar(&method, "method", triangles.MethodCohen.String(), "cohen, sandia or vertex")

	return cmd
}

func newSymmetricCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symmetric",
		Short: "Report whether the graph is undirected (symmetric with equal weights)",
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

			return writeJSON(cmd.OutOrStdout(), struct {
				Symmetric bool `json:"symmetric"`
			}{sparse.IsSymmetric(m)})
		},
	}
	addGraphFlag(cmd)

	return cmd
}
