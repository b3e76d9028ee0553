// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magicsquare/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated generation for a list of orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := bench.Run(cmd.Context(), bench.Config{
				Sizes:   a.cfg.Bench.Sizes,
				Repeats: a.cfg.Bench.Repeats,
			}, a.log)
			if err != nil {
				return err
			}
			if err := rep.WriteTable(a.out); err != nil {
				return err
			}
			if !sample {
				return nil
			}
			fmt.Fprintln(a.out)
			return rep.Sample(a.out)
		},
	}
	cmd.Flags().IntSlice("sizes", nil, "Orders to time (comma-separated)")
	cmd.Flags().Int("repeats", 0, "Calls per order")
	cmd.Flags().BoolVar(&sample, "sample", false, "Also print the largest square timed")

	return cmd
}
