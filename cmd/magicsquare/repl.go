// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/magicsquare/repl"
)

func newReplCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Prompt for orders interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := repl.NewReadline()
			if err != nil {
				return err
			}
			a.log.SetOutput(rl.Stderr())
			session := repl.New(rl, rl.Stdout(), a.log, repl.Options{
				Heatmap:        a.cfg.Heatmap.Enabled,
				HeatmapOptions: a.cfg.HeatmapOptions(),
			})
			return session.Run(cmd.Context())
		},
	}
	cmd.Flags().Bool("heatmap", false, "Print a terminal heatmap after each square")

	return cmd
}
