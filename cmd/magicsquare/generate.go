// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magicsquare/render"
	"github.com/katalvlaran/magicsquare/square"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate N",
		Aliases: []string{"gen"},
		Short:   "Print the magic square of order N",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not a whole number", args[0])
			}
			return a.generate(n)
		},
	}
	cmd.Flags().StringP("format", "f", string(render.FormatText), "Output format: text, json, yaml, cbor")
	cmd.Flags().Bool("heatmap", false, "Print a terminal heatmap after the square (text format only)")

	return cmd
}

// generate prints the order-n square in the configured format.
func (a *app) generate(n int) error {
	format, err := render.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	sq, err := square.Generate(n)
	if err != nil {
		return err
	}
	class, _ := square.ClassOf(n)
	a.log.WithField("order", n).WithField("class", class.String()).Debug("square generated")

	if err := render.Encode(a.out, sq, format); err != nil {
		return err
	}
	if format != render.FormatText || !a.cfg.Heatmap.Enabled {
		return nil
	}
	fmt.Fprintln(a.out)

	return render.Heatmap(a.out, sq, a.cfg.HeatmapOptions())
}
