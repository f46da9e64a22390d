// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsym/format"
	"github.com/katalvlaran/lvlsym/perm"
	"github.com/katalvlaran/lvlsym/search"
)

func newCanonCmd(o *runOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "canon FILE",
		Short: "Print the canonical labeling, optionally writing the canonical graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var stats search.Stats
			lab, err := search.CanonicalForm(g, &stats, o.searchOptions(cmd)...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Canonical labeling: %s\n", perm.Format(lab))
			if err := stats.Fprint(out); err != nil {
				return err
			}
			if output == "" {
				return nil
			}
			cg, err := g.Permute(lab)
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			if err := format.WriteDIMACS(f, cg); err != nil {
				_ = f.Close()
				return err
			}

			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the canonical graph in DIMACS format to this file")

	return cmd
}

func newDotCmd(o *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot FILE",
		Short: "Print the graph in Graphviz dot format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}

			return format.WriteDot(cmd.OutOrStdout(), g)
		},
	}
}
