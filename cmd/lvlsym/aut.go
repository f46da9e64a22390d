// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsym/perm"
	"github.com/katalvlaran/lvlsym/search"
)

func newAutCmd(o *runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "aut FILE",
		Short: "Print generators of the automorphism group and search statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var stats search.Stats
			err = search.FindAutomorphisms(g, &stats, o.searchOptions(cmd,
				search.WithReport(func(_ int, aut []int) {
					fmt.Fprintf(out, "Generator: %s\n", perm.Format(aut))
				}))...)
			if err != nil {
				return err
			}

			return stats.Fprint(out)
		},
	}
}
