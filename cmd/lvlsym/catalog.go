// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsym/catalog"
)

func newCatalogCmd(o *runOptions) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Store and look up graphs up to isomorphism",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "catalog directory (overrides catalog_dir)")

	open := func(cmd *cobra.Command) (*catalog.Catalog, error) {
		if dir == "" {
			dir = o.cfg.CatalogDir
		}
		if dir == "" {
			return nil, errors.New("catalog: no directory given (--dir or catalog_dir)")
		}
		h, err := o.cfg.Heuristic()
		if err != nil {
			return nil, err
		}

		return catalog.Open(catalog.Options{
			Dir:       dir,
			Heuristic: h,
			Search:    o.searchOptions(cmd),
			Logger:    o.logger,
		})
	}

	add := &cobra.Command{
		Use:   "add FILE",
		Short: "Add the isomorphism class of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}
			c, err := open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()
			rec, added, err := c.Add(g)
			if err != nil {
				return err
			}
			status := "exists"
			if added {
				status = "added"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", status, rec.ID)

			return nil
		},
	}

	lookup := &cobra.Command{
		Use:   "lookup FILE",
		Short: "Find the isomorphism class of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := o.load(cmd, args[0])
			if err != nil {
				return err
			}
			c, err := open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()
			rec, found, err := c.Lookup(g)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "found %s\n", rec.ID)

			return nil
		},
	}

	cmd.AddCommand(add, lookup)

	return cmd
}
