// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsym/config"
	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/format"
	"github.com/katalvlaran/lvlsym/search"
)

// runOptions are the persistent flags shared by every subcommand.
type runOptions struct {
	configPath string
	verbose    int
	fr, cr, lp bool
	heuristic  string
	logLevel   string

	cfg    config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	o := &runOptions{}
	root := &cobra.Command{
		Use:           "lvlsym",
		Short:         "Automorphism groups and canonical forms of colored graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.resolve(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML configuration file")
	pf.IntVarP(&o.verbose, "verbose", "v", 0, "search diagnostics level (0-3)")
	pf.BoolVar(&o.fr, "fr", true, "failure recording")
	pf.BoolVar(&o.cr, "cr", true, "component recursion")
	pf.BoolVar(&o.lp, "lp", true, "long prune")
	pf.StringVar(&o.heuristic, "sh", "fsm", "splitting heuristic: f, fs, fl, fm, fsm, flm")
	pf.StringVar(&o.logLevel, "log-level", "warning", "log level of the tool itself")

	root.AddCommand(
		newAutCmd(o),
		newCanonCmd(o),
		newDotCmd(o),
		newCatalogCmd(o),
	)

	return root
}

// resolve merges the configuration file with explicitly set flags.
func (o *runOptions) resolve(cmd *cobra.Command) error {
	o.logger = log.New()
	o.logger.SetOutput(cmd.ErrOrStderr())
	lvl, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	o.logger.SetLevel(lvl)

	o.cfg = config.Default()
	if o.configPath != "" {
		if o.cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
		o.logger.WithField("path", o.configPath).Debug("configuration loaded")
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		o.cfg.Verbose = o.verbose
	}
	if flags.Changed("fr") {
		o.cfg.FailureRecording = o.fr
	}
	if flags.Changed("cr") {
		o.cfg.ComponentRecursion = o.cr
	}
	if flags.Changed("lp") {
		o.cfg.LongPrune = o.lp
	}
	if flags.Changed("sh") {
		o.cfg.SplittingHeuristic = o.heuristic
	}

	return o.cfg.Validate()
}

// load reads a DIMACS file ("-" for stdin) and applies the configuration.
func (o *runOptions) load(cmd *cobra.Command, path string) (*core.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open graph")
		}
		defer f.Close()
		r = f
	}
	g, err := format.ReadDIMACS(r, path)
	if err != nil {
		return nil, err
	}
	if err := o.cfg.Apply(g); err != nil {
		return nil, err
	}
	if err := g.SetVerboseOutput(cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	o.logger.WithFields(log.Fields{
		"file":     path,
		"vertices": g.NumVertices(),
		"edges":    g.NumEdges(),
	}).Info("graph loaded")

	return g, nil
}

func (o *runOptions) searchOptions(cmd *cobra.Command, extra ...search.Option) []search.Option {
	opts := append(o.cfg.SearchOptions(), search.WithContext(cmd.Context()))

	return append(opts, extra...)
}
