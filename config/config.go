// SPDX-License-Identifier: MIT
// Package config loads the YAML run configuration of lvlsym and applies it
// to graphs and searches.
//
//	verbose: 1
//	failure_recording: true
//	component_recursion: true
//	long_prune: true
//	splitting_heuristic: fsm
//	long_prune_window: 100
//	catalog_dir: ""
//
// Keys left out keep their Default values; unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/search"
)

// ErrInvalidConfig indicates a document that does not parse or validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is one run configuration.
type Config struct {
	Verbose            int    `yaml:"verbose" validate:"min=0,max=3"`
	FailureRecording   bool   `yaml:"failure_recording"`
	ComponentRecursion bool   `yaml:"component_recursion"`
	LongPrune          bool   `yaml:"long_prune"`
	SplittingHeuristic string `yaml:"splitting_heuristic" validate:"required,oneof=f fs fl fm fsm flm"`
	LongPruneWindow    int    `yaml:"long_prune_window" validate:"min=1,max=4096"`
	CatalogDir         string `yaml:"catalog_dir"`
}

// Default returns the configuration matching the graph defaults.
func Default() Config {
	return Config{
		FailureRecording:   true,
		ComponentRecursion: true,
		LongPrune:          true,
		SplittingHeuristic: core.HeuristicFSM.String(),
		LongPruneWindow:    search.DefaultLongPruneWindow,
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.SplittingHeuristic = strings.ToLower(strings.TrimSpace(c.SplittingHeuristic))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the field ranges.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Heuristic returns the configured splitting heuristic.
func (c Config) Heuristic() (core.SplittingHeuristic, error) {
	return core.ParseSplittingHeuristic(c.SplittingHeuristic)
}

// Apply sets the graph flags from c. It fails with core.ErrSearchActive
// while a search holds g.
func (c Config) Apply(g *core.Graph) error {
	h, err := c.Heuristic()
	if err != nil {
		return err
	}

	return errors.Join(
		g.SetVerboseLevel(c.Verbose),
		g.SetFailureRecording(c.FailureRecording),
		g.SetComponentRecursion(c.ComponentRecursion),
		g.SetLongPrune(c.LongPrune),
		g.SetSplittingHeuristic(h),
	)
}

// SearchOptions returns the search options c controls.
func (c Config) SearchOptions() []search.Option {
	return []search.Option{search.WithLongPruneWindow(c.LongPruneWindow)}
}
