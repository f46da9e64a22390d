// SPDX-License-Identifier: MIT
// File: stats.go
// Role: Stats lifecycle and text rendering.

package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlsym/bignum"
)

// Reset zeroes the counters and sets the group order to 1.
func (s *Stats) Reset() {
	*s = Stats{GroupSize: bignum.New(), GroupSizeApprox: 1}
}

// merge adds the counters of o into s; MaxLevel takes the maximum.
func (s *Stats) merge(o *Stats) {
	s.Nodes += o.Nodes
	s.LeafNodes += o.LeafNodes
	s.BadNodes += o.BadNodes
	s.CanonUpdates += o.CanonUpdates
	s.Generators += o.Generators
	s.FailurePrunes += o.FailurePrunes
	s.LongPrunes += o.LongPrunes
	if o.MaxLevel > s.MaxLevel {
		s.MaxLevel = o.MaxLevel
	}
}

// Fprint writes the statistics in the layout of the bliss tool.
func (s *Stats) Fprint(w io.Writer) error {
	group := "1"
	if s.GroupSize != nil {
		group = s.GroupSize.String()
	}
	_, err := fmt.Fprintf(w,
		"Nodes:\t\t%d\nLeaf nodes:\t%d\nBad nodes:\t%d\nCanrep updates:\t%d\nGenerators:\t%d\nMax level:\t%d\n|Aut|:\t\t%s\n",
		s.Nodes, s.LeafNodes, s.BadNodes, s.CanonUpdates, s.Generators, s.MaxLevel, group)

	return err
}

func (s *Stats) String() string {
	var sb strings.Builder
	_ = s.Fprint(&sb)

	return sb.String()
}
