// SPDX-License-Identifier: MIT
// File: engine.go
// Role: the frame-stack search over one connected or unsplit problem.
//
// Tree:
//   - Depth d nodes have d individualized vertices; the root is the
//     equitable refinement of the color partition.
//   - A frame stores the partition snapshot of a node, its target cell's
//     vertices and a cursor; children are created by restoring the
//     snapshot, individualizing one vertex and refining from it.
//   - The first path always takes the first vertex of each target cell.
//     Its frames stay on the stack until the search ends, so first-path
//     levels are completed bottom-up.
//
// Leaves and pruning:
//   - A node's trace hashes its target cell and refinement run; equal trace
//     sequences mean equal cell structures along the path.
//   - The canonical leaf minimizes (trace sequence, certificate). A node is
//     a bad node, and is cut, when its trace prefix differs from the first
//     path and, in canonical mode, is also greater than the best prefix.
//   - A leaf whose certificate equals the first (or best) leaf's gives an
//     automorphism. It is reported when it joins orbits; the search then
//     jumps back to the deepest node the two leaves share.
//   - At a first-path node, children in the orbit of the first child (and,
//     with failure recording, of a failed child) are skipped. When such a
//     node is exhausted, the group order is multiplied by the orbit size of
//     its first child.
//   - At any other node, the generators fixing its individualized vertices
//     when it is branched split the target cell into orbits; only the least
//     vertex of each orbit is explored.

package search

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/partition"
	"github.com/katalvlaran/lvlsym/perm"
)

// problem is the immutable input of one engine run.
type problem struct {
	adj    [][]int
	colors []uint32
}

func newProblem(g *core.Graph) problem {
	n := g.NumVertices()
	pr := problem{adj: make([][]int, n), colors: g.Colors()}
	for v := 0; v < n; v++ {
		pr.adj[v], _ = g.Neighbors(v)
	}

	return pr
}

type frame struct {
	depth    int
	vertex   int    // individualized to reach this node; -1 at the root
	trace    uint64 // invariant of this node
	target   int    // start of the target cell
	children []int  // target cell vertices at branch time
	cursor   int
	snap     partition.Snapshot

	eqFirst bool // trace prefix equals the first path's
	cmpBest int  // trace prefix compared to the best path's

	firstPath  bool
	pending    int // child under exploration, -1 if none
	gensBefore int
	failures   failureRecord

	lpSeen       int
	lpApplicable []*storedAut

	stabilized bool
	skip       []bool // skip[i]: children[i] is not the least of its orbit
}

// leafRecord is a stored leaf: the first leaf or the best one.
type leafRecord struct {
	traces []uint64
	path   []int // individualized vertices
	lab    []int // vertex -> position
	elems  []int // position -> vertex
	cert   certificate
}

func (l *leafRecord) set(traces []uint64, path, lab, elems []int, cert *certificate) {
	l.traces = append(l.traces[:0], traces...)
	l.path = append(l.path[:0], path...)
	l.lab = append(l.lab[:0], lab...)
	l.elems = append(l.elems[:0], elems...)
	l.cert.copyFrom(cert)
}

type engine struct {
	problem
	n      int
	flags  core.Flags
	canon  bool
	opts   *options
	log    *logrus.Logger
	stats  *Stats
	report func(aut []int)

	p     *partition.Partition
	sel   *cellSelector
	stack []*frame
	spare []*frame
	orb   *orbits
	stab  *orbits
	lp    *longPrune
	found [][]int // every generator, in discovery order

	first, best leafRecord
	haveFirst   bool

	cert    certificate
	lab     []int
	path    []int
	traces  []uint64
	prefix  []int
	aut     []int
	gens    int
	hashBuf []byte
	minOf   []int
}

func newEngine(pr problem, flags core.Flags, canon bool, o *options, log *logrus.Logger, stats *Stats) *engine {
	n := len(pr.adj)

	return &engine{
		problem: pr,
		n:       n,
		flags:   flags,
		canon:   canon,
		opts:    o,
		log:     log,
		stats:   stats,
		sel:     newCellSelector(flags.Heuristic, pr.adj),
		orb:     newOrbits(n),
		stab:    newOrbits(n),
		lp:      newLongPrune(o.window),
		lab:     make([]int, n),
		aut:     make([]int, n),
		minOf:   make([]int, n),
	}
}

// labeling returns the canonical labeling found, or the identity when the
// search stopped before reaching a leaf.
func (e *engine) labeling() []int {
	if !e.haveFirst {
		return perm.Identity(e.n)
	}
	if e.canon {
		return append([]int(nil), e.best.lab...)
	}

	return append([]int(nil), e.first.lab...)
}

// run explores the tree. It returns ctx.Err() when the context stopped the
// search; a terminate request is not an error. Stats.Complete is set only
// when the tree was fully explored.
func (e *engine) run() error {
	p, err := partition.New(e.n, e.colors)
	if err != nil {
		return err
	}
	e.p = p
	if stop, err := e.cancelled(); stop {
		return err
	}
	rootTrace := p.RefineAll(e.adj)
	e.stats.Nodes++
	if p.Discrete() {
		e.leaf(-1, rootTrace, true, 0)
		e.stats.Complete = true
		return nil
	}
	root := e.push()
	root.vertex, root.trace = -1, rootTrace
	root.firstPath, root.eqFirst, root.cmpBest = true, true, 0
	e.branch(root)

	for len(e.stack) > 0 {
		f := e.stack[len(e.stack)-1]
		e.settle(f)
		w, ok := e.nextChild(f)
		if !ok {
			e.finish(f)
			e.pop()
			continue
		}
		if stop, err := e.cancelled(); stop {
			return err
		}
		e.expand(f, w)
	}
	e.stats.Complete = true

	return nil
}

func (e *engine) cancelled() (bool, error) {
	if err := e.opts.ctx.Err(); err != nil {
		return true, err
	}
	if e.opts.terminate != nil && e.opts.terminate() {
		return true, nil
	}

	return false, nil
}

func (e *engine) push() *frame {
	var f *frame
	if k := len(e.spare); k > 0 {
		f = e.spare[k-1]
		e.spare = e.spare[:k-1]
	} else {
		f = &frame{}
	}
	f.depth = len(e.stack)
	e.stack = append(e.stack, f)

	return f
}

func (e *engine) pop() {
	k := len(e.stack) - 1
	e.spare = append(e.spare, e.stack[k])
	e.stack[k] = nil
	e.stack = e.stack[:k]
}

// backjump discards every frame deeper than depth.
func (e *engine) backjump(depth int) {
	for len(e.stack) > depth+1 {
		e.pop()
	}
}

// branch selects the target cell of the current partition and saves it into f.
func (e *engine) branch(f *frame) {
	f.target = e.sel.selectCell(e.p)
	f.children = append(f.children[:0], e.p.Cell(f.target)...)
	f.cursor = 0
	f.pending = -1
	f.lpSeen = -1
	f.lpApplicable = f.lpApplicable[:0]
	if f.firstPath && e.flags.FailureRecording {
		f.failures.reset()
	}
	f.stabilized = false
	if !f.firstPath {
		e.stabilize(f)
	}
	e.p.SaveTo(&f.snap)
}

// stabilize marks the children of f that are not the least vertex of their
// orbit under the generators fixing the prefix of f.
func (e *engine) stabilize(f *frame) {
	e.fillPrefix(f)
	e.stab.reset()
	joined := false
	for _, g := range e.found {
		if fixesPrefix(g, e.prefix) && e.stab.merge(g) {
			joined = true
		}
	}
	if !joined {
		return
	}
	for _, w := range f.children {
		e.minOf[e.stab.find(w)] = -1
	}
	for _, w := range f.children {
		if r := e.stab.find(w); e.minOf[r] < 0 || w < e.minOf[r] {
			e.minOf[r] = w
		}
	}
	f.skip = f.skip[:0]
	for _, w := range f.children {
		f.skip = append(f.skip, e.minOf[e.stab.find(w)] != w)
	}
	f.stabilized = true
}

// fillPrefix loads the individualized vertices leading to f into e.prefix.
func (e *engine) fillPrefix(f *frame) {
	e.prefix = e.prefix[:0]
	for _, g := range e.stack[1 : f.depth+1] {
		e.prefix = append(e.prefix, g.vertex)
	}
}

func fixesPrefix(aut, prefix []int) bool {
	for _, v := range prefix {
		if aut[v] != v {
			return false
		}
	}

	return true
}

// settle closes the bookkeeping of the child last explored from a first-path node.
func (e *engine) settle(f *frame) {
	if f.pending < 0 {
		return
	}
	w := f.pending
	f.pending = -1
	if e.flags.FailureRecording && e.haveFirst && e.gens == f.gensBefore && w != f.children[0] {
		f.failures.add(w)
		e.log.WithFields(logrus.Fields{"level": f.depth, "vertex": w}).Debug("failure recorded")
	}
}

func (e *engine) nextChild(f *frame) (int, bool) {
	for f.cursor < len(f.children) {
		i := f.cursor
		w := f.children[i]
		f.cursor++
		if f.firstPath && i > 0 {
			if e.orb.same(w, f.children[0]) {
				continue
			}
			if e.flags.FailureRecording && f.failures.covers(e.orb, w) {
				e.stats.FailurePrunes++
				continue
			}
		}
		if e.flags.LongPrune && e.longPruned(f, w) {
			e.stats.LongPrunes++
			continue
		}
		if f.stabilized && f.skip[i] {
			continue
		}

		return w, true
	}

	return -1, false
}

func (e *engine) longPruned(f *frame, w int) bool {
	if e.lp.total == 0 {
		return false
	}
	if f.lpSeen != e.lp.total {
		e.fillPrefix(f)
		f.lpApplicable = e.lp.applicable(e.prefix, f.lpApplicable)
		f.lpSeen = e.lp.total
	}

	return prunes(f.lpApplicable, w)
}

// finish runs when every child of f is done.
func (e *engine) finish(f *frame) {
	if !f.firstPath || !e.haveFirst {
		return
	}
	size := e.orb.sizeOf(f.children[0])
	_ = e.stats.GroupSize.Multiply(uint64(size))
	e.log.WithFields(logrus.Fields{
		"level":  f.depth,
		"cell":   len(f.children),
		"orbit":  size,
		"orbits": e.orb.count,
	}).Info("level done")
}

func (e *engine) childTrace(target, size int, refine uint64) uint64 {
	e.hashBuf = binary.LittleEndian.AppendUint64(e.hashBuf[:0], uint64(target))
	e.hashBuf = binary.LittleEndian.AppendUint64(e.hashBuf, uint64(size))
	e.hashBuf = binary.LittleEndian.AppendUint64(e.hashBuf, refine)

	return xxhash.Sum64(e.hashBuf)
}

// expand creates the child of parent that individualizes w.
func (e *engine) expand(parent *frame, w int) {
	d := parent.depth + 1
	e.p.Restore(&parent.snap)
	s, err := e.p.Individualize(w)
	if err != nil {
		return
	}
	tr := e.childTrace(parent.target, len(parent.children), e.p.Refine(e.adj, s))
	e.stats.Nodes++
	if d > e.stats.MaxLevel {
		e.stats.MaxLevel = d
	}
	if parent.firstPath {
		parent.pending, parent.gensBefore = w, e.gens
	}

	eqFirst, cmpBest := true, 0
	if e.haveFirst {
		eqFirst = parent.eqFirst && cmpTrace(tr, e.first.traces, d) == 0
		if e.canon {
			cmpBest = parent.cmpBest
			if cmpBest == 0 {
				cmpBest = cmpTrace(tr, e.best.traces, d)
			}
		}
		if !eqFirst && (!e.canon || cmpBest > 0) {
			e.stats.BadNodes++
			return
		}
	}
	if e.p.Discrete() {
		e.leaf(w, tr, eqFirst, cmpBest)
		return
	}
	child := e.push()
	child.vertex, child.trace = w, tr
	child.eqFirst, child.cmpBest = eqFirst, cmpBest
	child.firstPath = !e.haveFirst
	e.branch(child)
}

// cmpTrace compares tr with traces[d]; a missing entry sorts first.
func cmpTrace(tr uint64, traces []uint64, d int) int {
	switch {
	case d >= len(traces), tr > traces[d]:
		return 1
	case tr < traces[d]:
		return -1
	}

	return 0
}

// leaf handles a discrete partition reached by individualizing w (-1 at the root).
func (e *engine) leaf(w int, tr uint64, eqFirst bool, cmpBest int) {
	e.stats.LeafNodes++
	e.collect(w, tr)
	for v := range e.lab {
		e.lab[v] = e.p.Position(v)
	}
	e.cert.build(e.adj, e.colors, e.lab)

	if !e.haveFirst {
		e.haveFirst = true
		e.first.set(e.traces, e.path, e.lab, e.p.Elements(), &e.cert)
		if e.canon {
			e.best.set(e.traces, e.path, e.lab, e.p.Elements(), &e.cert)
			e.stats.CanonUpdates++
		}
		e.log.WithField("depth", len(e.path)).Debug("first leaf")
		return
	}
	if eqFirst && e.cert.cmp(&e.first.cert) == 0 {
		e.automorphism(&e.first)
		e.backjump(e.firstPathDepth())
		return
	}
	if !e.canon {
		return
	}
	c := cmpBest
	if c == 0 {
		c = e.cert.cmp(&e.best.cert)
	}
	switch {
	case c < 0:
		e.best.set(e.traces, e.path, e.lab, e.p.Elements(), &e.cert)
		e.stats.CanonUpdates++
		for _, f := range e.stack {
			f.cmpBest = 0
		}
		e.log.WithField("depth", len(e.path)).Debug("canonical update")
	case c == 0:
		e.automorphism(&e.best)
		e.backjump(commonPrefix(e.path, e.best.path))
	}
}

// collect gathers the path and trace sequence of the current leaf.
func (e *engine) collect(w int, tr uint64) {
	e.path = e.path[:0]
	e.traces = e.traces[:0]
	for _, f := range e.stack {
		if f.vertex >= 0 {
			e.path = append(e.path, f.vertex)
		}
		e.traces = append(e.traces, f.trace)
	}
	if w >= 0 {
		e.path = append(e.path, w)
	}
	e.traces = append(e.traces, tr)
}

// automorphism maps the current leaf onto ref position by position and
// reports the result when it joins orbits.
func (e *engine) automorphism(ref *leafRecord) {
	for v, p := range e.lab {
		e.aut[v] = ref.elems[p]
	}
	if !e.orb.merge(e.aut) {
		return
	}
	e.gens++
	e.stats.Generators++
	e.found = append(e.found, append([]int(nil), e.aut...))
	if e.flags.LongPrune {
		e.lp.store(e.aut)
	}
	if e.log.IsLevelEnabled(logrus.DebugLevel) {
		e.log.WithField("generator", perm.Format(e.aut)).Debug("automorphism")
	}
	if e.report != nil {
		e.report(e.aut)
	}
}

func (e *engine) firstPathDepth() int {
	i := len(e.stack) - 1
	for i > 0 && !e.stack[i].firstPath {
		i--
	}

	return i
}

// commonPrefix returns the number of leading vertices a and b share.
func commonPrefix(a, b []int) int {
	m := 0
	for m < len(a) && m < len(b) && a[m] == b[m] {
		m++
	}

	return m
}
