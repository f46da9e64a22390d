// SPDX-License-Identifier: MIT
// File: catalog.go
// Role: Open/Add/Lookup/Get/Len/Close over badger.

package catalog

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/golang/snappy"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlsym/core"
	"github.com/katalvlaran/lvlsym/format"
	"github.com/katalvlaran/lvlsym/search"
)

// Sentinel errors.
var (
	// ErrNotFound indicates an unknown record ID.
	ErrNotFound = errors.New("catalog: record not found")

	// ErrIncomplete indicates the canonical search was stopped early, so
	// the graph cannot be filed.
	ErrIncomplete = errors.New("catalog: canonical search incomplete")

	// ErrClosed indicates use after Close.
	ErrClosed = errors.New("catalog: closed")
)

var (
	canonPrefix = []byte("canon/")
	idPrefix    = []byte("id/")
)

// Options configures Open.
type Options struct {
	// Dir is the badger directory; empty opens an in-memory catalog.
	Dir string
	// Heuristic is the splitting heuristic used for canonical forms.
	// A catalog must always be opened with the same heuristic.
	Heuristic core.SplittingHeuristic
	// Search options passed to every canonical search.
	Search []search.Option
	// Logger receives badger's messages; nil silences them.
	Logger *logrus.Logger
}

// Record describes one isomorphism class in the catalog.
type Record struct {
	ID       uuid.UUID
	Hash     uint64 // hash of the canonical graph
	Vertices int
	Edges    int
	// Labeling maps the queried graph onto the stored canonical graph.
	Labeling []int
}

// Catalog is a persistent set of canonical graphs. It is safe for
// concurrent use.
type Catalog struct {
	mu   sync.RWMutex // Add and Close hold it exclusively, reads share it
	db   *badger.DB
	opts Options
}

// Open opens or creates a catalog.
func Open(opts Options) (*Catalog, error) {
	if !opts.Heuristic.Valid() {
		return nil, errors.Wrapf(core.ErrInvalidHeuristic, "catalog: heuristic %d", int(opts.Heuristic))
	}
	dbOpts := badger.DefaultOptions(opts.Dir)
	dbOpts.Logger = nil
	if opts.Logger != nil {
		dbOpts.Logger = opts.Logger
	}
	dbOpts.MetricsEnabled = false
	if opts.Dir == "" {
		dbOpts.InMemory = true
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: open")
	}

	return &Catalog{db: db, opts: opts}, nil
}

// Close releases the store. Further calls fail with ErrClosed.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil

	return err
}

// canonical computes the canonical graph of g and its labeling.
func (c *Catalog) canonical(g *core.Graph) (*core.Graph, []int, error) {
	work := g.Clone()
	_ = work.SetComponentRecursion(true)
	_ = work.SetSplittingHeuristic(c.opts.Heuristic)
	_ = work.SetVerboseLevel(0)

	var st search.Stats
	lab, err := search.CanonicalForm(work, &st, c.opts.Search...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "catalog: canonical form")
	}
	if !st.Complete {
		return nil, nil, ErrIncomplete
	}
	cg, err := work.Permute(lab)
	if err != nil {
		return nil, nil, errors.Wrap(err, "catalog: permute")
	}

	return cg, lab, nil
}

func hashPrefix(h uint64) []byte {
	return []byte(fmt.Sprintf("%s%016x/", canonPrefix, h))
}

func encode(g *core.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := format.WriteDIMACS(&buf, g); err != nil {
		return nil, err
	}

	return snappy.Encode(nil, buf.Bytes()), nil
}

func decode(val []byte) (*core.Graph, error) {
	raw, err := snappy.Decode(nil, val)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: snappy")
	}

	return format.ReadDIMACS(bytes.NewReader(raw), "catalog")
}

// find scans the entries sharing cg's hash and returns the ID of the one
// equal to cg.
func find(txn *badger.Txn, prefix []byte, cg *core.Graph) (uuid.UUID, bool, error) {
	it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: true, PrefetchSize: 4, Prefix: prefix})
	defer it.Close()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		val, err := item.ValueCopy(nil)
		if err != nil {
			return uuid.Nil, false, err
		}
		stored, err := decode(val)
		if err != nil {
			return uuid.Nil, false, err
		}
		if stored.Equal(cg) {
			id, err := uuid.ParseBytes(item.Key()[len(prefix):])
			if err != nil {
				return uuid.Nil, false, errors.Wrapf(err, "catalog: key %q", item.Key())
			}

			return id, true, nil
		}
	}

	return uuid.Nil, false, nil
}

func record(id uuid.UUID, cg *core.Graph, lab []int) Record {
	return Record{
		ID:       id,
		Hash:     cg.Hash(),
		Vertices: cg.NumVertices(),
		Edges:    cg.NumEdges(),
		Labeling: lab,
	}
}

// Add files g under its isomorphism class. It returns the class record and
// whether a new class was created.
func (c *Catalog) Add(g *core.Graph) (Record, bool, error) {
	cg, lab, err := c.canonical(g)
	if err != nil {
		return Record{}, false, err
	}
	val, err := encode(cg)
	if err != nil {
		return Record{}, false, err
	}
	prefix := hashPrefix(cg.Hash())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return Record{}, false, ErrClosed
	}
	var (
		id    uuid.UUID
		added bool
	)
	err = c.db.Update(func(txn *badger.Txn) error {
		var found bool
		var err error
		if id, found, err = find(txn, prefix, cg); err != nil || found {
			return err
		}
		id, added = uuid.New(), true
		key := append(append([]byte(nil), prefix...), id.String()...)
		if err := txn.Set(key, val); err != nil {
			return err
		}

		return txn.Set(append(append([]byte(nil), idPrefix...), id.String()...), key)
	})
	if err != nil {
		return Record{}, false, errors.Wrap(err, "catalog: add")
	}

	return record(id, cg, lab), added, nil
}

// Lookup reports the class record of g without modifying the catalog.
func (c *Catalog) Lookup(g *core.Graph) (Record, bool, error) {
	cg, lab, err := c.canonical(g)
	if err != nil {
		return Record{}, false, err
	}
	var (
		id    uuid.UUID
		found bool
	)
	err = c.view(func(txn *badger.Txn) error {
		var err error
		id, found, err = find(txn, hashPrefix(cg.Hash()), cg)

		return err
	})
	if err != nil {
		return Record{}, false, errors.Wrap(err, "catalog: lookup")
	}
	if !found {
		return Record{}, false, nil
	}

	return record(id, cg, lab), true, nil
}

// Get returns the canonical graph stored under id.
func (c *Catalog) Get(id uuid.UUID) (*core.Graph, error) {
	var g *core.Graph
	err := c.view(func(txn *badger.Txn) error {
		ref, err := txn.Get(append(append([]byte(nil), idPrefix...), id.String()...))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(ErrNotFound, "catalog: %s", id)
		}
		if err != nil {
			return err
		}
		key, err := ref.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		g, err = decode(val)

		return err
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Len returns the number of isomorphism classes stored.
func (c *Catalog) Len() (int, error) {
	n := 0
	err := c.view(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: idPrefix})
		defer it.Close()
		for it.Seek(idPrefix); it.ValidForPrefix(idPrefix); it.Next() {
			n++
		}

		return nil
	})

	return n, err
}

// view runs fn in a read transaction, holding c.mu so Close waits for it.
func (c *Catalog) view(fn func(txn *badger.Txn) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return ErrClosed
	}

	return c.db.View(fn)
}
