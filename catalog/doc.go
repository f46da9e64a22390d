// Package catalog stores graphs up to isomorphism in a badger key-value
// store.
//
// Each entry is the canonical form of a graph, written as snappy-compressed
// DIMACS under the key "canon/<hash>/<uuid>", where hash is the xxhash of the
// canonical graph. A second key "id/<uuid>" points back to the entry.
// Two graphs share an entry exactly when they are isomorphic as colored
// graphs; hash collisions are resolved by comparing the stored canonical
// graphs.
//
// Canonical forms are computed with component recursion on and the
// catalog's splitting heuristic, whatever the flags of the input graph.
package catalog
