// Package format reads and writes colored graphs as text.
//
// DIMACS (the bliss dialect):
//
//	c comment lines are ignored
//	p edge N E      exactly one, before any other line
//	n v c           vertex v (1..N) has color c; unlisted vertices have color 0
//	e u v           undirected edge between u and v (1..N)
//
// File vertex v is graph vertex v-1. The number of e lines must equal E.
// ReadDIMACS never returns a partially built graph: any problem yields a nil
// graph and an error wrapping ErrMalformedInput that names the offending line.
//
// WriteDot renders a graph for Graphviz with "index:color" labels.
package format
