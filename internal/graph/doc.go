// Package graph holds the graph-selection slice of application state: the
// action kinds that change it, the creators that dispatch them, and the Store
// that owns it.
package graph
