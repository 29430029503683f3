// Package ui renders the graph selector as a Bubble Tea program.
//
// Views follow the Elm shape (Init/Update/View). The leaves (GraphNum,
// VarChooser, IntervalChooser) are rebuilt from props on every render and
// report user input through callbacks, except GraphNum which calls the graph
// action creators itself. GraphSelect is the container: it mirrors the
// store-backed fields through a store subscription and owns the transient
// selection state (variables per graph, time range) directly.
package ui
