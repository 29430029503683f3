// Package flux provides the dispatcher half of a unidirectional dataflow:
// actions are handed to Dispatch, which delivers them synchronously to every
// registered callback in registration order.
//
// Stores register a callback, mutate their own state in response to the
// actions they recognize, and notify their own subscribers. Views never talk to
// the dispatcher directly; they go through action creators.
package flux
