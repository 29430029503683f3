package graph

import (
	"context"

	"backpack/internal/flux"
)

// Creators turn user intents into dispatched actions.
type Creators struct {
	dispatcher *flux.Dispatcher
}

// NewCreators binds action creators to d.
func NewCreators(d *flux.Dispatcher) *Creators {
	return &Creators{dispatcher: d}
}

// SetNumGraphs dispatches SET_NUM_GRAPHS.
func (c *Creators) SetNumGraphs(ctx context.Context, n int) error {
	return c.dispatcher.Dispatch(ctx, SetNumGraphs{N: n})
}

// SetMyNum dispatches SET_MY_NUM.
func (c *Creators) SetMyNum(ctx context.Context, n int) error {
	return c.dispatcher.Dispatch(ctx, SetMyNum{N: n})
}

// DispatchRecord decodes a positional record and dispatches the result.
// Decode errors are returned without dispatching.
func (c *Creators) DispatchRecord(ctx context.Context, r Record) error {
	a, err := Decode(r)
	if err != nil {
		return err
	}
	return c.dispatcher.Dispatch(ctx, a)
}
