package graph

import (
	"context"
	"errors"
	"testing"

	"backpack/internal/flux"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*flux.Dispatcher, *Store, *Creators) {
	t.Helper()
	d := flux.NewDispatcher()
	s := NewStore(d)
	t.Cleanup(func() { _ = s.Close() })
	return d, s, NewCreators(d)
}

func TestStore_DefaultState(t *testing.T) {
	_, s, _ := newTestStore(t)
	assert.Equal(t, State{NGraphs: 2, MyN: 0}, s.State())
}

func TestStore_LastSetNumGraphsWins(t *testing.T) {
	sequences := [][]int{
		{1},
		{3, 1, 2},
		{2, 2, 2},
		{1, 3, 3, 1, 2, 3},
	}
	for _, seq := range sequences {
		_, s, c := newTestStore(t)
		var emissions int
		sub := s.AddListener(func(State) { emissions++ })

		for _, n := range seq {
			require.NoError(t, c.SetNumGraphs(context.Background(), n))
		}

		assert.Equal(t, seq[len(seq)-1], s.State().NGraphs, "sequence %v", seq)
		assert.Equal(t, len(seq), emissions, "one emission per dispatch for %v", seq)
		sub.Remove()
	}
}

func TestStore_ListenerReceivesSnapshot(t *testing.T) {
	_, s, c := newTestStore(t)
	var got []State
	sub := s.AddListener(func(st State) { got = append(got, st) })
	defer sub.Remove()

	require.NoError(t, c.SetNumGraphs(context.Background(), 3))
	require.NoError(t, c.SetMyNum(context.Background(), 7))

	assert.Equal(t, []State{{NGraphs: 3}, {NGraphs: 3, MyN: 7}}, got)
}

func TestStore_StateIsACopy(t *testing.T) {
	_, s, _ := newTestStore(t)
	st := s.State()
	st.NGraphs = 99
	assert.Equal(t, 2, s.State().NGraphs)
}

func TestStore_UnknownActionIsIgnored(t *testing.T) {
	d, s, _ := newTestStore(t)
	var emissions int
	sub := s.AddListener(func(State) { emissions++ })
	defer sub.Remove()

	before := s.State()
	require.NoError(t, d.Dispatch(context.Background(), Unknown{Type: "SET_COLOR"}))

	assert.Equal(t, before, s.State())
	assert.Equal(t, 0, emissions)
}

func TestStore_OutOfRangeGraphCount(t *testing.T) {
	_, s, c := newTestStore(t)
	var emissions int
	sub := s.AddListener(func(State) { emissions++ })
	defer sub.Remove()

	for _, n := range []int{0, -1, 4} {
		err := c.SetNumGraphs(context.Background(), n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGraphCount), "n=%d: %v", n, err)
	}
	assert.Equal(t, 2, s.State().NGraphs)
	assert.Equal(t, 0, emissions)
}

func TestStore_ReentrantDispatchFromListener(t *testing.T) {
	_, s, c := newTestStore(t)
	var nestedErr error
	sub := s.AddListener(func(st State) {
		if st.NGraphs == 3 {
			nestedErr = c.SetNumGraphs(context.Background(), 1)
		}
	})
	defer sub.Remove()

	require.NoError(t, c.SetNumGraphs(context.Background(), 3))

	require.Error(t, nestedErr)
	assert.ErrorIs(t, nestedErr, flux.ErrDispatchInProgress)
	assert.Equal(t, 3, s.State().NGraphs, "nested dispatch must not change state")
}

func TestStore_RemovedListenerIsNotCalled(t *testing.T) {
	_, s, c := newTestStore(t)
	var calls int
	sub := s.AddListener(func(State) { calls++ })
	require.Equal(t, 1, s.ListenerCount())

	sub.Remove()
	assert.False(t, sub.Active())
	assert.Equal(t, 0, s.ListenerCount())

	require.NoError(t, c.SetNumGraphs(context.Background(), 3))
	assert.Equal(t, 0, calls)

	// Removing twice is harmless.
	sub.Remove()
	assert.Equal(t, 0, s.ListenerCount())
}

func TestStore_MultipleIndependentListeners(t *testing.T) {
	_, s, c := newTestStore(t)
	var order []string
	a := s.AddListener(func(State) { order = append(order, "a") })
	b := s.AddListener(func(State) { order = append(order, "b") })

	require.NoError(t, c.SetNumGraphs(context.Background(), 1))
	a.Remove()
	require.NoError(t, c.SetNumGraphs(context.Background(), 2))
	b.Remove()

	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestStore_ListenerRemovedMidEmission(t *testing.T) {
	_, s, c := newTestStore(t)
	var second *Subscription
	var secondCalls int
	first := s.AddListener(func(State) { second.Remove() })
	second = s.AddListener(func(State) { secondCalls++ })
	defer first.Remove()

	require.NoError(t, c.SetNumGraphs(context.Background(), 1))
	assert.Equal(t, 0, secondCalls)
}

func TestStore_CloseStopsDelivery(t *testing.T) {
	d := flux.NewDispatcher()
	s := NewStore(d)
	require.Equal(t, 1, d.Len())

	require.NoError(t, s.Close())
	assert.Equal(t, 0, d.Len())

	require.NoError(t, d.Dispatch(context.Background(), SetNumGraphs{N: 3}))
	assert.Equal(t, 2, s.State().NGraphs)
}
