package graph

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"backpack/internal/flux"
)

// ErrGraphCount is returned for SetNumGraphs outside [MinGraphs, MaxGraphs].
var ErrGraphCount = errors.New("graph count out of range")

const (
	MinGraphs     = 1
	MaxGraphs     = 3
	DefaultGraphs = 2
)

// State is a snapshot of the store. Values returned by Store.State are copies.
type State struct {
	NGraphs int
	MyN     int
}

// Store owns graph State and mutates it only in response to dispatched actions.
type Store struct {
	mu         sync.Mutex
	dispatcher *flux.Dispatcher
	token      flux.Token
	state      State
	listeners  []*Subscription
}

// Subscription is the handle returned by AddListener.
type Subscription struct {
	store   *Store
	fn      func(State)
	removed atomic.Bool
}

// NewStore creates a store with default state and registers it with d.
func NewStore(d *flux.Dispatcher) *Store {
	s := &Store{
		dispatcher: d,
		state:      State{NGraphs: DefaultGraphs},
	}
	s.token = d.Register(s.onDispatch)
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AddListener subscribes fn to change notifications. fn runs synchronously
// inside the dispatch that caused the change.
func (s *Store) AddListener(fn func(State)) *Subscription {
	sub := &Subscription{store: s, fn: fn}
	s.mu.Lock()
	s.listeners = append(s.listeners, sub)
	s.mu.Unlock()
	return sub
}

// ListenerCount returns the number of live subscriptions.
func (s *Store) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// Close unregisters the store from its dispatcher.
func (s *Store) Close() error {
	return s.dispatcher.Unregister(s.token)
}

// Remove stops notifications. Calling it more than once is a no-op.
func (sub *Subscription) Remove() {
	if sub.removed.Swap(true) {
		return
	}
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l == sub {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Active reports whether the subscription still receives notifications.
func (sub *Subscription) Active() bool {
	return !sub.removed.Load()
}

func (s *Store) onDispatch(_ context.Context, a flux.Action) error {
	switch a := a.(type) {
	case SetNumGraphs:
		if a.N < MinGraphs || a.N > MaxGraphs {
			return fmt.Errorf("set num graphs %d: %w", a.N, ErrGraphCount)
		}
		s.mutate(func(st *State) { st.NGraphs = a.N })
	case SetMyNum:
		s.mutate(func(st *State) { st.MyN = a.N })
	default:
		log.Printf("graph: ignoring action %s", a.ActionType())
	}
	return nil
}

// mutate applies fn and emits exactly one change notification.
func (s *Store) mutate(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state
	listeners := append([]*Subscription(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		// A listener may remove a later one while we iterate.
		if l.removed.Load() {
			continue
		}
		l.fn(snapshot)
	}
}
