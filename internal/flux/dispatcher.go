package flux

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ErrDispatchInProgress is returned when Dispatch is called while another
// dispatch is still delivering.
var ErrDispatchInProgress = errors.New("cannot dispatch in the middle of a dispatch")

// ErrUnknownToken is returned by Unregister for tokens it did not hand out
// or that were already removed.
var ErrUnknownToken = errors.New("unknown dispatch token")

// ErrNilAction is returned by Dispatch for a nil action.
var ErrNilAction = errors.New("nil action")

// Action is a record describing an intended state change.
// ActionType is the kind tag used for tracing and logging.
type Action interface {
	ActionType() string
}

// Callback receives every dispatched action.
type Callback func(ctx context.Context, a Action) error

// Token identifies a registered callback.
type Token string

// Dispatcher is a synchronous broadcast channel for actions.
type Dispatcher struct {
	mu          sync.Mutex
	callbacks   map[Token]Callback
	order       []Token
	lastID      int
	dispatching bool
	tracer      oteltrace.Tracer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTracer makes Dispatch open one span per action on t.
func WithTracer(t oteltrace.Tracer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.tracer = t
		}
	}
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		callbacks: make(map[Token]Callback),
		tracer:    noop.NewTracerProvider().Tracer("backpack/flux"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds cb to the end of the delivery order and returns its token.
func (d *Dispatcher) Register(cb Callback) Token {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastID++
	tok := Token("ID_" + strconv.Itoa(d.lastID))
	d.callbacks[tok] = cb
	d.order = append(d.order, tok)
	return tok
}

// Unregister removes the callback for tok.
// Removing during a dispatch takes effect for the next dispatch.
func (d *Dispatcher) Unregister(tok Token) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.callbacks[tok]; !ok {
		return fmt.Errorf("unregister %s: %w", tok, ErrUnknownToken)
	}
	delete(d.callbacks, tok)
	for i, t := range d.order {
		if t == tok {
			d.order = append(d.order[:i:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of registered callbacks.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}

// IsDispatching reports whether a dispatch is currently delivering.
func (d *Dispatcher) IsDispatching() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dispatching
}

// Dispatch delivers a to every registered callback, in registration order,
// and returns once all of them have run. Callback errors do not stop
// delivery; they are joined into the returned error.
//
// Calling Dispatch from inside a callback fails with ErrDispatchInProgress
// without delivering anything. A nil action is rejected with ErrNilAction.
func (d *Dispatcher) Dispatch(ctx context.Context, a Action) error {
	if a == nil {
		return ErrNilAction
	}
	d.mu.Lock()
	if d.dispatching {
		d.mu.Unlock()
		return fmt.Errorf("dispatch %s: %w", a.ActionType(), ErrDispatchInProgress)
	}
	d.dispatching = true
	type entry struct {
		tok Token
		cb  Callback
	}
	entries := make([]entry, 0, len(d.order))
	for _, tok := range d.order {
		entries = append(entries, entry{tok: tok, cb: d.callbacks[tok]})
	}
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.dispatching = false
		d.mu.Unlock()
	}()

	ctx, span := d.tracer.Start(ctx, "flux.Dispatch",
		oteltrace.WithAttributes(
			attribute.String("flux.action.type", a.ActionType()),
			attribute.Int("flux.listeners", len(entries)),
		),
	)
	defer span.End()

	var errs []error
	for _, e := range entries {
		if err := e.cb(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.tok, err))
		}
	}
	err := errors.Join(errs...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
