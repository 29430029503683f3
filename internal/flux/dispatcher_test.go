package flux

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type testAction struct{ kind string }

func (a testAction) ActionType() string { return a.kind }

func TestDispatcher_DeliversInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Register(func(_ context.Context, a Action) error {
		got = append(got, "first:"+a.ActionType())
		return nil
	})
	d.Register(func(_ context.Context, a Action) error {
		got = append(got, "second:"+a.ActionType())
		return nil
	})
	d.Register(func(_ context.Context, a Action) error {
		got = append(got, "third:"+a.ActionType())
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), testAction{kind: "PING"}))
	assert.Equal(t, []string{"first:PING", "second:PING", "third:PING"}, got)
	assert.False(t, d.IsDispatching())
}

func TestDispatcher_TokensAreSequential(t *testing.T) {
	d := NewDispatcher()
	noopCB := func(context.Context, Action) error { return nil }

	assert.Equal(t, Token("ID_1"), d.Register(noopCB))
	assert.Equal(t, Token("ID_2"), d.Register(noopCB))
	assert.Equal(t, 2, d.Len())
}

func TestDispatcher_Unregister(t *testing.T) {
	d := NewDispatcher()
	var calls int
	tok := d.Register(func(context.Context, Action) error {
		calls++
		return nil
	})

	require.NoError(t, d.Unregister(tok))
	require.NoError(t, d.Dispatch(context.Background(), testAction{kind: "PING"}))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, d.Len())

	err := d.Unregister(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestDispatcher_UnregisterKeepsOrderOfOthers(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Register(func(context.Context, Action) error { got = append(got, "a"); return nil })
	mid := d.Register(func(context.Context, Action) error { got = append(got, "b"); return nil })
	d.Register(func(context.Context, Action) error { got = append(got, "c"); return nil })

	require.NoError(t, d.Unregister(mid))
	require.NoError(t, d.Dispatch(context.Background(), testAction{kind: "PING"}))
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestDispatcher_ReentrantDispatchFails(t *testing.T) {
	d := NewDispatcher()
	var nestedErr error
	var delivered []string
	d.Register(func(ctx context.Context, a Action) error {
		delivered = append(delivered, a.ActionType())
		if a.ActionType() == "OUTER" {
			nestedErr = d.Dispatch(ctx, testAction{kind: "INNER"})
		}
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), testAction{kind: "OUTER"}))
	require.Error(t, nestedErr)
	assert.ErrorIs(t, nestedErr, ErrDispatchInProgress)
	assert.Contains(t, nestedErr.Error(), "cannot dispatch in the middle of a dispatch")
	assert.Equal(t, []string{"OUTER"}, delivered, "nested action must not be delivered")

	// The dispatcher is usable again once the outer dispatch returns.
	require.NoError(t, d.Dispatch(context.Background(), testAction{kind: "AFTER"}))
	assert.Equal(t, []string{"OUTER", "AFTER"}, delivered)
}

func TestDispatcher_CallbackErrorsDoNotStopDelivery(t *testing.T) {
	d := NewDispatcher()
	errBoom := errors.New("boom")
	var reached bool
	d.Register(func(context.Context, Action) error { return errBoom })
	d.Register(func(context.Context, Action) error {
		reached = true
		return nil
	})

	err := d.Dispatch(context.Background(), testAction{kind: "PING"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "ID_1")
	assert.True(t, reached, "second callback should still run")
}

func TestDispatcher_PanicClearsInProgressFlag(t *testing.T) {
	d := NewDispatcher()
	d.Register(func(context.Context, Action) error { panic("listener exploded") })

	assert.Panics(t, func() {
		_ = d.Dispatch(context.Background(), testAction{kind: "PING"})
	})
	assert.False(t, d.IsDispatching())
}

func TestDispatcher_NoCallbacks(t *testing.T) {
	d := NewDispatcher()
	assert.NoError(t, d.Dispatch(context.Background(), testAction{kind: "PING"}))
}

func TestDispatcher_NilActionIsRejected(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Register(func(context.Context, Action) error {
		calls++
		return nil
	})

	err := d.Dispatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilAction)
	assert.Zero(t, calls)
	assert.False(t, d.IsDispatching())
}

func TestDispatcher_RecordsSpanPerDispatch(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	d := NewDispatcher(WithTracer(tp.Tracer("test")))

	errBoom := errors.New("boom")
	d.Register(func(context.Context, Action) error { return nil })
	d.Register(func(_ context.Context, a Action) error {
		if a.ActionType() == "FAIL" {
			return errBoom
		}
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), testAction{kind: "PING"}))
	require.Error(t, d.Dispatch(context.Background(), testAction{kind: "FAIL"}))

	spans := rec.Ended()
	require.Len(t, spans, 2)

	first := spans[0]
	assert.Equal(t, "flux.Dispatch", first.Name())
	assert.Contains(t, first.Attributes(), attribute.String("flux.action.type", "PING"))
	assert.Contains(t, first.Attributes(), attribute.Int("flux.listeners", 2))
	assert.Equal(t, codes.Unset, first.Status().Code)

	second := spans[1]
	assert.Contains(t, second.Attributes(), attribute.String("flux.action.type", "FAIL"))
	assert.Equal(t, codes.Error, second.Status().Code)
}
