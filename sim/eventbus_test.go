package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_EmitWithoutHandlers(t *testing.T) {
	bus := NewEventBus()
	assert.NotPanics(t, func() {
		bus.Emit("nobody.listens", 42)
	})
}

func TestEventBus_DeliversPayload(t *testing.T) {
	bus := NewEventBus()
	var got any
	handler := Handler(func(payload any) { got = payload })
	bus.On("score", &handler)

	payload := &GameResult{HomeCode: "HOM", HomeScore: 2}
	bus.Emit("score", payload)

	assert.Same(t, payload, got, "payload is passed by reference")
}

func TestEventBus_DuplicateRegistrationIsIdempotent(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	handler := Handler(func(any) { calls++ })

	bus.On("topic", &handler)
	bus.On("topic", &handler)
	bus.Emit("topic", nil)

	assert.Equal(t, 1, calls)
}

func TestEventBus_DistinctClosuresFromOneLiteralBothFire(t *testing.T) {
	// Two subscribers built by the same constructor must stay independent
	// registrations, not collapse into one.
	makeCounter := func(n *int) Handler {
		return func(any) { *n++ }
	}
	var a, b int
	ha := makeCounter(&a)
	hb := makeCounter(&b)

	bus := NewEventBus()
	bus.On("topic", &ha)
	bus.On("topic", &hb)
	bus.Emit("topic", nil)

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	// Removing one must not remove the other.
	bus.Off("topic", &ha)
	bus.Emit("topic", nil)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestEventBus_OffStopsFutureDelivery(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	handler := Handler(func(any) { calls++ })

	bus.On("topic", &handler)
	bus.Emit("topic", nil)
	bus.Off("topic", &handler)
	bus.Emit("topic", nil)

	assert.Equal(t, 1, calls)
}

func TestEventBus_OffUnknownIsNoOp(t *testing.T) {
	bus := NewEventBus()
	ghost := Handler(func(any) {})
	assert.NotPanics(t, func() {
		bus.Off("ghost", &ghost)
		bus.Off("ghost", nil)
	})
}

func TestEventBus_TopicsAreIndependent(t *testing.T) {
	bus := NewEventBus()
	aCalls, bCalls := 0, 0
	ha := Handler(func(any) { aCalls++ })
	hb := Handler(func(any) { bCalls++ })
	bus.On("a", &ha)
	bus.On("b", &hb)

	bus.Emit("a", nil)
	bus.Emit("a", nil)
	bus.Emit("b", nil)

	assert.Equal(t, 2, aCalls)
	assert.Equal(t, 1, bCalls)
}

func TestEventBus_NilHandlerIgnored(t *testing.T) {
	bus := NewEventBus()
	var empty Handler
	bus.On("topic", nil)
	bus.On("topic", &empty)
	assert.NotPanics(t, func() { bus.Emit("topic", nil) })
}
