package sim

// Handler consumes one published payload. Payloads are passed by reference;
// handlers must not block, or they stall the tick driver.
type Handler func(payload any)

// EventBus is a minimal synchronous publish/subscribe channel between the
// simulation and presentation collaborators. A registration is identified by
// the *Handler the caller holds: subscribing the identical reference twice
// is idempotent, while distinct handlers always all fire, even when they
// were built from the same function literal. There is no buffering, no
// replay, and no ordering guarantee across handlers or topics.
type EventBus struct {
	topics map[string]map[*Handler]struct{}
}

// NewEventBus returns an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{topics: make(map[string]map[*Handler]struct{})}
}

// On registers a handler under a topic. Nil handler references are ignored.
func (b *EventBus) On(name string, h *Handler) {
	if h == nil || *h == nil {
		return
	}
	set, ok := b.topics[name]
	if !ok {
		set = make(map[*Handler]struct{})
		b.topics[name] = set
	}
	set[h] = struct{}{}
}

// Off deregisters a handler from a topic. Unknown topics and handlers are
// silent no-ops.
func (b *EventBus) Off(name string, h *Handler) {
	if h == nil {
		return
	}
	set, ok := b.topics[name]
	if !ok {
		return
	}
	delete(set, h)
	if len(set) == 0 {
		delete(b.topics, name)
	}
}

// Emit synchronously invokes every handler currently registered for the
// topic, in unspecified order. A topic with no handlers is a silent no-op.
func (b *EventBus) Emit(name string, payload any) {
	for h := range b.topics[name] {
		(*h)(payload)
	}
}
