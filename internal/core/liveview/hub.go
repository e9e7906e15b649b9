// Package liveview fans out change signals for the live data accessors. A
// signal carries no payload: consumers re-query their role-scoped set and push
// the full replacement snapshot, so scoping stays in one place.
package liveview

import "sync"

// Topic names follow "<business_id>/<collection>".
const (
	CollectionLeads   = "leads"
	CollectionContent = "content"
)

// Topic builds the hub topic for a business collection.
func Topic(businessID, collection string) string {
	return businessID + "/" + collection
}

// Hub is an in-process broadcaster of change signals keyed by topic.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[int]chan struct{}
	next int
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]chan struct{})}
}

// Subscription is a cancellable handle on one topic. C receives one signal per
// change; signals are coalesced when the consumer lags.
type Subscription struct {
	C      <-chan struct{}
	cancel func()
}

// Cancel deregisters the subscription. Safe to call more than once.
func (s *Subscription) Cancel() { s.cancel() }

// Subscribe registers a consumer on topic.
func (h *Hub) Subscribe(topic string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan struct{}, 1)
	id := h.next
	h.next++
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]chan struct{})
	}
	h.subs[topic][id] = ch

	var once sync.Once
	return &Subscription{
		C: ch,
		cancel: func() {
			once.Do(func() {
				h.mu.Lock()
				delete(h.subs[topic], id)
				if len(h.subs[topic]) == 0 {
					delete(h.subs, topic)
				}
				h.mu.Unlock()
			})
		},
	}
}

// Notify signals every subscriber of topic. Pending signals coalesce: a lagging
// consumer sees at most one, then re-queries.
func (h *Hub) Notify(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
