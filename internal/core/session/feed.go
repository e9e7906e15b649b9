// Package session broadcasts authentication state changes to subscribers with
// replay-latest semantics: every new subscriber immediately receives the
// current identity (or nil when signed out), then one event per change.
package session

import (
	"sync"

	"github.com/bizgenie/bizgenie-api/internal/core/domain"
)

// Event carries one user's session change. A nil Identity means that user's
// session was cleared. UserID attributes the event so consumers can scope
// delivery to their own session.
type Event struct {
	UserID   string
	Identity *domain.Identity
}

// subscriberBuffer bounds each subscriber channel. Slow subscribers drop the
// oldest pending event rather than blocking publishers.
const subscriberBuffer = 8

// Feed is a replay-latest broadcaster of session events.
type Feed struct {
	mu   sync.Mutex
	last Event
	subs map[int]chan Event
	next int
}

// NewFeed returns an empty feed whose current state is "signed out".
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan Event)}
}

// Subscription is a cancellable handle on the feed. Callers must Cancel when
// done to avoid leaking updates into a stale consumer.
type Subscription struct {
	C      <-chan Event
	cancel func()
}

// Cancel deregisters the subscription. Safe to call more than once.
func (s *Subscription) Cancel() { s.cancel() }

// Subscribe registers a new subscriber and replays the latest event to it
// before returning.
func (f *Feed) Subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	id := f.next
	f.next++
	f.subs[id] = ch

	ch <- f.last

	var once sync.Once
	return &Subscription{
		C: ch,
		cancel: func() {
			once.Do(func() {
				f.mu.Lock()
				delete(f.subs, id)
				f.mu.Unlock()
			})
		},
	}
}

// Publish records identity as the current session state and delivers exactly
// one event to every subscriber.
func (f *Feed) Publish(identity *domain.Identity) {
	ev := Event{Identity: identity}
	if identity != nil {
		ev.UserID = identity.ID
	}
	f.publish(ev)
}

// Clear publishes a signed-out event for userID and delivers exactly one nil
// event to every subscriber.
func (f *Feed) Clear(userID string) {
	f.publish(Event{UserID: userID})
}

func (f *Feed) publish(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = ev
	for _, ch := range f.subs {
		select {
		case ch <- f.last:
		default:
			// drop the oldest pending event to make room
			select {
			case <-ch:
			default:
			}
			ch <- f.last
		}
	}
}

// Current returns the latest published identity, nil when signed out.
func (f *Feed) Current() *domain.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last.Identity
}
