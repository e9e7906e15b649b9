package liveview

import (
	"testing"
	"time"
)

func TestTopic(t *testing.T) {
	if got := Topic("biz-1", CollectionLeads); got != "biz-1/leads" {
		t.Fatalf("unexpected topic %q", got)
	}
}

func TestHub_NotifyReachesSubscribers(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("biz-1/leads")
	defer sub.Cancel()

	h.Notify("biz-1/leads")

	select {
	case <-sub.C:
	case <-time.After(time.Second):
		t.Fatalf("expected signal")
	}
}

func TestHub_TopicsAreIsolated(t *testing.T) {
	h := NewHub()
	leads := h.Subscribe("biz-1/leads")
	defer leads.Cancel()
	content := h.Subscribe("biz-1/content")
	defer content.Cancel()

	h.Notify("biz-1/content")

	select {
	case <-leads.C:
		t.Fatalf("lead subscriber must not see content signals")
	default:
	}
	select {
	case <-content.C:
	case <-time.After(time.Second):
		t.Fatalf("expected content signal")
	}
}

func TestHub_SignalsCoalesce(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("biz-1/leads")
	defer sub.Cancel()

	for i := 0; i < 10; i++ {
		h.Notify("biz-1/leads")
	}

	// A lagging consumer sees at most one pending signal.
	<-sub.C
	select {
	case <-sub.C:
		t.Fatalf("expected signals to coalesce into one")
	default:
	}
}

func TestHub_CancelRemovesSubscriber(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("biz-1/leads")
	sub.Cancel()
	sub.Cancel() // safe to repeat

	h.Notify("biz-1/leads")

	select {
	case <-sub.C:
		t.Fatalf("cancelled subscriber must not receive signals")
	default:
	}
}
