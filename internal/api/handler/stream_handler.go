package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizgenie/bizgenie-api/internal/api/metrics"
	"github.com/bizgenie/bizgenie-api/internal/core/liveview"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
	"github.com/bizgenie/bizgenie-api/internal/core/session"
)

// heartbeatInterval keeps idle SSE connections alive through proxies.
const heartbeatInterval = 30 * time.Second

// StreamHandler serves the server-sent event streams. Live data streams carry
// full role-scoped snapshots: a change signal triggers a re-query, so clients
// replace their local set wholesale and scoping stays server-side.
type StreamHandler struct {
	feed           *session.Feed
	hub            *liveview.Hub
	leadService    ports.LeadService
	contentService ports.ContentService
}

func NewStreamHandler(feed *session.Feed, hub *liveview.Hub, leadService ports.LeadService, contentService ports.ContentService) *StreamHandler {
	return &StreamHandler{
		feed:           feed,
		hub:            hub,
		leadService:    leadService,
		contentService: contentService,
	}
}

// Session streams the caller's authentication state changes. The latest state
// is replayed immediately on connect. Events about other users' sessions are
// not delivered.
//
// @Summary      Stream session state
// @Tags         streams
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200
// @Router       /v1/session/stream [get]
func (h *StreamHandler) Session(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	w := startEventStream(c)

	sub := h.feed.Subscribe()
	defer sub.Cancel()

	metrics.StreamSubscribersActive.WithLabelValues("session").Inc()
	defer metrics.StreamSubscribersActive.WithLabelValues("session").Dec()

	ctx := c.Request().Context()
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if err := writeComment(w); err != nil {
				return nil
			}
		case ev := <-sub.C:
			if ev.UserID != viewer.ID {
				continue
			}
			payload := map[string]any{"user": toIdentityPayload(ev.Identity)}
			if err := writeEvent(w, "session", payload); err != nil {
				return nil
			}
		}
	}
}

// Leads streams the caller's visible lead set. A snapshot is sent on connect
// and after every change in the business's lead collection.
//
// @Summary      Stream visible leads
// @Tags         streams
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200
// @Router       /v1/leads/stream [get]
func (h *StreamHandler) Leads(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	return h.streamCollection(c, liveview.Topic(viewer.BusinessID, liveview.CollectionLeads), "leads", func() (any, error) {
		leads, err := h.leadService.List(c.Request().Context(), viewer)
		if err != nil {
			return nil, err
		}
		return map[string]any{"leads": leads}, nil
	})
}

// Content streams the caller's visible content set.
//
// @Summary      Stream visible content
// @Tags         streams
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200
// @Router       /v1/content/stream [get]
func (h *StreamHandler) Content(c echo.Context) error {
	viewer, err := currentIdentity(c)
	if err != nil {
		return err
	}

	return h.streamCollection(c, liveview.Topic(viewer.BusinessID, liveview.CollectionContent), "content", func() (any, error) {
		items, err := h.contentService.List(c.Request().Context(), viewer)
		if err != nil {
			return nil, err
		}
		return map[string]any{"items": items}, nil
	})
}

// streamCollection runs the snapshot-on-signal loop shared by the live data
// streams. snapshot is re-evaluated under the caller's scope on every signal.
func (h *StreamHandler) streamCollection(c echo.Context, topic, event string, snapshot func() (any, error)) error {
	w := startEventStream(c)

	sub := h.hub.Subscribe(topic)
	defer sub.Cancel()

	metrics.StreamSubscribersActive.WithLabelValues(event).Inc()
	defer metrics.StreamSubscribersActive.WithLabelValues(event).Dec()

	// A failed re-query is reported as an error event rather than tearing the
	// stream down: the client keeps its last-known set and waits for the next
	// signal. Only write failures end the loop.
	push := func() error {
		payload, err := snapshot()
		if err != nil {
			return writeEvent(w, "error", map[string]string{"error": "refresh failed"})
		}
		return writeEvent(w, event, payload)
	}

	if err := push(); err != nil {
		return nil
	}

	ctx := c.Request().Context()
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if err := writeComment(w); err != nil {
				return nil
			}
		case <-sub.C:
			if err := push(); err != nil {
				return nil
			}
		}
	}
}

// startEventStream commits the SSE response headers.
func startEventStream(c echo.Context) *echo.Response {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()
	return w
}

func writeEvent(w *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	w.Flush()
	return nil
}

func writeComment(w *echo.Response) error {
	if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
		return err
	}
	w.Flush()
	return nil
}
