package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/anonboard-backend/internal/adapter/redis"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/internal/transport/errcode"
)

type resAddedSource interface {
	SubscribeResAdded(ctx context.Context) (<-chan redis.ResAddedMessage, error)
}

// EventHandler streams committed-res notifications as server-sent events.
type EventHandler struct {
	source    resAddedSource
	log       *slog.Logger
	keepAlive time.Duration
}

// NewEventHandler creates an EventHandler. keepAlive is the interval of
// comment frames that keep idle proxies from closing the stream.
func NewEventHandler(source resAddedSource, logger *slog.Logger, keepAlive time.Duration) *EventHandler {
	return &EventHandler{source: source, log: logger.With("handler", "events"), keepAlive: keepAlive}
}

// TopicEvents handles GET /v1/topics/{topicID}/events. Each event is
//
//	event: res_added
//	data: {"id":"...","topic":"...","count":N}
func (h *EventHandler) TopicEvents(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicID")
	if topicID == "" {
		errcode.Write(w, domain.NewValidationError("topic_id", "required"))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		handleError(h.log, w, r, fmt.Errorf("response writer does not support flushing"))
		return
	}

	ctx := r.Context()
	msgs, err := h.source.SubscribeResAdded(ctx)
	if err != nil {
		handleError(h.log, w, r, fmt.Errorf("subscribe res added: %w", err))
		return
	}

	// The stream outlives the server write timeout.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case m, ok := <-msgs:
			if !ok {
				return
			}
			if m.Topic != topicID {
				continue
			}
			payload, err := json.Marshal(m)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: res_added\ndata: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
