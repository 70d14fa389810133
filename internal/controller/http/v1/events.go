package v1

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/kurochkinivan/doc_generator/internal/domain"
	"github.com/kurochkinivan/doc_generator/internal/progress"
)

const writeWait = 10 * time.Second

type JobStatusProvider interface {
	Status(id string) (domain.JobView, error)
}

type Subscriber interface {
	Subscribe(jobID string) *progress.Subscription
}

// EventsHandler streams job events over a websocket. The first message is
// always a snapshot of the job; the stream ends after a completed or error
// event.
type EventsHandler struct {
	log      *slog.Logger
	jobs     JobStatusProvider
	hub      Subscriber
	upgrader websocket.Upgrader
}

func NewEventsHandler(log *slog.Logger, jobs JobStatusProvider, hub Subscriber) *EventsHandler {
	return &EventsHandler{
		log:  log,
		jobs: jobs,
		hub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *EventsHandler) JobEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// subscribed before the snapshot is taken, a completion in between
	// still closes sub
	sub := h.hub.Subscribe(id)
	defer sub.Close()

	view, err := h.jobs.Status(id)
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.InfoContext(r.Context(), "failed to upgrade connection", slog.String("err", err.Error()))
		return
	}
	defer conn.Close()

	log := h.log.With(slog.String("job_id", id))

	if err := h.write(conn, snapshot(view)); err != nil {
		log.DebugContext(r.Context(), "failed to write snapshot", slog.String("err", err.Error()))
		return
	}

	if view.Status.Terminal() {
		if err := h.write(conn, final(view)); err != nil {
			log.DebugContext(r.Context(), "failed to write final event", slog.String("err", err.Error()))
			return
		}
		h.close(r.Context(), log, conn)
		return
	}

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				h.close(r.Context(), log, conn)
				return
			}

			if err := h.write(conn, event); err != nil {
				log.DebugContext(r.Context(), "failed to write event", slog.String("err", err.Error()))
				return
			}

		case <-gone:
			log.DebugContext(r.Context(), "subscriber disconnected")
			return

		case <-r.Context().Done():
			return
		}
	}
}

func (h *EventsHandler) write(conn *websocket.Conn, event domain.Event) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(event)
}

func (h *EventsHandler) close(ctx context.Context, log *slog.Logger, conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		log.DebugContext(ctx, "failed to write close frame", slog.String("err", err.Error()))
	}
}

func snapshot(view domain.JobView) domain.Event {
	return domain.Event{
		Type:     domain.EventProgress,
		Stage:    "snapshot",
		Status:   view.Status,
		Counters: &view.Counters,
	}
}

// final rebuilds the terminal event of a job that finished before the
// subscriber joined.
func final(view domain.JobView) domain.Event {
	event := domain.Event{
		Type:     domain.EventCompleted,
		Status:   view.Status,
		Counters: &view.Counters,
	}

	switch view.Status {
	case domain.JobStatusCompleted:
		event.ErrorReport = view.ErrorReport
	case domain.JobStatusCancelled:
		event.Message = domain.ErrCancelled.Error()
	case domain.JobStatusFailed:
		event.Type = domain.EventError
		event.Message = view.Warning
	}

	return event
}
