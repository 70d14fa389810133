package progress

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kurochkinivan/doc_generator/internal/domain"
)

const defaultBuffer = 64

// Hub fans job events out to subscribers. Delivery is at-most-once: a
// subscriber whose buffer is full misses the event.
type Hub struct {
	log    *slog.Logger
	buffer int

	mu    sync.Mutex
	rooms map[string]map[*Subscription]struct{}
}

func NewHub(log *slog.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	return &Hub{
		log:    log,
		buffer: buffer,
		rooms:  make(map[string]map[*Subscription]struct{}),
	}
}

type Subscription struct {
	hub    *Hub
	jobID  string
	events chan domain.Event
	closed bool
}

func (s *Subscription) Events() <-chan domain.Event {
	return s.events
}

func (s *Subscription) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	s.hub.remove(s)
}

func (h *Hub) Subscribe(jobID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscription{
		hub:    h,
		jobID:  jobID,
		events: make(chan domain.Event, h.buffer),
	}

	room, ok := h.rooms[jobID]
	if !ok {
		room = make(map[*Subscription]struct{})
		h.rooms[jobID] = room
	}
	room[sub] = struct{}{}

	return sub
}

// Publish never blocks. A completed or error event closes the room.
func (h *Hub) Publish(ctx context.Context, jobID string, event domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.rooms[jobID] {
		select {
		case sub.events <- event:
		default:
			h.log.WarnContext(ctx, "subscriber is too slow, dropping event",
				slog.String("job_id", jobID),
				slog.String("event", string(event.Type)),
			)
		}
	}

	if event.Type == domain.EventCompleted || event.Type == domain.EventError {
		for sub := range h.rooms[jobID] {
			h.remove(sub)
		}
	}
}

func (h *Hub) Subscribers(jobID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.rooms[jobID])
}

func (h *Hub) remove(sub *Subscription) {
	if sub.closed {
		return
	}

	sub.closed = true
	close(sub.events)

	room := h.rooms[sub.jobID]
	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, sub.jobID)
	}
}
