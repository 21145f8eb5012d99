package workspace

import "sync"

// Event describes one visualization change pushed to watchers.
type Event struct {
	Type            string `json:"type"`
	ProjectID       string `json:"projectId,omitempty"`
	VisualizationID string `json:"visualizationId,omitempty"`
}

const (
	EventVisualizationCreated = "visualization.created"
	EventVisualizationDeleted = "visualization.deleted"
	EventProjectUpdated       = "project.updated"
)

// Hub fans events out to subscribed watchers. Slow subscribers drop
// events instead of blocking publishers.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[ch] = struct{}{}
	return ch
}

func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; !ok {
		return
	}
	delete(h.subs, ch)
	close(ch)
}

func (h *Hub) Publish(ev Event) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
