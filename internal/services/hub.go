package services

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

// Event is one refresh notification pushed to websocket subscribers
type Event struct {
	Type   string        `json:"type"`
	League models.League `json:"league,omitempty"`
	Result models.Result `json:"result"`
}

// Hub fans refresh events out to connected dashboard clients
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan []byte]struct{}
	logger      *logrus.Logger
}

// NewHub creates an empty hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		subscribers: make(map[chan []byte]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a new client and returns its message channel
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	count := len(h.subscribers)
	h.mu.Unlock()
	h.logger.WithField("subscribers", count).Debug("Client subscribed")
	return ch
}

// Unsubscribe removes a client and closes its channel
func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast sends an event to every subscriber. Slow clients drop messages
// rather than block the refresher.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to marshal broadcast event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers {
		select {
		case ch <- data:
		default:
			h.logger.Debug("Subscriber buffer full, dropping message")
		}
	}
}

// Count returns the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
