package session

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/typeid"
)

// Hub tracks live sessions by id.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client // sessionID -> client
	sessions map[string]*Session

	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once

	sample bool
	opts   []engine.Option
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithSampleCanvas seeds every new session with the sample drawing.
func WithSampleCanvas(on bool) HubOption {
	return func(h *Hub) { h.sample = on }
}

// WithEngineOptions passes extra options to every session's engine.
func WithEngineOptions(opts ...engine.Option) HubOption {
	return func(h *Hub) { h.opts = append(h.opts, opts...) }
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		clients:    make(map[string]*Client),
		sessions:   make(map[string]*Session),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewSession creates an unregistered session sending to send.
func (h *Hub) NewSession(send func(*Message)) *Session {
	opts := append([]engine.Option(nil), h.opts...)
	if h.sample {
		opts = append(opts, engine.WithDocument(document.NewSampleDocument()))
	}
	return New(typeid.NewSessionID(), send, opts...)
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Stop ends Run and closes every client's send channel.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.mu.Lock()
		defer h.mu.Unlock()
		for id, c := range h.clients {
			c.closeSend()
			delete(h.clients, id)
			delete(h.sessions, id)
		}
		slog.Info("hub stopped")
	})
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) addClient(client *Client) {
	s := client.Session
	h.mu.Lock()
	h.clients[s.ID] = client
	h.sessions[s.ID] = s
	h.mu.Unlock()

	slog.Info("client joined", "client", client.ClientID, "session", s.ID)
}

func (h *Hub) removeClient(client *Client) {
	s := client.Session
	h.mu.Lock()
	if h.clients[s.ID] != client {
		h.mu.Unlock()
		return
	}
	delete(h.clients, s.ID)
	delete(h.sessions, s.ID)
	client.closeSend()
	h.mu.Unlock()

	slog.Info("client left", "client", client.ClientID, "session", s.ID)
}

// Session returns the live session with the given id.
func (h *Hub) Session(id string) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

// SessionIDs returns the ids of all live sessions, sorted.
func (h *Hub) SessionIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
