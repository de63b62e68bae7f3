// Package progress runs a search while streaming one frame per popped
// frontier Model to every subscribed live viewer, and serves that stream
// over HTTP/WebSocket for cmd/algexd.
//
// Grounded on the teacher's internal/network/websocket.go
// (WebSocketServer{Upgrader, Clients map[string]*WebSocketConn,
// NewClients chan *WebSocketConn}): this package keeps that registration
// shape but narrows its purpose to one thing, fanning search frames out to
// whoever is watching a given session, instead of the teacher's
// general-purpose bidirectional socket module.
package progress

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lexiform/algex/internal/smodel"
)

// Frame is one JSON message streamed per Model popped from the driver's
// frontier.
type Frame struct {
	SessionID       string   `json:"sessionID"`
	Transform       string   `json:"transform"`
	Refs            []string `json:"refs"`
	TotalApproxCost int      `json:"totalApproxCost"`
	RemainCost      int      `json:"remainCost"`
}

// FrameFromModel converts a search Model into its wire Frame.
func FrameFromModel(sessionID string, m *smodel.Model) Frame {
	syms := make([]string, len(m.Refs))
	for i, r := range m.Refs {
		syms[i] = r.Symbol
	}
	return Frame{
		SessionID:       sessionID,
		Transform:       m.Transform,
		Refs:            syms,
		TotalApproxCost: m.TotalApproxCost,
		RemainCost:      m.RemainCost,
	}
}

// Broadcaster fans the frame stream of one search out to every client
// currently subscribed to its session, mirroring the teacher's
// Clients map[string]*WebSocketConn + NewClients registration channel.
type Broadcaster struct {
	mu       sync.RWMutex
	sessions map[string]map[string]chan Frame // sessionID -> clientID -> channel

	NewClients chan string // sessionID of every new subscription; dropped when the buffer is full
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		sessions:   make(map[string]map[string]chan Frame),
		NewClients: make(chan string, 100),
	}
}

// NewSession mints a fresh session id for a search about to start.
func NewSession() string {
	return uuid.NewString()
}

// Subscribe registers a new client channel for sessionID and returns a
// client id to later Unsubscribe with.
func (b *Broadcaster) Subscribe(sessionID string) (clientID string, frames <-chan Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()

	clients, ok := b.sessions[sessionID]
	if !ok {
		clients = make(map[string]chan Frame)
		b.sessions[sessionID] = clients
	}
	id := uuid.NewString()
	ch := make(chan Frame, 64)
	clients[id] = ch

	select {
	case b.NewClients <- sessionID:
	default:
	}

	return id, ch
}

// Unsubscribe removes clientID from sessionID and closes its channel.
func (b *Broadcaster) Unsubscribe(sessionID, clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	clients, ok := b.sessions[sessionID]
	if !ok {
		return
	}
	if ch, ok := clients[clientID]; ok {
		close(ch)
		delete(clients, clientID)
	}
	if len(clients) == 0 {
		delete(b.sessions, sessionID)
	}
}

// Publish sends frame to every client subscribed to frame.SessionID,
// dropping it for a client whose channel is full rather than blocking the
// search driver.
func (b *Broadcaster) Publish(frame Frame) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.sessions[frame.SessionID] {
		select {
		case ch <- frame:
		default:
		}
	}
}

// CloseSession closes every client channel subscribed to sessionID, for use
// once a search completes.
func (b *Broadcaster) CloseSession(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.sessions[sessionID] {
		close(ch)
		delete(b.sessions[sessionID], id)
	}
	delete(b.sessions, sessionID)
}

// TrackOptions returns an smodel.Options whose OnPop publishes a Frame to b
// under sessionID for every Model the driver pops, wiring the core's
// optional observation hook (smodel.Options.OnPop) to this package's fan-out.
func TrackOptions(base smodel.Options, b *Broadcaster, sessionID string) smodel.Options {
	base.OnPop = func(m *smodel.Model) {
		b.Publish(FrameFromModel(sessionID, m))
	}
	return base
}
