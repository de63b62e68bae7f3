package progress

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/exprparse"
	"github.com/lexiform/algex/internal/obslog"
	"github.com/lexiform/algex/internal/reporting"
	"github.com/lexiform/algex/internal/search"
	"github.com/lexiform/algex/internal/smodel"
)

// Server is the algex serve daemon: POST /simplify runs one search and
// returns its formatted path; GET /ws upgrades to a websocket and streams
// every frame of whatever session query parameter names.
type Server struct {
	cfg *config.Config
	b   *Broadcaster

	upgrader websocket.Upgrader
}

// NewServer builds a Server with the given cost table.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		b:   NewBroadcaster(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the http.Handler to mount.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/simplify", s.handleSimplify)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

type simplifyResponse struct {
	SessionID string `json:"sessionID"`
	Status    string `json:"status"`
	Path      string `json:"path,omitempty"`
	Rendered  string `json:"rendered,omitempty"`
}

// handleSimplify runs a search to completion, streaming frames to any
// client already subscribed to the session id it mints, then returns the
// formatted winning path.
func (s *Server) handleSimplify(w http.ResponseWriter, r *http.Request) {
	log := obslog.New("progress")
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID := NewSession()
	cache := aref.NewCache(0)
	refs, err := exprparse.Parse(string(body), cache)
	if err != nil {
		log.WithError(err).Warn("parse failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	root := smodel.NewRoot(refs, s.cfg)
	opts := TrackOptions(smodel.Options{}, s.b, sessionID)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	outcome, err := search.Run(ctx, cache, root, s.cfg, opts)
	s.b.CloseSession(sessionID)
	if err != nil {
		log.WithError(err).Error("search failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := simplifyResponse{SessionID: sessionID, Status: outcome.Status.String()}
	if outcome.Status == smodel.Solved {
		resp.Path = reporting.FormatPath(outcome.Path)
		resp.Rendered = reporting.Render(outcome.Path[len(outcome.Path)-1].Refs)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleWebSocket upgrades the connection and relays every frame published
// for the session named by the "session" query parameter until the client
// disconnects or the session closes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	log := obslog.New("progress")
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "missing session query parameter", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	clientID, frames := s.b.Subscribe(sessionID)
	defer s.b.Unsubscribe(sessionID, clientID)

	for frame := range frames {
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}
}
