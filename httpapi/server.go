// Package httpapi is ambient debug/inspection transport over a
// handle.Session: JSON routes for every spec.md §6 operation plus a
// websocket feed of search progress, grounded on niceyeti-tabular's
// tabular/server (gorilla/mux + gorilla/websocket, one Server struct
// owning one addr and one live session/view).
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/handle"
)

// Server serves the debug JSON API and websocket search feed for one
// handle.Session. Intentionally single-session, matching the teacher's
// tabular/server.Server's "single page to a single client" scope — this
// is an inspection/automation surface, not a multi-tenant game server.
type Server struct {
	addr    string
	session *handle.Session
	router  *mux.Router
}

// NewServer builds a Server routing every spec.md §6 operation over s.
func NewServer(addr string, s *handle.Session) *Server {
	srv := &Server{addr: addr, session: s}
	srv.router = srv.routes()
	return srv
}

// Serve blocks, listening on addr.
func (srv *Server) Serve() error {
	if err := http.ListenAndServe(srv.addr, srv.router); err != nil {
		return fmt.Errorf("httpapi: serve: %w", err)
	}
	return nil
}

func (srv *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/state", srv.handleState).Methods(http.MethodGet)
	r.HandleFunc("/board", srv.handleBoard).Methods(http.MethodGet)
	r.HandleFunc("/board/switch", srv.handleSwitchBoard).Methods(http.MethodPost)
	r.HandleFunc("/stats", srv.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/animation", srv.handleAnimation).Methods(http.MethodGet)

	r.HandleFunc("/turn/validate", srv.handleValidateTurn).Methods(http.MethodPost)
	r.HandleFunc("/turn/apply", srv.handleApplyTurn).Methods(http.MethodPost)
	r.HandleFunc("/turn/preview", srv.handlePreviewTurn).Methods(http.MethodPost)

	r.HandleFunc("/search", srv.handleSearch).Methods(http.MethodPost)
	r.HandleFunc("/ws/search", srv.handleSearchWebsocket)

	r.HandleFunc("/undo", srv.handleUndo).Methods(http.MethodPost)
	r.HandleFunc("/reset", srv.handleReset).Methods(http.MethodPost)
	r.HandleFunc("/setup", srv.handleSetup).Methods(http.MethodPost)

	r.HandleFunc("/export", srv.handleExport).Methods(http.MethodGet)
	r.HandleFunc("/import", srv.handleImport).Methods(http.MethodPost)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
