package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jmegner/KillDoctorLuckyWeb-sub000/engine"
	"github.com/jmegner/KillDoctorLuckyWeb-sub000/handle"
)

// writeWait mirrors niceyeti-tabular's tabular/server websocket feed's
// short per-write deadline.
const writeWait = 1 * time.Second

var upgrader = websocket.Upgrader{}

// handleSearchWebsocket runs StreamFindBestTurn over a websocket,
// publishing one SearchProgress message per completed ply. A "cancel"
// text message from the client, or the connection closing, stops the
// analysis before its next level starts. ?level=N selects the search
// depth the same way POST /search's body does.
func (srv *Server) handleSearchWebsocket(w http.ResponseWriter, r *http.Request) {
	level := 0
	if q := r.URL.Query().Get("level"); q != "" {
		if n, err := strconv.Atoi(q); err == nil {
			level = n
		}
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer closeWebsocket(ws)

	ctx := engine.NewSearchContext(10 * time.Minute)
	go watchForCancel(ws, ctx)

	updates := make(chan handle.SearchProgress, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range updates {
			if ws.SetWriteDeadline(time.Now().Add(writeWait)) != nil {
				return
			}
			if ws.WriteJSON(p) != nil {
				return
			}
		}
	}()

	result, err := srv.session.StreamFindBestTurn(level, updates, ctx)
	close(updates)
	<-done

	if err != nil {
		_ = ws.WriteJSON(map[string]string{"error": err.Error()})
		return
	}
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.TextMessage, result)
}

// watchForCancel blocks on reads (required so gorilla/websocket services
// control frames) and stops ctx on any client message or read error,
// matching tabular/server.go's read-pump pattern.
func watchForCancel(ws *websocket.Conn, ctx *engine.SearchContext) {
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			ctx.Stop()
			return
		}
		ctx.Stop()
	}
}

func closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	ws.Close()
}
