package httpapi

import (
	"encoding/json"
	"net/http"
)

type stateResponse struct {
	BoardName         string `json:"boardName"`
	CurrentPlayerPieceId string `json:"currentPlayerPieceId"`
	WinnerPieceId     string `json:"winnerPieceId"`
	HasWinner         bool   `json:"hasWinner"`
	PiecePositions    []int  `json:"piecePositions"`
}

func (srv *Server) handleState(w http.ResponseWriter, r *http.Request) {
	positions := srv.session.PiecePositions()
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = int(p)
	}
	writeJSON(w, http.StatusOK, stateResponse{
		BoardName:            srv.session.BoardName(),
		CurrentPlayerPieceId: srv.session.CurrentPlayerPieceId(),
		WinnerPieceId:        srv.session.WinnerPieceId(),
		HasWinner:            srv.session.HasWinner(),
		PiecePositions:       out,
	})
}

func (srv *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	data, err := srv.session.BoardRoomsJSON()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

type switchBoardRequest struct {
	Name        string   `json:"name"`
	ClosedWings []string `json:"closedWings"`
}

func (srv *Server) handleSwitchBoard(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var req switchBoardRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := srv.session.SwitchBoard(req.Name, req.ClosedWings); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeMessage(w, http.StatusOK, "")
}

func (srv *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	data, err := srv.session.PlayerStatsJSON()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (srv *Server) handleAnimation(w http.ResponseWriter, r *http.Request) {
	data, err := srv.session.AnimationFrames()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (srv *Server) handleValidateTurn(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeMessage(w, http.StatusOK, srv.session.ValidateTurnPlan(body))
}

func (srv *Server) handleApplyTurn(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	msg := srv.session.ApplyTurnPlan(body)
	if msg != "" {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}
	writeMessage(w, http.StatusOK, "")
}

func (srv *Server) handlePreviewTurn(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := srv.session.PreviewTurnPlan(body)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

type searchRequest struct {
	Level int `json:"level"`
}

func (srv *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var req searchRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	data, err := srv.session.FindBestTurn(req.Level)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (srv *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"undone": srv.session.UndoLastTurn()})
}

func (srv *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	srv.session.ResetGame()
	writeMessage(w, http.StatusOK, "")
}

type setupRequest struct {
	MoveCards float64 `json:"moveCards"`
	Weapons   float64 `json:"weapons"`
	Failures  float64 `json:"failures"`
}

func (srv *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	var req setupRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	msg := srv.session.StartNewGameWithSetup(req.MoveCards, req.Weapons, req.Failures)
	if msg != "" {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}
	writeMessage(w, http.StatusOK, "")
}

func (srv *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := srv.session.ExportStateJSON()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (srv *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	msg := srv.session.ImportStateJSON(body)
	if msg != "" {
		writeMessage(w, http.StatusUnprocessableEntity, msg)
		return
	}
	writeMessage(w, http.StatusOK, "")
}
