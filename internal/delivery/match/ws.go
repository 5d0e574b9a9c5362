package match

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	errs "goban/internal/errors"
	"goban/internal/httpresponse"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsCommand is one action from the front end's play loop.
type wsCommand struct {
	Action string `json:"action"` // "place", "pass", "reset", "state"
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

type wsError struct {
	Error string `json:"error"`
}

// HandlePlay drives a match over a websocket: the client sends one
// command per action and receives the full refreshed state after each,
// which is exactly the browser's render loop. One driver plays both
// colours; the engine tracks whose turn it is.
func (h *MatchHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match_id")
	if matchID == "" {
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	ctx := r.Context()
	if _, err := h.matchUC.State(ctx, matchID); err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade error:", err)
		return
	}
	defer conn.Close()

	// Initial push so the client can render before its first action.
	if err := h.pushState(conn, matchID); err != nil {
		h.log.Error("write error:", err)
		return
	}

	for {
		var cmd wsCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Error("read error:", err)
			}
			return
		}

		switch cmd.Action {
		case "place":
			err = h.matchUC.PlaceStone(ctx, matchID, cmd.Row, cmd.Col)
			// An illegal move still refreshes the client; the overlay
			// flags on the pushed state explain the rejection.
			if errors.Is(err, errs.ErrIllegalMove) {
				err = nil
			}
		case "pass":
			err = h.matchUC.Pass(ctx, matchID)
		case "reset":
			err = h.matchUC.Reset(ctx, matchID)
		case "state":
			err = nil
		default:
			if wErr := conn.WriteJSON(wsError{Error: "unknown action: " + cmd.Action}); wErr != nil {
				h.log.Error("write error:", wErr)
				return
			}
			continue
		}

		if err != nil {
			h.log.Error(err)
			if wErr := conn.WriteJSON(wsError{Error: err.Error()}); wErr != nil {
				h.log.Error("write error:", wErr)
				return
			}
			continue
		}

		if err := h.pushState(conn, matchID); err != nil {
			h.log.Error("write error:", err)
			return
		}
	}
}

func (h *MatchHandler) pushState(conn *websocket.Conn, matchID string) error {
	state, err := h.matchUC.State(context.Background(), matchID)
	if err != nil {
		return err
	}
	return conn.WriteJSON(state)
}
