package match

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"goban/internal/domain/match"
	"goban/internal/engine"
)

func TestHandlePlayDrivesMatch(t *testing.T) {
	r := newTestRouter(t)
	matchID := createMatch(t, r)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/play?match_id=" + matchID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}
	defer conn.Close()

	// The handler pushes the initial state before any command.
	var state match.StateResponse
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("read initial state: %v", err)
	}
	if state.CurrentPlayer != engine.Black {
		t.Fatalf("initial player = %v, want black", state.CurrentPlayer)
	}

	if err := conn.WriteJSON(wsCommand{Action: "place", Row: 3, Col: 3}); err != nil {
		t.Fatalf("write place command: %v", err)
	}
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("read state after move: %v", err)
	}
	if got := state.Board[3*engine.BoardSize+3].Stone; got != engine.Black {
		t.Errorf("board(3,3) = %v after websocket move, want black", got)
	}
	if state.CurrentPlayer != engine.White {
		t.Errorf("current player = %v after websocket move, want white", state.CurrentPlayer)
	}

	// An illegal move still pushes a refresh rather than an error.
	if err := conn.WriteJSON(wsCommand{Action: "place", Row: 3, Col: 3}); err != nil {
		t.Fatalf("write illegal place command: %v", err)
	}
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatalf("read state after illegal move: %v", err)
	}
	if state.CurrentPlayer != engine.White {
		t.Errorf("current player = %v after illegal move, want white (unchanged)", state.CurrentPlayer)
	}

	for _, action := range []string{"pass", "pass"} {
		if err := conn.WriteJSON(wsCommand{Action: action}); err != nil {
			t.Fatalf("write %s command: %v", action, err)
		}
		if err := conn.ReadJSON(&state); err != nil {
			t.Fatalf("read state after %s: %v", action, err)
		}
	}
	if !state.GameOver {
		t.Error("match not over after two passes via websocket")
	}
	if state.Scores == nil {
		t.Error("ended websocket state carries no scores")
	}
}

func TestHandlePlayUnknownMatch(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/play?match_id=missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code == http.StatusSwitchingProtocols {
		t.Fatal("handler upgraded a connection for an unknown match")
	}
}
