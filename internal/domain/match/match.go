package match

import (
	"time"

	"goban/internal/engine"
)

// MoveRequest is a stone placement sent by the front end.
type MoveRequest struct {
	MatchID string `json:"match_id"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
}

// MatchRequest addresses an existing match.
type MatchRequest struct {
	MatchID string `json:"match_id"`
}

type MatchCreateResponse struct {
	MatchID string `json:"match_id"`
}

type MoveResponse struct {
	Placed bool          `json:"placed"`
	State  StateResponse `json:"state"`
}

type LastMove struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StateResponse carries everything the renderer needs for one refresh:
// the full 361-record board projection plus the denormalized match
// status. Scores are present only once the match has ended.
type StateResponse struct {
	MatchID       string                    `json:"match_id"`
	Board         []engine.IntersectionData `json:"board"`
	CurrentPlayer engine.Stone              `json:"current_player"`
	BlackCaptured int                       `json:"black_captured"`
	WhiteCaptured int                       `json:"white_captured"`
	GameOver      bool                      `json:"game_over"`
	LastMove      *LastMove                 `json:"last_move,omitempty"`
	Scores        *ScoresResponse           `json:"scores,omitempty"`
	ColumnLabels  []string                  `json:"column_labels"`
	RowLabels     []string                  `json:"row_labels"`
}

type ScoresResponse struct {
	Black  float64 `json:"black"`
	White  float64 `json:"white"`
	Winner string  `json:"winner"`
}

// Archive is the record written to long-term storage when a match ends.
type Archive struct {
	MatchID       string          `json:"match_id" bson:"match_id"`
	Status        string          `json:"status" bson:"status"`
	FinishedAt    time.Time       `json:"finished_at" bson:"finished_at"`
	BlackScore    float64         `json:"black_score" bson:"black_score"`
	WhiteScore    float64         `json:"white_score" bson:"white_score"`
	Winner        string          `json:"winner" bson:"winner"`
	FinalPosition engine.Snapshot `json:"final_position" bson:"final_position"`
}
