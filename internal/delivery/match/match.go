package match

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/match"
	errs "goban/internal/errors"
	"goban/internal/export"
	"goban/internal/httpresponse"
	matchuc "goban/internal/usecase/match"
	"goban/internal/utils"
)

type MatchHandler struct {
	cfg     bootstrap.Config
	log     *zap.SugaredLogger
	matchUC *matchuc.MatchUseCase
}

func NewMatchHandler(cfg bootstrap.Config, log *zap.SugaredLogger, matchUC *matchuc.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		cfg:     cfg,
		log:     log,
		matchUC: matchUC,
	}
}

// HandleNewMatch starts a fresh match: empty board, black to move.
func (h *MatchHandler) HandleNewMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := h.matchUC.CreateMatch(r.Context())
	if err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	h.log.Infof("new match created: %s", matchID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, match.MatchCreateResponse{MatchID: matchID})
}

// HandleState returns the full render payload for one refresh.
func (h *MatchHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match_id")
	if matchID == "" {
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	state, err := h.matchUC.State(r.Context(), matchID)
	if err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

// HandlePlaceStone plays a stone for the current player. An illegal
// move is not an HTTP error: the response carries placed=false and the
// unchanged state, mirroring the engine's boolean contract.
func (h *MatchHandler) HandlePlaceStone(w http.ResponseWriter, r *http.Request) {
	var req match.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.MatchID == "" {
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	ctx := r.Context()
	placed := true
	if err := h.matchUC.PlaceStone(ctx, req.MatchID, req.Row, req.Col); err != nil {
		if !errors.Is(err, errs.ErrIllegalMove) {
			h.log.Error(err)
			h.writeError(w, err)
			return
		}
		placed = false
	}

	state, err := h.matchUC.State(ctx, req.MatchID)
	if err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, match.MoveResponse{Placed: placed, State: state})
}

// HandlePass skips the current player's turn; a second consecutive
// pass ends the match.
func (h *MatchHandler) HandlePass(w http.ResponseWriter, r *http.Request) {
	h.handleSimpleAction(w, r, h.matchUC.Pass)
}

// HandleReset returns the match to its initial state.
func (h *MatchHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.handleSimpleAction(w, r, h.matchUC.Reset)
}

func (h *MatchHandler) handleSimpleAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, matchID string) error) {
	var req match.MatchRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.MatchID == "" {
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	ctx := r.Context()
	if err := action(ctx, req.MatchID); err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	state, err := h.matchUC.State(ctx, req.MatchID)
	if err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

// HandleScores reports the final score of an ended match.
func (h *MatchHandler) HandleScores(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match_id")
	if matchID == "" {
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	scores, err := h.matchUC.Scores(r.Context(), matchID)
	if err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, scores)
}

// HandleArchive returns the stored record of a finished match.
func (h *MatchHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match_id")
	if matchID == "" {
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	rec, err := h.matchUC.GetArchivedMatch(r.Context(), matchID)
	if err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, rec)
}

// HandleDiagram renders the current position as a printable PDF.
func (h *MatchHandler) HandleDiagram(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match_id")
	if matchID == "" {
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, "match_id is required")
		return
	}

	state, err := h.matchUC.State(r.Context(), matchID)
	if err != nil {
		h.log.Error(err)
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="match-`+matchID+`.pdf"`)
	if err := export.WriteBoardDiagram(w, state); err != nil {
		h.log.Error("failed to render diagram:", err)
	}
}

func (h *MatchHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrMatchNotFound):
		httpresponse.WriteErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrMatchInProgress):
		httpresponse.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrSnapshotCorrupt):
		httpresponse.WriteErrorResponse(w, http.StatusConflict, err.Error())
	default:
		httpresponse.WriteInternalErrorResponse(w)
	}
}
