package httpapi

import (
	"net/http"
	"time"
)

type createRoundRequest struct {
	Number int    `json:"number" validate:"required,min=1"`
	Season string `json:"season" validate:"omitempty,max=20"`
}

type createMatchRequest struct {
	HomeTeamID int64     `json:"home_team_id" validate:"required,min=1"`
	AwayTeamID int64     `json:"away_team_id" validate:"required,min=1"`
	KickoffAt  time.Time `json:"kickoff_at" validate:"required"`
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	rounds, err := h.roundService.ListBySeason(ctx, h.seasonFromRequest(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "list rounds failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]roundDTO, 0, len(rounds))
	for _, item := range rounds {
		out = append(out, roundDTO{
			ID:         item.Round.ID,
			Number:     item.Round.Number,
			Season:     item.Round.Season,
			Closed:     item.Round.Closed,
			MatchCount: item.MatchCount,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRound")
	defer span.End()

	var req createRoundRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	season := req.Season
	if season == "" {
		season = h.season
	}

	item, err := h.roundService.Create(ctx, req.Number, season)
	if err != nil {
		h.logger.WarnContext(ctx, "create round failed",
			"number", req.Number, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, roundDTO{
		ID:     item.ID,
		Number: item.Number,
		Season: item.Season,
		Closed: item.Closed,
	})
}

func (h *Handler) ListRoundMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoundMatches")
	defer span.End()

	roundID, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	views, err := h.roundService.ListMatches(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "list round matches failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(views))
	for _, view := range views {
		out = append(out, matchViewToDTO(view))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	roundID, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.roundService.CreateMatch(ctx, roundID, req.HomeTeamID, req.AwayTeamID, req.KickoffAt)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}
