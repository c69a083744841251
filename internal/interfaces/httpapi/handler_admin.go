package httpapi

import "net/http"

type importTeamsRequest struct {
	Source string `json:"source" validate:"required,oneof=feed demo"`
}

type setMatchResultRequest struct {
	HomeGoals *int `json:"home_goals" validate:"required,min=0"`
	AwayGoals *int `json:"away_goals" validate:"required,min=0"`
}

func (h *Handler) ImportTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportTeams")
	defer span.End()

	var req importTeamsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.importService.ImportTeams(ctx, req.Source)
	if err != nil {
		h.logger.ErrorContext(ctx, "import teams failed", "source", req.Source, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "teams imported",
		"source", req.Source, "count", result.TeamsImported)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ImportRoundMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportRoundMatches")
	defer span.End()

	roundID, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.importService.ImportRoundMatches(ctx, roundID)
	if err != nil {
		h.logger.ErrorContext(ctx, "import round matches failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "round matches imported",
		"round_id", roundID, "count", result.MatchesImported, "warnings", len(result.Warnings))
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) SetMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMatchResult")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setMatchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.roundService.SetResult(ctx, matchID, *req.HomeGoals, *req.AwayGoals)
	if err != nil {
		h.logger.WarnContext(ctx, "set match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) SettleRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SettleRound")
	defer span.End()

	roundID, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.settlementService.SettleRound(ctx, roundID, h.seasonFromRequest(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "settle round failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "round settled",
		"round_id", roundID, "bets_settled", summary.BetsSettled,
		"points_awarded", summary.PointsAwarded, "points_lost", summary.PointsLost)
	writeSuccess(ctx, w, http.StatusOK, summary)
}
