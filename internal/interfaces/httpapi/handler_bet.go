package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/lapolla/quiniela/internal/domain/bet"
	"github.com/lapolla/quiniela/internal/usecase"
)

type placeBetRequest struct {
	UserID     int64  `json:"user_id" validate:"required,min=1"`
	MatchID    int64  `json:"match_id" validate:"required,min=1"`
	Season     string `json:"season" validate:"omitempty,max=20"`
	Type       string `json:"type" validate:"required,oneof=outcome exact_score total_goals"`
	Prediction string `json:"prediction" validate:"required,max=20"`
	Wager      int    `json:"wager" validate:"required,min=1"`
}

type payoutPreviewDTO struct {
	Type   string `json:"type"`
	Wager  int    `json:"wager"`
	Payout int    `json:"payout"`
}

func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlaceBet")
	defer span.End()

	var req placeBetRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	season := req.Season
	if season == "" {
		season = h.season
	}

	item, err := h.bettingService.PlaceBet(ctx, usecase.PlaceBetInput{
		UserID:     req.UserID,
		MatchID:    req.MatchID,
		Season:     season,
		Type:       bet.Type(req.Type),
		Prediction: req.Prediction,
		Wager:      req.Wager,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "place bet failed",
			"user_id", req.UserID, "match_id", req.MatchID, "type", req.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, betToDTO(item))
}

func (h *Handler) PreviewPayout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewPayout")
	defer span.End()

	query := r.URL.Query()
	betType := query.Get("type")
	wager, err := strconv.Atoi(query.Get("wager"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: wager must be an integer", usecase.ErrInvalidInput))
		return
	}

	payout, err := h.bettingService.PotentialPayout(bet.Type(betType), wager)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payoutPreviewDTO{
		Type:   betType,
		Wager:  wager,
		Payout: payout,
	})
}
