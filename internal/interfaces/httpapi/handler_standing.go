package httpapi

import "net/http"

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.standingService.ListBySeason(ctx, h.seasonFromRequest(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowDTO{
			Position:    row.Position,
			User:        userToDTO(row.User),
			Season:      row.Score.Season,
			TotalPoints: row.Score.TotalPoints,
			Hits:        row.Score.Hits,
			Misses:      row.Score.Misses,
			BetsSettled: row.Score.BetsSettled,
			HitRate:     row.HitRate,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
