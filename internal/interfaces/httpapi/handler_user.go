package httpapi

import "net/http"

type registerUserRequest struct {
	GivenName  string `json:"given_name" validate:"required,max=100"`
	FamilyName string `json:"family_name" validate:"required,max=100"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	users, err := h.userService.ListActive(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list users failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]userDTO, 0, len(users))
	for _, item := range users {
		out = append(out, userToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterUser")
	defer span.End()

	var req registerUserRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.userService.Register(ctx, req.GivenName, req.FamilyName)
	if err != nil {
		h.logger.WarnContext(ctx, "register user failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, userToDTO(item))
}

func (h *Handler) GetUserBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserBalance")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	balance, err := h.bettingService.AvailableBalance(ctx, userID, h.seasonFromRequest(r))
	if err != nil {
		h.logger.WarnContext(ctx, "get balance failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, balanceDTO{
		UserID:    balance.UserID,
		Season:    balance.Season,
		Total:     balance.Total,
		Committed: balance.Committed,
		Available: balance.Available,
	})
}

func (h *Handler) ListUserRoundBets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUserRoundBets")
	defer span.End()

	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	roundID, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	views, err := h.bettingService.ListUserRoundBets(ctx, userID, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "list user round bets failed",
			"user_id", userID, "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]userBetDTO, 0, len(views))
	for _, view := range views {
		out = append(out, userBetDTO{
			Bet:             betToDTO(view.Bet),
			Match:           matchToDTO(view.Match),
			Status:          string(view.Status),
			PotentialPayout: view.PotentialPayout,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
