package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/lapolla/quiniela/internal/platform/logging"
	"github.com/lapolla/quiniela/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	userService       *usecase.UserService
	roundService      *usecase.RoundService
	bettingService    *usecase.BettingService
	settlementService *usecase.SettlementService
	standingService   *usecase.StandingService
	importService     *usecase.ImportService
	season            string
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	userService *usecase.UserService,
	roundService *usecase.RoundService,
	bettingService *usecase.BettingService,
	settlementService *usecase.SettlementService,
	standingService *usecase.StandingService,
	importService *usecase.ImportService,
	season string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		userService:       userService,
		roundService:      roundService,
		bettingService:    bettingService,
		settlementService: settlementService,
		standingService:   standingService,
		importService:     importService,
		season:            season,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// seasonFromRequest resolves the season label: ?season= wins, the
// configured default otherwise.
func (h *Handler) seasonFromRequest(r *http.Request) string {
	if season := strings.TrimSpace(r.URL.Query().Get("season")); season != "" {
		return season
	}
	return h.season
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}
