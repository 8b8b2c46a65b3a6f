package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/turma-roster/internal/platform/cache"
	"github.com/riskibarqy/turma-roster/internal/platform/logging"
	"github.com/riskibarqy/turma-roster/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

type Handler struct {
	groupService  *usecase.GroupService
	playerService *usecase.PlayerService
	cache         *cache.Store
	logger        *logging.Logger
	validator     *validator.Validate
}

// NewHandler builds the roster handler. cacheStore may be nil when the
// read-through cache is disabled.
func NewHandler(
	groupService *usecase.GroupService,
	playerService *usecase.PlayerService,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		groupService:  groupService,
		playerService: playerService,
		cache:         cacheStore,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	resp := healthDTO{Status: "ok"}
	if h.cache != nil {
		stats := h.cache.Stats()
		resp.Cache = &stats
	}

	writeSuccess(ctx, w, http.StatusOK, resp)
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// fail logs err at a level matching its mapped status and writes the error
// envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}

	writeError(ctx, w, err)
}
