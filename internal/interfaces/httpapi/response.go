package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/turma-roster/internal/domain/group"
	"github.com/riskibarqy/turma-roster/internal/domain/player"
	"github.com/riskibarqy/turma-roster/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "turma-roster"

	internalErrorMessage = "Não foi possível concluir a operação. Tente novamente."
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
	Message    string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: mapped.Message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: mapped.Message,
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: internalErrorMessage,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: internalErrorMessage,
				},
			},
		},
	})
}

// mapError never exposes the text of unclassified errors: storage and other
// internal failures get a generic message.
func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, group.ErrAlreadyExists):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "groupAlreadyExists",
			Status:     "ALREADY_EXISTS",
			Message:    group.AlreadyExistsMessage,
		}
	case errors.Is(err, player.ErrAlreadyExists):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "playerAlreadyExists",
			Status:     "ALREADY_EXISTS",
			Message:    player.AlreadyExistsMessage,
		}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
			Message:    messageAfter(err, usecase.ErrInvalidInput),
		}
	case errors.Is(err, usecase.ErrNotFound):
		// ErrNotFound is only raised by group lookups; unknown players are
		// a no-op on removal.
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
			Message:    "Turma não encontrada.",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
			Message:    internalErrorMessage,
		}
	}
}

// messageAfter strips everything up to and including the sentinel prefix, so
// "create group: invalid input: Informe o nome da turma." reads as the last part.
func messageAfter(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if idx := strings.Index(msg, marker); idx >= 0 {
		if rest := strings.TrimSpace(msg[idx+len(marker):]); rest != "" {
			return rest
		}
	}
	return msg
}
