package httpapi

import (
	"errors"
	"net/http"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
)

// writeDomainError maps the service sentinels onto the wire envelope.
// 410 for dead tokens tells the candidate's browser the link itself is
// gone, as opposed to a 404 resource miss.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, common.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", nil)
	case errors.Is(err, common.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "offer not found", nil)
	case errors.Is(err, common.ErrTokenInvalid):
		WriteError(w, http.StatusGone, "TOKEN_INVALID", "this link is no longer valid", nil)
	case errors.Is(err, common.ErrAlreadySubmitted):
		WriteError(w, http.StatusConflict, "ALREADY_SUBMITTED", "a range was already submitted for this round", nil)
	case errors.Is(err, common.ErrRoundLimitExceeded):
		WriteError(w, http.StatusConflict, "ROUND_LIMIT_EXCEEDED", "negotiation round limit reached", nil)
	case errors.Is(err, common.ErrInvalidTransition):
		WriteError(w, http.StatusConflict, "INVALID_TRANSITION", "the offer is not in a state that allows this action", nil)
	default:
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}
