package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors to HTTP responses. Slot conflicts
// are a 409 so clients can distinguish "taken" from bad input; rule and
// interval violations are a 422; everything unrecognized is a 500.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrSlotUnavailable):
		log.Warn(operation+" failed - slot unavailable", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, usecase.ErrInvalidInterval),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrOverlappingDays),
		errors.Is(err, usecase.ErrEmptyRangeSet):
		log.Warn(operation+" failed - rule violation", zap.Error(err))
		utils.ResponseUnprocessable(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "overlaps"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "beyond"):
		log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
