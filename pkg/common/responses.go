package common

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "hmaas-backend/pkg/errors"
)

// ErrorResponse is the uniform error envelope shared by every endpoint.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// RespondError maps any error to the uniform envelope and writes it.
//
// Typed AppErrors keep their declared status and code. Data-integrity errors
// are server faults: they are logged with the offending payload and surfaced
// as a plain 500. Anything else maps to 500 INTERNAL_SERVER_ERROR with the
// raw message included in the body.
func RespondError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr := apperrors.GetAppError(err); appErr != nil {
		RespondJSON(w, appErr.Status, ErrorResponse{Error: ErrorInfo{
			Code:      appErr.Code,
			Message:   appErr.Message,
			Details:   appErr.Details,
			RequestID: requestID,
		}})
		return
	}

	if die := apperrors.GetDataIntegrityError(err); die != nil {
		logger.Error("Data integrity error",
			zap.String("entity", die.Entity),
			zap.Any("issues", die.Issues),
			zap.Any("payload", die.Payload),
			zap.String("requestID", requestID),
		)
		RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorInfo{
			Code:      apperrors.CodeInternal,
			Message:   "Stored data failed validation",
			RequestID: requestID,
		}})
		return
	}

	logger.Error("Unhandled error",
		zap.Error(err),
		zap.String("requestID", requestID),
	)
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorInfo{
		Code:      apperrors.CodeInternal,
		Message:   err.Error(),
		RequestID: requestID,
	}})
}
