package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-emlak-keeper/internal/adapter"
	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/service"
	"github.com/MKhiriev/go-emlak-keeper/internal/store"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/internal/validators"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// errorStatusMap is ordered: the first matching entry wins. A creation error
// wrapping a retryable store conflict must map to 503, not 500.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{store.ErrRetryableConflict, http.StatusServiceUnavailable},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrMissingFile, http.StatusBadRequest},
	{ErrMissingForm, http.StatusBadRequest},
	{ErrChecksumMismatch, http.StatusBadRequest},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNoUserID, http.StatusUnauthorized},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{validators.ErrInvalidContractForm, http.StatusBadRequest},
	{validators.ErrEmptyFile, http.StatusBadRequest},
	{validators.ErrUnsupportedFileType, http.StatusUnsupportedMediaType},
	{validators.ErrFileTooLarge, http.StatusRequestEntityTooLarge},

	{adapter.ErrEmptyExtraction, http.StatusUnprocessableEntity},
	{adapter.ErrUnsupportedDocument, http.StatusUnsupportedMediaType},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrExtractionFailed, http.StatusBadGateway},
	{adapter.ErrExtractionUnavailable, http.StatusServiceUnavailable},

	{service.ErrConflictConfirmationRequired, http.StatusConflict},
	{service.ErrIdentityUnavailable, http.StatusUnprocessableEntity},

	{store.ErrContractNotFound, http.StatusNotFound},
	{store.ErrDocumentNotFound, http.StatusNotFound},
	{store.ErrOwnerNotFound, http.StatusNotFound},
	{store.ErrTenantNotFound, http.StatusNotFound},
	{store.ErrInvalidDocumentPath, http.StatusBadRequest},

	{service.ErrContractCreation, http.StatusInternalServerError},
	{service.ErrDocumentAttach, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// conflictResponse is the 409 body of a submission that needs confirmation.
type conflictResponse struct {
	utils.ErrorResponse
	ActiveContract *models.ActiveContractSummary `json:"active_contract"`
}

// writeError logs err and writes the JSON error body for it. Unclassified
// errors are reported without their message.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	resp := utils.ErrorResponse{Error: err.Error()}

	var (
		fieldErrs  validators.FieldErrors
		extraction *adapter.ExtractionError
		conflict   *service.ConflictError
	)
	switch {
	case errors.As(err, &fieldErrs):
		resp.Error = validators.ErrInvalidContractForm.Error()
		resp.Fields = fieldErrs.Messages()
	case errors.As(err, &extraction):
		resp.Hint = extraction.Hint
	case errors.As(err, &conflict):
		resp.Hint = "resubmit with confirm_conflict to create the contract anyway"
		_, _ = utils.WriteJSON(w, conflictResponse{ErrorResponse: resp, ActiveContract: conflict.Contract}, status)
		return
	case errors.Is(err, store.ErrRetryableConflict):
		resp.Hint = "another request created the same record; submit again"
	case status == http.StatusInternalServerError && !errors.Is(err, service.ErrContractCreation) && !errors.Is(err, service.ErrDocumentAttach):
		resp.Error = http.StatusText(status)
	}

	utils.WriteError(w, resp, status)
}
