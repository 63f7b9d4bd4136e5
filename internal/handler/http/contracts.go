package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

// address check outcomes reported to metrics
const (
	addressIncomplete = "incomplete"
	addressClear      = "clear"
	addressActive     = "active"
)

// contractRequest is the body of POST /api/contracts and the "form" part of
// a multipart submission.
type contractRequest struct {
	models.ContractForm
	ConfirmConflict bool `json:"confirm_conflict"`
}

func (h *Handler) checkAddress(w http.ResponseWriter, r *http.Request) {
	var address models.AddressComponents
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		writeError(w, r, wrapDecodeError(err), "*Handler.checkAddress")
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	check, err := h.services.ConflictService.CheckAddress(r.Context(), userID, sessionID, address)
	if err != nil {
		writeError(w, r, err, "*Handler.checkAddress")
		return
	}

	switch {
	case !check.Complete:
		h.metrics.AddressChecked(addressIncomplete)
	case check.ActiveContract != nil:
		h.metrics.AddressChecked(addressActive)
	default:
		h.metrics.AddressChecked(addressClear)
	}

	_, _ = utils.WriteJSON(w, check, http.StatusOK)
}

func (h *Handler) createContract(w http.ResponseWriter, r *http.Request) {
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, wrapDecodeError(err), "*Handler.createContract")
		return
	}

	h.submit(w, r, submissionFromRequest(r, req, nil), "*Handler.createContract")
}

// submitContract accepts a multipart body: the reviewed form as JSON in the
// "form" part and the source PDF in the optional "file" part.
func (h *Handler) submitContract(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(r); err != nil {
		writeError(w, r, err, "*Handler.submitContract")
		return
	}

	raw := r.FormValue(formField)
	if raw == "" {
		writeError(w, r, ErrMissingForm, "*Handler.submitContract")
		return
	}

	var req contractRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.submitContract")
		return
	}

	file, ok, err := readOptionalUpload(r, fileField)
	if err != nil {
		writeError(w, r, err, "*Handler.submitContract")
		return
	}

	var document *models.UploadedFile
	if ok {
		document = &file
	}

	h.submit(w, r, submissionFromRequest(r, req, document), "*Handler.submitContract")
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, submission models.ContractSubmission, funcName string) {
	log := logger.FromRequest(r)

	result, err := h.services.SubmissionService.SubmitContract(r.Context(), submission)
	if err != nil {
		if !isClientRejection(err) {
			h.metrics.ContractFailed()
		}
		writeError(w, r, err, funcName)
		return
	}

	c := result.Creation
	h.metrics.ContractCreated(c.CreatedOwner, c.CreatedTenant, c.CreatedProperty)
	if submission.Document != nil {
		h.metrics.DocumentAttached(result.DocumentAttached)
	}

	log.Info().
		Str("contract_id", c.ContractID).
		Bool("created_owner", c.CreatedOwner).
		Bool("created_tenant", c.CreatedTenant).
		Bool("created_property", c.CreatedProperty).
		Bool("document_attached", result.DocumentAttached).
		Msg("contract created")
	if result.Warning != "" {
		log.Warn().Str("contract_id", c.ContractID).Msg(result.Warning)
	}

	_, _ = utils.WriteJSON(w, result, http.StatusCreated)
}

func submissionFromRequest(r *http.Request, req contractRequest, document *models.UploadedFile) models.ContractSubmission {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	return models.ContractSubmission{
		UserID:          userID,
		SessionID:       sessionID,
		Form:            req.ContractForm,
		ConfirmConflict: req.ConfirmConflict,
		Document:        document,
	}
}

// isClientRejection reports errors caused by the request itself; those are
// not counted as failed creations.
func isClientRejection(err error) bool {
	return statusFromError(err) < http.StatusInternalServerError
}

func wrapDecodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
