package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
)

func (h *Handler) attachDocument(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")

	file, err := readUpload(r, fileField)
	if err != nil {
		writeError(w, r, err, "*Handler.attachDocument")
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	document, err := h.services.DocumentService.AttachContractPDF(r.Context(), userID, contractID, file)
	if err != nil {
		h.metrics.DocumentAttached(false)
		writeError(w, r, err, "*Handler.attachDocument")
		return
	}
	h.metrics.DocumentAttached(true)

	logger.FromRequest(r).Info().
		Str("contract_id", contractID).
		Str("document_id", document.ID).
		Int64("size", document.Size).
		Msg("document attached")

	_, _ = utils.WriteJSON(w, document, http.StatusCreated)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.services.DocumentService.DeleteContractDocument(r.Context(), userID, documentID); err != nil {
		writeError(w, r, err, "*Handler.deleteDocument")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
