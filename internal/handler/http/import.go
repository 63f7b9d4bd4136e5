package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
)

type parseTextRequest struct {
	Text string `json:"text"`
}

func (h *Handler) importContract(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	file, err := readUpload(r, fileField)
	if err != nil {
		writeError(w, r, err, "*Handler.importContract")
		return
	}

	result, err := h.services.ImportService.ImportContract(r.Context(), file)
	if err != nil {
		h.metrics.ImportFailed()
		writeError(w, r, err, "*Handler.importContract")
		return
	}
	h.metrics.ImportDone(string(result.Method), result.FieldCount, result.LowConfidence)

	log.Info().
		Str("file", file.Name).
		Str("method", string(result.Method)).
		Int("fields", result.FieldCount).
		Bool("low_confidence", result.LowConfidence).
		Msg("contract imported")

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) extractDocument(w http.ResponseWriter, r *http.Request) {
	file, err := readUpload(r, fileField)
	if err != nil {
		writeError(w, r, err, "*Handler.extractDocument")
		return
	}

	result, err := h.services.ImportService.ExtractDocument(r.Context(), file)
	if err != nil {
		writeError(w, r, err, "*Handler.extractDocument")
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) parseContractText(w http.ResponseWriter, r *http.Request) {
	var req parseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, wrapDecodeError(err), "*Handler.parseContractText")
		return
	}

	parsed := h.services.ImportService.ParseContractText(r.Context(), req.Text)
	if strings.EqualFold(r.URL.Query().Get("shape"), "legacy") {
		parsed = parsed.WithLegacyFields()
	}

	_, _ = utils.WriteJSON(w, parsed, http.StatusOK)
}
