package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

type revealFunc func(ctx context.Context, userID, id string) (models.RevealedIdentity, error)

func (h *Handler) ownerIdentity(w http.ResponseWriter, r *http.Request) {
	h.reveal(w, r, chi.URLParam(r, "ownerID"), h.services.IdentityService.RevealOwnerIdentity, "*Handler.ownerIdentity")
}

func (h *Handler) tenantIdentity(w http.ResponseWriter, r *http.Request) {
	h.reveal(w, r, chi.URLParam(r, "tenantID"), h.services.IdentityService.RevealTenantIdentity, "*Handler.tenantIdentity")
}

func (h *Handler) reveal(w http.ResponseWriter, r *http.Request, id string, fn revealFunc, funcName string) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	identity, err := fn(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err, funcName)
		return
	}

	// audit trail: who looked at which identity, never the values
	logger.FromRequest(r).Info().
		Str("party_id", id).
		Bool("tc", identity.TC != nil).
		Bool("iban", identity.IBAN != nil).
		Strs("denied", identity.Denied).
		Msg("identity revealed")

	w.Header().Set("Cache-Control", "no-store")
	_, _ = utils.WriteJSON(w, identity, http.StatusOK)
}
