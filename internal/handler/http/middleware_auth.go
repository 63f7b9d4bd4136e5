package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/internal/logger"
	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/rs/zerolog"
)

const sessionIDHeader = "X-Session-ID"

// auth enforces JWT bearer authentication. The token subject is the CRM user
// id; it is stored under [utils.UserIDCtxKey] for the handlers and every
// repository query is scoped by it.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "*Handler.auth")
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		child := log.GetChildLogger()
		child.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", token.UserID)
		})
		ctx = context.WithValue(child.WithContext(ctx), utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// withSessionID stores the review session id, used to warn once per
// contract during address checks. The header is optional.
func withSessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader)); sessionID != "" {
			r = r.WithContext(context.WithValue(r.Context(), utils.SessionIDCtxKey, sessionID))
		}
		next.ServeHTTP(w, r)
	})
}
