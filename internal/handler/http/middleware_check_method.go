package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler. A
// request with an unregistered method gets 404 instead of chi's 405, so the
// route set is not disclosed.
//
// Only exact route patterns are compared; a parameterised path never
// matches here and always gets 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		notFound(w, r)
	}
}

// notFound is the router's NotFound handler. Unknown paths get the same JSON
// error body as every other failure instead of chi's plain-text 404.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, utils.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
