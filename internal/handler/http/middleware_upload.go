package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
)

const checksumHeader = "X-Content-SHA256"

// limitBody caps the request body at n bytes. Reading past the limit fails
// with *http.MaxBytesError, reported as 413.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}

// withContentChecksum verifies the optional X-Content-SHA256 header against
// the raw request body. Requests without the header pass unchanged.
func withContentChecksum(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := strings.ToLower(strings.TrimSpace(r.Header.Get(checksumHeader)))
		if want == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, err, "withContentChecksum")
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if got := utils.Checksum(body); got != want {
			writeError(w, r, ErrChecksumMismatch, "withContentChecksum")
			return
		}

		next.ServeHTTP(w, r)
	})
}
