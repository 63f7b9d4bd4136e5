package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message, hint := errorPayload(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	extErr := &ExtractionError{Status: resp.StatusCode(), Message: message, Hint: hint}
	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		extErr.Err = ErrUnauthorized
	case http.StatusUnprocessableEntity:
		extErr.Err = ErrEmptyExtraction
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusTooManyRequests:
		extErr.Err = ErrExtractionUnavailable
	default:
		extErr.Err = ErrExtractionFailed
	}
	return extErr
}

// errorPayload reads {"error": "...", "hint": "..."} from a response body.
// Non-JSON bodies are returned verbatim as the message.
func errorPayload(body []byte) (message, hint string) {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body)), ""
	}

	res := gjson.GetManyBytes(body, "error", "hint", "message")
	message = res[0].String()
	if message == "" {
		message = res[2].String()
	}
	return strings.TrimSpace(message), strings.TrimSpace(res[1].String())
}
