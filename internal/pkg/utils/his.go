package utils

import (
	"io"
	"net/http"

	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const hisErrorBodyLimit = 1 << 20

// RenderHisErrorDetail extracts the human-readable detail message from a HIS
// backend error payload. A string detail is returned verbatim; a validation
// list is flattened to its msg fields; anything else is rendered as JSON.
// Returns "" when the body carries no usable detail.
func RenderHisErrorDetail(body []byte) string {
	var payload struct {
		Detail interface{} `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == nil {
		return ""
	}

	switch detail := payload.Detail.(type) {
	case string:
		return detail
	case []interface{}:
		var messages []byte
		for _, item := range detail {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if msg, ok := entry["msg"].(string); ok {
				if len(messages) > 0 {
					messages = append(messages, "; "...)
				}
				messages = append(messages, msg...)
			}
		}
		if len(messages) > 0 {
			return string(messages)
		}
	}

	rendered, err := json.Marshal(payload.Detail)
	if err != nil {
		return ""
	}
	return string(rendered)
}

// ReadHisError turns a non-success HIS backend response into a CustomError
// whose client message is the backend's detail text when present, the
// caller's page-specific fallback otherwise. A 401 maps to the dedicated
// unauthorized error so the delivery layer can drop the session.
func ReadHisError(resp *http.Response, method, url, fallbackMessage string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, hisErrorBodyLimit))

	if resp.StatusCode == constvars.StatusUnauthorized {
		return exceptions.ErrHisUnauthorized(constvars.ErrClientNotLoggedIn)
	}

	clientMessage := RenderHisErrorDetail(body)
	if clientMessage == "" {
		clientMessage = fallbackMessage
	}
	return exceptions.ErrHisRequest(resp.StatusCode, clientMessage, method, url)
}
