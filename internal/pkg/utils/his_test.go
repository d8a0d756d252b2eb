package utils

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHisErrorDetail(t *testing.T) {
	t.Run("string detail is returned verbatim", func(t *testing.T) {
		got := RenderHisErrorDetail([]byte(`{"detail": "phone already registered"}`))
		assert.Equal(t, "phone already registered", got)
	})

	t.Run("validation list flattens msg fields", func(t *testing.T) {
		body := `{"detail": [{"loc": ["body", "email"], "msg": "field required", "type": "value_error.missing"}]}`
		got := RenderHisErrorDetail([]byte(body))
		assert.Equal(t, "field required", got)
	})

	t.Run("multiple validation messages joined", func(t *testing.T) {
		body := `{"detail": [{"msg": "field required"}, {"msg": "value is not a valid email address"}]}`
		got := RenderHisErrorDetail([]byte(body))
		assert.Equal(t, "field required; value is not a valid email address", got)
	})

	t.Run("missing detail yields empty string", func(t *testing.T) {
		assert.Equal(t, "", RenderHisErrorDetail([]byte(`{"message": "nope"}`)))
	})

	t.Run("non JSON body yields empty string", func(t *testing.T) {
		assert.Equal(t, "", RenderHisErrorDetail([]byte("<html>bad gateway</html>")))
	})
}

func errorResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestReadHisError(t *testing.T) {
	t.Run("detail text becomes the client message", func(t *testing.T) {
		resp := errorResponse(400, `{"detail": "phone already registered"}`)
		err := ReadHisError(resp, constvars.MethodPost, "http://his/api/patients", constvars.ErrClientRegisterPatient)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, "phone already registered", customErr.ClientMessage)
	})

	t.Run("fallback used when body carries no detail", func(t *testing.T) {
		resp := errorResponse(500, `{}`)
		err := ReadHisError(resp, constvars.MethodPost, "http://his/api/patients", constvars.ErrClientRegisterPatient)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientRegisterPatient, customErr.ClientMessage)
	})

	t.Run("401 maps to the unauthorized error", func(t *testing.T) {
		resp := errorResponse(401, `{"detail": "Could not validate credentials"}`)
		err := ReadHisError(resp, constvars.MethodGet, "http://his/api/patients", constvars.ErrClientFetchPatients)

		assert.True(t, exceptions.IsUnauthorized(err))
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientNotLoggedIn, customErr.ClientMessage)
	})
}
