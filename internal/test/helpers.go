package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kashguard/go-docsig/internal/api"
	"github.com/kashguard/go-docsig/internal/api/httperrors"
	"github.com/stretchr/testify/require"
)

// PerformRequest issues a request against the test server's echo instance and
// returns the recorded response.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body interface{}, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	if body != nil {
		req.Header.Set(echoHeaderContentType, echoMIMEApplicationJSON)
	}
	for key, vals := range headers {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

const (
	echoHeaderContentType   = "Content-Type"
	echoMIMEApplicationJSON = "application/json"
)

// ParseResponseBody unmarshals the recorded JSON response body into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal(res.Body.Bytes(), v))
}

// RequireHTTPError asserts that the response matches the given HTTPError.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpError *httperrors.HTTPError) {
	t.Helper()

	require.Equal(t, int(*httpError.Code), res.Code)

	var body map[string]interface{}
	ParseResponseBody(t, res, &body)
	require.Equal(t, *httpError.Title, body["title"])
	require.Equal(t, *httpError.Type, body["type"])
}
