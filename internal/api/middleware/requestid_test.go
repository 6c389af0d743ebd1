package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_Generated(t *testing.T) {
	router := newTestRouter(RequestID())

	w := serve(router, http.MethodGet, "/api/v1/leads/abc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated request id should be a UUID")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id, body["request_id"])
}

func TestRequestID_Propagated(t *testing.T) {
	router := newTestRouter(RequestID())

	w := serve(router, http.MethodGet, "/api/v1/leads/abc", http.Header{RequestIDHeader: {"trace-123"}})

	assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
}

func TestRequestID_OversizedHeaderReplaced(t *testing.T) {
	router := newTestRouter(RequestID())
	long := strings.Repeat("x", maxRequestIDLength+1)

	w := serve(router, http.MethodGet, "/api/v1/leads/abc", http.Header{RequestIDHeader: {long}})

	id := w.Header().Get(RequestIDHeader)
	assert.NotEqual(t, long, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestLogger_PassesThrough(t *testing.T) {
	router := newTestRouter(RequestID(), Logger())

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/v1/leads/abc", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/nope", nil).Code)
}
