package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-grocery-sync/models"
)

func TestWriteJSON(t *testing.T) {
	serverTime := models.Timestamp{}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "map", data: map[string]string{"key": "value"}, status: http.StatusOK, wantBody: `{"key":"value"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null"},
		{name: "empty struct", data: struct{}{}, status: http.StatusOK, wantBody: "{}"},
		{name: "custom status", data: []int{1, 2, 3}, status: http.StatusCreated, wantBody: "[1,2,3]"},
		{
			name:     "sync response",
			data:     models.SyncResponse{ServerTimestamp: serverTime},
			status:   http.StatusOK,
			wantBody: mustJSON(t, models.SyncResponse{ServerTimestamp: serverTime}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusUnauthorized, "token expired")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorBody{Status: http.StatusUnauthorized, Error: "Unauthorized", Message: "token expired"}, body)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
