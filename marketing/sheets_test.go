package marketing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSheetsClientPostsRow(t *testing.T) {
	var got sheetsRow
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(sheetsResponse{Success: true})
	}))
	defer server.Close()

	client := NewSheetsClient(server.URL)
	created := time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)

	err := client.Record(context.Background(), Signup{Email: "a@example.com", CreatedAt: created})
	require.NoError(t, err)

	require.Equal(t, "a@example.com", got.Email)
	require.Equal(t, "2025-06-01T15:04:05Z", got.Timestamp)
	require.Equal(t, "Jun 1, 2025, 03:04:05 PM", got.Date)
}

func TestSheetsClientRejectedSignup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sheetsResponse{Success: false, Error: "duplicate email"})
	}))
	defer server.Close()

	err := NewSheetsClient(server.URL).Record(context.Background(), Signup{Email: "a@example.com"})
	require.ErrorContains(t, err, "duplicate email")
}

func TestSheetsClientNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewSheetsClient(server.URL).Record(context.Background(), Signup{Email: "a@example.com"})
	require.ErrorContains(t, err, "status 502")
}
