package swpc

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auroraops/aurora-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return NewClient(url, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Observation Time": "2025-11-12T21:47:00Z",
			"Forecast Time": "2025-11-12T22:36:00Z",
			"coordinates": [[0, -90, 0], [350, 67, 12], [12, 65, 3]]
		}`))
	}))
	defer srv.Close()

	snapshot, err := testClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-11-12T21:47:00Z", snapshot.ObservationTime)
	assert.Equal(t, "2025-11-12T22:36:00Z", snapshot.ForecastTime)
	require.Len(t, snapshot.Samples, 3)
	assert.Equal(t, domain.Sample{Lon: 350, Lat: 67, Intensity: 12}, snapshot.Samples[1])
}

func TestFetch_MissingTimesDefaultToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"coordinates": [[10, 60, 1]]}`))
	}))
	defer srv.Close()

	snapshot, err := testClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.ObservationTime)
	assert.Empty(t, snapshot.ForecastTime)
	assert.Len(t, snapshot.Samples, 1)
}

func TestFetch_EmptyCoordinatesIsValid(t *testing.T) {
	// Zero samples is a parse-level success; the builder rejects it later.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"coordinates": []}`))
	}))
	defer srv.Close()

	snapshot, err := testClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Samples)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.Contains(t, err.Error(), "502")
}

func TestFetch_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestFetch_MissingCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Observation Time": "2025-11-12T21:47:00Z"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "coordinates")
}

func TestFetch_MalformedRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"coordinates": [[10, 60, 1], [20, 61]]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "row 1")
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"coordinates": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
}
