// Package swpc fetches the OVATION aurora forecast from the NOAA Space
// Weather Prediction Center.
package swpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/auroraops/aurora-map/internal/domain"
)

// DefaultFeedURL is the public OVATION latest-forecast endpoint.
const DefaultFeedURL = "https://services.swpc.noaa.gov/json/ovation_aurora_latest.json"

// Client performs the single synchronous feed request for a run.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a feed client with a bounded request timeout.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// feedPayload mirrors the OVATION JSON shape. Coordinates is a pointer so a
// missing field is distinguishable from a present-but-empty grid.
type feedPayload struct {
	Coordinates     *[][]float64 `json:"coordinates"`
	ObservationTime string       `json:"Observation Time"`
	ForecastTime    string       `json:"Forecast Time"`
}

// Fetch retrieves and parses one forecast snapshot. Transport and status
// failures wrap domain.ErrFetch; malformed payloads wrap domain.ErrParse.
// Absent time fields default to empty strings, not an error. No retries.
func (c *Client) Fetch(ctx context.Context) (domain.ForecastSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.ForecastSnapshot{}, fmt.Errorf("%w: create request: %v", domain.ErrFetch, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ForecastSnapshot{}, fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ForecastSnapshot{}, fmt.Errorf("%w: status %d: %s", domain.ErrFetch, resp.StatusCode, body)
	}

	var payload feedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.ForecastSnapshot{}, fmt.Errorf("%w: decode body: %v", domain.ErrParse, err)
	}
	if payload.Coordinates == nil {
		return domain.ForecastSnapshot{}, fmt.Errorf("%w: missing coordinates field", domain.ErrParse)
	}

	samples := make([]domain.Sample, len(*payload.Coordinates))
	for i, row := range *payload.Coordinates {
		if len(row) != 3 {
			return domain.ForecastSnapshot{}, fmt.Errorf("%w: coordinates row %d has %d values, want 3", domain.ErrParse, i, len(row))
		}
		samples[i] = domain.Sample{Lon: row[0], Lat: row[1], Intensity: row[2]}
	}

	c.logger.Info("feed fetched",
		"url", c.url,
		"samples", len(samples),
		"observation_time", payload.ObservationTime,
		"forecast_time", payload.ForecastTime,
		"duration", time.Since(start),
	)

	return domain.ForecastSnapshot{
		Samples:         samples,
		ObservationTime: payload.ObservationTime,
		ForecastTime:    payload.ForecastTime,
	}, nil
}
