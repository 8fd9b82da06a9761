package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/platform/obs"
)

// OSRMProvider implements TravelTimeProvider against an OSRM routing
// server for real driving durations instead of haversine estimates.
//
// The provider is safe for concurrent use.
type OSRMProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMProvider(baseURL string) (*OSRMProvider, error) {
	if baseURL == "" {
		return nil, errors.New("OSRM base URL is empty")
	}

	provider := &OSRMProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		profile: "driving",
	}

	return provider, nil
}

type osrmRoute struct {
	DurationSeconds float64 `json:"duration"`
	DistanceMeters  float64 `json:"distance"`
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

// TravelTimeMinutes fetches the fastest driving route between the two
// coordinates and returns its duration in minutes.
func (o *OSRMProvider) TravelTimeMinutes(
	ctx context.Context,
	origin, destination domain.Coordinate,
) (_ float64, err error) {
	defer obs.Time(ctx, "osrm.TravelTimeMinutes")(&err)

	if err := origin.Validate(); err != nil {
		return 0, fmt.Errorf("OSRM travel time: origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return 0, fmt.Errorf("OSRM travel time: destination: %w", err)
	}

	// OSRM route URLs take lon,lat pairs.
	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?overview=false",
		o.baseURL, o.profile,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, endpoint)
	})
	if err != nil {
		return 0, fmt.Errorf("OSRM route request failed: %w", err)
	}
	defer resp.Body.Close()

	var or osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return 0, fmt.Errorf("decode OSRM response: %w", err)
	}

	if or.Code != "Ok" {
		return 0, fmt.Errorf("OSRM returned code %q", or.Code)
	}
	if len(or.Routes) == 0 {
		return 0, errors.New("OSRM returned no routes")
	}

	return or.Routes[0].DurationSeconds / 60, nil
}

type httpStatusError struct {
	Code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("HTTP status %d", e.Code)
}

func (o *OSRMProvider) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (o *OSRMProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := o.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429/5xx)
// using exponential backoff while respecting context cancellation.
func (o *OSRMProvider) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := o.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
