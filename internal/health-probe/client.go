package health_probe

import (
	"OhDear_Health_Service/internal/health-endpoint/api/dto/response"
	"OhDear_Health_Service/internal/health-endpoint/api/middleware"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"time"
)

var ErrUnauthorized = errors.New("health endpoint rejected the secret")

type EndpointClient interface {
	GetHealthReport(ctx context.Context, url string, secret string) (response.HealthReportResponse, error)
}

type endpointClient struct {
	client         *http.Client
	maxRetries     int
	initialBackoff time.Duration
}

// GetHealthReport retries transport errors and 5xx answers with exponential backoff. A refused connection
// or a 401 is returned at once since retrying cannot fix it.
func (c *endpointClient) GetHealthReport(ctx context.Context, url string, secret string) (response.HealthReportResponse, error) {
	backoff := c.initialBackoff
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return response.HealthReportResponse{}, fmt.Errorf("EndpointClient.GetHealthReport creating request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if secret != "" {
			req.Header.Set(middleware.SecretHeader, secret)
		}
		resp, err := c.client.Do(req)
		if err != nil {
			if errors.Is(err, syscall.ECONNREFUSED) {
				return response.HealthReportResponse{}, fmt.Errorf("EndpointClient.GetHealthReport: %w", err)
			}
			lastErr = err
		} else {
			report, done, decodeErr := decodeReport(resp)
			if done {
				return report, decodeErr
			}
			lastErr = decodeErr
		}
		if attempt < c.maxRetries {
			select {
			case <-ctx.Done():
				return response.HealthReportResponse{}, fmt.Errorf("EndpointClient.GetHealthReport: %w", ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return response.HealthReportResponse{}, fmt.Errorf("EndpointClient.GetHealthReport after %d attempts: %w", c.maxRetries, lastErr)
}

// decodeReport reports done=false when the answer is worth retrying.
func decodeReport(resp *http.Response) (response.HealthReportResponse, bool, error) {
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return response.HealthReportResponse{}, true, fmt.Errorf("EndpointClient.GetHealthReport: %w", ErrUnauthorized)
	case resp.StatusCode >= 500:
		return response.HealthReportResponse{}, false, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return response.HealthReportResponse{}, true, fmt.Errorf("EndpointClient.GetHealthReport: unexpected status code %d", resp.StatusCode)
	}
	var report response.HealthReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return response.HealthReportResponse{}, true, fmt.Errorf("EndpointClient.GetHealthReport decoding body: %w", err)
	}
	return report, true, nil
}

func NewEndpointClient(maxRetries int, requestTimeout time.Duration, initialBackoff time.Duration) EndpointClient {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &endpointClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
	}
}
