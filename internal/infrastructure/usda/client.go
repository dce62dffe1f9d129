package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/rashikfit/backend/internal/domain"
)

const (
	maxAttempts  = 3
	maxErrorBody = 512
)

// Client handles communication with the USDA FoodData Central API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      logrus.FieldLogger
	backoff     func(attempt int) time.Duration
}

// NewClient creates a new USDA API client. requestsPerHour <= 0 uses the
// FoodData Central default quota of 1000 requests per hour.
func NewClient(apiKey, baseURL string, requestsPerHour int, logger logrus.FieldLogger) *Client {
	if requestsPerHour <= 0 {
		requestsPerHour = 1000
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600), 10),
		logger:      logger.WithField("component", "usda"),
		backoff:     exponentialBackoff,
	}
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500<<(attempt-1)) * time.Millisecond
}

// readLimitedBody reads at most limit bytes so error bodies stay loggable
func readLimitedBody(body io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, limit))
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// get performs a GET against path with retries on transport errors, 429 and 5xx.
// 404 maps to ErrProductNotFound; other 4xx fail immediately.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	log := c.logger.WithField("path", path)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff(attempt - 1)):
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "Rashik/1.0")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: %v", domain.ErrUSDAAPIFailure, ctx.Err())
			}
			log.WithError(err).WithField("attempt", attempt).Warn("request failed")
			lastErr = fmt.Errorf("%w: %v", domain.ErrUSDAAPIFailure, err)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
			return nil
		}

		body, _ := readLimitedBody(resp.Body, maxErrorBody)
		resp.Body.Close()
		log.WithFields(logrus.Fields{"attempt": attempt, "status": resp.StatusCode, "body": string(body)}).Warn("API error")

		if resp.StatusCode == http.StatusNotFound {
			return domain.ErrProductNotFound
		}
		lastErr = fmt.Errorf("%w: status %d", domain.ErrUSDAAPIFailure, resp.StatusCode)
		if !retryable(resp.StatusCode) {
			return lastErr
		}
	}

	log.WithError(lastErr).Error("all retries failed")
	return lastErr
}

// SearchFoods searches for foods in the USDA database
func (c *Client) SearchFoods(ctx context.Context, query string) (*domain.USDASearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("dataType", "Foundation,SR Legacy,Survey (FNDDS),Branded")
	params.Set("pageSize", "10")

	var searchResp domain.USDASearchResponse
	if err := c.get(ctx, "/v1/foods/search", params, &searchResp); err != nil {
		return nil, err
	}
	if len(searchResp.Foods) == 0 {
		c.logger.WithField("query", query).Debug("no foods found")
		return nil, domain.ErrProductNotFound
	}

	c.logger.WithFields(logrus.Fields{"query": query, "count": len(searchResp.Foods)}).Debug("search succeeded")
	return &searchResp, nil
}

// GetFoodDetails retrieves detailed nutrition information for a specific food by FDC ID
func (c *Client) GetFoodDetails(ctx context.Context, fdcID string) (*domain.USDAFood, error) {
	var food domain.USDAFood
	if err := c.get(ctx, "/v1/food/"+url.PathEscape(fdcID), url.Values{}, &food); err != nil {
		return nil, err
	}
	return &food, nil
}
