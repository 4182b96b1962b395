package rakuten

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/proteinnavi/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Rakuten Ichiba item search API
type Client struct {
	httpClient  *http.Client
	appID       string
	baseURL     string
	minPrice    int
	maxPrice    int
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Rakuten Ichiba API client
func NewClient(appID, baseURL string, minPrice, maxPrice int) *Client {
	// Rakuten allows 1 request per second per application ID
	limiter := rate.NewLimiter(rate.Limit(1), 1)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		appID:       appID,
		baseURL:     baseURL,
		minPrice:    minPrice,
		maxPrice:    maxPrice,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ProteinNavi/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRakutenAPIFailure, err)
	}

	return resp, nil
}

// SearchItems searches the Ichiba catalog for a keyword, sorted by review
// count so well-known products come first.
func (c *Client) SearchItems(ctx context.Context, keyword string, page int) (*domain.RakutenSearchResponse, error) {
	if c.debug {
		log.Printf("[RAKUTEN] SearchItems called with keyword: %q page: %d", keyword, page)
	}

	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Add("format", "json")
	params.Add("formatVersion", "2")
	params.Add("applicationId", c.appID)
	params.Add("keyword", keyword)
	params.Add("hits", "30")
	params.Add("page", strconv.Itoa(page))
	params.Add("sort", "-reviewCount")
	if c.minPrice > 0 {
		params.Add("minPrice", strconv.Itoa(c.minPrice))
	}
	if c.maxPrice > 0 {
		params.Add("maxPrice", strconv.Itoa(c.maxPrice))
	}

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		// Wait for rate limiter (1 req/sec per Rakuten API terms)
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[RAKUTEN] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[RAKUTEN] API error (attempt %d) - Status: %d, Body: %.200s", attempt, resp.StatusCode, string(body))
			if resp.StatusCode == http.StatusTooManyRequests {
				lastErr = fmt.Errorf("%w: status %d", domain.ErrRateLimited, resp.StatusCode)
			} else {
				lastErr = fmt.Errorf("%w: status %d", domain.ErrRakutenAPIFailure, resp.StatusCode)
			}
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var searchResp domain.RakutenSearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if len(searchResp.Items) == 0 {
			if c.debug {
				log.Printf("[RAKUTEN] No items found for keyword: %q", keyword)
			}
			return nil, domain.ErrProductNotFound
		}

		if c.debug {
			log.Printf("[RAKUTEN] Found %d items for keyword: %q", len(searchResp.Items), keyword)
		}
		return &searchResp, nil
	}

	log.Printf("[RAKUTEN] All retries failed for keyword: %q", keyword)
	return nil, lastErr
}
