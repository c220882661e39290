package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"returnex/internal/domain/service"
	"returnex/pkg/errors"
	"returnex/pkg/logger"
)

const (
	requestTimeout = 10 * time.Second
	retryDelay     = 500 * time.Millisecond
)

// Client talks to the Shopify Admin REST API. Transient failures (transport
// errors, 5xx) get a single retry; anything persistent surfaces as
// UPSTREAM_UNAVAILABLE rather than a silent empty result.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

func NewClient(storeURL, accessToken, apiVersion string) *Client {
	// Stray whitespace in env values breaks the auth header.
	storeURL = strings.TrimSpace(storeURL)
	accessToken = strings.TrimSpace(accessToken)

	return &Client{
		httpClient:  &http.Client{Timeout: requestTimeout},
		baseURL:     fmt.Sprintf("https://%s/admin/api/%s", storeURL, apiVersion),
		accessToken: accessToken,
	}
}

func (c *Client) Configured() bool {
	return c.accessToken != "" && !strings.HasPrefix(c.baseURL, "https:///")
}

func (c *Client) FindOrderByNumber(ctx context.Context, orderNumber string) (*service.SourceOrder, error) {
	params := url.Values{}
	params.Set("name", orderNumber)
	params.Set("status", "any")

	var payload struct {
		Orders []service.SourceOrder `json:"orders"`
	}
	if err := c.get(ctx, "/orders.json?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	if len(payload.Orders) == 0 {
		return nil, nil
	}
	return &payload.Orders[0], nil
}

func (c *Client) GetCustomer(ctx context.Context, customerID int64) (*service.SourceCustomer, error) {
	var payload struct {
		Customer *service.SourceCustomer `json:"customer"`
	}
	if err := c.get(ctx, fmt.Sprintf("/customers/%d.json", customerID), &payload); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, nil
		}
		return nil, err
	}
	return payload.Customer, nil
}

func (c *Client) GetProduct(ctx context.Context, productID int64) (*service.SourceProduct, error) {
	var payload struct {
		Product *service.SourceProduct `json:"product"`
	}
	if err := c.get(ctx, fmt.Sprintf("/products/%d.json", productID), &payload); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, nil
		}
		return nil, err
	}
	return payload.Product, nil
}

// VerifyConnection pings shop.json at startup, log-only.
func (c *Client) VerifyConnection(ctx context.Context) error {
	var payload struct {
		Shop struct {
			Name string `json:"name"`
		} `json:"shop"`
	}
	if err := c.get(ctx, "/shop.json", &payload); err != nil {
		return err
	}
	logger.Info("Shopify connected: %s", payload.Shop.Name)
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	if !c.Configured() {
		return errors.UpstreamUnavailable("Order source is not configured", nil)
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.UpstreamUnavailable("Order source request cancelled", ctx.Err())
			case <-time.After(retryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return errors.Internal("Failed to build order source request", err)
		}
		req.Header.Set("X-Shopify-Access-Token", c.accessToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("order source returned status %d", resp.StatusCode)
			continue
		}

		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return errors.NotFound("Resource", nil)
		case resp.StatusCode >= 400:
			return errors.UpstreamUnavailable(
				fmt.Sprintf("Order source rejected the request with status %d", resp.StatusCode), nil)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Internal("Failed to decode order source response", err)
		}
		return nil
	}

	return errors.UpstreamUnavailable("Order source is unreachable", lastErr)
}
