package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"platecost/internal/pkg/config"
	"platecost/internal/pkg/errs"

	"golang.org/x/time/rate"
)

const (
	productionBaseURL = "https://connect.squareup.com"
	sandboxBaseURL    = "https://connect.squareupsandbox.com"

	// API version pinned to the one the integration was built against.
	apiVersion = "2023-12-13"
)

// Scopes requested on connect. Fixed and explicit; the token is only ever
// used for order reads plus the inventory surfaces of the wider product.
var OAuthScopes = []string{
	"MERCHANT_PROFILE_READ",
	"ORDERS_READ",
	"ORDERS_WRITE",
	"INVENTORY_READ",
	"INVENTORY_WRITE",
	"PAYMENTS_READ",
	"PAYMENTS_WRITE",
}

// Client is a thin REST client for the Square connect API. App credentials
// are injected at construction; per-tenant access tokens are passed per call
// so one client serves every tenant.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	appID      string
	appSecret  string
}

func NewClient(cfg config.SquareConfig) *Client {
	baseURL := productionBaseURL
	if cfg.UseSandbox {
		baseURL = sandboxBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
		baseURL:    baseURL,
		appID:      cfg.AppID,
		appSecret:  cfg.AppSecret,
	}
}

// AuthorizeURL builds the provider authorization redirect for the given
// opaque state and registered callback. No side effects.
func (c *Client) AuthorizeURL(state, redirectURI string) string {
	params := url.Values{}
	params.Set("client_id", c.appID)
	params.Set("scope", strings.Join(OAuthScopes, " "))
	params.Set("state", state)
	params.Set("session", "false")
	params.Set("redirect_uri", redirectURI)
	return c.baseURL + "/oauth2/authorize?" + params.Encode()
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    string `json:"expires_at"`
}

func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenGrant, error) {
	body := map[string]string{
		"client_id":     c.appID,
		"client_secret": c.appSecret,
		"code":          code,
		"grant_type":    "authorization_code",
		"redirect_uri":  redirectURI,
	}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/oauth2/token", "", body, &resp); err != nil {
		return nil, err
	}

	grant := &TokenGrant{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if ts, err := time.Parse(time.RFC3339, resp.ExpiresAt); err == nil {
		grant.ExpiresAt = ts
	} else if resp.ExpiresIn > 0 {
		grant.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return grant, nil
}

func (c *Client) RevokeToken(ctx context.Context, accessToken string) error {
	body := map[string]string{
		"client_id":     c.appID,
		"client_secret": c.appSecret,
		"access_token":  accessToken,
	}
	return c.do(ctx, http.MethodPost, "/oauth2/revoke", "", body, nil)
}

func (c *Client) ListLocations(ctx context.Context, accessToken string) ([]Location, error) {
	var resp struct {
		Locations []Location `json:"locations"`
	}
	if err := c.do(ctx, http.MethodGet, "/v2/locations", accessToken, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

func (c *Client) SearchOrders(ctx context.Context, accessToken string, req SearchOrdersRequest) (*OrderPage, error) {
	var resp struct {
		Orders []Order `json:"orders"`
		Cursor string  `json:"cursor"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/orders/search", accessToken, req, &resp); err != nil {
		return nil, err
	}
	return &OrderPage{Orders: resp.Orders, Cursor: resp.Cursor}, nil
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "rate limiter wait aborted")
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Square-Version", apiVersion)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, fmt.Sprintf("request to %s failed", path))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Errors  []ErrorDetail `json:"errors"`
			Message string        `json:"message"`
		}
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Errors = errBody.Errors
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errs.Wrap(err, "failed to decode response body")
		}
	}
	return nil
}
