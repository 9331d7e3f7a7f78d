//go:build unit

package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		baseURL:    serverURL,
		appID:      "sq0idp-test",
		appSecret:  "sq0csp-test",
	}
}

func TestAuthorizeURL(t *testing.T) {
	c := newTestClient("https://connect.squareupsandbox.com")

	raw := c.AuthorizeURL("opaque-state", "https://app.example.com/callback")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/oauth2/authorize", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "sq0idp-test", q.Get("client_id"))
	assert.Equal(t, "opaque-state", q.Get("state"))
	assert.Equal(t, "false", q.Get("session"))
	assert.Equal(t, "https://app.example.com/callback", q.Get("redirect_uri"))
	assert.Len(t, strings.Split(q.Get("scope"), " "), len(OAuthScopes))
	assert.Contains(t, q.Get("scope"), "ORDERS_READ")
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.Equal(t, apiVersion, r.Header.Get("Square-Version"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sq0idp-test", body["client_id"])
		assert.Equal(t, "sq0csp-test", body["client_secret"])
		assert.Equal(t, "auth-code-123", body["code"])
		assert.Equal(t, "authorization_code", body["grant_type"])
		assert.Equal(t, "https://app.example.com/callback", body["redirect_uri"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "sq0atp-issued",
			"refresh_token": "sq0rtp-issued",
			"expires_at":    "2026-09-30T12:00:00Z",
		})
	}))
	defer srv.Close()

	grant, err := newTestClient(srv.URL).ExchangeCode(context.Background(), "auth-code-123", "https://app.example.com/callback")
	require.NoError(t, err)
	assert.Equal(t, "sq0atp-issued", grant.AccessToken)
	assert.Equal(t, "sq0rtp-issued", grant.RefreshToken)
	assert.Equal(t, time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC), grant.ExpiresAt)
}

func TestExchangeCode_ExpiresInFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "sq0atp-issued",
			"expires_in":   3600,
		})
	}))
	defer srv.Close()

	before := time.Now()
	grant, err := newTestClient(srv.URL).ExchangeCode(context.Background(), "code", "uri")
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(time.Hour), grant.ExpiresAt, 5*time.Second)
}

func TestRevokeToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/revoke", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sq0atp-live", body["access_token"])
		assert.Equal(t, "sq0csp-test", body["client_secret"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(srv.URL).RevokeToken(context.Background(), "sq0atp-live"))
}

func TestListLocations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/locations", r.URL.Path)
		assert.Equal(t, "Bearer sq0atp-live", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"locations": []map[string]any{
				{
					"id":   "L123456789",
					"name": "Main Kitchen",
					"address": map[string]string{
						"address_line_1": "1 Market St",
						"locality":       "San Francisco",
					},
				},
			},
		})
	}))
	defer srv.Close()

	locations, err := newTestClient(srv.URL).ListLocations(context.Background(), "sq0atp-live")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "L123456789", locations[0].ID)
	require.NotNil(t, locations[0].Address)
	assert.Equal(t, "1 Market St, San Francisco", locations[0].Address.String())
}

func TestSearchOrders_Pagination(t *testing.T) {
	var cursors []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orders/search", r.URL.Path)
		assert.Equal(t, "Bearer sq0atp-live", r.Header.Get("Authorization"))

		var req SearchOrdersRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"L123456789"}, req.LocationIDs)
		cursors = append(cursors, req.Cursor)

		resp := map[string]any{
			"orders": []map[string]any{{"id": "order-" + req.Cursor}},
		}
		if req.Cursor == "" {
			resp["cursor"] = "page-2"
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	req := SearchOrdersRequest{LocationIDs: []string{"L123456789"}}

	page1, err := c.SearchOrders(context.Background(), "sq0atp-live", req)
	require.NoError(t, err)
	assert.Equal(t, "page-2", page1.Cursor)

	req.Cursor = page1.Cursor
	page2, err := c.SearchOrders(context.Background(), "sq0atp-live", req)
	require.NoError(t, err)
	assert.Empty(t, page2.Cursor)

	assert.Equal(t, []string{"", "page-2"}, cursors)
}

func TestDo_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]string{
				{"category": "AUTHENTICATION_ERROR", "code": "UNAUTHORIZED", "detail": "token expired"},
			},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListLocations(context.Background(), "sq0atp-stale")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail(), "token expired")
}
