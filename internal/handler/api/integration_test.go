//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"platecost/internal/handler/api"
	reqdto "platecost/internal/handler/dto/request"
	resdto "platecost/internal/handler/dto/response"
	"platecost/internal/infra/square"
	"platecost/internal/pkg/config"
	"platecost/internal/pkg/errs"
	"platecost/internal/usecase/commands"
	"platecost/tests/common/httptest"
	"platecost/tests/common/testutil"
	commandsmock "platecost/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IntegrationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockIntegrationCommands
	handler  *api.IntegrationHandler
	tenantID uuid.UUID
}

func (s *IntegrationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockIntegrationCommands(s.mockCtrl)
	s.handler = api.NewIntegrationHandler(s.mockCmds, config.NewTestConfig().Square)
	s.tenantID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": http.StatusUnauthorized, "message": "Unauthorized"}})
			return
		}
		c.Set("tenant_id", s.tenantID)
		c.Set("tenant_slug", c.Param("slug"))
		c.Next()
	}

	s.router.GET("/api/teams/:slug/square/connect", authMiddleware, s.handler.Connect)
	s.router.GET("/api/teams/:slug/square/callback", s.handler.Callback)
	s.router.POST("/api/teams/:slug/square/disconnect", authMiddleware, s.handler.Disconnect)
	s.router.GET("/api/teams/:slug/square/locations", authMiddleware, s.handler.Locations)
	s.router.POST("/api/teams/:slug/square/location", authMiddleware, s.handler.SelectLocation)
}

func (s *IntegrationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIntegrationHandlerSuite(t *testing.T) {
	suite.Run(t, new(IntegrationHandlerTestSuite))
}

func (s *IntegrationHandlerTestSuite) TestConnect() {
	s.mockCmds.EXPECT().
		BuildAuthorizationURL(gomock.Any(), s.tenantID, "demo-kitchen").
		Return("https://connect.squareup.com/oauth2/authorize?state=abc", nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teams/demo-kitchen/square/connect", nil, "token")

	var envelope struct {
		Data resdto.ConnectData `json:"data"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &envelope)
	s.Equal("https://connect.squareup.com/oauth2/authorize?state=abc", envelope.Data.URL)
}

func (s *IntegrationHandlerTestSuite) TestConnect_NotConfigured() {
	s.mockCmds.EXPECT().
		BuildAuthorizationURL(gomock.Any(), s.tenantID, "demo-kitchen").
		Return("", errs.ErrAuthConfigMissing)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teams/demo-kitchen/square/connect", nil, "token")
	httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "Square integration is not configured")
}

func (s *IntegrationHandlerTestSuite) TestConnect_Unauthenticated() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teams/demo-kitchen/square/connect", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *IntegrationHandlerTestSuite) TestCallback_Success() {
	s.mockCmds.EXPECT().
		CompleteAuthorization(gomock.Any(), "auth-code", "opaque-state").
		Return("demo-kitchen", nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		"/api/teams/demo-kitchen/square/callback?code=auth-code&state=opaque-state", nil, "")

	s.Equal(http.StatusFound, w.Code)
	s.Equal("http://localhost:4002/teams/demo-kitchen/square?success=true", w.Header().Get("Location"))
}

func (s *IntegrationHandlerTestSuite) TestCallback_RedirectsOnFailure() {
	tests := []struct {
		name      string
		path      string
		setupMock func()
		wantError string
	}{
		{
			name:      "provider error passthrough",
			path:      "/api/teams/demo-kitchen/square/callback?error=access_denied",
			wantError: "access_denied",
		},
		{
			name:      "missing code",
			path:      "/api/teams/demo-kitchen/square/callback?state=opaque-state",
			wantError: "Missing required parameters",
		},
		{
			name: "invalid state",
			path: "/api/teams/demo-kitchen/square/callback?code=auth-code&state=bad",
			setupMock: func() {
				s.mockCmds.EXPECT().
					CompleteAuthorization(gomock.Any(), "auth-code", "bad").
					Return("", commands.ErrInvalidState)
			},
			wantError: "Invalid state parameter",
		},
		{
			name: "credentials not configured",
			path: "/api/teams/demo-kitchen/square/callback?code=auth-code&state=opaque-state",
			setupMock: func() {
				s.mockCmds.EXPECT().
					CompleteAuthorization(gomock.Any(), "auth-code", "opaque-state").
					Return("demo-kitchen", errs.ErrAuthConfigMissing)
			},
			wantError: "Square credentials are not configured",
		},
		{
			name: "exchange failure falls back to generic message",
			path: "/api/teams/demo-kitchen/square/callback?code=auth-code&state=opaque-state",
			setupMock: func() {
				s.mockCmds.EXPECT().
					CompleteAuthorization(gomock.Any(), "auth-code", "opaque-state").
					Return("demo-kitchen", commands.ErrTokenExchange)
			},
			wantError: "Failed to exchange code for token",
		},
		{
			name: "exchange failure surfaces provider detail",
			path: "/api/teams/demo-kitchen/square/callback?code=auth-code&state=opaque-state",
			setupMock: func() {
				apiErr := &square.APIError{
					StatusCode: 400,
					Errors:     []square.ErrorDetail{{Code: "INVALID_GRANT", Detail: "Authorization code is expired"}},
				}
				s.mockCmds.EXPECT().
					CompleteAuthorization(gomock.Any(), "auth-code", "opaque-state").
					Return("demo-kitchen", errs.Mark(apiErr, commands.ErrTokenExchange))
			},
			wantError: "Authorization code is expired",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tt.path, nil, "")

			s.Equal(http.StatusFound, w.Code)
			httptest.AssertHeaders(s.T(), w, map[string]string{
				"Location": "http://localhost:4002/teams/demo-kitchen/square?error=" + url.QueryEscape(tt.wantError),
			})
		})
	}
}

func (s *IntegrationHandlerTestSuite) TestDisconnect() {
	s.mockCmds.EXPECT().Disconnect(gomock.Any(), s.tenantID).Return(nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/teams/demo-kitchen/square/disconnect", nil, "token")

	var envelope struct {
		Data resdto.MessageData `json:"data"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &envelope)
	s.Equal("Successfully disconnected from Square", envelope.Data.Message)
}

func (s *IntegrationHandlerTestSuite) TestDisconnect_RevokeFailed() {
	s.mockCmds.EXPECT().Disconnect(gomock.Any(), s.tenantID).Return(commands.ErrTokenRevoke)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/teams/demo-kitchen/square/disconnect", nil, "token")
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Failed to revoke Square token")
}

func (s *IntegrationHandlerTestSuite) TestDisconnect_NotFound() {
	s.mockCmds.EXPECT().Disconnect(gomock.Any(), s.tenantID).Return(errs.ErrIntegrationNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/teams/demo-kitchen/square/disconnect", nil, "token")
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Integration not found")
}

func (s *IntegrationHandlerTestSuite) TestLocations() {
	addr := "1 Market St, San Francisco"
	s.mockCmds.EXPECT().
		ListLocations(gomock.Any(), s.tenantID).
		Return([]commands.LocationView{
			{ID: "L123456789", Name: "Main Kitchen", Address: &addr, IsSelected: true},
			{ID: "L987654321", Name: "Food Truck"},
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teams/demo-kitchen/square/locations", nil, "token")

	var envelope struct {
		Data resdto.LocationsData `json:"data"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &envelope)
	s.Require().Len(envelope.Data.Locations, 2)
	s.Equal("L123456789", envelope.Data.Locations[0].ID)
	s.True(envelope.Data.Locations[0].IsSelected)
	s.False(envelope.Data.Locations[1].IsSelected)
}

func (s *IntegrationHandlerTestSuite) TestLocations_NotConnected() {
	s.mockCmds.EXPECT().ListLocations(gomock.Any(), s.tenantID).Return(nil, errs.ErrNotConnected)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/teams/demo-kitchen/square/locations", nil, "token")
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Square is not connected")
}

func (s *IntegrationHandlerTestSuite) TestSelectLocation() {
	baseReq := reqdto.SelectLocationRequest{LocationID: "L123456789"}

	tests := []struct {
		name       string
		mutate     func(m map[string]any)
		setupMock  func()
		expectCode int
		expectErr  string
	}{
		{
			name: "success",
			setupMock: func() {
				s.mockCmds.EXPECT().SelectLocation(gomock.Any(), s.tenantID, "L123456789").Return(nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "already bound",
			mutate: testutil.Field("locationId", "L987654321"),
			setupMock: func() {
				s.mockCmds.EXPECT().
					SelectLocation(gomock.Any(), s.tenantID, "L987654321").
					Return(commands.ErrLocationAlreadyBound)
			},
			expectCode: http.StatusConflict,
			expectErr:  "A Square location is already selected",
		},
		{
			name:       "missing location id",
			mutate:     testutil.Field("locationId", nil),
			expectCode: http.StatusBadRequest,
			expectErr:  "Invalid request",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			var muts []func(map[string]any)
			if tt.mutate != nil {
				muts = append(muts, tt.mutate)
			}
			body := testutil.DtoMap(s.T(), baseReq, muts...)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/teams/demo-kitchen/square/location", body, "token")

			if tt.expectErr != "" {
				httptest.AssertErrorResponse(s.T(), w, tt.expectCode, tt.expectErr)
				return
			}

			var envelope struct {
				Data resdto.SelectLocationData `json:"data"`
			}
			httptest.AssertSuccessResponse(s.T(), w, tt.expectCode, &envelope)
			s.Equal("L123456789", envelope.Data.LocationID)
		})
	}
}
