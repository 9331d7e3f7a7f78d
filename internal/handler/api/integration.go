package api

import (
	"errors"
	"net/http"
	"net/url"

	reqdto "platecost/internal/handler/dto/request"
	resdto "platecost/internal/handler/dto/response"
	"platecost/internal/handler/httperr"
	"platecost/internal/handler/middleware"
	"platecost/internal/infra/square"
	"platecost/internal/pkg/config"
	"platecost/internal/pkg/errs"
	"platecost/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type IntegrationHandler struct {
	cmds   commands.IntegrationCommands
	appURL string
}

func NewIntegrationHandler(cmds commands.IntegrationCommands, cfg config.SquareConfig) *IntegrationHandler {
	return &IntegrationHandler{
		cmds:   cmds,
		appURL: cfg.AppURL,
	}
}

// @Summary Start Square authorization
// @Description Build the Square OAuth authorization URL for the tenant
// @Tags square
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Tenant slug"
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /teams/{slug}/square/connect [get]
func (h *IntegrationHandler) Connect(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing tenant context"), "Unauthorized", nil)
		return
	}
	tenantSlug, _ := middleware.GetTenantSlug(c)

	authURL, err := h.cmds.BuildAuthorizationURL(c.Request.Context(), tenantID, tenantSlug)
	if err != nil {
		if errors.Is(err, errs.ErrAuthConfigMissing) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Square integration is not configured", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to start Square authorization", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.ConnectData{URL: authURL}))
}

// Callback completes the OAuth flow. Square calls it directly with the
// tenant's browser, so it never renders JSON: every outcome redirects back
// to the tenant's integration page with either ?success=true or ?error=.
//
// @Summary Square OAuth callback
// @Description Exchange the authorization code and redirect to the settings page
// @Tags square
// @Param slug path string true "Tenant slug"
// @Param code query string false "Authorization code"
// @Param state query string false "Opaque state from the authorize step"
// @Param error query string false "Provider error code"
// @Success 302
// @Router /teams/{slug}/square/callback [get]
func (h *IntegrationHandler) Callback(c *gin.Context) {
	slug := c.Param("slug")

	if errParam := c.Query("error"); errParam != "" {
		h.redirectBack(c, slug, errParam)
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		h.redirectBack(c, slug, "Missing required parameters")
		return
	}

	stateSlug, err := h.cmds.CompleteAuthorization(c.Request.Context(), code, state)
	if stateSlug != "" {
		slug = stateSlug
	}
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidState):
			h.redirectBack(c, slug, "Invalid state parameter")
		case errors.Is(err, errs.ErrAuthConfigMissing):
			h.redirectBack(c, slug, "Square credentials are not configured")
		case errors.Is(err, commands.ErrTokenExchange):
			// The provider usually explains exactly why the exchange was
			// rejected, so its detail is surfaced over the generic fallback.
			msg := "Failed to exchange code for token"
			var apiErr *square.APIError
			if errors.As(err, &apiErr) {
				msg = apiErr.Detail()
			}
			h.redirectBack(c, slug, msg)
		default:
			h.redirectBack(c, slug, "An unexpected error occurred")
		}
		return
	}

	c.Redirect(http.StatusFound, h.appURL+"/teams/"+slug+"/square?success=true")
}

func (h *IntegrationHandler) redirectBack(c *gin.Context, slug, msg string) {
	c.Redirect(http.StatusFound, h.appURL+"/teams/"+slug+"/square?error="+url.QueryEscape(msg))
}

// @Summary Disconnect Square
// @Description Revoke the tenant's token at Square and clear stored credentials
// @Tags square
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Tenant slug"
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /teams/{slug}/square/disconnect [post]
func (h *IntegrationHandler) Disconnect(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing tenant context"), "Unauthorized", nil)
		return
	}

	if err := h.cmds.Disconnect(c.Request.Context(), tenantID); err != nil {
		switch {
		case errors.Is(err, errs.ErrIntegrationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Integration not found", nil)
		case errors.Is(err, commands.ErrTokenRevoke):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to revoke Square token", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to disconnect from Square", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.MessageData{Message: "Successfully disconnected from Square"}))
}

// @Summary List Square locations
// @Description List the tenant's Square locations with the bound one marked
// @Tags square
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Tenant slug"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /teams/{slug}/square/locations [get]
func (h *IntegrationHandler) Locations(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing tenant context"), "Unauthorized", nil)
		return
	}

	views, err := h.cmds.ListLocations(c.Request.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrIntegrationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Integration not found", nil)
		case errors.Is(err, errs.ErrNotConnected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Square is not connected", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list Square locations", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.LocationsData{Locations: resdto.FromLocationViews(views)}))
}

// @Summary Select Square location
// @Description Bind the tenant to one Square location; the binding is permanent
// @Tags square
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Tenant slug"
// @Param request body reqdto.SelectLocationRequest true "Select location request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /teams/{slug}/square/location [post]
func (h *IntegrationHandler) SelectLocation(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing tenant context"), "Unauthorized", nil)
		return
	}

	var req reqdto.SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SelectLocation(c.Request.Context(), tenantID, req.LocationID); err != nil {
		switch {
		case errors.Is(err, commands.ErrLocationAlreadyBound):
			httperr.AbortWithError(c, http.StatusConflict, err, "A Square location is already selected", nil)
		case errors.Is(err, commands.ErrLocationIDRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Location id is required", nil)
		case errors.Is(err, errs.ErrNotConnected):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Square is not connected", nil)
		case errors.Is(err, errs.ErrIntegrationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Integration not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to select location", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Wrap(resdto.SelectLocationData{LocationID: req.LocationID}))
}
