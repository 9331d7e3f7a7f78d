package commands

import (
	"context"
	"errors"

	"platecost/internal/domain/integration"
	"platecost/internal/infra"
	"platecost/internal/pkg/config"
	"platecost/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidState         = errs.New("invalid authorization state")
	ErrTokenExchange        = errs.New("authorization code exchange failed")
	ErrTokenRevoke          = errs.New("token revocation failed")
	ErrLocationAlreadyBound = errs.New("square location is already selected")
	ErrLocationIDRequired   = errs.New("location id is required")
)

type LocationView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    *string `json:"address,omitempty"`
	IsSelected bool    `json:"isSelected"`
}

type IntegrationCommands interface {
	BuildAuthorizationURL(ctx context.Context, tenantID uuid.UUID, tenantSlug string) (string, error)
	CompleteAuthorization(ctx context.Context, code, rawState string) (string, error)
	Disconnect(ctx context.Context, tenantID uuid.UUID) error
	ListLocations(ctx context.Context, tenantID uuid.UUID) ([]LocationView, error)
	SelectLocation(ctx context.Context, tenantID uuid.UUID, locationID string) error
}

type integrationUseCaseImpl struct {
	credentials CredentialStore
	gateway     SquareGateway
	cfg         config.SquareConfig
}

func NewIntegrationUseCase(
	credentials CredentialStore,
	gateway SquareGateway,
	cfg config.SquareConfig,
) IntegrationCommands {
	return &integrationUseCaseImpl{
		credentials: credentials,
		gateway:     gateway,
		cfg:         cfg,
	}
}

func (u *integrationUseCaseImpl) redirectURI(tenantSlug string) string {
	return u.cfg.AppURL + "/api/teams/" + tenantSlug + "/square/callback"
}

func (u *integrationUseCaseImpl) BuildAuthorizationURL(_ context.Context, tenantID uuid.UUID, tenantSlug string) (string, error) {
	if !u.cfg.Configured() {
		return "", errs.ErrAuthConfigMissing
	}
	state := integration.State{TenantID: tenantID, TenantSlug: tenantSlug}
	return u.gateway.AuthorizeURL(state.Encode(), u.redirectURI(tenantSlug)), nil
}

// CompleteAuthorization exchanges the callback's authorization code for
// tokens and persists them against the tenant carried in the state
// parameter. It returns the tenant slug so the caller can redirect back to
// the tenant's settings page.
func (u *integrationUseCaseImpl) CompleteAuthorization(ctx context.Context, code, rawState string) (string, error) {
	st, err := integration.DecodeState(rawState)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidState)
	}

	// Fail before touching the provider when credentials are absent; the
	// exchange could only produce a confusing authentication error.
	if !u.cfg.Configured() {
		return st.TenantSlug, errs.ErrAuthConfigMissing
	}

	grant, err := u.gateway.ExchangeCode(ctx, code, u.redirectURI(st.TenantSlug))
	if err != nil {
		return st.TenantSlug, errs.Mark(err, ErrTokenExchange)
	}

	tokens := integration.Tokens{
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		ExpiresAt:    grant.ExpiresAt,
	}
	if err := u.credentials.SetTokens(ctx, st.TenantID, tokens); err != nil {
		return st.TenantSlug, errs.Wrap(err, "storing tokens")
	}
	return st.TenantSlug, nil
}

// Disconnect revokes the tenant's access token at the provider before
// clearing stored credentials. When revocation fails the credentials are
// kept, so the tenant can retry instead of being left with a live remote
// grant it can no longer see.
func (u *integrationUseCaseImpl) Disconnect(ctx context.Context, tenantID uuid.UUID) error {
	itg, err := u.findIntegration(ctx, tenantID)
	if err != nil {
		return err
	}

	if itg.AccessToken != nil {
		if err := u.gateway.RevokeToken(ctx, *itg.AccessToken); err != nil {
			return errs.Mark(err, ErrTokenRevoke)
		}
	}

	if err := u.credentials.ClearTokens(ctx, tenantID); err != nil {
		return errs.Wrap(err, "clearing tokens")
	}
	return nil
}

func (u *integrationUseCaseImpl) ListLocations(ctx context.Context, tenantID uuid.UUID) ([]LocationView, error) {
	itg, err := u.findIntegration(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !itg.Connected() {
		return nil, errs.ErrNotConnected
	}

	locations, err := u.gateway.ListLocations(ctx, *itg.AccessToken)
	if err != nil {
		return nil, errs.Wrap(err, "listing locations")
	}

	views := make([]LocationView, 0, len(locations))
	for _, loc := range locations {
		view := LocationView{
			ID:         loc.ID,
			Name:       loc.Name,
			IsSelected: itg.LocationID != nil && *itg.LocationID == loc.ID,
		}
		if loc.Address != nil {
			if addr := loc.Address.String(); addr != "" {
				view.Address = &addr
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (u *integrationUseCaseImpl) SelectLocation(ctx context.Context, tenantID uuid.UUID, locationID string) error {
	itg, err := u.findIntegration(ctx, tenantID)
	if err != nil {
		return err
	}

	if err := itg.BindLocation(locationID); err != nil {
		switch {
		case errors.Is(err, integration.ErrAlreadyBound):
			return ErrLocationAlreadyBound
		case errors.Is(err, integration.ErrNotConnected):
			return errs.ErrNotConnected
		case errors.Is(err, integration.ErrLocationIDEmpty):
			return ErrLocationIDRequired
		default:
			return err
		}
	}

	if err := u.credentials.BindLocation(ctx, tenantID, locationID); err != nil {
		// A concurrent select may win the guarded update between the read
		// and the write.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrLocationAlreadyBound
		}
		return errs.Wrap(err, "binding location")
	}
	return nil
}

func (u *integrationUseCaseImpl) findIntegration(ctx context.Context, tenantID uuid.UUID) (*integration.Integration, error) {
	itg, err := u.credentials.FindByTenant(ctx, tenantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrIntegrationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return itg, nil
}
