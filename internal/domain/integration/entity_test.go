//go:build unit

package integration_test

import (
	"testing"
	"time"

	"platecost/internal/domain/integration"
	"platecost/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnected(t *testing.T) {
	t.Run("connected when an access token is stored", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().BuildDomain()
		assert.True(t, itg.Connected())
	})

	t.Run("not connected without a token", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().BuildDisconnected()
		assert.False(t, itg.Connected())
	})

	t.Run("not connected when the token is empty", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().With(func(b *builder.IntegrationBuilder) {
			b.AccessToken = ""
		}).BuildDomain()
		assert.False(t, itg.Connected())
	})
}

func TestSyncReady(t *testing.T) {
	t.Run("ready when connected and bound to a location", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().BuildDomain()
		assert.True(t, itg.SyncReady())
	})

	t.Run("not ready without a location", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().With(func(b *builder.IntegrationBuilder) {
			b.LocationID = ""
		}).BuildDomain()
		assert.False(t, itg.SyncReady())
	})

	t.Run("not ready without a token", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().With(func(b *builder.IntegrationBuilder) {
			b.AccessToken = ""
		}).BuildDomain()
		assert.False(t, itg.SyncReady())
	})
}

func TestBindLocation(t *testing.T) {
	t.Run("binds a location once", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().With(func(b *builder.IntegrationBuilder) {
			b.LocationID = ""
		}).BuildDomain()

		err := itg.BindLocation("L999")
		require.NoError(t, err)
		require.NotNil(t, itg.LocationID)
		assert.Equal(t, "L999", *itg.LocationID)
	})

	t.Run("rebinding is rejected even with the same id", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().BuildDomain()

		err := itg.BindLocation(*itg.LocationID)
		assert.ErrorIs(t, err, integration.ErrAlreadyBound)

		err = itg.BindLocation("L999")
		assert.ErrorIs(t, err, integration.ErrAlreadyBound)
	})

	t.Run("requires a connected integration", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().BuildDisconnected()

		err := itg.BindLocation("L999")
		assert.ErrorIs(t, err, integration.ErrNotConnected)
	})

	t.Run("rejects an empty location id", func(t *testing.T) {
		itg := builder.NewIntegrationBuilder().With(func(b *builder.IntegrationBuilder) {
			b.LocationID = ""
		}).BuildDomain()

		err := itg.BindLocation("")
		assert.ErrorIs(t, err, integration.ErrLocationIDEmpty)
	})
}

func TestApplyAndClearTokens(t *testing.T) {
	itg := builder.NewIntegrationBuilder().BuildDisconnected()

	expires := time.Now().Add(24 * time.Hour)
	itg.ApplyTokens(integration.Tokens{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		ExpiresAt:    expires,
	})

	require.True(t, itg.Connected())
	assert.Equal(t, "new-access", *itg.AccessToken)
	assert.Equal(t, "new-refresh", *itg.RefreshToken)
	assert.True(t, expires.Equal(*itg.TokenExpiresAt))

	itg.ClearTokens()
	assert.False(t, itg.Connected())
	assert.Nil(t, itg.AccessToken)
	assert.Nil(t, itg.RefreshToken)
	assert.Nil(t, itg.TokenExpiresAt)
}
