//go:build unit

package integration_test

import (
	"encoding/base64"
	"testing"

	"platecost/internal/domain/integration"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	original := integration.State{
		TenantID:   uuid.New(),
		TenantSlug: "demo-kitchen",
	}

	decoded, err := integration.DecodeState(original.Encode())
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeState(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "not base64", raw: "%%%not-base64%%%"},
		{name: "base64 but not json", raw: base64.StdEncoding.EncodeToString([]byte("plain text"))},
		{name: "empty string", raw: ""},
		{name: "missing tenant id", raw: base64.StdEncoding.EncodeToString([]byte(`{"tenantSlug":"demo"}`))},
		{name: "missing tenant slug", raw: base64.StdEncoding.EncodeToString([]byte(`{"tenantId":"` + uuid.NewString() + `"}`))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := integration.DecodeState(tc.raw)
			assert.ErrorIs(t, err, integration.ErrInvalidState)
		})
	}
}
