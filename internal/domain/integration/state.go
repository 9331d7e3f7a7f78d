package integration

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidState = errors.New("invalid state parameter")

// State is the value threaded through the provider's OAuth redirect to get
// the tenant identity back in the callback. It is recoverable, not signed;
// the callback re-validates the tenant against storage before writing tokens.
type State struct {
	TenantID   uuid.UUID `json:"tenantId"`
	TenantSlug string    `json:"tenantSlug"`
}

func (s State) Encode() string {
	b, _ := json.Marshal(s)
	return base64.StdEncoding.EncodeToString(b)
}

func DecodeState(raw string) (State, error) {
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return State{}, ErrInvalidState
	}

	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		return State{}, ErrInvalidState
	}
	if s.TenantID == uuid.Nil || s.TenantSlug == "" {
		return State{}, ErrInvalidState
	}
	return s, nil
}
