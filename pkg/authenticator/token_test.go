package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type tokenPayload struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func Test_jwtEngine_GenerateAndVerify(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(time.Minute, tokenPayload{ID: "user1", Role: "member"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var payload tokenPayload
	require.NoError(t, engine.Verify(token, &payload))
	require.Equal(t, "user1", payload.ID)
	require.Equal(t, "member", payload.Role)
}

func Test_jwtEngine_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenEngine("secret").Generate(time.Minute, tokenPayload{ID: "user1"})
	require.NoError(t, err)

	var payload tokenPayload
	require.Error(t, NewTokenEngine("another-secret").Verify(token, &payload))
}

func Test_jwtEngine_Verify_Expired(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(-time.Minute, tokenPayload{ID: "user1"})
	require.NoError(t, err)

	var payload tokenPayload
	require.Error(t, engine.Verify(token, &payload))
}
