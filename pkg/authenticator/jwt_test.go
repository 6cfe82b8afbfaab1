package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type tokenObject struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
}

func Test_jwtTokenEngine_roundTrip(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(time.Minute, tokenObject{ID: "user1", Nickname: "foo"})
	require.NoError(t, err)

	var obj tokenObject
	require.NoError(t, engine.Verify(token, &obj))
	require.Equal(t, tokenObject{ID: "user1", Nickname: "foo"}, obj)
}

func Test_jwtTokenEngine_expired(t *testing.T) {
	engine := NewTokenEngine("secret")

	token, err := engine.Generate(-time.Minute, tokenObject{ID: "user1"})
	require.NoError(t, err)

	var obj tokenObject
	require.Error(t, engine.Verify(token, &obj))
}

func Test_jwtTokenEngine_wrongSecret(t *testing.T) {
	token, err := NewTokenEngine("secret").Generate(time.Minute, tokenObject{ID: "user1"})
	require.NoError(t, err)

	var obj tokenObject
	require.Error(t, NewTokenEngine("another").Verify(token, &obj))
}
