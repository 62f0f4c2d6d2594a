package cliutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseApiInfo(t *testing.T) {
	info := ParseApiInfo("eyJhbGciOiJIUzI1NiJ9.eyJBbGxvdyI6WyJyZWFkIl19.sig:/ip4/127.0.0.1/tcp/1234/http")
	require.Equal(t, "/ip4/127.0.0.1/tcp/1234/http", info.Addr)
	require.Equal(t, "eyJhbGciOiJIUzI1NiJ9.eyJBbGxvdyI6WyJyZWFkIl19.sig", string(info.Token))

	url, err := info.DialArgs("v0")
	require.NoError(t, err)
	require.Equal(t, "ws://127.0.0.1:1234/rpc/v0", url)
	require.Equal(t, "Bearer "+string(info.Token), info.AuthHeader().Get("Authorization"))
}

func TestParseApiInfoWithoutToken(t *testing.T) {
	info := ParseApiInfo("ws://localhost:1234")
	require.Equal(t, "ws://localhost:1234", info.Addr)
	require.Nil(t, info.Token)
	require.Nil(t, info.AuthHeader())

	url, err := info.DialArgs("v0")
	require.NoError(t, err)
	require.Equal(t, "ws://localhost:1234/rpc/v0", url)
}
