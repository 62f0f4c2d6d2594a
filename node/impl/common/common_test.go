package common

import (
	"context"
	"testing"

	"github.com/gbrlsnchs/jwt/v3"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-jsonrpc/auth"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/journal"
	"github.com/filecoin-project/lotus-escrow/journal/alerting"
	"github.com/filecoin-project/lotus-escrow/node/modules/dtypes"
)

func testCommon(t *testing.T) *CommonAPI {
	return &CommonAPI{
		Alerting:     alerting.NewAlertingSystem(journal.NilJournal()),
		APISecret:    (*dtypes.APIAlg)(jwt.NewHS256([]byte("test secret"))),
		ShutdownChan: make(dtypes.ShutdownChan, 1),
	}
}

func TestAuthTokens(t *testing.T) {
	ctx := context.Background()
	a := testCommon(t)

	token, err := a.AuthNew(ctx, []auth.Permission{api.PermRead, api.PermSign})
	require.NoError(t, err)

	perms, err := a.AuthVerify(ctx, string(token))
	require.NoError(t, err)
	require.Equal(t, []auth.Permission{api.PermRead, api.PermSign}, perms)

	_, err = a.AuthNew(ctx, []auth.Permission{"root"})
	require.Error(t, err)

	other := testCommon(t)
	other.APISecret = (*dtypes.APIAlg)(jwt.NewHS256([]byte("another secret")))
	_, err = other.AuthVerify(ctx, string(token))
	require.Error(t, err)
}

func TestLogLevels(t *testing.T) {
	ctx := context.Background()
	a := testCommon(t)

	subs, err := a.LogList(ctx)
	require.NoError(t, err)
	require.Contains(t, subs, "alerting")

	require.NoError(t, a.LogSetLevel(ctx, "alerting", "debug"))
	require.Error(t, a.LogSetLevel(ctx, "alerting", "loud"))
}

func TestShutdownAndSession(t *testing.T) {
	ctx := context.Background()
	a := testCommon(t)

	require.NoError(t, a.Shutdown(ctx))
	select {
	case <-a.ShutdownChan:
	default:
		t.Fatal("shutdown was not signalled")
	}

	s1, err := a.Session(ctx)
	require.NoError(t, err)
	s2, err := testCommon(t).Session(ctx)
	require.NoError(t, err)
	require.Equal(t, s1, s2)

	v, err := a.Version(ctx)
	require.Error(t, err, "node type is only set by the daemon")
	require.Empty(t, v.Version)
}
