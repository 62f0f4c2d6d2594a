package cli

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/build"
)

func TestWaitApiRetries(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, WaitApiCmd)
	defer done()

	gomock.InOrder(
		mockApi.EXPECT().Version(gomock.Any()).Return(api.APIVersion{}, xerrors.New("connection refused")),
		mockApi.EXPECT().Version(gomock.Any()).Return(api.APIVersion{}, xerrors.New("connection refused")),
		mockApi.EXPECT().Version(gomock.Any()).Return(api.APIVersion{Version: build.UserVersion()}, nil),
	)

	require.NoError(t, app.Run([]string{"wait-api", "wait-api", "--timeout", "10s"}))
	require.Contains(t, buf.String(), "Not online yet... (connection refused)")
}

func TestWaitApiTimeout(t *testing.T) {
	app, mockApi, _, done := newMockAppWithFullAPI(t, WaitApiCmd)
	defer done()

	mockApi.EXPECT().Version(gomock.Any()).DoAndReturn(func(ctx context.Context) (api.APIVersion, error) {
		return api.APIVersion{}, xerrors.New("connection refused")
	}).AnyTimes()

	err := app.Run([]string{"wait-api", "wait-api", "--timeout", "50ms"})
	require.ErrorContains(t, err, "timed out")
}
