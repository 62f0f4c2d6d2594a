package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemBasic(t *testing.T) {
	repo := NewMemory(nil)
	defer repo.Cleanup()
	basicTest(t, repo)
}

func TestMemStaleHandle(t *testing.T) {
	repo := NewMemory(nil)
	defer repo.Cleanup()

	lr, err := repo.Lock(FullNode)
	require.NoError(t, err)
	require.NoError(t, lr.Close())

	lr2, err := repo.Lock(FullNode)
	require.NoError(t, err)
	defer lr2.Close() //nolint:errcheck

	// the first handle must not act on the second lock
	_, err = lr.Config()
	require.ErrorIs(t, err, ErrClosedRepo)
	require.ErrorIs(t, lr.Close(), ErrClosedRepo)

	_, err = lr2.Config()
	require.NoError(t, err)
}
