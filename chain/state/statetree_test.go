package state

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

func newTestTree() (*StateTree, datastore.Batching) {
	ds := dssync.MutexWrap(datastore.NewMapDatastore())
	return NewStateTree(ds), ds
}

func mustActorAddr(t *testing.T, s string) address.Address {
	a, err := address.NewActorAddress([]byte(s))
	require.NoError(t, err)
	return a
}

func TestRegisterNewAddress(t *testing.T) {
	st, _ := newTestTree()

	a := mustActorAddr(t, "alice")
	b := mustActorAddr(t, "bob")

	ida, err := st.RegisterNewAddress(a)
	require.NoError(t, err)
	idb, err := st.RegisterNewAddress(b)
	require.NoError(t, err)

	n, err := address.IDFromAddress(ida)
	require.NoError(t, err)
	require.Equal(t, uint64(build.FirstNonSingletonActorID), n)

	n, err = address.IDFromAddress(idb)
	require.NoError(t, err)
	require.Equal(t, uint64(build.FirstNonSingletonActorID+1), n)

	got, err := st.LookupID(a)
	require.NoError(t, err)
	require.Equal(t, ida, got)

	_, err = st.RegisterNewAddress(a)
	require.Error(t, err)

	_, err = st.LookupID(mustActorAddr(t, "carol"))
	require.True(t, xerrors.Is(err, types.ErrActorNotFound))
}

func TestSnapshotRevert(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestTree()

	id, err := address.NewIDAddress(100)
	require.NoError(t, err)

	require.NoError(t, st.SetActor(id, &types.Actor{Code: actors.AccountCodeCid}))

	require.NoError(t, st.Snapshot(ctx))
	require.NoError(t, st.MutateActor(id, func(act *types.Actor) error {
		act.Balance = types.NewCoins(types.NewCoin("token", 10))
		return nil
	}))
	st.StoragePut(id, "state", []byte("v"))

	act, err := st.GetActor(id)
	require.NoError(t, err)
	require.Equal(t, "10token", act.Balance.String())

	require.NoError(t, st.Revert())
	st.ClearSnapshot()

	act, err = st.GetActor(id)
	require.NoError(t, err)
	require.True(t, act.Balance.IsZero())

	_, found, err := st.StorageGet(id, "state")
	require.NoError(t, err)
	require.False(t, found)
}

func TestFlushPersists(t *testing.T) {
	ctx := context.Background()
	st, ds := newTestTree()

	id, err := address.NewIDAddress(100)
	require.NoError(t, err)

	require.NoError(t, st.SetActor(id, &types.Actor{Code: actors.EscrowCodeCid, Nonce: 3}))
	st.StoragePut(id, "entry/a/../b", []byte("one"))
	st.StoragePut(id, "entry/b", []byte("two"))

	require.NoError(t, st.Snapshot(ctx))
	require.Error(t, st.Flush(ctx))
	st.ClearSnapshot()

	require.NoError(t, st.Flush(ctx))

	st2 := NewStateTree(ds)
	act, err := st2.GetActor(id)
	require.NoError(t, err)
	require.Equal(t, actors.EscrowCodeCid, act.Code)
	require.Equal(t, uint64(3), act.Nonce)

	v, found, err := st2.StorageGet(id, "entry/a/../b")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("one"), v)

	v, found, err = st2.StorageGet(id, "entry/b")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("two"), v)

	st2.StorageDelete(id, "entry/b")
	_, found, err = st2.StorageGet(id, "entry/b")
	require.NoError(t, err)
	require.False(t, found)
}

func TestListActors(t *testing.T) {
	ctx := context.Background()
	st, ds := newTestTree()

	for _, n := range []uint64{102, 100} {
		id, err := address.NewIDAddress(n)
		require.NoError(t, err)
		require.NoError(t, st.SetActor(id, &types.Actor{Code: actors.AccountCodeCid}))
	}
	require.NoError(t, st.Flush(ctx))

	st = NewStateTree(ds)
	id, err := address.NewIDAddress(101)
	require.NoError(t, err)
	require.NoError(t, st.SetActor(id, &types.Actor{Code: actors.AccountCodeCid}))

	list, err := st.ListActors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, n := range []uint64{100, 101, 102} {
		got, err := address.IDFromAddress(list[i])
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}
