package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

func testMessage(t *testing.T, nonce uint64) *types.Message {
	from, err := address.NewIDAddress(100)
	require.NoError(t, err)
	to, err := address.NewIDAddress(101)
	require.NoError(t, err)

	return &types.Message{
		From:   from,
		To:     to,
		Nonce:  nonce,
		Funds:  types.NewCoins(types.NewCoin("token", 5)),
		Method: 2,
	}
}

func TestPersistMessageAndHead(t *testing.T) {
	ctx := context.Background()
	ds := dssync.MutexWrap(datastore.NewMapDatastore())
	cs := store.NewChainStore(ds)
	require.NoError(t, cs.Load(ctx))
	assert.Nil(t, cs.GetHeaviestHead(), "fresh store has no head")

	msg := testMessage(t, 0)

	b, err := ds.Batch(ctx)
	require.NoError(t, err)

	c, err := cs.PutMessage(ctx, b, msg)
	require.NoError(t, err)
	assert.Equal(t, msg.Cid(), c)

	lookup := &store.MsgLookup{
		Message: c,
		Receipt: types.MessageReceipt{
			ExitCode: exitcode.Ok,
			Events: []types.Event{{
				Emitter:    msg.To,
				Attributes: []types.EventAttribute{{Key: "action", Value: "deposit"}},
			}},
		},
		Height:    1,
		Timestamp: 1234,
	}
	require.NoError(t, cs.PutMsgLookup(ctx, b, lookup))
	head := store.Head{Height: 1, Timestamp: 1234}
	require.NoError(t, cs.WriteHead(ctx, b, head))

	_, err = cs.GetMsgLookup(ctx, c)
	require.ErrorIs(t, err, datastore.ErrNotFound, "nothing is visible before commit")

	require.NoError(t, b.Commit(ctx))
	cs.SetHead(ctx, head, lookup)

	// a second store over the same datastore sees everything
	cs2 := store.NewChainStore(ds)
	require.NoError(t, cs2.Load(ctx))
	require.NotNil(t, cs2.GetHeaviestHead())
	assert.Equal(t, head, *cs2.GetHeaviestHead())

	got, err := cs2.GetMessage(ctx, c)
	require.NoError(t, err)
	assert.True(t, got.Equals(msg))

	gl, err := cs2.GetMsgLookup(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, lookup.Height, gl.Height)
	assert.Equal(t, lookup.Timestamp, gl.Timestamp)
	assert.True(t, gl.Receipt.Equals(&lookup.Receipt))
}

func TestSubHeadChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cs := store.NewChainStore(dssync.MutexWrap(datastore.NewMapDatastore()))
	defer cs.Close() //nolint:errcheck

	cs.SetHead(ctx, store.Head{Height: 1, Timestamp: 10}, nil)

	sub := cs.SubHeadChanges(ctx)

	select {
	case hc := <-sub:
		assert.Equal(t, store.Head{Height: 1, Timestamp: 10}, hc.Head)
		assert.Nil(t, hc.Applied)
	case <-time.After(5 * time.Second):
		t.Fatal("no current head delivered")
	}

	msg := testMessage(t, 1)
	cs.SetHead(ctx, store.Head{Height: 2, Timestamp: 11}, &store.MsgLookup{Message: msg.Cid(), Height: 2})

	select {
	case hc := <-sub:
		assert.Equal(t, store.Head{Height: 2, Timestamp: 11}, hc.Head)
		require.NotNil(t, hc.Applied)
		assert.Equal(t, msg.Cid(), hc.Applied.Message)
	case <-time.After(5 * time.Second):
		t.Fatal("no head change delivered")
	}

	cancel()
	for range sub {
	}
}
