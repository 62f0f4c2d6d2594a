package messagesigner_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/chain/messagepool"
	"github.com/filecoin-project/lotus-escrow/chain/messagesigner"
	"github.com/filecoin-project/lotus-escrow/chain/stmgr"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/wallet"
	gentypes "github.com/filecoin-project/lotus-escrow/genesis"
)

func TestSignMessage(t *testing.T) {
	ctx := context.Background()

	w, err := wallet.NewWallet(wallet.NewMemKeyStore())
	require.NoError(t, err)
	from, err := w.WalletNew(ctx, types.KTSecp256k1)
	require.NoError(t, err)

	ds := dssync.MutexWrap(datastore.NewMapDatastore())
	cs := store.NewChainStore(ds)
	defer cs.Close() //nolint:errcheck

	sm, err := stmgr.NewStateManager(cs, ds, nil, nil, nil, "testnet")
	require.NoError(t, err)
	require.NoError(t, sm.Genesis(ctx, gentypes.Template{
		Accounts: []gentypes.Actor{{Address: from, Balance: types.NewCoins(types.NewCoin("token", 50))}},
	}))

	mp, err := messagepool.New(sm)
	require.NoError(t, err)
	defer mp.Close() //nolint:errcheck

	ms := messagesigner.NewMessageSigner(w, mp, sm, ds)

	to, err := address.NewSecp256k1Address([]byte("to"))
	require.NoError(t, err)

	// senders can be named by their ID address
	fromID, err := sm.LookupID(ctx, from)
	require.NoError(t, err)

	newMsg := func() *types.Message {
		return &types.Message{From: fromID, To: to, Funds: types.NewCoins(types.NewCoin("token", 5))}
	}

	sm1, err := ms.SignMessage(ctx, newMsg(), uuid.Nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, sm1.Message.Nonce)

	id := uuid.New()
	sm2, err := ms.SignMessage(ctx, newMsg(), id)
	require.NoError(t, err)
	require.EqualValues(t, 1, sm2.Message.Nonce)

	// a retry with the same uuid returns the first push
	sm3, err := ms.SignMessage(ctx, newMsg(), id)
	require.NoError(t, err)
	require.Equal(t, sm2.Cid(), sm3.Cid())

	got, err := ms.GetSignedMessage(ctx, id)
	require.NoError(t, err)
	require.Equal(t, sm2.Cid(), got.Cid())

	act, err := sm.GetActor(ctx, to)
	require.NoError(t, err)
	require.EqualValues(t, 10, act.Balance.AmountOf("token").Int64())

	_, err = ms.GetSignedMessage(ctx, uuid.New())
	require.ErrorIs(t, err, datastore.ErrNotFound)
}
