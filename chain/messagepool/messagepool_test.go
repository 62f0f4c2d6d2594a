package messagepool_test

import (
	"context"
	"testing"
	"time"

	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/messagepool"
	"github.com/filecoin-project/lotus-escrow/chain/stmgr"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/wallet"
	gentypes "github.com/filecoin-project/lotus-escrow/genesis"
)

const denom = "token"

func setup(t *testing.T) (*messagepool.MessagePool, *wallet.LocalWallet, address.Address) {
	ctx := context.Background()
	w, err := wallet.NewWallet(wallet.NewMemKeyStore())
	require.NoError(t, err)
	sender, err := w.WalletNew(ctx, types.KTSecp256k1)
	require.NoError(t, err)

	ds := dssync.MutexWrap(datastore.NewMapDatastore())
	cs := store.NewChainStore(ds)
	t.Cleanup(func() { _ = cs.Close() })

	sm, err := stmgr.NewStateManager(cs, ds, nil, nil, nil, "testnet")
	require.NoError(t, err)
	require.NoError(t, sm.Genesis(ctx, gentypes.Template{
		Accounts: []gentypes.Actor{{
			Address: sender,
			Balance: types.NewCoins(types.NewCoin(denom, 100)),
		}},
	}))

	mp, err := messagepool.New(sm)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Close() })

	return mp, w, sender
}

func sign(t *testing.T, w *wallet.LocalWallet, msg *types.Message) *types.SignedMessage {
	sig, err := w.WalletSign(context.Background(), msg.From, msg.SigningBytes())
	require.NoError(t, err)
	return &types.SignedMessage{Message: *msg, Signature: *sig}
}

func TestPushAppliesSignedMessage(t *testing.T) {
	ctx := context.Background()
	mp, w, sender := setup(t)

	to, err := address.NewSecp256k1Address([]byte("recipient"))
	require.NoError(t, err)

	smsg := sign(t, w, &types.Message{
		From:   sender,
		To:     to,
		Method: actors.MethodSend,
		Funds:  types.NewCoins(types.NewCoin(denom, 10)),
	})

	l, err := mp.Push(ctx, smsg)
	require.NoError(t, err)
	require.Equal(t, exitcode.Ok, l.Receipt.ExitCode)
	require.Equal(t, smsg.Cid(), l.Message)

	nonce, err := mp.GetNonce(ctx, sender)
	require.NoError(t, err)
	require.EqualValues(t, 1, nonce)

	// the same nonce again is stale
	_, err = mp.Push(ctx, smsg)
	require.ErrorIs(t, err, messagepool.ErrNonceTooLow)

	nonce, err = mp.GetNonce(ctx, to)
	require.NoError(t, err)
	require.EqualValues(t, 0, nonce)
}

func TestPushRejects(t *testing.T) {
	ctx := context.Background()
	mp, w, sender := setup(t)

	other, err := w.WalletNew(ctx, types.KTSecp256k1)
	require.NoError(t, err)

	t.Run("bad signature", func(t *testing.T) {
		smsg := sign(t, w, &types.Message{From: sender, To: other})
		smsg.Message.Funds = types.NewCoins(types.NewCoin(denom, 1))
		_, err := mp.Push(ctx, smsg)
		require.ErrorIs(t, err, messagepool.ErrInvalidSignature)
	})

	t.Run("signed by someone else", func(t *testing.T) {
		msg := &types.Message{From: sender, To: other}
		sig, err := w.WalletSign(ctx, other, msg.SigningBytes())
		require.NoError(t, err)
		_, err = mp.Push(ctx, &types.SignedMessage{Message: *msg, Signature: *sig})
		require.ErrorIs(t, err, messagepool.ErrInvalidSignature)
	})

	t.Run("nonce gap", func(t *testing.T) {
		_, err := mp.Push(ctx, sign(t, w, &types.Message{From: sender, To: other, Nonce: 3}))
		require.ErrorIs(t, err, messagepool.ErrNonceGap)
	})

	t.Run("not enough funds", func(t *testing.T) {
		_, err := mp.Push(ctx, sign(t, w, &types.Message{
			From:  sender,
			To:    other,
			Funds: types.NewCoins(types.NewCoin(denom, 101)),
		}))
		require.ErrorIs(t, err, messagepool.ErrNotEnoughFunds)
	})

	t.Run("unknown sender", func(t *testing.T) {
		_, err := mp.Push(ctx, sign(t, w, &types.Message{From: other, To: sender}))
		require.ErrorIs(t, err, messagepool.ErrUnknownSender)
	})

	t.Run("params too big", func(t *testing.T) {
		_, err := mp.Push(ctx, sign(t, w, &types.Message{From: sender, To: other, Params: make([]byte, 200<<10)}))
		require.ErrorIs(t, err, messagepool.ErrMessageTooBig)
	})

	nonce, err := mp.GetNonce(ctx, sender)
	require.NoError(t, err)
	require.EqualValues(t, 0, nonce, "rejected messages never reach the chain")
}

func TestPushWithNonceAndUpdates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mp, w, sender := setup(t)

	updates, err := mp.Updates(ctx)
	require.NoError(t, err)

	to, err := address.NewIDAddress(1234)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		smsg, l, err := mp.PushWithNonce(ctx, sender, func(nonce uint64) (*types.SignedMessage, error) {
			return sign(t, w, &types.Message{From: sender, To: to, Nonce: nonce}), nil
		})
		require.NoError(t, err)
		require.EqualValues(t, i, smsg.Message.Nonce)
		require.Equal(t, smsg.Cid(), l.Message)
	}

	for _, want := range []messagepool.MpoolChange{messagepool.MpoolAdd, messagepool.MpoolRemove} {
		select {
		case u := <-updates:
			require.Equal(t, want, u.Type)
			require.EqualValues(t, 0, u.Message.Message.Nonce)
		case <-time.After(5 * time.Second):
			t.Fatal("no mpool update")
		}
	}
}
