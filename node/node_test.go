package node_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-jsonrpc/auth"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/api/client"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/wallet"
	"github.com/filecoin-project/lotus-escrow/node"
	"github.com/filecoin-project/lotus-escrow/node/config"
	"github.com/filecoin-project/lotus-escrow/node/repo"
)

const denom = "utoken"

type testNode struct {
	api.FullNode
	buyer address.Address
}

func startNode(t *testing.T) *testNode {
	ctx := context.Background()

	buyer, err := wallet.GenerateKey(types.KTSecp256k1)
	require.NoError(t, err)

	cfg := config.DefaultFullNode()
	cfg.Genesis.Accounts = []config.GenesisAccount{
		{Address: buyer.Address.String(), Balance: "1000" + denom},
	}

	r := repo.NewMemory(&repo.MemRepoOptions{
		KeyStore: map[string]types.KeyInfo{
			wallet.KNamePrefix + buyer.Address.String(): buyer.KeyInfo,
			wallet.KDefault: buyer.KeyInfo,
		},
		Config: cfg,
	})
	t.Cleanup(r.Cleanup)

	var full api.FullNode
	stop, err := node.New(ctx,
		node.FullAPI(&full),
		node.Base(),
		node.Repo(r),
		node.Test(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, stop(context.Background()))
	})

	return &testNode{FullNode: full, buyer: buyer.Address}
}

func TestGenesisFundsAccounts(t *testing.T) {
	ctx := context.Background()
	n := startNode(t)

	name, err := n.StateNetworkName(ctx)
	require.NoError(t, err)
	require.Equal(t, "escrownet", name)

	bal, err := n.WalletBalance(ctx, n.buyer)
	require.NoError(t, err)
	require.EqualValues(t, 1000, bal.AmountOf(denom).Int64())

	def, err := n.WalletDefaultAddress(ctx)
	require.NoError(t, err)
	require.Equal(t, n.buyer, def)
}

func TestEscrowLifecycle(t *testing.T) {
	ctx := context.Background()
	n := startNode(t)

	seller, err := n.WalletNew(ctx, types.KTSecp256k1)
	require.NoError(t, err)

	created, err := n.EscrowCreate(ctx, n.buyer, seller, types.NewCoin(denom, 200), 3600)
	require.NoError(t, err)

	cfg, err := n.EscrowGetConfig(ctx, created.IDAddress)
	require.NoError(t, err)
	require.Equal(t, "Idle", cfg.Status)
	require.Equal(t, seller, cfg.Seller)

	// the seller has no balance, so it cannot fund anything
	_, err = n.EscrowDeposit(ctx, seller, created.IDAddress, nil)
	require.Error(t, err)

	ml, err := n.EscrowDeposit(ctx, n.buyer, created.IDAddress, nil)
	require.NoError(t, err)
	require.True(t, ml.Ok())

	ml, err = n.EscrowRefund(ctx, n.buyer, created.IDAddress)
	require.NoError(t, err)
	require.False(t, ml.Ok())
	require.Equal(t, actors.ExitCodeName(actors.ErrNotExpired), ml.ExitCodeName())

	ml, err = n.EscrowRelease(ctx, n.buyer, created.IDAddress)
	require.NoError(t, err)
	require.True(t, ml.Ok())

	bal, err := n.WalletBalance(ctx, seller)
	require.NoError(t, err)
	require.EqualValues(t, 200, bal.AmountOf(denom).Int64())

	bal, err = n.WalletBalance(ctx, n.buyer)
	require.NoError(t, err)
	require.EqualValues(t, 800, bal.AmountOf(denom).Int64())

	escrows, err := n.EscrowList(ctx)
	require.NoError(t, err)
	require.Len(t, escrows, 1)
	require.Equal(t, created.IDAddress, escrows[0].Escrow)

	msgs, err := n.StateListMessages(ctx, created.IDAddress, 0)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
}

func TestKVAndFaucet(t *testing.T) {
	ctx := context.Background()
	n := startNode(t)

	kv, err := n.KVStoreCreate(ctx, n.buyer)
	require.NoError(t, err)

	ml, err := n.KVCreate(ctx, n.buyer, kv.IDAddress, "color", "blue")
	require.NoError(t, err)
	require.True(t, ml.Ok())

	ml, err = n.KVCreate(ctx, n.buyer, kv.IDAddress, "color", "red")
	require.NoError(t, err)
	require.Equal(t, actors.ErrKeyAlreadyExists, ml.Receipt.ExitCode)

	res, err := n.KVRead(ctx, kv.IDAddress, "color")
	require.NoError(t, err)
	require.Equal(t, "blue", res.Value)

	faucet, err := n.FaucetCreate(ctx, n.buyer, 24, types.NewCoin(denom, 10), types.NewCoins(types.NewCoin(denom, 100)))
	require.NoError(t, err)

	claimer, err := n.WalletNew(ctx, types.KTSecp256k1)
	require.NoError(t, err)

	// claiming needs a nonce, so the claimer must exist on chain
	_, err = n.MpoolPushMessage(ctx, &types.Message{
		From:  n.buyer,
		To:    claimer,
		Funds: types.NewCoins(types.NewCoin(denom, 1)),
	}, nil)
	require.NoError(t, err)

	ml, err = n.FaucetClaim(ctx, claimer, faucet.IDAddress)
	require.NoError(t, err)
	require.True(t, ml.Ok())

	ml, err = n.FaucetClaim(ctx, claimer, faucet.IDAddress)
	require.NoError(t, err)
	require.Equal(t, actors.ErrClaimCooldownNotExpired, ml.Receipt.ExitCode)

	last, err := n.FaucetGetLastClaim(ctx, faucet.IDAddress, claimer)
	require.NoError(t, err)
	require.NotZero(t, last)
}

func TestServeFullNodeAPI(t *testing.T) {
	ctx := context.Background()
	n := startNode(t)

	h, err := node.FullNodeHandler(n.FullNode, true, config.DefaultFullNode().API)
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	defer srv.Close()

	addr := "ws://" + strings.TrimPrefix(srv.URL, "http://") + "/rpc/v0"

	// anonymous callers can read
	anon, closer, err := client.NewFullNodeRPC(ctx, addr, nil)
	require.NoError(t, err)
	defer closer()

	name, err := anon.StateNetworkName(ctx)
	require.NoError(t, err)
	require.Equal(t, "escrownet", name)

	_, err = anon.WalletNew(ctx, types.KTSecp256k1)
	require.Error(t, err)

	token, err := n.AuthNew(ctx, []auth.Permission{api.PermRead, api.PermWrite})
	require.NoError(t, err)

	headers := http.Header{"Authorization": []string{"Bearer " + string(token)}}
	writer, closer2, err := client.NewFullNodeRPC(ctx, addr, headers)
	require.NoError(t, err)
	defer closer2()

	_, err = writer.WalletNew(ctx, types.KTSecp256k1)
	require.NoError(t, err)

	// an unknown escrow is reported through the registered error types
	_, err = writer.EscrowGetConfig(ctx, address.TestAddress)
	require.Error(t, err)

	resp, err := http.Get(srv.URL + "/debug/metrics")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
