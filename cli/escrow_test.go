package cli

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var testMsgCid = (&types.Message{
	From: mustAddr(address.NewIDAddress(100)),
	To:   mustAddr(address.NewIDAddress(1000)),
}).Cid()

func lookup(code exitcode.ExitCode) *api.MsgLookup {
	return &api.MsgLookup{
		Message:   testMsgCid,
		Receipt:   types.MessageReceipt{ExitCode: code},
		Height:    7,
		Timestamp: 1_700_000_000,
	}
}

func TestEscrowCreate(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, EscrowCmd)
	defer done()

	buyer := mustAddr(address.NewIDAddress(100))
	seller := mustAddr(address.NewIDAddress(101))
	escrow := mustAddr(address.NewIDAddress(1000))

	gomock.InOrder(
		mockApi.EXPECT().WalletDefaultAddress(gomock.Any()).Return(buyer, nil),
		mockApi.EXPECT().EscrowCreate(gomock.Any(), buyer, seller, types.NewCoin("utoken", 200), uint64(7200)).
			Return(&api.ActorCreated{Message: testMsgCid, IDAddress: escrow, RobustAddress: escrow}, nil),
	)

	err := app.Run([]string{"escrow", "escrow", "create", "--lock", "2h", seller.String(), "200utoken"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ID Address:     "+escrow.String())
}

func TestEscrowCreateRejectsBadAmount(t *testing.T) {
	app, _, _, done := newMockAppWithFullAPI(t, EscrowCmd)
	defer done()

	err := app.Run([]string{"escrow", "escrow", "create", "t0101", "lots"})
	require.Error(t, err)
	require.ErrorIs(t, err, &PrintHelpErr{})
}

func TestEscrowDepositUsesFrom(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, EscrowCmd)
	defer done()

	from := mustAddr(address.NewIDAddress(100))
	escrow := mustAddr(address.NewIDAddress(1000))

	// no funds argument: the node attaches the escrow amount
	mockApi.EXPECT().EscrowDeposit(gomock.Any(), from, escrow, types.Coins{}).Return(lookup(exitcode.Ok), nil)

	err := app.Run([]string{"escrow", "escrow", "deposit", "--from", from.String(), escrow.String()})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), testMsgCid.String())
	assert.Contains(t, buf.String(), "(Ok)")
}

func TestEscrowRefundReportsExitCode(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, EscrowCmd)
	defer done()

	from := mustAddr(address.NewIDAddress(100))
	escrow := mustAddr(address.NewIDAddress(1000))

	mockApi.EXPECT().EscrowRefund(gomock.Any(), from, escrow).Return(lookup(actors.ErrNotExpired), nil)

	err := app.Run([]string{"escrow", "escrow", "refund", "--from", from.String(), escrow.String()})
	require.Error(t, err)

	var failed *api.ErrActorFailed
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, failed.Error(), "NotExpired")
	assert.Contains(t, buf.String(), "NotExpired")
}

func TestEscrowConfig(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, EscrowCmd)
	defer done()

	escrow := mustAddr(address.NewIDAddress(1000))
	cfg := &actors.EscrowConfigResponse{
		Buyer:      mustAddr(address.NewIDAddress(100)),
		Seller:     mustAddr(address.NewIDAddress(101)),
		Amount:     types.NewCoin("utoken", 200),
		Expiration: 1_700_003_600,
		Status:     actors.EscrowFunded.String(),
	}

	gomock.InOrder(
		mockApi.EXPECT().EscrowGetConfig(gomock.Any(), escrow).Return(cfg, nil),
		mockApi.EXPECT().ChainHead(gomock.Any()).Return(&store.Head{Height: 9, Timestamp: 1_700_000_000}, nil),
	)

	err := app.Run([]string{"escrow", "escrow", "status", escrow.String()})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Status:     Funded")
	assert.Contains(t, buf.String(), "in 1 hour")
}

func TestEscrowList(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, EscrowCmd)
	defer done()

	escrows := []api.EscrowInfo{
		{Escrow: mustAddr(address.NewIDAddress(1000)), Amount: types.NewCoin("utoken", 1)},
		{Escrow: mustAddr(address.NewIDAddress(1001)), Amount: types.NewCoin("utoken", 2)},
	}
	mockApi.EXPECT().EscrowList(gomock.Any()).Return(escrows, nil)

	err := app.Run([]string{"escrow", "escrow", "list"})
	require.NoError(t, err)
	for _, e := range escrows {
		assert.Contains(t, buf.String(), e.Escrow.String())
	}
}

func TestKVReadMissingKey(t *testing.T) {
	app, mockApi, _, done := newMockAppWithFullAPI(t, KVCmd)
	defer done()

	kv := mustAddr(address.NewIDAddress(1002))
	mockApi.EXPECT().KVRead(gomock.Any(), kv, "color").Return(&actors.KVReadResponse{}, nil)

	err := app.Run([]string{"kv", "kv", "read", kv.String(), "color"})
	require.Error(t, err)
}

func TestKVUpdate(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, KVCmd)
	defer done()

	from := mustAddr(address.NewIDAddress(100))
	kv := mustAddr(address.NewIDAddress(1002))
	mockApi.EXPECT().KVUpdate(gomock.Any(), from, kv, "color", "red").Return(lookup(exitcode.Ok), nil)

	err := app.Run([]string{"kv", "kv", "update", "--from", from.String(), kv.String(), "color", "red"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), testMsgCid.String())
}

func TestFaucetLastClaimNever(t *testing.T) {
	app, mockApi, buf, done := newMockAppWithFullAPI(t, FaucetCmd)
	defer done()

	faucet := mustAddr(address.NewIDAddress(1003))
	who := mustAddr(address.NewIDAddress(100))
	mockApi.EXPECT().FaucetGetLastClaim(gomock.Any(), faucet, who).Return(uint64(0), nil)

	err := app.Run([]string{"faucet", "faucet", "last-claim", faucet.String(), who.String()})
	require.NoError(t, err)
	assert.Equal(t, "never\n", buf.String())
}
