package actors_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

func tokens(n uint64) types.Coins {
	return types.NewCoins(types.NewCoin(testDenom, n))
}

func escrowParams(seller *address.Address, amount, lock uint64) func() cbg.CBORMarshaler {
	return func() cbg.CBORMarshaler {
		return &actors.EscrowConstructorParams{
			Seller:   seller.String(),
			Amount:   types.NewCoin(testDenom, amount),
			LockTime: lock,
		}
	}
}

func getEscrowConfig(t *testing.T, h *Harness, from, escrow address.Address) actors.EscrowConfigResponse {
	t.Helper()
	ret, _ := h.Invoke(t, from, escrow, actors.EscrowMethods.GetConfig, nil)
	ApplyOK(t, ret)

	var cfg actors.EscrowConfigResponse
	require.NoError(t, cfg.UnmarshalCBOR(bytes.NewReader(ret.Return)))
	return cfg
}

func TestEscrowCreate(t *testing.T) {
	var buyer, seller address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
	)

	ret, _ := h.CreateActor(t, buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)())
	ApplyOK(t, ret)

	var er actors.ExecReturn
	require.NoError(t, er.UnmarshalCBOR(bytes.NewReader(ret.Return)))
	assert.Equal(t, address.ID, er.IDAddress.Protocol())
	assert.Equal(t, address.Actor, er.RobustAddress.Protocol())
	assert.Empty(t, ret.Transfers, "instantiation moves no funds")

	require.Len(t, ret.Events, 1)
	ev := ret.Events[0]
	assert.Equal(t, er.IDAddress, ev.Emitter)
	for k, v := range map[string]string{
		"method":     "instantiate",
		"buyer":      h.ID(buyer).String(),
		"seller":     seller.String(),
		"amount":     "100token",
		"expiration": "1000100",
	} {
		got, ok := ev.Get(k)
		assert.True(t, ok, k)
		assert.Equal(t, v, got, k)
	}

	cfg := getEscrowConfig(t, h, buyer, er.IDAddress)
	assert.Equal(t, h.ID(buyer), cfg.Buyer)
	assert.Equal(t, seller, cfg.Seller)
	assert.True(t, cfg.Amount.Equals(types.NewCoin(testDenom, 100)))
	assert.Equal(t, uint64(1_000_100), cfg.Expiration)
	assert.Equal(t, "Idle", cfg.Status)

	// the robust address resolves to the same instance
	cfg = getEscrowConfig(t, h, seller, er.RobustAddress)
	assert.Equal(t, "Idle", cfg.Status)
}

func TestEscrowCreateInvalid(t *testing.T) {
	var buyer, seller address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
	)

	create := func(p *actors.EscrowConstructorParams) exitcode.ExitCode {
		ret, _ := h.CreateActor(t, buyer, actors.EscrowCodeCid, p)
		assert.Empty(t, ret.Events)
		return ret.ExitCode
	}

	assert.Equal(t, actors.ErrInvalidAddress, create(&actors.EscrowConstructorParams{
		Seller: "not-an-address", Amount: types.NewCoin(testDenom, 100), LockTime: 10,
	}))
	assert.Equal(t, actors.ErrInvalidAddress, create(&actors.EscrowConstructorParams{
		Seller: "", Amount: types.NewCoin(testDenom, 100), LockTime: 10,
	}))
	assert.Equal(t, exitcode.ErrIllegalArgument, create(&actors.EscrowConstructorParams{
		Seller: seller.String(), Amount: types.NewCoin(testDenom, 0), LockTime: 10,
	}))
	assert.Equal(t, exitcode.ErrIllegalArgument, create(&actors.EscrowConstructorParams{
		Seller: seller.String(), Amount: types.NewCoin("x", 10), LockTime: 10,
	}))
	assert.Equal(t, exitcode.ErrIllegalArgument, create(&actors.EscrowConstructorParams{
		Seller: seller.String(), Amount: types.NewCoin(testDenom, 10), LockTime: math.MaxUint64,
	}))

	// failed creations leave no actors behind
	ids, err := h.st.ListActors(h.ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 4, "system, init and two accounts")
}

func TestEscrowConstructorIsInitOnly(t *testing.T) {
	var buyer, seller, escrow address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)

	ret, _ := h.Invoke(t, buyer, escrow, actors.EscrowMethods.Constructor, escrowParams(&seller, 1, 1)())
	ApplyFails(t, ret, exitcode.ErrForbidden)
}

func TestEscrowCreateRejectsFunds(t *testing.T) {
	var buyer, seller address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
	)

	ret, _ := h.CreateActorWithValue(t, buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)(), tokens(70))
	ApplyFails(t, ret, exitcode.ErrIllegalArgument)
	assert.Equal(t, types.NewInt(1000), h.Balance(t, buyer))
}

func TestEscrowCreateUnpayableSeller(t *testing.T) {
	var buyer, seller address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
	)

	missingID, err := address.NewIDAddress(999)
	require.NoError(t, err)
	missingActor, err := address.NewActorAddress([]byte("no such escrow"))
	require.NoError(t, err)
	delegated, err := address.NewDelegatedAddress(10, []byte("eth"))
	require.NoError(t, err)

	for _, s := range []address.Address{missingID, missingActor, delegated} {
		ret, _ := h.CreateActor(t, buyer, actors.EscrowCodeCid, escrowParams(&s, 100, 100)())
		ApplyFails(t, ret, actors.ErrInvalidAddress)
	}

	// an existing actor can be named by its ID address
	sellerID := h.ID(seller)
	ret, _ := h.CreateActor(t, buyer, actors.EscrowCodeCid, escrowParams(&sellerID, 100, 100)())
	ApplyOK(t, ret)

	var er actors.ExecReturn
	require.NoError(t, er.UnmarshalCBOR(bytes.NewReader(ret.Return)))

	ret, _ = h.InvokeWithValue(t, buyer, er.IDAddress, actors.EscrowMethods.Deposit, tokens(100), nil)
	ApplyOK(t, ret)
	ret, _ = h.Invoke(t, buyer, er.IDAddress, actors.EscrowMethods.Release, nil)
	ApplyOK(t, ret)
	assert.Equal(t, types.NewInt(100), h.Balance(t, seller))
}

// instantiate, deposit, release before expiry
func TestEscrowRelease(t *testing.T) {
	var buyer, seller, escrow address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)
	assert.Equal(t, "Idle", getEscrowConfig(t, h, buyer, escrow).Status)

	ret, _ := h.InvokeWithValue(t, buyer, escrow, actors.EscrowMethods.Deposit, tokens(100), nil)
	ApplyOK(t, ret)
	require.Len(t, ret.Events, 1)
	action, _ := ret.Events[0].Get("action")
	assert.Equal(t, "deposit", action)
	assert.Equal(t, "Funded", getEscrowConfig(t, h, buyer, escrow).Status)
	assert.Equal(t, types.NewInt(100), h.Balance(t, escrow))
	assert.Equal(t, types.NewInt(900), h.Balance(t, buyer))

	h.Advance(99)
	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Release, nil)
	ApplyOK(t, ret)

	require.Len(t, ret.Transfers, 1)
	tr := ret.Transfers[0]
	assert.Equal(t, escrow, tr.From)
	assert.Equal(t, h.ID(seller), tr.To)
	assert.True(t, tr.Amount.IsAllGTE(tokens(100)) && tokens(100).IsAllGTE(tr.Amount))

	require.Len(t, ret.Events, 1)
	to, _ := ret.Events[0].Get("to")
	assert.Equal(t, seller.String(), to)

	assert.Equal(t, "Released", getEscrowConfig(t, h, buyer, escrow).Status)
	assert.Equal(t, types.NewInt(100), h.Balance(t, seller))
	assert.Equal(t, types.NewInt(0), h.Balance(t, escrow))
}

// refund is rejected until the escrow expires
func TestEscrowRefund(t *testing.T) {
	var buyer, seller, escrow address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)

	ret, _ := h.InvokeWithValue(t, buyer, escrow, actors.EscrowMethods.Deposit, tokens(100), nil)
	ApplyOK(t, ret)

	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Refund, nil)
	ApplyFails(t, ret, actors.ErrNotExpired)
	assert.Equal(t, "Funded", getEscrowConfig(t, h, buyer, escrow).Status)

	h.Advance(200)
	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Refund, nil)
	ApplyOK(t, ret)

	require.Len(t, ret.Transfers, 1)
	assert.Equal(t, h.ID(buyer), ret.Transfers[0].To)
	assert.Equal(t, types.NewInt(100), ret.Transfers[0].Amount.AmountOf(testDenom))

	assert.Equal(t, "Refunded", getEscrowConfig(t, h, buyer, escrow).Status)
	assert.Equal(t, types.NewInt(1000), h.Balance(t, buyer))
	assert.Equal(t, types.NewInt(0), h.Balance(t, seller))
}

func TestEscrowExpirationBoundary(t *testing.T) {
	var buyer, seller, escrow address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)

	ret, _ := h.InvokeWithValue(t, buyer, escrow, actors.EscrowMethods.Deposit, tokens(100), nil)
	ApplyOK(t, ret)

	h.Advance(100)
	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Release, nil)
	ApplyFails(t, ret, actors.ErrExpired)

	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Refund, nil)
	ApplyOK(t, ret)
}

func TestEscrowDepositShort(t *testing.T) {
	var buyer, seller, escrow address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)

	ret, _ := h.InvokeWithValue(t, buyer, escrow, actors.EscrowMethods.Deposit, tokens(50), nil)
	ApplyFails(t, ret, actors.ErrInsufficientFunds)

	assert.Equal(t, "Idle", getEscrowConfig(t, h, buyer, escrow).Status)
	assert.Equal(t, types.NewInt(1000), h.Balance(t, buyer), "attached funds are returned with the failure")
	assert.Equal(t, types.NewInt(0), h.Balance(t, escrow))
}

func TestEscrowDepositWrongCaller(t *testing.T) {
	var buyer, seller, outsider, escrow address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
		HarnessAddr(&outsider, 1000),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)

	ret, _ := h.InvokeWithValue(t, outsider, escrow, actors.EscrowMethods.Deposit, tokens(100), nil)
	ApplyFails(t, ret, actors.ErrUnauthorized)
	assert.Equal(t, "Idle", getEscrowConfig(t, h, buyer, escrow).Status)

	ret, _ = h.Invoke(t, outsider, escrow, actors.EscrowMethods.Release, nil)
	ApplyFails(t, ret, actors.ErrUnauthorized)
}

func TestEscrowExcessDepositRetained(t *testing.T) {
	var buyer, seller, escrow address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)

	ret, _ := h.InvokeWithValue(t, buyer, escrow, actors.EscrowMethods.Deposit, tokens(150), nil)
	ApplyOK(t, ret)
	amount, _ := ret.Events[0].Get("amount")
	assert.Equal(t, "150token", amount)

	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Release, nil)
	ApplyOK(t, ret)

	assert.Equal(t, types.NewInt(100), h.Balance(t, seller))
	assert.Equal(t, types.NewInt(50), h.Balance(t, escrow))
}

func TestEscrowTerminalRejections(t *testing.T) {
	var buyer, seller, escrow address.Address
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessAddr(&seller, 0),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)

	ret, _ := h.InvokeWithValue(t, buyer, escrow, actors.EscrowMethods.Deposit, tokens(100), nil)
	ApplyOK(t, ret)
	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Release, nil)
	ApplyOK(t, ret)

	ret, _ = h.InvokeWithValue(t, buyer, escrow, actors.EscrowMethods.Deposit, tokens(100), nil)
	ApplyFails(t, ret, actors.ErrAlreadyFunded)
	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Release, nil)
	ApplyFails(t, ret, actors.ErrNotFunded)

	h.Advance(1000)
	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Refund, nil)
	ApplyFails(t, ret, actors.ErrNotFunded)

	assert.Equal(t, "Released", getEscrowConfig(t, h, buyer, escrow).Status)
	assert.Equal(t, types.NewInt(100), h.Balance(t, seller))
	assert.Equal(t, types.NewInt(900), h.Balance(t, buyer))
}

func TestEscrowSellerCreatedOnPayout(t *testing.T) {
	var buyer, escrow address.Address
	seller := newKeyAddress(t)
	h := NewHarness(t,
		HarnessAddr(&buyer, 1000),
		HarnessActor(&escrow, &buyer, actors.EscrowCodeCid, escrowParams(&seller, 100, 100)),
	)

	_, err := h.st.LookupID(seller)
	require.Error(t, err, "seller has never been seen")

	ret, _ := h.InvokeWithValue(t, buyer, escrow, actors.EscrowMethods.Deposit, tokens(100), nil)
	ApplyOK(t, ret)
	ret, _ = h.Invoke(t, buyer, escrow, actors.EscrowMethods.Release, nil)
	ApplyOK(t, ret)

	act, err := h.st.GetActor(seller)
	require.NoError(t, err)
	assert.Equal(t, actors.AccountCodeCid, act.Code)
	assert.Equal(t, types.NewInt(100), act.Balance.AmountOf(testDenom))
}
