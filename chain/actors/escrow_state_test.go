package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

func testEscrow(t *testing.T) (EscrowState, address.Address, address.Address, address.Address) {
	buyer, err := address.NewIDAddress(100)
	require.NoError(t, err)
	seller, err := address.NewIDAddress(101)
	require.NoError(t, err)
	other, err := address.NewIDAddress(102)
	require.NoError(t, err)

	return EscrowState{
		Buyer:      buyer,
		Seller:     seller,
		Amount:     types.NewCoin("token", 100),
		Expiration: 1100,
		Status:     EscrowIdle,
	}, buyer, seller, other
}

func TestEscrowDeposit(t *testing.T) {
	st, buyer, _, other := testEscrow(t)

	t.Run("exact", func(t *testing.T) {
		next, err := st.Deposit(buyer, types.NewCoins(types.NewCoin("token", 100)))
		require.Nil(t, err)
		assert.Equal(t, EscrowFunded, next.Status)
		assert.Equal(t, EscrowIdle, st.Status, "receiver must not be mutated")
	})

	t.Run("excess is accepted", func(t *testing.T) {
		next, err := st.Deposit(buyer, types.NewCoins(types.NewCoin("token", 150), types.NewCoin("other", 1)))
		require.Nil(t, err)
		assert.Equal(t, EscrowFunded, next.Status)
	})

	t.Run("short", func(t *testing.T) {
		next, err := st.Deposit(buyer, types.NewCoins(types.NewCoin("token", 50)))
		assert.Equal(t, ErrInsufficientFunds, aerrors.RetCode(err))
		assert.Equal(t, EscrowIdle, next.Status)
	})

	t.Run("wrong denom", func(t *testing.T) {
		_, err := st.Deposit(buyer, types.NewCoins(types.NewCoin("stake", 1000)))
		assert.Equal(t, ErrInsufficientFunds, aerrors.RetCode(err))
	})

	t.Run("no funds", func(t *testing.T) {
		_, err := st.Deposit(buyer, nil)
		assert.Equal(t, ErrInsufficientFunds, aerrors.RetCode(err))
	})

	t.Run("wrong caller", func(t *testing.T) {
		_, err := st.Deposit(other, types.NewCoins(types.NewCoin("token", 100)))
		assert.Equal(t, ErrUnauthorized, aerrors.RetCode(err))
	})

	t.Run("status is checked before caller", func(t *testing.T) {
		funded := st
		funded.Status = EscrowFunded
		_, err := funded.Deposit(other, nil)
		assert.Equal(t, ErrAlreadyFunded, aerrors.RetCode(err))
	})

	t.Run("caller is checked before funds", func(t *testing.T) {
		_, err := st.Deposit(other, nil)
		assert.Equal(t, ErrUnauthorized, aerrors.RetCode(err))
	})
}

func TestEscrowRelease(t *testing.T) {
	st, buyer, seller, other := testEscrow(t)
	st.Status = EscrowFunded

	next, payout, err := st.Release(buyer, 1099)
	require.Nil(t, err)
	assert.Equal(t, EscrowReleased, next.Status)
	require.NotNil(t, payout)
	assert.Equal(t, seller, payout.To)
	assert.True(t, payout.Amount.Equals(st.Amount))

	_, payout, err = st.Release(buyer, 1100)
	assert.Equal(t, ErrExpired, aerrors.RetCode(err))
	assert.Nil(t, payout)

	_, _, err = st.Release(seller, 1000)
	assert.Equal(t, ErrUnauthorized, aerrors.RetCode(err), "only the buyer may release")

	_, _, err = st.Release(other, 1000)
	assert.Equal(t, ErrUnauthorized, aerrors.RetCode(err))
}

func TestEscrowRefund(t *testing.T) {
	st, buyer, seller, _ := testEscrow(t)
	st.Status = EscrowFunded

	_, payout, err := st.Refund(buyer, 1099)
	assert.Equal(t, ErrNotExpired, aerrors.RetCode(err))
	assert.Nil(t, payout)

	next, payout, err := st.Refund(buyer, 1100)
	require.Nil(t, err)
	assert.Equal(t, EscrowRefunded, next.Status)
	require.NotNil(t, payout)
	assert.Equal(t, buyer, payout.To)
	assert.True(t, payout.Amount.Equals(st.Amount))

	_, _, err = st.Refund(seller, 5000)
	assert.Equal(t, ErrUnauthorized, aerrors.RetCode(err), "only the buyer may refund")
}

func TestEscrowSettleCheckOrder(t *testing.T) {
	st, buyer, _, other := testEscrow(t)

	// caller before status
	_, _, err := st.Release(other, 0)
	assert.Equal(t, ErrUnauthorized, aerrors.RetCode(err))
	_, _, err = st.Refund(other, 5000)
	assert.Equal(t, ErrUnauthorized, aerrors.RetCode(err))

	// status before clock
	_, _, err = st.Release(buyer, 5000)
	assert.Equal(t, ErrNotFunded, aerrors.RetCode(err))
	_, _, err = st.Refund(buyer, 0)
	assert.Equal(t, ErrNotFunded, aerrors.RetCode(err))
}

func TestEscrowTerminalStates(t *testing.T) {
	st, buyer, _, _ := testEscrow(t)

	for _, status := range []EscrowStatus{EscrowReleased, EscrowRefunded} {
		t.Run(status.String(), func(t *testing.T) {
			term := st
			term.Status = status
			require.True(t, status.Terminal())

			next, err := term.Deposit(buyer, types.NewCoins(types.NewCoin("token", 100)))
			assert.Equal(t, ErrAlreadyFunded, aerrors.RetCode(err))
			assert.Equal(t, status, next.Status)

			for _, now := range []uint64{0, 1099, 1100, 1 << 40} {
				next, payout, err := term.Release(buyer, now)
				assert.Equal(t, ErrNotFunded, aerrors.RetCode(err))
				assert.Nil(t, payout)
				assert.Equal(t, status, next.Status)

				next, payout, err = term.Refund(buyer, now)
				assert.Equal(t, ErrNotFunded, aerrors.RetCode(err))
				assert.Nil(t, payout)
				assert.Equal(t, status, next.Status)
			}
		})
	}
}

func TestEscrowSettlesOnce(t *testing.T) {
	st, buyer, _, _ := testEscrow(t)
	st, err := st.Deposit(buyer, types.NewCoins(types.NewCoin("token", 100)))
	require.Nil(t, err)

	// whichever settlement happens first, the other can never follow
	for _, now := range []uint64{0, 1099, 1100, 2000} {
		var payouts int
		cur := st
		for _, step := range []func(EscrowState) (EscrowState, *Payout, aerrors.ActorError){
			func(s EscrowState) (EscrowState, *Payout, aerrors.ActorError) { return s.Release(buyer, now) },
			func(s EscrowState) (EscrowState, *Payout, aerrors.ActorError) { return s.Refund(buyer, now) },
			func(s EscrowState) (EscrowState, *Payout, aerrors.ActorError) { return s.Refund(buyer, now+10000) },
			func(s EscrowState) (EscrowState, *Payout, aerrors.ActorError) { return s.Release(buyer, 0) },
		} {
			next, _, err := step(cur)
			if err == nil {
				payouts++
				cur = next
			}
		}
		assert.Equal(t, 1, payouts, "now=%d", now)
		assert.True(t, cur.Status.Terminal())
	}
}

func TestEscrowUnknownStatus(t *testing.T) {
	st, buyer, _, _ := testEscrow(t)
	st.Status = EscrowStatus(9)

	_, err := st.Deposit(buyer, nil)
	assert.Equal(t, exitcode.ErrIllegalState, aerrors.RetCode(err))
	_, _, err = st.Release(buyer, 0)
	assert.Equal(t, exitcode.ErrIllegalState, aerrors.RetCode(err))
	assert.Equal(t, "EscrowStatus(9)", st.Status.String())
}
