package actors

import (
	"fmt"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

type EscrowStatus uint64

const (
	EscrowIdle EscrowStatus = iota
	EscrowFunded
	EscrowReleased
	EscrowRefunded
)

func (s EscrowStatus) String() string {
	switch s {
	case EscrowIdle:
		return "Idle"
	case EscrowFunded:
		return "Funded"
	case EscrowReleased:
		return "Released"
	case EscrowRefunded:
		return "Refunded"
	default:
		return fmt.Sprintf("EscrowStatus(%d)", uint64(s))
	}
}

// Terminal reports whether no further transition is possible.
func (s EscrowStatus) Terminal() bool {
	return s == EscrowReleased || s == EscrowRefunded
}

type EscrowState struct {
	Buyer  address.Address
	Seller address.Address

	// Amount is the exact funding required, fixed at creation.
	Amount types.Coin

	// Expiration is an absolute timestamp in seconds. Release is possible
	// strictly before it, refund from it onwards.
	Expiration uint64

	Status EscrowStatus
}

// Payout is the value transfer produced by a settling transition.
type Payout struct {
	To     address.Address
	Amount types.Coin
}

// Deposit moves an Idle escrow to Funded. Checks run in a fixed order:
// status, caller, then attached funds.
func (st EscrowState) Deposit(caller address.Address, funds types.Coins) (EscrowState, aerrors.ActorError) {
	switch st.Status {
	case EscrowIdle:
	case EscrowFunded, EscrowReleased, EscrowRefunded:
		return st, aerrors.Newf(ErrAlreadyFunded, "escrow is already %s", st.Status)
	default:
		return st, aerrors.Newf(exitcode.ErrIllegalState, "unknown escrow status %d", uint64(st.Status))
	}

	if caller != st.Buyer {
		return st, aerrors.Newf(ErrUnauthorized, "only the buyer (%s) can deposit, caller was %s", st.Buyer, caller)
	}

	// Any surplus of the escrow denomination stays with the escrow.
	paid := funds.AmountOf(st.Amount.Denom)
	if paid.LessThan(st.Amount.Amount) {
		return st, aerrors.Newf(ErrInsufficientFunds, "deposit of %s%s is less than the required %s", paid, st.Amount.Denom, st.Amount)
	}

	st.Status = EscrowFunded
	return st, nil
}

// Release pays the seller. Checks run in a fixed order: caller, status, clock.
func (st EscrowState) Release(caller address.Address, now uint64) (EscrowState, *Payout, aerrors.ActorError) {
	if err := st.checkSettle(caller); err != nil {
		return st, nil, err
	}

	if now >= st.Expiration {
		return st, nil, aerrors.Newf(ErrExpired, "escrow expired at %d (now %d), only refund is possible", st.Expiration, now)
	}

	st.Status = EscrowReleased
	return st, &Payout{To: st.Seller, Amount: st.Amount}, nil
}

// Refund returns the funds to the buyer once the escrow has expired. Checks
// run in a fixed order: caller, status, clock.
func (st EscrowState) Refund(caller address.Address, now uint64) (EscrowState, *Payout, aerrors.ActorError) {
	if err := st.checkSettle(caller); err != nil {
		return st, nil, err
	}

	if now < st.Expiration {
		return st, nil, aerrors.Newf(ErrNotExpired, "escrow expires at %d, %d seconds remaining", st.Expiration, st.Expiration-now)
	}

	st.Status = EscrowRefunded
	return st, &Payout{To: st.Buyer, Amount: st.Amount}, nil
}

func (st EscrowState) checkSettle(caller address.Address) aerrors.ActorError {
	if caller != st.Buyer {
		return aerrors.Newf(ErrUnauthorized, "only the buyer (%s) can settle, caller was %s", st.Buyer, caller)
	}

	switch st.Status {
	case EscrowFunded:
		return nil
	case EscrowIdle, EscrowReleased, EscrowRefunded:
		return aerrors.Newf(ErrNotFunded, "escrow is %s, not Funded", st.Status)
	default:
		return aerrors.Newf(exitcode.ErrIllegalState, "unknown escrow status %d", uint64(st.Status))
	}
}
