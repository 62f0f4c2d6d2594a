package actors

import (
	"math"
	"strconv"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// EscrowActor holds a single payment from a buyer until it is released to
// the seller or, after expiration, refunded to the buyer.
type EscrowActor struct{}

func (ea EscrowActor) Exports() []interface{} {
	return []interface{}{
		1: ea.Constructor,
		2: ea.Deposit,
		3: ea.Release,
		4: ea.Refund,
		5: ea.GetConfig,
	}
}

type escrowMethods struct {
	Constructor abi.MethodNum
	Deposit     abi.MethodNum
	Release     abi.MethodNum
	Refund      abi.MethodNum
	GetConfig   abi.MethodNum
}

var EscrowMethods = escrowMethods{1, 2, 3, 4, 5}

type EscrowConstructorParams struct {
	Seller string
	Amount types.Coin
	// LockTime is the number of seconds after creation at which the
	// escrow expires.
	LockTime uint64
}

type EscrowConfigResponse struct {
	Buyer      address.Address
	Seller     address.Address
	Amount     types.Coin
	Expiration uint64
	Status     string
}

func (ea EscrowActor) Constructor(act *types.Actor, vmctx types.VMContext, params *EscrowConstructorParams) ([]byte, aerrors.ActorError) {
	if vmctx.Message().From != InitAddress {
		return nil, aerrors.New(exitcode.ErrForbidden, "escrow actors can only be created through the init actor")
	}

	if funds := vmctx.Message().Funds; !funds.IsZero() {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "escrow creation does not take funds, got %s", funds)
	}

	seller, err := address.NewFromString(params.Seller)
	if err != nil {
		return nil, aerrors.Absorb(err, ErrInvalidAddress, "invalid seller address")
	}
	if seller == address.Undef {
		return nil, aerrors.New(ErrInvalidAddress, "seller address is empty")
	}
	if aerr := checkPayee(vmctx, seller); aerr != nil {
		return nil, aerr
	}

	if err := params.Amount.Validate(); err != nil {
		return nil, aerrors.Absorb(err, exitcode.ErrIllegalArgument, "invalid escrow amount")
	}
	if !params.Amount.IsPositive() {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "escrow amount must be positive, got %s", params.Amount)
	}

	now := vmctx.Timestamp()
	if params.LockTime > math.MaxUint64-now {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "lock time %d overflows the clock", params.LockTime)
	}

	self := EscrowState{
		Buyer:      vmctx.Origin(),
		Seller:     seller,
		Amount:     params.Amount,
		Expiration: now + params.LockTime,
		Status:     EscrowIdle,
	}

	if err := storeState(vmctx, &self); err != nil {
		return nil, err
	}

	vmctx.EmitEvent(
		attr("method", "instantiate"),
		attr("buyer", self.Buyer.String()),
		attr("seller", self.Seller.String()),
		attr("amount", self.Amount.String()),
		attr("expiration", strconv.FormatUint(self.Expiration, 10)),
	)

	return nil, nil
}

// checkPayee rejects a seller that a release could never pay. Key addresses
// get an account actor on their first transfer, any other address must
// already name an actor.
func checkPayee(vmctx types.VMContext, addr address.Address) aerrors.ActorError {
	switch addr.Protocol() {
	case address.SECP256K1, address.BLS:
		return nil
	case address.ID, address.Actor:
		ok, aerr := vmctx.ActorExists(addr)
		if aerr != nil {
			return aerr
		}
		if !ok {
			return aerrors.Newf(ErrInvalidAddress, "seller %s does not exist", addr)
		}
		return nil
	default:
		return aerrors.Newf(ErrInvalidAddress, "seller %s has unsupported address protocol %d", addr, addr.Protocol())
	}
}

func (ea EscrowActor) Deposit(act *types.Actor, vmctx types.VMContext, params *abi.EmptyValue) ([]byte, aerrors.ActorError) {
	var self EscrowState
	if err := loadState(vmctx, &self); err != nil {
		return nil, err
	}

	funds := vmctx.Message().Funds
	next, err := self.Deposit(vmctx.Message().From, funds)
	if err != nil {
		return nil, err
	}

	if err := storeState(vmctx, &next); err != nil {
		return nil, err
	}

	paid := types.Coin{Denom: next.Amount.Denom, Amount: funds.AmountOf(next.Amount.Denom)}
	vmctx.EmitEvent(
		attr("action", "deposit"),
		attr("amount", paid.String()),
	)

	return nil, nil
}

func (ea EscrowActor) Release(act *types.Actor, vmctx types.VMContext, params *abi.EmptyValue) ([]byte, aerrors.ActorError) {
	return ea.settle(vmctx, "release", EscrowState.Release)
}

func (ea EscrowActor) Refund(act *types.Actor, vmctx types.VMContext, params *abi.EmptyValue) ([]byte, aerrors.ActorError) {
	return ea.settle(vmctx, "refund", EscrowState.Refund)
}

type settleFunc func(st EscrowState, caller address.Address, now uint64) (EscrowState, *Payout, aerrors.ActorError)

func (ea EscrowActor) settle(vmctx types.VMContext, action string, transition settleFunc) ([]byte, aerrors.ActorError) {
	var self EscrowState
	if err := loadState(vmctx, &self); err != nil {
		return nil, err
	}

	next, payout, err := transition(self, vmctx.Message().From, vmctx.Timestamp())
	if err != nil {
		return nil, err
	}

	if err := storeState(vmctx, &next); err != nil {
		return nil, err
	}

	if _, err := vmctx.Send(payout.To, MethodSend, types.NewCoins(payout.Amount), nil); err != nil {
		return nil, aerrors.Wrapf(err, "paying out %s to %s", payout.Amount, payout.To)
	}

	vmctx.EmitEvent(
		attr("action", action),
		attr("to", payout.To.String()),
		attr("amount", payout.Amount.String()),
	)

	return nil, nil
}

func (ea EscrowActor) GetConfig(act *types.Actor, vmctx types.VMContext, params *abi.EmptyValue) ([]byte, aerrors.ActorError) {
	var self EscrowState
	if err := loadState(vmctx, &self); err != nil {
		return nil, err
	}

	return SerializeParams(&EscrowConfigResponse{
		Buyer:      self.Buyer,
		Seller:     self.Seller,
		Amount:     self.Amount,
		Expiration: self.Expiration,
		Status:     self.Status.String(),
	})
}
