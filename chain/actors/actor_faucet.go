package actors

import (
	"math"
	"strconv"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// FaucetActor dispenses a fixed amount to any caller, at most once per
// cooldown period per caller.
type FaucetActor struct{}

func (fa FaucetActor) Exports() []interface{} {
	return []interface{}{
		1: fa.Constructor,
		2: fa.Claim,
		3: fa.GetConfig,
		4: fa.GetLastClaim,
	}
}

type faucetMethods struct {
	Constructor  abi.MethodNum
	Claim        abi.MethodNum
	GetConfig    abi.MethodNum
	GetLastClaim abi.MethodNum
}

var FaucetMethods = faucetMethods{1, 2, 3, 4}

type FaucetConstructorParams struct {
	CooldownHours uint64
	Amount        types.Coin
}

type FaucetState struct {
	CooldownSeconds uint64
	Amount          types.Coin
}

type FaucetClaim struct {
	Timestamp uint64
}

type FaucetLastClaimParams struct {
	Address string
}

func claimKey(addr address.Address) string {
	return "claims/" + addr.String()
}

func (fa FaucetActor) Constructor(act *types.Actor, vmctx types.VMContext, params *FaucetConstructorParams) ([]byte, aerrors.ActorError) {
	if vmctx.Message().From != InitAddress {
		return nil, aerrors.New(exitcode.ErrForbidden, "faucet actors can only be created through the init actor")
	}

	if params.CooldownHours > math.MaxUint64/build.SecondsInHour {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "cooldown of %d hours is too long", params.CooldownHours)
	}

	if err := params.Amount.Validate(); err != nil {
		return nil, aerrors.Absorb(err, exitcode.ErrIllegalArgument, "invalid faucet amount")
	}
	if !params.Amount.IsPositive() {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "faucet amount must be positive, got %s", params.Amount)
	}

	self := FaucetState{
		CooldownSeconds: params.CooldownHours * build.SecondsInHour,
		Amount:          params.Amount,
	}

	if err := storeState(vmctx, &self); err != nil {
		return nil, err
	}

	vmctx.EmitEvent(
		attr("method", "instantiate"),
		attr("cooldown_seconds", strconv.FormatUint(self.CooldownSeconds, 10)),
		attr("amount", self.Amount.String()),
	)

	return nil, nil
}

func (fa FaucetActor) Claim(act *types.Actor, vmctx types.VMContext, params *abi.EmptyValue) ([]byte, aerrors.ActorError) {
	var self FaucetState
	if err := loadState(vmctx, &self); err != nil {
		return nil, err
	}

	caller := vmctx.Message().From
	now := vmctx.Timestamp()

	var last FaucetClaim
	found, err := vmctx.Storage().Get(claimKey(caller), &last)
	if err != nil {
		return nil, aerrors.Wrap(err, "loading last claim")
	}

	if found {
		readyAt := uint64(math.MaxUint64)
		if self.CooldownSeconds <= math.MaxUint64-last.Timestamp {
			readyAt = last.Timestamp + self.CooldownSeconds
		}
		if now < readyAt {
			return nil, aerrors.Newf(ErrClaimCooldownNotExpired, "claim cooldown not expired, %d seconds remaining", readyAt-now)
		}
	}

	if err := vmctx.Storage().Put(claimKey(caller), &FaucetClaim{Timestamp: now}); err != nil {
		return nil, aerrors.Wrap(err, "storing claim")
	}

	if _, err := vmctx.Send(caller, MethodSend, types.NewCoins(self.Amount), nil); err != nil {
		return nil, aerrors.Wrapf(err, "sending %s to %s", self.Amount, caller)
	}

	vmctx.EmitEvent(
		attr("action", "claim"),
		attr("sender", caller.String()),
		attr("timestamp", strconv.FormatUint(now, 10)),
	)

	return nil, nil
}

func (fa FaucetActor) GetConfig(act *types.Actor, vmctx types.VMContext, params *abi.EmptyValue) ([]byte, aerrors.ActorError) {
	var self FaucetState
	if err := loadState(vmctx, &self); err != nil {
		return nil, err
	}

	return SerializeParams(&self)
}

// GetLastClaim returns the timestamp of the last claim by an address, or 0
// if it never claimed.
func (fa FaucetActor) GetLastClaim(act *types.Actor, vmctx types.VMContext, params *FaucetLastClaimParams) ([]byte, aerrors.ActorError) {
	addr, err := address.NewFromString(params.Address)
	if err != nil {
		return nil, aerrors.Absorb(err, ErrInvalidAddress, "invalid address")
	}

	var out FaucetClaim

	id, err := vmctx.LookupID(addr)
	switch {
	case xerrors.Is(err, types.ErrActorNotFound):
		// unknown addresses have never claimed
		return SerializeParams(&out)
	case err != nil:
		return nil, aerrors.Escalate(err, "resolving address")
	}

	if _, aerr := vmctx.Storage().Get(claimKey(id), &out); aerr != nil {
		return nil, aerrors.Wrap(aerr, "loading last claim")
	}

	return SerializeParams(&out)
}
