package actors

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// MethodSend moves value without running any actor code.
const MethodSend = abi.MethodNum(0)

// MethodConstructor is invoked exactly once, when an actor is created.
const MethodConstructor = abi.MethodNum(1)

type AccountActor struct{}

type AccountActorState struct {
	Address address.Address
}

func (a AccountActor) Exports() []interface{} {
	return []interface{}{
		1: a.Constructor,
		2: a.PubkeyAddress,
	}
}

type aaMethods struct {
	Constructor   abi.MethodNum
	PubkeyAddress abi.MethodNum
}

var AAMethods = aaMethods{1, 2}

func (a AccountActor) Constructor(act *types.Actor, vmctx types.VMContext, params *AccountActorState) ([]byte, aerrors.ActorError) {
	if vmctx.Message().From != SystemAddress {
		return nil, aerrors.New(exitcode.ErrForbidden, "account actors can only be created by the system")
	}

	if params.Address.Protocol() == address.ID {
		return nil, aerrors.New(exitcode.ErrIllegalArgument, "account actors cannot be created for ID addresses")
	}

	if err := storeState(vmctx, params); err != nil {
		return nil, err
	}

	return nil, nil
}

func (a AccountActor) PubkeyAddress(act *types.Actor, vmctx types.VMContext, params *abi.EmptyValue) ([]byte, aerrors.ActorError) {
	var self AccountActorState
	if err := loadState(vmctx, &self); err != nil {
		return nil, err
	}

	return SerializeParams(&self.Address)
}
