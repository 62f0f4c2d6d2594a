package vm

import (
	"context"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// TryCreateAccountActor registers an account actor for a key address that
// has never been seen before and returns its new ID address.
func (vm *VM) TryCreateAccountActor(ctx context.Context, origin, addr address.Address, nonce uint64, exec *execution) (address.Address, aerrors.ActorError) {
	if err := checkAccountAddress(addr); err != nil {
		return address.Undef, err
	}

	st := vm.cstate
	id, err := st.RegisterNewAddress(addr)
	if err != nil {
		return address.Undef, aerrors.Escalate(err, "registering actor address")
	}

	if err := st.SetActor(id, &types.Actor{Code: actors.AccountCodeCid}); err != nil {
		return address.Undef, aerrors.Escalate(err, "creating new actor failed")
	}

	p, aerr := actors.SerializeParams(&actors.AccountActorState{Address: addr})
	if aerr != nil {
		return address.Undef, aerrors.Wrap(aerr, "couldn't serialize params for actor construction")
	}

	// call constructor on account
	if _, aerr := vm.internalSend(ctx, origin, actors.SystemAddress, id, actors.MethodConstructor, types.Coins{}, p, nonce, exec); aerr != nil {
		return address.Undef, aerrors.Wrap(aerr, "failed to invoke account constructor")
	}

	log.Debugw("created account actor", "address", addr, "id", id)
	return id, nil
}

func checkAccountAddress(addr address.Address) aerrors.ActorError {
	switch addr.Protocol() {
	case address.BLS, address.SECP256K1:
		return nil
	case address.ID:
		return aerrors.Newf(exitcode.SysErrInvalidReceiver, "no actor with given ID: %s", addr)
	case address.Actor:
		return aerrors.Newf(exitcode.SysErrInvalidReceiver, "no such actor: %s", addr)
	default:
		return aerrors.Newf(exitcode.SysErrInvalidReceiver, "address has unsupported protocol: %d", addr.Protocol())
	}
}
