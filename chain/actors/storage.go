package actors

import (
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// StateKey is the storage slot holding an actor's singleton record.
const StateKey = "state"

func loadState(vmctx types.VMContext, out cbg.CBORUnmarshaler) aerrors.ActorError {
	found, err := vmctx.Storage().Get(StateKey, out)
	if err != nil {
		return aerrors.Wrap(err, "loading actor state")
	}
	if !found {
		return aerrors.New(exitcode.ErrIllegalState, "actor state not found")
	}
	return nil
}

func storeState(vmctx types.VMContext, st cbg.CBORMarshaler) aerrors.ActorError {
	if err := vmctx.Storage().Put(StateKey, st); err != nil {
		return aerrors.Wrap(err, "storing actor state")
	}
	return nil
}

func attr(k, v string) types.EventAttribute {
	return types.EventAttribute{Key: k, Value: v}
}
