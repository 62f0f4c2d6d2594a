package actors

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// KVStoreActor keeps string values under string keys.
type KVStoreActor struct{}

func (kva KVStoreActor) Exports() []interface{} {
	return []interface{}{
		1: kva.Constructor,
		2: kva.Create,
		3: kva.Update,
		4: kva.Delete,
		5: kva.Read,
	}
}

type kvMethods struct {
	Constructor abi.MethodNum
	Create      abi.MethodNum
	Update      abi.MethodNum
	Delete      abi.MethodNum
	Read        abi.MethodNum
}

var KVMethods = kvMethods{1, 2, 3, 4, 5}

type KVEntry struct {
	Value  string
	Writer address.Address
}

type KVSetParams struct {
	Key   string
	Value string
}

type KVKeyParams struct {
	Key string
}

type KVReadResponse struct {
	Found  bool
	Value  string
	Writer string
}

func entryKey(k string) string {
	return "entry/" + k
}

func checkKey(k string) aerrors.ActorError {
	if k == "" {
		return aerrors.New(exitcode.ErrIllegalArgument, "key must not be empty")
	}
	if len(k) > build.MaxStorageKeyLength {
		return aerrors.Newf(exitcode.ErrIllegalArgument, "key too long (%d > %d)", len(k), build.MaxStorageKeyLength)
	}
	return nil
}

func (kva KVStoreActor) Constructor(act *types.Actor, vmctx types.VMContext, params *abi.EmptyValue) ([]byte, aerrors.ActorError) {
	if vmctx.Message().From != InitAddress {
		return nil, aerrors.New(exitcode.ErrForbidden, "kvstore actors can only be created through the init actor")
	}

	vmctx.EmitEvent(attr("method", "instantiate"))
	return nil, nil
}

func (kva KVStoreActor) Create(act *types.Actor, vmctx types.VMContext, params *KVSetParams) ([]byte, aerrors.ActorError) {
	return kva.set(vmctx, "create", params, false)
}

func (kva KVStoreActor) Update(act *types.Actor, vmctx types.VMContext, params *KVSetParams) ([]byte, aerrors.ActorError) {
	return kva.set(vmctx, "update", params, true)
}

func (kva KVStoreActor) set(vmctx types.VMContext, action string, params *KVSetParams, mustExist bool) ([]byte, aerrors.ActorError) {
	if err := checkKey(params.Key); err != nil {
		return nil, err
	}
	if len(params.Value) > build.MaxStorageValueLength {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "value too long (%d > %d)", len(params.Value), build.MaxStorageValueLength)
	}

	has, err := vmctx.Storage().Has(entryKey(params.Key))
	if err != nil {
		return nil, err
	}

	switch {
	case has && !mustExist:
		return nil, aerrors.Newf(ErrKeyAlreadyExists, "key %q already exists", params.Key)
	case !has && mustExist:
		return nil, aerrors.Newf(ErrKeyNotFound, "key %q not found", params.Key)
	}

	entry := &KVEntry{
		Value:  params.Value,
		Writer: vmctx.Message().From,
	}
	if err := vmctx.Storage().Put(entryKey(params.Key), entry); err != nil {
		return nil, err
	}

	vmctx.EmitEvent(
		attr("action", action),
		attr("key", params.Key),
		attr("value", params.Value),
	)

	return nil, nil
}

func (kva KVStoreActor) Delete(act *types.Actor, vmctx types.VMContext, params *KVKeyParams) ([]byte, aerrors.ActorError) {
	if err := checkKey(params.Key); err != nil {
		return nil, err
	}

	has, err := vmctx.Storage().Has(entryKey(params.Key))
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, aerrors.Newf(ErrKeyNotFound, "key %q not found", params.Key)
	}

	if err := vmctx.Storage().Delete(entryKey(params.Key)); err != nil {
		return nil, err
	}

	vmctx.EmitEvent(
		attr("action", "delete"),
		attr("key", params.Key),
	)

	return nil, nil
}

func (kva KVStoreActor) Read(act *types.Actor, vmctx types.VMContext, params *KVKeyParams) ([]byte, aerrors.ActorError) {
	if err := checkKey(params.Key); err != nil {
		return nil, err
	}

	var entry KVEntry
	found, err := vmctx.Storage().Get(entryKey(params.Key), &entry)
	if err != nil {
		return nil, err
	}

	out := KVReadResponse{Found: found}
	if found {
		out.Value = entry.Value
		out.Writer = entry.Writer.String()
	}

	return SerializeParams(&out)
}
