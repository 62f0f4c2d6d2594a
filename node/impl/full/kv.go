package full

import (
	"context"

	cbg "github.com/whyrusleeping/cbor-gen"
	"go.uber.org/fx"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

type KVAPI struct {
	fx.In

	Pool  MpoolAPI
	State StateAPI
}

func (a *KVAPI) client() actorClient {
	return nodeClient{MpoolAPI: &a.Pool, StateAPI: &a.State}
}

func (a *KVAPI) KVStoreCreate(ctx context.Context, from address.Address) (*api.ActorCreated, error) {
	return createActor(ctx, a.client(), from, actors.KVStoreCodeCid, nil, nil)
}

func (a *KVAPI) KVCreate(ctx context.Context, from, kv address.Address, key, value string) (*api.MsgLookup, error) {
	return a.write(ctx, from, kv, actors.KVMethods.Create, &actors.KVSetParams{Key: key, Value: value})
}

func (a *KVAPI) KVUpdate(ctx context.Context, from, kv address.Address, key, value string) (*api.MsgLookup, error) {
	return a.write(ctx, from, kv, actors.KVMethods.Update, &actors.KVSetParams{Key: key, Value: value})
}

func (a *KVAPI) KVDelete(ctx context.Context, from, kv address.Address, key string) (*api.MsgLookup, error) {
	return a.write(ctx, from, kv, actors.KVMethods.Delete, &actors.KVKeyParams{Key: key})
}

func (a *KVAPI) KVRead(ctx context.Context, kv address.Address, key string) (*actors.KVReadResponse, error) {
	var out actors.KVReadResponse
	if err := callActor(ctx, a.client(), kv, actors.KVMethods.Read, &actors.KVKeyParams{Key: key}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *KVAPI) write(ctx context.Context, from, kv address.Address, method abi.MethodNum, params cbg.CBORMarshaler) (*api.MsgLookup, error) {
	enc, err := serialize(params)
	if err != nil {
		return nil, err
	}
	return pushAndWait(ctx, a.client(), &types.Message{
		From:   from,
		To:     kv,
		Method: method,
		Params: enc,
	})
}
