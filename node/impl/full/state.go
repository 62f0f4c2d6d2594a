package full

import (
	"context"
	"errors"

	"github.com/ipfs/go-cid"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/msgindex"
	"github.com/filecoin-project/lotus-escrow/chain/stmgr"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/node/modules/dtypes"
)

type StateAPI struct {
	fx.In

	StateManager *stmgr.StateManager
	Chain        *store.ChainStore
	NetworkName  dtypes.NetworkName
}

func (a *StateAPI) StateNetworkName(ctx context.Context) (string, error) {
	return string(a.NetworkName), nil
}

func (a *StateAPI) StateCall(ctx context.Context, msg *types.Message) (*api.InvocResult, error) {
	ret, err := a.StateManager.Call(ctx, msg)
	if err != nil {
		return nil, err
	}

	var errs string
	if ret.ActorErr != nil {
		errs = ret.ActorErr.Error()
	}

	return &api.InvocResult{
		Msg:      msg,
		MsgRct:   &ret.MessageReceipt,
		Error:    errs,
		Duration: ret.Duration,
	}, nil
}

func (a *StateAPI) StateGetActor(ctx context.Context, actor address.Address) (*types.Actor, error) {
	act, err := a.StateManager.GetActor(ctx, actor)
	if err != nil {
		return nil, actorErr(actor, err)
	}
	return act, nil
}

func (a *StateAPI) StateListActors(ctx context.Context) ([]address.Address, error) {
	return a.StateManager.ListActors(ctx)
}

func (a *StateAPI) StateLookupID(ctx context.Context, addr address.Address) (address.Address, error) {
	id, err := a.StateManager.LookupID(ctx, addr)
	if err != nil {
		return address.Undef, actorErr(addr, err)
	}
	return id, nil
}

func (a *StateAPI) StateAccountKey(ctx context.Context, addr address.Address) (address.Address, error) {
	k, err := a.StateManager.ResolveToKeyAddress(ctx, addr)
	if err != nil {
		return address.Undef, actorErr(addr, err)
	}
	return k, nil
}

func (a *StateAPI) StateWaitMsg(ctx context.Context, msg cid.Cid) (*api.MsgLookup, error) {
	l, err := a.StateManager.WaitForMessage(ctx, msg)
	if err != nil {
		return nil, err
	}
	return toAPILookup(l), nil
}

func (a *StateAPI) StateSearchMsg(ctx context.Context, msg cid.Cid) (*api.MsgLookup, error) {
	l, err := a.StateManager.SearchForMessage(ctx, msg)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}
	return toAPILookup(l), nil
}

func (a *StateAPI) StateListMessages(ctx context.Context, addr address.Address, limit int) ([]msgindex.MsgInfo, error) {
	if limit < 0 {
		return nil, xerrors.Errorf("limit must not be negative, got %d", limit)
	}
	msgs, err := a.StateManager.ListMessages(ctx, addr, limit)
	if err != nil {
		return nil, actorErr(addr, err)
	}
	return msgs, nil
}

func toAPILookup(l *store.MsgLookup) *api.MsgLookup {
	return &api.MsgLookup{
		Message:   l.Message,
		Receipt:   l.Receipt,
		Height:    l.Height,
		Timestamp: l.Timestamp,
	}
}

// actorErr reports missing actors with the registered RPC error type. The
// RPC server matches the outermost error type, so it is returned unwrapped.
func actorErr(addr address.Address, err error) error {
	if errors.Is(err, types.ErrActorNotFound) {
		log.Debugw("actor not found", "address", addr)
		return &api.ErrActorNotFound{}
	}
	return err
}
