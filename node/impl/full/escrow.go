package full

import (
	"context"

	"go.uber.org/fx"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/escrowmgr"
)

type EscrowAPI struct {
	fx.In

	EscrowMgr *escrowmgr.Manager
}

func (a *EscrowAPI) EscrowCreate(ctx context.Context, from, seller address.Address, amount types.Coin, lockTime uint64) (*api.ActorCreated, error) {
	return a.EscrowMgr.Create(ctx, from, seller, amount, lockTime)
}

func (a *EscrowAPI) EscrowDeposit(ctx context.Context, from, escrow address.Address, funds types.Coins) (*api.MsgLookup, error) {
	return a.EscrowMgr.Deposit(ctx, from, escrow, funds)
}

func (a *EscrowAPI) EscrowRelease(ctx context.Context, from, escrow address.Address) (*api.MsgLookup, error) {
	return a.EscrowMgr.Release(ctx, from, escrow)
}

func (a *EscrowAPI) EscrowRefund(ctx context.Context, from, escrow address.Address) (*api.MsgLookup, error) {
	return a.EscrowMgr.Refund(ctx, from, escrow)
}

func (a *EscrowAPI) EscrowGetConfig(ctx context.Context, escrow address.Address) (*actors.EscrowConfigResponse, error) {
	return a.EscrowMgr.GetConfig(ctx, escrow)
}

func (a *EscrowAPI) EscrowList(ctx context.Context) ([]api.EscrowInfo, error) {
	return a.EscrowMgr.List(ctx)
}
