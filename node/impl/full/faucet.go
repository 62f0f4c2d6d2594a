package full

import (
	"context"

	"go.uber.org/fx"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

type FaucetAPI struct {
	fx.In

	Pool  MpoolAPI
	State StateAPI
}

func (a *FaucetAPI) client() actorClient {
	return nodeClient{MpoolAPI: &a.Pool, StateAPI: &a.State}
}

func (a *FaucetAPI) FaucetCreate(ctx context.Context, from address.Address, cooldownHours uint64, amount types.Coin, funds types.Coins) (*api.ActorCreated, error) {
	return createActor(ctx, a.client(), from, actors.FaucetCodeCid, &actors.FaucetConstructorParams{
		CooldownHours: cooldownHours,
		Amount:        amount,
	}, funds)
}

func (a *FaucetAPI) FaucetClaim(ctx context.Context, from, faucet address.Address) (*api.MsgLookup, error) {
	return pushAndWait(ctx, a.client(), &types.Message{
		From:   from,
		To:     faucet,
		Method: actors.FaucetMethods.Claim,
	})
}

func (a *FaucetAPI) FaucetGetConfig(ctx context.Context, faucet address.Address) (*actors.FaucetState, error) {
	var out actors.FaucetState
	if err := callActor(ctx, a.client(), faucet, actors.FaucetMethods.GetConfig, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *FaucetAPI) FaucetGetLastClaim(ctx context.Context, faucet, addr address.Address) (uint64, error) {
	var out actors.FaucetClaim
	err := callActor(ctx, a.client(), faucet, actors.FaucetMethods.GetLastClaim, &actors.FaucetLastClaimParams{
		Address: addr.String(),
	}, &out)
	if err != nil {
		return 0, err
	}
	return out.Timestamp, nil
}
