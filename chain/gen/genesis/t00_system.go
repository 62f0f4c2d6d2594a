package genesis

import (
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

func SetupSystemActor(supply types.Coins) *types.Actor {
	return &types.Actor{
		Code:    actors.SystemCodeCid,
		Balance: supply,
	}
}
