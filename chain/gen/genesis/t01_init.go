package genesis

import (
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// SetupInitActor returns the init actor. The next free ID lives in the state
// tree itself, so the actor carries no state of its own.
func SetupInitActor() *types.Actor {
	return &types.Actor{
		Code: actors.InitCodeCid,
	}
}
