package modules

import (
	"go.uber.org/fx"

	"github.com/filecoin-project/lotus-escrow/escrowmgr"
	"github.com/filecoin-project/lotus-escrow/node/impl/full"
	"github.com/filecoin-project/lotus-escrow/node/modules/dtypes"
)

func NewEscrowStore(ds dtypes.MetadataDS) *escrowmgr.Store {
	return escrowmgr.NewStore(ds)
}

type EscrowManagerAPI struct {
	fx.In

	full.MpoolAPI
	full.StateAPI
}

func NewEscrowManager(api EscrowManagerAPI, store *escrowmgr.Store) *escrowmgr.Manager {
	return escrowmgr.NewManager(store, &api)
}
