package impl

import (
	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/node/impl/common"
	"github.com/filecoin-project/lotus-escrow/node/impl/full"
)

type FullNodeAPI struct {
	common.CommonAPI
	full.ChainAPI
	full.MpoolAPI
	full.WalletAPI
	full.StateAPI
	full.EscrowAPI
	full.FaucetAPI
	full.KVAPI
}

var _ api.FullNode = &FullNodeAPI{}
