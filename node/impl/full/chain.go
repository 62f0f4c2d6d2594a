package full

import (
	"context"

	"github.com/ipfs/go-cid"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/chain/stmgr"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

type ChainAPI struct {
	fx.In

	Chain *store.ChainStore
}

func (a *ChainAPI) ChainNotify(ctx context.Context) (<-chan *store.HeadChange, error) {
	return a.Chain.SubHeadChanges(ctx), nil
}

func (a *ChainAPI) ChainHead(context.Context) (*store.Head, error) {
	head := a.Chain.GetHeaviestHead()
	if head == nil {
		return nil, stmgr.ErrNoGenesis
	}
	return head, nil
}

func (a *ChainAPI) ChainGetMessage(ctx context.Context, mc cid.Cid) (*types.Message, error) {
	m, err := a.Chain.GetMessage(ctx, mc)
	if err != nil {
		return nil, xerrors.Errorf("getting message %s: %w", mc, err)
	}
	return m, nil
}
