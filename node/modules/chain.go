package modules

import (
	"context"

	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/chain/messagepool"
	"github.com/filecoin-project/lotus-escrow/chain/messagesigner"
	"github.com/filecoin-project/lotus-escrow/chain/msgindex"
	"github.com/filecoin-project/lotus-escrow/chain/stmgr"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/wallet"
	"github.com/filecoin-project/lotus-escrow/genesis"
	"github.com/filecoin-project/lotus-escrow/journal"
	"github.com/filecoin-project/lotus-escrow/journal/alerting"
	"github.com/filecoin-project/lotus-escrow/node/config"
	"github.com/filecoin-project/lotus-escrow/node/modules/dtypes"
	"github.com/filecoin-project/lotus-escrow/node/modules/helpers"
	"github.com/filecoin-project/lotus-escrow/node/repo"
)

func ChainStore(lc fx.Lifecycle, mctx helpers.MetricsCtx, ds dtypes.MetadataDS) (*store.ChainStore, error) {
	cs := store.NewChainStore(ds)

	if err := cs.Load(helpers.LifecycleCtx(mctx, lc)); err != nil {
		return nil, xerrors.Errorf("loading chain state: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return cs.Close()
		},
	})

	return cs, nil
}

func MsgIndex(lc fx.Lifecycle, mctx helpers.MetricsCtx, r repo.LockedRepo) (msgindex.MsgIndex, error) {
	basePath, err := r.SqlitePath()
	if err != nil {
		return nil, err
	}

	msgIndex, err := msgindex.NewMsgIndex(helpers.LifecycleCtx(mctx, lc), basePath)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return msgIndex.Close()
		},
	})

	return msgIndex, nil
}

func DummyMsgIndex() msgindex.MsgIndex {
	return msgindex.DummyMsgIndex
}

func StateManager(cs *store.ChainStore, ds dtypes.MetadataDS, mi msgindex.MsgIndex, j journal.Journal, al *alerting.Alerting, nn dtypes.NetworkName) (*stmgr.StateManager, error) {
	return stmgr.NewStateManager(cs, ds, mi, j, al, string(nn))
}

// GenesisTemplate builds the genesis state description from the config.
func GenesisTemplate(cfg config.Genesis) func() (genesis.Template, error) {
	return func() (genesis.Template, error) {
		tmpl := genesis.Template{
			NetworkName: cfg.NetworkName,
		}

		for i, acct := range cfg.Accounts {
			addr, err := address.NewFromString(acct.Address)
			if err != nil {
				return genesis.Template{}, xerrors.Errorf("genesis account %d: parsing address: %w", i, err)
			}
			bal, err := types.ParseCoins(acct.Balance)
			if err != nil {
				return genesis.Template{}, xerrors.Errorf("genesis account %s: parsing balance: %w", addr, err)
			}

			tmpl.Accounts = append(tmpl.Accounts, genesis.Actor{
				Address: addr,
				Balance: bal,
			})
		}

		return tmpl, nil
	}
}

func NetworkName(cfg config.Genesis) dtypes.NetworkName {
	return dtypes.NetworkName(cfg.NetworkName)
}

// DoSetGenesis creates the genesis state on an empty datastore.
func DoSetGenesis(mctx helpers.MetricsCtx, lc fx.Lifecycle, sm *stmgr.StateManager, tmpl genesis.Template) error {
	return sm.Genesis(helpers.LifecycleCtx(mctx, lc), tmpl)
}

func MessagePool(lc fx.Lifecycle, sm *stmgr.StateManager) (*messagepool.MessagePool, error) {
	mp, err := messagepool.New(sm)
	if err != nil {
		return nil, xerrors.Errorf("constructing mpool: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return mp.Close()
		},
	})

	return mp, nil
}

func MessageSigner(w *wallet.LocalWallet, mp *messagepool.MessagePool, sm *stmgr.StateManager, ds dtypes.MetadataDS) *messagesigner.MessageSigner {
	return messagesigner.NewMessageSigner(w, mp, sm, ds)
}
