package genesis

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/state"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/vm"
	"github.com/filecoin-project/lotus-escrow/genesis"
)

var log = logging.Logger("genesis")

/*
Genesis state:

	system (t00)   holds the total supply until accounts are funded
	init   (t01)   creates every later actor
	accounts       one per template entry, funded by plain sends from system
*/

// MakeInitialStateTree populates st with the genesis actors described by
// template. The returned map resolves each template address to its ID.
// Nothing is flushed.
func MakeInitialStateTree(ctx context.Context, st *state.StateTree, template genesis.Template) (map[address.Address]address.Address, error) {
	var supply types.Coins
	for i, a := range template.Accounts {
		if a.Address.Protocol() != address.SECP256K1 && a.Address.Protocol() != address.BLS {
			return nil, xerrors.Errorf("genesis account %d: %s is not a key address", i, a.Address)
		}
		if err := a.Balance.Validate(); err != nil {
			return nil, xerrors.Errorf("genesis account %s: %w", a.Address, err)
		}
		supply = supply.Add(a.Balance...)
	}

	if err := st.SetActor(actors.SystemAddress, SetupSystemActor(supply)); err != nil {
		return nil, xerrors.Errorf("set system actor: %w", err)
	}

	if err := st.SetActor(actors.InitAddress, SetupInitActor()); err != nil {
		return nil, xerrors.Errorf("set init actor: %w", err)
	}

	gvm := vm.NewVM(st, 0, template.Timestamp, nil)

	keyIDs := make(map[address.Address]address.Address, len(template.Accounts))
	for _, a := range template.Accounts {
		ret, err := gvm.ApplyImplicitMessage(ctx, &types.Message{
			From:   actors.SystemAddress,
			To:     a.Address,
			Method: actors.MethodSend,
			Funds:  a.Balance,
		})
		if err != nil {
			return nil, xerrors.Errorf("funding genesis account %s: %w", a.Address, err)
		}
		if ret.ExitCode != exitcode.Ok {
			return nil, xerrors.Errorf("funding genesis account %s failed (exit %d): %w", a.Address, ret.ExitCode, ret.ActorErr)
		}

		id, err := st.LookupID(a.Address)
		if err != nil {
			return nil, xerrors.Errorf("resolving genesis account %s: %w", a.Address, err)
		}
		keyIDs[a.Address] = id
		log.Infow("genesis account", "address", a.Address, "id", id, "balance", a.Balance)
	}

	return keyIDs, nil
}
