package stmgr

import (
	"context"
	"errors"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/go-datastore"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/lotus-escrow/chain/store"
)

// SearchForMessage returns the lookup of an applied message, or nil if the
// message has not been applied.
func (sm *StateManager) SearchForMessage(ctx context.Context, mcid cid.Cid) (*store.MsgLookup, error) {
	l, err := sm.cs.GetMsgLookup(ctx, mcid)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, xerrors.Errorf("searching for message %s: %w", mcid, err)
	}
	return l, nil
}

// WaitForMessage blocks until mcid has been applied or ctx is done.
func (sm *StateManager) WaitForMessage(ctx context.Context, mcid cid.Cid) (*store.MsgLookup, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// subscribe first so an application racing the search is not missed
	tsub := sm.cs.SubHeadChanges(ctx)

	l, err := sm.SearchForMessage(ctx, mcid)
	if err != nil {
		return nil, err
	}
	if l != nil {
		return l, nil
	}

	for {
		select {
		case hc, ok := <-tsub:
			if !ok {
				return nil, ctx.Err()
			}
			if hc.Applied != nil && hc.Applied.Message == mcid {
				return hc.Applied, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
