package stmgr

import (
	"context"

	"go.opencensus.io/tag"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/state"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/vm"
	"github.com/filecoin-project/lotus-escrow/metrics"
)

// Call runs msg against the current state without persisting anything. The
// sender's nonce and balance are not checked; a message with no sender runs
// as the system actor.
func (sm *StateManager) Call(ctx context.Context, msg *types.Message) (*vm.ApplyRet, error) {
	sm.lk.RLock()
	defer sm.lk.RUnlock()

	head := sm.cs.GetHeaviestHead()
	if head == nil {
		return nil, ErrNoGenesis
	}

	cmsg := *msg
	msg = &cmsg
	if msg.From == address.Undef {
		msg.From = actors.SystemAddress
	}
	if err := msg.ValidForApply(); err != nil {
		return nil, xerrors.Errorf("invalid call message: %w", err)
	}

	st := state.NewStateTree(sm.ds)

	actorName := "<unknown>"
	if id, err := sm.lookupID(st, msg.To); err == nil {
		if act, err := st.GetActor(id); err == nil {
			actorName = actors.ActorNameByCode(act.Code)
		}
	}
	mctx, _ := tag.New(ctx, tag.Upsert(metrics.Actor, actorName))
	defer metrics.Timer(mctx, metrics.StateCallDuration)()

	vmi := vm.NewVM(st, head.Height, nextTimestamp(head), sm.inv)
	ret, err := vmi.ApplyImplicitMessage(ctx, msg)
	if err != nil {
		return nil, xerrors.Errorf("call failed: %w", err)
	}

	if ret.ActorErr != nil {
		log.Debugw("state call failed", "to", msg.To, "method", msg.Method, "error", ret.ActorErr)
	}

	sm.journal.RecordEvent(sm.evtTypes[evtTypeCall], func() interface{} {
		return CallEvent{
			To:       msg.To,
			Method:   msg.Method,
			ExitCode: actors.ExitCodeName(ret.ExitCode),
		}
	})

	return ret, nil
}
