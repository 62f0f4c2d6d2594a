package vm

import (
	"context"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/trace"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/state"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var log = logging.Logger("vm")

type VM struct {
	cstate    *state.StateTree
	height    abi.ChainEpoch
	timestamp uint64
	inv       *Invoker
}

// NewVM returns a VM applying messages against st at the given height and
// logical timestamp.
func NewVM(st *state.StateTree, height abi.ChainEpoch, timestamp uint64, inv *Invoker) *VM {
	if inv == nil {
		inv = NewInvoker()
	}
	return &VM{
		cstate:    st,
		height:    height,
		timestamp: timestamp,
		inv:       inv,
	}
}

func (vm *VM) StateTree() *state.StateTree {
	return vm.cstate
}

type ApplyRet struct {
	types.MessageReceipt
	ActorErr aerrors.ActorError
	Duration time.Duration
}

func failedRet(code exitcode.ExitCode, aerr aerrors.ActorError, start time.Time) *ApplyRet {
	return &ApplyRet{
		MessageReceipt: types.MessageReceipt{ExitCode: code},
		ActorErr:       aerr,
		Duration:       time.Since(start),
	}
}

// ApplyMessage executes msg on behalf of an external account. Errors returned
// as Go errors are fatal to the state tree; everything else is reported through
// the receipt.
func (vm *VM) ApplyMessage(ctx context.Context, msg *types.Message) (*ApplyRet, error) {
	start := build.Clock.Now()
	ctx, span := trace.StartSpan(ctx, "vm.ApplyMessage")
	defer span.End()
	if span.IsRecordingEvents() {
		span.AddAttributes(
			trace.StringAttribute("to", msg.To.String()),
			trace.Int64Attribute("method", int64(msg.Method)),
			trace.StringAttribute("value", msg.Funds.String()),
		)
	}

	if err := msg.ValidForApply(); err != nil {
		return nil, xerrors.Errorf("message is not valid for apply: %w", err)
	}

	st := vm.cstate

	fromID, err := st.LookupID(msg.From)
	if err != nil {
		if xerrors.Is(err, types.ErrActorNotFound) {
			return failedRet(exitcode.SysErrSenderInvalid,
				aerrors.Newf(exitcode.SysErrSenderInvalid, "sender %s not found", msg.From), start), nil
		}
		return nil, xerrors.Errorf("resolving sender: %w", err)
	}

	fromActor, err := st.GetActor(fromID)
	if err != nil {
		if xerrors.Is(err, types.ErrActorNotFound) {
			return failedRet(exitcode.SysErrSenderInvalid,
				aerrors.Newf(exitcode.SysErrSenderInvalid, "sender %s not found", msg.From), start), nil
		}
		return nil, xerrors.Errorf("loading sender actor: %w", err)
	}

	if fromActor.Code != actors.AccountCodeCid {
		return failedRet(exitcode.SysErrSenderInvalid,
			aerrors.Newf(exitcode.SysErrSenderInvalid, "sender %s is not an account actor", msg.From), start), nil
	}

	if msg.Nonce != fromActor.Nonce {
		return failedRet(exitcode.SysErrSenderStateInvalid,
			aerrors.Newf(exitcode.SysErrSenderStateInvalid, "actor nonce invalid: msg:%d != state:%d", msg.Nonce, fromActor.Nonce), start), nil
	}

	if !fromActor.Balance.IsAllGTE(msg.Funds) {
		return failedRet(exitcode.SysErrInsufficientFunds,
			aerrors.Newf(exitcode.SysErrInsufficientFunds, "actor balance %s less than needed %s", fromActor.Balance, msg.Funds), start), nil
	}

	// the nonce moves even if the invocation fails
	fromActor.Nonce++
	if err := st.SetActor(fromID, fromActor); err != nil {
		return nil, xerrors.Errorf("updating sender nonce: %w", err)
	}

	return vm.apply(ctx, fromID, msg, start)
}

// ApplyImplicitMessage executes msg without nonce or balance checks. It backs
// read-only calls and genesis setup.
func (vm *VM) ApplyImplicitMessage(ctx context.Context, msg *types.Message) (*ApplyRet, error) {
	start := build.Clock.Now()
	ctx, span := trace.StartSpan(ctx, "vm.ApplyImplicitMessage")
	defer span.End()

	fromID, err := vm.cstate.LookupID(msg.From)
	if err != nil {
		if xerrors.Is(err, types.ErrActorNotFound) {
			return failedRet(exitcode.SysErrSenderInvalid,
				aerrors.Newf(exitcode.SysErrSenderInvalid, "sender %s not found", msg.From), start), nil
		}
		return nil, xerrors.Errorf("resolving sender: %w", err)
	}

	return vm.apply(ctx, fromID, msg, start)
}

func (vm *VM) apply(ctx context.Context, fromID address.Address, msg *types.Message, start time.Time) (*ApplyRet, error) {
	exec := &execution{}
	ret, aerr := vm.internalSend(ctx, fromID, fromID, msg.To, msg.Method, msg.Funds, msg.Params, msg.Nonce, exec)
	if aerrors.IsFatal(aerr) {
		return nil, xerrors.Errorf("fatal error during invocation: %w", aerr)
	}

	rcpt := types.MessageReceipt{
		ExitCode: aerrors.RetCode(aerr),
		Return:   ret,
	}
	if aerr == nil {
		rcpt.Events = exec.events
		rcpt.Transfers = exec.transfers
	} else {
		rcpt.Return = nil
		log.Debugw("message failed", "from", msg.From, "to", msg.To, "method", msg.Method, "exit", rcpt.ExitCode, "error", aerr)
	}

	return &ApplyRet{
		MessageReceipt: rcpt,
		ActorErr:       aerr,
		Duration:       time.Since(start),
	}, nil
}

// internalSend transfers value from the ID address from to the receiver and
// invokes method on it. All state changes, events and transfers made along the
// way are undone if the receiver fails.
func (vm *VM) internalSend(ctx context.Context, origin, from, to address.Address, method abi.MethodNum, value types.Coins, params []byte, nonce uint64, exec *execution) ([]byte, aerrors.ActorError) {
	st := vm.cstate
	if err := st.Snapshot(ctx); err != nil {
		return nil, aerrors.Fatalf("snapshot failed: %s", err)
	}
	mark := exec.mark()

	ret, aerr := vm.send(ctx, origin, from, to, method, value, params, nonce, exec)
	if aerr != nil {
		if err := st.Revert(); err != nil {
			return nil, aerrors.Escalate(err, "failed to revert state tree after failed subcall")
		}
		exec.rollback(mark)
	}
	st.ClearSnapshot()

	return ret, aerr
}

func (vm *VM) send(ctx context.Context, origin, from, to address.Address, method abi.MethodNum, value types.Coins, params []byte, nonce uint64, exec *execution) ([]byte, aerrors.ActorError) {
	st := vm.cstate

	toID, err := st.LookupID(to)
	if err != nil {
		if !xerrors.Is(err, types.ErrActorNotFound) {
			return nil, aerrors.Escalate(err, "resolving receiver")
		}

		// Sending to an unknown key address creates an account for it.
		var aerr aerrors.ActorError
		toID, aerr = vm.TryCreateAccountActor(ctx, origin, to, nonce, exec)
		if aerr != nil {
			return nil, aerr
		}
	}

	toActor, err := st.GetActor(toID)
	if err != nil {
		if xerrors.Is(err, types.ErrActorNotFound) {
			return nil, aerrors.Newf(exitcode.SysErrInvalidReceiver, "receiver %s not found", to)
		}
		return nil, aerrors.Escalate(err, "loading receiver actor")
	}

	if err := vm.transfer(from, toID, value, exec); err != nil {
		return nil, err
	}

	if method == actors.MethodSend {
		return nil, nil
	}

	msg := &types.Message{
		From:   from,
		To:     toID,
		Funds:  value,
		Method: method,
		Params: params,
		Nonce:  nonce,
	}

	rt := vm.makeRuntime(ctx, origin, msg, exec)
	return vm.Invoke(toActor, rt, method, params)
}

func (vm *VM) Invoke(act *types.Actor, rt *Runtime, method abi.MethodNum, params []byte) ([]byte, aerrors.ActorError) {
	ctx, span := trace.StartSpan(rt.ctx, "vm.Invoke")
	defer span.End()
	if span.IsRecordingEvents() {
		span.AddAttributes(
			trace.StringAttribute("to", rt.Message().To.String()),
			trace.Int64Attribute("method", int64(method)),
		)
	}

	origCtx := rt.ctx
	rt.ctx = ctx
	defer func() {
		rt.ctx = origCtx
	}()

	return vm.inv.Invoke(act, rt, method, params)
}

func (vm *VM) transfer(from, to address.Address, amt types.Coins, exec *execution) aerrors.ActorError {
	if from == to || amt.IsZero() {
		return nil
	}

	if err := amt.Validate(); err != nil {
		return aerrors.Absorb(err, exitcode.ErrIllegalArgument, "invalid transfer amount")
	}
	amt = types.NewCoins(amt...)

	fromAct, err := vm.cstate.GetActor(from)
	if err != nil {
		return aerrors.Absorb(err, exitcode.SysErrInsufficientFunds, "transfer failed when retrieving sender actor")
	}

	toAct, err := vm.cstate.GetActor(to)
	if err != nil {
		return aerrors.Absorb(err, exitcode.SysErrInvalidReceiver, "transfer failed when retrieving receiver actor")
	}

	if err := deductFunds(fromAct, amt); err != nil {
		return aerrors.Newf(exitcode.SysErrInsufficientFunds, "transfer failed when deducting funds (%s): %s", amt, err)
	}
	depositFunds(toAct, amt)

	if err := vm.cstate.SetActor(from, fromAct); err != nil {
		return aerrors.Escalate(err, "transfer failed when setting sender actor")
	}

	if err := vm.cstate.SetActor(to, toAct); err != nil {
		return aerrors.Escalate(err, "transfer failed when setting receiver actor")
	}

	exec.transfers = append(exec.transfers, types.Transfer{From: from, To: to, Amount: amt})
	return nil
}

func deductFunds(act *types.Actor, amt types.Coins) error {
	bal, ok := act.Balance.SafeSub(amt)
	if !ok {
		return xerrors.Errorf("not enough funds: have %s, need %s", act.Balance, amt)
	}
	act.Balance = bal
	return nil
}

func depositFunds(act *types.Actor, amt types.Coins) {
	act.Balance = act.Balance.Add(amt...)
}
