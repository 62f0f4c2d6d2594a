package vm

import (
	"bytes"
	"context"

	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/state"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// execution collects the side effects of one top-level message. Nested sends
// share it so that a failed callee can drop exactly what it produced.
type execution struct {
	events    []types.Event
	transfers []types.Transfer
}

type execMark struct {
	events, transfers int
}

func (e *execution) mark() execMark {
	return execMark{events: len(e.events), transfers: len(e.transfers)}
}

func (e *execution) rollback(m execMark) {
	e.events = e.events[:m.events]
	e.transfers = e.transfers[:m.transfers]
}

// Runtime is the VMContext handed to actor code for a single invocation.
type Runtime struct {
	ctx context.Context

	vm    *VM
	state *state.StateTree

	// msg is the message being executed; From and To are ID addresses.
	msg *types.Message

	// address that started the invocation chain, always an ID address
	origin address.Address

	exec *execution
}

var _ types.VMContext = (*Runtime)(nil)

func (vm *VM) makeRuntime(ctx context.Context, origin address.Address, msg *types.Message, exec *execution) *Runtime {
	return &Runtime{
		ctx:    ctx,
		vm:     vm,
		state:  vm.cstate,
		msg:    msg,
		origin: origin,
		exec:   exec,
	}
}

// Message is the message that kicked off the current invocation
func (rt *Runtime) Message() *types.Message {
	return rt.msg
}

func (rt *Runtime) Origin() address.Address {
	return rt.origin
}

func (rt *Runtime) BlockHeight() abi.ChainEpoch {
	return rt.vm.height
}

func (rt *Runtime) Timestamp() uint64 {
	return rt.vm.timestamp
}

func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

type storage struct {
	st *state.StateTree
	id address.Address
}

func (s *storage) Get(key string, out cbg.CBORUnmarshaler) (bool, aerrors.ActorError) {
	b, found, err := s.st.StorageGet(s.id, key)
	if err != nil {
		return false, aerrors.Escalate(err, "reading actor storage")
	}
	if !found {
		return false, nil
	}
	if err := out.UnmarshalCBOR(bytes.NewReader(b)); err != nil {
		return false, aerrors.Absorb(err, exitcode.ErrSerialization, "decoding stored value")
	}
	return true, nil
}

func (s *storage) Put(key string, v cbg.CBORMarshaler) aerrors.ActorError {
	buf := new(bytes.Buffer)
	if err := v.MarshalCBOR(buf); err != nil {
		return aerrors.Absorb(err, exitcode.ErrSerialization, "encoding value for storage")
	}
	s.st.StoragePut(s.id, key, buf.Bytes())
	return nil
}

func (s *storage) Has(key string) (bool, aerrors.ActorError) {
	_, found, err := s.st.StorageGet(s.id, key)
	if err != nil {
		return false, aerrors.Escalate(err, "reading actor storage")
	}
	return found, nil
}

func (s *storage) Delete(key string) aerrors.ActorError {
	s.st.StorageDelete(s.id, key)
	return nil
}

// Storage provides access to the storage of the actor being invoked
func (rt *Runtime) Storage() types.Storage {
	return &storage{st: rt.state, id: rt.msg.To}
}

func (rt *Runtime) StateTree() (types.StateTree, aerrors.ActorError) {
	if rt.msg.To != actors.InitAddress {
		return nil, aerrors.Newf(exitcode.SysErrForbidden, "only init actor can access state tree directly (caller %s)", rt.msg.To)
	}

	return rt.state, nil
}

func (rt *Runtime) LookupID(a address.Address) (address.Address, error) {
	return rt.state.LookupID(a)
}

func (rt *Runtime) ActorExists(a address.Address) (bool, aerrors.ActorError) {
	id, err := rt.state.LookupID(a)
	if err == nil {
		_, err = rt.state.GetActor(id)
	}
	switch {
	case err == nil:
		return true, nil
	case xerrors.Is(err, types.ErrActorNotFound):
		return false, nil
	default:
		return false, aerrors.Escalate(err, "looking up actor")
	}
}

func (rt *Runtime) GetBalance(a address.Address) (types.Coins, aerrors.ActorError) {
	act, err := rt.state.GetActor(a)
	switch {
	case err == nil:
		return act.Balance, nil
	case xerrors.Is(err, types.ErrActorNotFound):
		return types.Coins{}, nil
	default:
		return nil, aerrors.Escalate(err, "getting actor balance")
	}
}

func (rt *Runtime) EmitEvent(attrs ...types.EventAttribute) {
	rt.exec.events = append(rt.exec.events, types.Event{
		Emitter:    rt.msg.To,
		Attributes: attrs,
	})
}

// Send allows the current execution context to invoke methods on other actors in the system
func (rt *Runtime) Send(to address.Address, method abi.MethodNum, value types.Coins, params []byte) ([]byte, aerrors.ActorError) {
	return rt.vm.internalSend(rt.ctx, rt.origin, rt.msg.To, to, method, value, params, rt.msg.Nonce, rt.exec)
}
