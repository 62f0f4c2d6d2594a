package actors_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/require"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/gen/genesis"
	"github.com/filecoin-project/lotus-escrow/chain/state"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/vm"
	gentypes "github.com/filecoin-project/lotus-escrow/genesis"
)

const testDenom = "token"

type HarnessStage int

const (
	HarnessPreInit HarnessStage = iota
	HarnessPostInit
)

type HarnessOpt func(testing.TB, *Harness) error

type Harness struct {
	Stage  HarnessStage
	Nonces map[address.Address]uint64
	Now    uint64
	Height abi.ChainEpoch

	ctx      context.Context
	ds       datastore.Batching
	st       *state.StateTree
	inv      *vm.Invoker
	template gentypes.Template
	keyIDs   map[address.Address]address.Address
}

var addrSeq int

func newKeyAddress(t testing.TB) address.Address {
	addrSeq++
	a, err := address.NewSecp256k1Address([]byte(fmt.Sprintf("harness-key-%d", addrSeq)))
	require.NoError(t, err)
	return a
}

// HarnessAddr creates a key account funded at genesis with value of the test
// denomination.
func HarnessAddr(addr *address.Address, value uint64) HarnessOpt {
	return func(t testing.TB, h *Harness) error {
		if h.Stage != HarnessPreInit {
			return nil
		}
		*addr = newKeyAddress(t)
		var bal types.Coins
		if value > 0 {
			bal = types.NewCoins(types.NewCoin(testDenom, value))
		}
		h.template.Accounts = append(h.template.Accounts, gentypes.Actor{
			Address: *addr,
			Balance: bal,
		})
		return nil
	}
}

// HarnessActor creates an actor instance through the init actor once genesis
// has been set up.
func HarnessActor(actor *address.Address, creator *address.Address, code cid.Cid, params func() cbg.CBORMarshaler) HarnessOpt {
	return func(t testing.TB, h *Harness) error {
		if h.Stage != HarnessPostInit {
			return nil
		}
		if !actor.Empty() {
			return fmt.Errorf("actor address already set")
		}

		ret, _ := h.CreateActor(t, *creator, code, params())
		if ret.ExitCode != 0 {
			return fmt.Errorf("creating actor: %w", ret.ActorErr)
		}
		var er actors.ExecReturn
		if err := er.UnmarshalCBOR(bytes.NewReader(ret.Return)); err != nil {
			return err
		}
		*actor = er.IDAddress
		return nil
	}
}

func HarnessCtx(ctx context.Context) HarnessOpt {
	return func(t testing.TB, h *Harness) error {
		h.ctx = ctx
		return nil
	}
}

func HarnessTime(now uint64) HarnessOpt {
	return func(t testing.TB, h *Harness) error {
		if h.Stage == HarnessPreInit {
			h.Now = now
			h.template.Timestamp = now
		}
		return nil
	}
}

func NewHarness(t testing.TB, options ...HarnessOpt) *Harness {
	h := &Harness{
		Stage:  HarnessPreInit,
		Nonces: make(map[address.Address]uint64),
		Now:    1_000_000,
		ctx:    context.Background(),
		ds:     dssync.MutexWrap(datastore.NewMapDatastore()),
		inv:    vm.NewInvoker(),
	}
	h.template.Timestamp = h.Now

	for _, opt := range options {
		require.NoError(t, opt(t, h))
	}

	h.st = state.NewStateTree(h.ds)
	keyIDs, err := genesis.MakeInitialStateTree(h.ctx, h.st, h.template)
	require.NoError(t, err)
	require.NoError(t, h.st.Flush(h.ctx))
	h.keyIDs = keyIDs

	h.Stage = HarnessPostInit
	for _, opt := range options {
		require.NoError(t, opt(t, h))
	}

	return h
}

// ID returns the ID address of a key account created by the harness.
func (h *Harness) ID(addr address.Address) address.Address {
	if id, ok := h.keyIDs[addr]; ok {
		return id
	}
	id, err := h.st.LookupID(addr)
	if err != nil {
		panic(err)
	}
	return id
}

func (h *Harness) Advance(seconds uint64) {
	h.Now += seconds
	h.Height++
}

func (h *Harness) Apply(t testing.TB, msg types.Message) (*vm.ApplyRet, *state.StateTree) {
	t.Helper()
	msg.Nonce = h.Nonces[msg.From]

	v := vm.NewVM(h.st, h.Height, h.Now, h.inv)
	ret, err := v.ApplyMessage(h.ctx, &msg)
	require.NoError(t, err, "applying message")
	if ret.ExitCode != exitcode.SysErrSenderStateInvalid && ret.ExitCode != exitcode.SysErrSenderInvalid && ret.ExitCode != exitcode.SysErrInsufficientFunds {
		h.Nonces[msg.From]++
	}

	require.NoError(t, h.st.Flush(h.ctx))
	return ret, h.st
}

func (h *Harness) CreateActor(t testing.TB, from address.Address, code cid.Cid, params cbg.CBORMarshaler) (*vm.ApplyRet, *state.StateTree) {
	t.Helper()
	return h.CreateActorWithValue(t, from, code, params, nil)
}

func (h *Harness) CreateActorWithValue(t testing.TB, from address.Address, code cid.Cid, params cbg.CBORMarshaler, value types.Coins) (*vm.ApplyRet, *state.StateTree) {
	t.Helper()
	var enc []byte
	if params != nil {
		b, aerr := actors.SerializeParams(params)
		require.Nil(t, aerr)
		enc = b
	}

	ep, aerr := actors.SerializeParams(&actors.ExecParams{Code: code, Params: enc})
	require.Nil(t, aerr)

	return h.Apply(t, types.Message{
		To:     actors.InitAddress,
		From:   from,
		Method: actors.IAMethods.Exec,
		Params: ep,
		Funds:  value,
	})
}

func (h *Harness) SendFunds(t testing.TB, from address.Address, to address.Address, value types.Coins) (*vm.ApplyRet, *state.StateTree) {
	t.Helper()
	return h.Apply(t, types.Message{
		To:     to,
		From:   from,
		Method: actors.MethodSend,
		Funds:  value,
	})
}

func (h *Harness) Invoke(t testing.TB, from address.Address, to address.Address, method abi.MethodNum, params cbg.CBORMarshaler) (*vm.ApplyRet, *state.StateTree) {
	t.Helper()
	return h.InvokeWithValue(t, from, to, method, nil, params)
}

func (h *Harness) InvokeWithValue(t testing.TB, from address.Address, to address.Address, method abi.MethodNum, value types.Coins, params cbg.CBORMarshaler) (*vm.ApplyRet, *state.StateTree) {
	t.Helper()
	var enc []byte
	if params != nil {
		b, aerr := actors.SerializeParams(params)
		require.Nil(t, aerr)
		enc = b
	}
	return h.Apply(t, types.Message{
		To:     to,
		From:   from,
		Method: method,
		Params: enc,
		Funds:  value,
	})
}

// Balance returns the test denomination balance of addr, or zero if the actor
// does not exist.
func (h *Harness) Balance(t testing.TB, addr address.Address) types.BigInt {
	t.Helper()
	act, err := h.st.GetActor(addr)
	if err != nil {
		return types.NewInt(0)
	}
	return act.Balance.AmountOf(testDenom)
}

func ApplyOK(t testing.TB, ret *vm.ApplyRet) {
	t.Helper()
	if ret.ExitCode != 0 {
		t.Fatalf("exit code should be 0, got %d, actorErr: %+v", ret.ExitCode, ret.ActorErr)
	}
}

func ApplyFails(t testing.TB, ret *vm.ApplyRet, code exitcode.ExitCode) {
	t.Helper()
	if ret.ExitCode != code {
		t.Fatalf("exit code should be %s, got %s, actorErr: %+v", actors.ExitCodeName(code), actors.ExitCodeName(ret.ExitCode), ret.ActorErr)
	}
	if len(ret.Events) != 0 || len(ret.Transfers) != 0 {
		t.Fatalf("failed message should have no events or transfers, got %d/%d", len(ret.Events), len(ret.Transfers))
	}
}
