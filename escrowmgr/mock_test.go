package escrowmgr

import (
	"bytes"
	"context"
	"sync"

	"github.com/ipfs/go-cid"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

type receipt struct {
	code exitcode.ExitCode
	ret  cbg.CBORMarshaler
}

type mockManagerAPI struct {
	lk sync.Mutex

	now      uint64
	nonces   map[address.Address]uint64
	receipts map[abi.MethodNum]receipt
	calls    map[abi.MethodNum]receipt
	lookups  map[cid.Cid]*api.MsgLookup
	pushed   []*types.Message
}

func newMockManagerAPI() *mockManagerAPI {
	return &mockManagerAPI{
		now:      1_700_000_000,
		nonces:   map[address.Address]uint64{},
		receipts: map[abi.MethodNum]receipt{},
		calls:    map[abi.MethodNum]receipt{},
		lookups:  map[cid.Cid]*api.MsgLookup{},
	}
}

func (m *mockManagerAPI) setReceipt(method abi.MethodNum, code exitcode.ExitCode, ret cbg.CBORMarshaler) {
	m.lk.Lock()
	defer m.lk.Unlock()
	m.receipts[method] = receipt{code: code, ret: ret}
}

func (m *mockManagerAPI) setCallResult(method abi.MethodNum, ret cbg.CBORMarshaler) {
	m.lk.Lock()
	defer m.lk.Unlock()
	m.calls[method] = receipt{ret: ret}
}

func encode(v cbg.CBORMarshaler) []byte {
	if v == nil {
		return nil
	}
	buf := new(bytes.Buffer)
	if err := v.MarshalCBOR(buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func (m *mockManagerAPI) MpoolPushMessage(ctx context.Context, msg *types.Message, spec *api.MessageSendSpec) (*types.SignedMessage, error) {
	m.lk.Lock()
	defer m.lk.Unlock()

	cp := *msg
	cp.Nonce = m.nonces[msg.From]
	m.nonces[msg.From]++
	m.now += 5

	r := m.receipts[msg.Method]
	m.lookups[cp.Cid()] = &api.MsgLookup{
		Message: cp.Cid(),
		Receipt: types.MessageReceipt{
			ExitCode: r.code,
			Return:   encode(r.ret),
		},
		Height:    abi.ChainEpoch(len(m.pushed) + 1),
		Timestamp: m.now,
	}
	m.pushed = append(m.pushed, &cp)

	return &types.SignedMessage{Message: cp}, nil
}

func (m *mockManagerAPI) StateWaitMsg(ctx context.Context, c cid.Cid) (*api.MsgLookup, error) {
	m.lk.Lock()
	defer m.lk.Unlock()

	l, ok := m.lookups[c]
	if !ok {
		return nil, xerrors.Errorf("message %s not found", c)
	}
	return l, nil
}

func (m *mockManagerAPI) StateCall(ctx context.Context, msg *types.Message) (*api.InvocResult, error) {
	m.lk.Lock()
	defer m.lk.Unlock()

	r, ok := m.calls[msg.Method]
	if !ok {
		return &api.InvocResult{
			Msg:    msg,
			MsgRct: &types.MessageReceipt{ExitCode: exitcode.SysErrInvalidMethod},
			Error:  "no such method",
		}, nil
	}
	return &api.InvocResult{
		Msg:    msg,
		MsgRct: &types.MessageReceipt{Return: encode(r.ret)},
	}, nil
}

func (m *mockManagerAPI) StateLookupID(ctx context.Context, addr address.Address) (address.Address, error) {
	return addr, nil
}

func (m *mockManagerAPI) lastPushed() *types.Message {
	m.lk.Lock()
	defer m.lk.Unlock()
	return m.pushed[len(m.pushed)-1]
}
