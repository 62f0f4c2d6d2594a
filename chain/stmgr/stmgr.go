package stmgr

import (
	"bytes"
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ipfs/go-cid"
	"github.com/ipfs/go-datastore"
	logging "github.com/ipfs/go-log/v2"
	cbg "github.com/whyrusleeping/cbor-gen"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/gen/genesis"
	"github.com/filecoin-project/lotus-escrow/chain/msgindex"
	"github.com/filecoin-project/lotus-escrow/chain/state"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/chain/vm"
	gentypes "github.com/filecoin-project/lotus-escrow/genesis"
	"github.com/filecoin-project/lotus-escrow/journal"
	"github.com/filecoin-project/lotus-escrow/journal/alerting"
	"github.com/filecoin-project/lotus-escrow/metrics"
)

var log = logging.Logger("stmgr")

const keyIDCacheSize = 1 << 14

var (
	ErrNoGenesis             = errors.New("chain has no genesis state")
	ErrMessageAlreadyApplied = errors.New("message already applied")
)

const (
	evtTypeApply = iota
	evtTypeCall
	evtTypeGenesis
	evtTypeCount
)

// ApplyEvent is journalled for every message that reaches the VM.
type ApplyEvent struct {
	Message   string
	From      address.Address
	To        address.Address
	Method    abi.MethodNum
	ExitCode  string
	Height    abi.ChainEpoch
	Timestamp uint64
}

// CallEvent is journalled for read-only calls. It is disabled by default.
type CallEvent struct {
	To       address.Address
	Method   abi.MethodNum
	ExitCode string
}

type GenesisEvent struct {
	NetworkName string
	Accounts    int
	Timestamp   uint64
}

// StateManager is the single sequencer of the node. It applies messages one at
// a time against the state stored in ds and persists each outcome together
// with the new head.
type StateManager struct {
	cs       *store.ChainStore
	ds       datastore.Batching
	msgIndex msgindex.MsgIndex
	inv      *vm.Invoker

	networkName string

	// lk orders message application; reads take it shared so they never see
	// a half committed batch.
	lk sync.RWMutex

	// ID assignments never change, so key address resolutions can be cached
	// forever.
	keyIDCache *lru.Cache[address.Address, address.Address]

	journal  journal.Journal
	evtTypes [evtTypeCount]journal.EventType

	alerting        *alerting.Alerting
	indexAlertType  alerting.AlertType
	indexAlertRaise bool
}

func NewStateManager(cs *store.ChainStore, ds datastore.Batching, mi msgindex.MsgIndex, j journal.Journal, al *alerting.Alerting, networkName string) (*StateManager, error) {
	if mi == nil {
		mi = msgindex.DummyMsgIndex
	}
	if j == nil {
		j = journal.NilJournal()
	}
	if al == nil {
		al = alerting.NewAlertingSystem(j)
	}

	c, err := lru.New[address.Address, address.Address](keyIDCacheSize)
	if err != nil {
		return nil, xerrors.Errorf("creating key address cache: %w", err)
	}

	sm := &StateManager{
		cs:          cs,
		ds:          ds,
		msgIndex:    mi,
		inv:         vm.NewInvoker(),
		networkName: networkName,
		keyIDCache:  c,
		journal:     j,
		alerting:    al,
	}

	sm.evtTypes = [...]journal.EventType{
		evtTypeApply:   j.RegisterEventType("stmgr", "apply"),
		evtTypeCall:    j.RegisterEventType("stmgr", "call"),
		evtTypeGenesis: j.RegisterEventType("stmgr", "genesis"),
	}
	sm.indexAlertType = al.AddAlertType("stmgr", "msgindex")

	return sm, nil
}

func (sm *StateManager) ChainStore() *store.ChainStore {
	return sm.cs
}

func (sm *StateManager) NetworkName() string {
	return sm.networkName
}

// Genesis writes the initial state described by template. It is a no-op when
// the chain already has a head.
func (sm *StateManager) Genesis(ctx context.Context, template gentypes.Template) error {
	sm.lk.Lock()
	defer sm.lk.Unlock()

	if h := sm.cs.GetHeaviestHead(); h != nil {
		log.Infow("genesis already applied", "height", h.Height)
		return nil
	}

	if template.Timestamp == 0 {
		template.Timestamp = uint64(build.Clock.Now().Unix())
	}
	if template.NetworkName == "" {
		template.NetworkName = sm.networkName
	}

	st := state.NewStateTree(sm.ds)
	if _, err := genesis.MakeInitialStateTree(ctx, st, template); err != nil {
		return xerrors.Errorf("making genesis state: %w", err)
	}

	head := store.Head{Height: 0, Timestamp: template.Timestamp}

	b, err := sm.ds.Batch(ctx)
	if err != nil {
		return xerrors.Errorf("opening batch: %w", err)
	}
	if err := st.FlushTo(ctx, b); err != nil {
		return xerrors.Errorf("flushing genesis state: %w", err)
	}
	if err := sm.cs.WriteHead(ctx, b, head); err != nil {
		return err
	}
	if err := b.Commit(ctx); err != nil {
		return xerrors.Errorf("committing genesis: %w", err)
	}

	sm.cs.SetHead(ctx, head, nil)

	sm.journal.RecordEvent(sm.evtTypes[evtTypeGenesis], func() interface{} {
		return GenesisEvent{
			NetworkName: template.NetworkName,
			Accounts:    len(template.Accounts),
			Timestamp:   template.Timestamp,
		}
	})
	log.Infow("genesis state created", "network", template.NetworkName, "accounts", len(template.Accounts))
	return nil
}

// nextTimestamp never goes backwards, even if the wall clock does.
func nextTimestamp(head *store.Head) uint64 {
	now := uint64(build.Clock.Now().Unix())
	if now < head.Timestamp {
		return head.Timestamp
	}
	return now
}

// ApplyMessage executes msg on top of the current head and persists the new
// state, the message, its receipt and the new head in a single batch. A
// message that fails inside the VM is still recorded: its sender nonce moves
// and the receipt carries the exit code.
func (sm *StateManager) ApplyMessage(ctx context.Context, msg *types.Message) (*store.MsgLookup, error) {
	sm.lk.Lock()
	defer sm.lk.Unlock()

	head := sm.cs.GetHeaviestHead()
	if head == nil {
		return nil, ErrNoGenesis
	}

	mcid := msg.Cid()
	if _, err := sm.cs.GetMsgLookup(ctx, mcid); err == nil {
		return nil, xerrors.Errorf("message %s: %w", mcid, ErrMessageAlreadyApplied)
	} else if !errors.Is(err, datastore.ErrNotFound) {
		return nil, xerrors.Errorf("checking for previous application: %w", err)
	}

	next := store.Head{
		Height:    head.Height + 1,
		Timestamp: nextTimestamp(head),
	}

	st := state.NewStateTree(sm.ds)
	vmi := vm.NewVM(st, next.Height, next.Timestamp, sm.inv)

	ret, err := vmi.ApplyMessage(ctx, msg)
	if err != nil {
		return nil, xerrors.Errorf("applying message %s: %w", mcid, err)
	}

	fromID, _ := st.LookupID(msg.From)
	toID, _ := st.LookupID(msg.To)
	actorName := "<unknown>"
	if toID != address.Undef {
		if act, err := st.GetActor(toID); err == nil {
			actorName = actors.ActorNameByCode(act.Code)
		}
	}

	mctx, _ := tag.New(ctx,
		tag.Upsert(metrics.Actor, actorName),
		tag.Upsert(metrics.Method, msg.Method.String()),
		tag.Upsert(metrics.ExitCode, actors.ExitCodeName(ret.ExitCode)),
	)
	stats.Record(mctx,
		metrics.MessageApplied.M(1),
		metrics.MessageApplyDuration.M(float64(ret.Duration.Microseconds())/1000),
		metrics.MessageParamsSize.M(int64(len(msg.Params))),
	)

	lookup := &store.MsgLookup{
		Message:   mcid,
		Receipt:   ret.MessageReceipt,
		Height:    next.Height,
		Timestamp: next.Timestamp,
	}

	if err := sm.commit(ctx, st, msg, lookup, next); err != nil {
		return nil, err
	}

	sm.cs.SetHead(ctx, next, lookup)

	sm.indexMessage(ctx, msgindex.MsgInfo{
		Message:   mcid,
		From:      orAddr(fromID, msg.From),
		To:        orAddr(toID, msg.To),
		Nonce:     msg.Nonce,
		Method:    msg.Method,
		ExitCode:  ret.ExitCode,
		Height:    next.Height,
		Timestamp: next.Timestamp,
	})

	sm.journal.RecordEvent(sm.evtTypes[evtTypeApply], func() interface{} {
		return ApplyEvent{
			Message:   mcid.String(),
			From:      msg.From,
			To:        msg.To,
			Method:    msg.Method,
			ExitCode:  actors.ExitCodeName(ret.ExitCode),
			Height:    next.Height,
			Timestamp: next.Timestamp,
		}
	})

	return lookup, nil
}

func (sm *StateManager) commit(ctx context.Context, st *state.StateTree, msg *types.Message, lookup *store.MsgLookup, head store.Head) error {
	defer metrics.Timer(ctx, metrics.VMFlushDuration)()

	b, err := sm.ds.Batch(ctx)
	if err != nil {
		return xerrors.Errorf("opening batch: %w", err)
	}
	if err := st.FlushTo(ctx, b); err != nil {
		return xerrors.Errorf("flushing state: %w", err)
	}
	if _, err := sm.cs.PutMessage(ctx, b, msg); err != nil {
		return err
	}
	if err := sm.cs.PutMsgLookup(ctx, b, lookup); err != nil {
		return xerrors.Errorf("storing receipt: %w", err)
	}
	if err := sm.cs.WriteHead(ctx, b, head); err != nil {
		return err
	}
	if err := b.Commit(ctx); err != nil {
		return xerrors.Errorf("committing message %s: %w", lookup.Message, err)
	}
	return nil
}

// indexMessage is best effort: the receipt is already durable, so a failing
// index only degrades StateListMessages.
func (sm *StateManager) indexMessage(ctx context.Context, info msgindex.MsgInfo) {
	if err := sm.msgIndex.IndexMessage(ctx, info); err != nil {
		log.Errorw("failed to index message", "message", info.Message, "error", err)
		stats.Record(ctx, metrics.MsgIndexWriteFailures.M(1))
		sm.alerting.Raise(sm.indexAlertType, map[string]string{
			"message": info.Message.String(),
			"error":   err.Error(),
		})
		sm.indexAlertRaise = true
		return
	}

	if sm.indexAlertRaise {
		sm.alerting.Resolve(sm.indexAlertType, map[string]string{
			"message": "message index writes recovered",
		})
		sm.indexAlertRaise = false
	}
}

func orAddr(a, fallback address.Address) address.Address {
	if a == address.Undef {
		return fallback
	}
	return a
}

// GetActor loads an actor by any of its addresses.
func (sm *StateManager) GetActor(ctx context.Context, addr address.Address) (*types.Actor, error) {
	sm.lk.RLock()
	defer sm.lk.RUnlock()

	st := state.NewStateTree(sm.ds)
	id, err := sm.lookupID(st, addr)
	if err != nil {
		return nil, err
	}
	return st.GetActor(id)
}

// LookupID resolves addr to its ID address.
func (sm *StateManager) LookupID(ctx context.Context, addr address.Address) (address.Address, error) {
	sm.lk.RLock()
	defer sm.lk.RUnlock()

	return sm.lookupID(state.NewStateTree(sm.ds), addr)
}

func (sm *StateManager) lookupID(st *state.StateTree, addr address.Address) (address.Address, error) {
	if addr.Protocol() == address.ID {
		return addr, nil
	}
	if id, ok := sm.keyIDCache.Get(addr); ok {
		return id, nil
	}

	id, err := st.LookupID(addr)
	if err != nil {
		return address.Undef, err
	}
	sm.keyIDCache.Add(addr, id)
	return id, nil
}

// ResolveToKeyAddress returns the key address an account actor was created
// for. Key addresses resolve to themselves.
func (sm *StateManager) ResolveToKeyAddress(ctx context.Context, addr address.Address) (address.Address, error) {
	switch addr.Protocol() {
	case address.BLS, address.SECP256K1:
		return addr, nil
	case address.Actor:
		return address.Undef, xerrors.New("cannot resolve actor address to key address")
	default:
	}

	var ast actors.AccountActorState
	if err := sm.LoadActorState(ctx, addr, &ast, actors.AccountCodeCid); err != nil {
		return address.Undef, xerrors.Errorf("resolving %s to key address: %w", addr, err)
	}
	return ast.Address, nil
}

// LoadActorState decodes the singleton state record of the actor at addr into
// out. If code is defined the actor must be of that type.
func (sm *StateManager) LoadActorState(ctx context.Context, addr address.Address, out cbg.CBORUnmarshaler, code cid.Cid) error {
	sm.lk.RLock()
	defer sm.lk.RUnlock()

	st := state.NewStateTree(sm.ds)
	id, err := sm.lookupID(st, addr)
	if err != nil {
		return err
	}
	act, err := st.GetActor(id)
	if err != nil {
		return err
	}
	if code.Defined() && act.Code != code {
		return xerrors.Errorf("actor %s is a %s, not a %s", addr, actors.ActorNameByCode(act.Code), actors.ActorNameByCode(code))
	}

	b, found, err := st.StorageGet(id, actors.StateKey)
	if err != nil {
		return xerrors.Errorf("loading state of %s: %w", addr, err)
	}
	if !found {
		return xerrors.Errorf("actor %s has no state", addr)
	}
	if err := out.UnmarshalCBOR(bytes.NewReader(b)); err != nil {
		return xerrors.Errorf("decoding state of %s: %w", addr, err)
	}
	return nil
}

// ListActors returns the ID addresses of every actor in the state.
func (sm *StateManager) ListActors(ctx context.Context) ([]address.Address, error) {
	sm.lk.RLock()
	defer sm.lk.RUnlock()

	return state.NewStateTree(sm.ds).ListActors(ctx)
}

// ListMessages returns the indexed messages sent or received by addr.
func (sm *StateManager) ListMessages(ctx context.Context, addr address.Address, limit int) ([]msgindex.MsgInfo, error) {
	id, err := sm.LookupID(ctx, addr)
	if err != nil {
		return nil, xerrors.Errorf("resolving %s: %w", addr, err)
	}
	return sm.msgIndex.ListMessages(ctx, id, limit)
}
