package store

import (
	"bytes"
	"context"
	"sync"

	"github.com/filecoin-project/pubsub"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ipfs/go-cid"
	dstore "github.com/ipfs/go-datastore"
	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/stats"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/metrics"
)

var log = logging.Logger("chainstore")

var (
	chainHeadKey = dstore.NewKey("/chain/head")
	msgPrefix    = dstore.NewKey("/chain/msgs")
	lookupPrefix = dstore.NewKey("/chain/lookups")
)

const headChangeTopic = "headchange"

const DefaultMsgLookupCacheSize = 4096

// Head is the tip of the local chain: how many messages have been applied and
// the logical time of the latest one.
type Head struct {
	Height    abi.ChainEpoch
	Timestamp uint64
}

// MsgLookup is the persisted outcome of an applied message.
type MsgLookup struct {
	Message   cid.Cid
	Receipt   types.MessageReceipt
	Height    abi.ChainEpoch
	Timestamp uint64
}

// HeadChange is published every time a message is applied.
type HeadChange struct {
	Head    Head
	Applied *MsgLookup
}

// ChainStore persists applied messages, their receipts and the chain head in
// the metadata datastore. State lives in the same datastore, so one batch can
// carry a whole message application.
type ChainStore struct {
	ds dstore.Batching

	heaviestLk sync.RWMutex
	heaviest   *Head

	bestTips *pubsub.PubSub
	pubLk    sync.Mutex

	lookupCache *lru.Cache[cid.Cid, *MsgLookup]
}

func NewChainStore(ds dstore.Batching) *ChainStore {
	c, err := lru.New[cid.Cid, *MsgLookup](DefaultMsgLookupCacheSize)
	if err != nil {
		panic(err) // ok
	}

	return &ChainStore{
		ds:          ds,
		bestTips:    pubsub.New(64),
		lookupCache: c,
	}
}

func (cs *ChainStore) Close() error {
	cs.bestTips.Shutdown()
	return nil
}

// Load reads the persisted head. A store that never saw genesis has no head.
func (cs *ChainStore) Load(ctx context.Context) error {
	b, err := cs.ds.Get(ctx, chainHeadKey)
	if err == dstore.ErrNotFound {
		log.Warn("no previous chain state found")
		return nil
	}
	if err != nil {
		return xerrors.Errorf("failed to load chain state from datastore: %w", err)
	}

	var h Head
	if err := h.UnmarshalCBOR(bytes.NewReader(b)); err != nil {
		return xerrors.Errorf("failed to decode chain head: %w", err)
	}

	cs.heaviestLk.Lock()
	cs.heaviest = &h
	cs.heaviestLk.Unlock()

	log.Infow("loaded chain head", "height", h.Height, "timestamp", h.Timestamp)
	return nil
}

// GetHeaviestHead returns the current head, or nil before genesis.
func (cs *ChainStore) GetHeaviestHead() *Head {
	cs.heaviestLk.RLock()
	defer cs.heaviestLk.RUnlock()
	if cs.heaviest == nil {
		return nil
	}
	h := *cs.heaviest
	return &h
}

func (cs *ChainStore) PutMessage(ctx context.Context, w dstore.Write, m *types.Message) (cid.Cid, error) {
	b, err := m.Serialize()
	if err != nil {
		return cid.Undef, xerrors.Errorf("serializing message: %w", err)
	}

	c := m.Cid()
	if err := w.Put(ctx, msgPrefix.ChildString(c.String()), b); err != nil {
		return cid.Undef, xerrors.Errorf("storing message %s: %w", c, err)
	}
	return c, nil
}

func (cs *ChainStore) GetMessage(ctx context.Context, c cid.Cid) (*types.Message, error) {
	b, err := cs.ds.Get(ctx, msgPrefix.ChildString(c.String()))
	if err != nil {
		return nil, xerrors.Errorf("loading message %s: %w", c, err)
	}
	return types.DecodeMessage(b)
}

func (cs *ChainStore) PutMsgLookup(ctx context.Context, w dstore.Write, l *MsgLookup) error {
	buf := new(bytes.Buffer)
	if err := l.MarshalCBOR(buf); err != nil {
		return xerrors.Errorf("serializing message lookup: %w", err)
	}
	return w.Put(ctx, lookupPrefix.ChildString(l.Message.String()), buf.Bytes())
}

// GetMsgLookup returns the receipt of an applied message. The error wraps
// datastore.ErrNotFound if the message was never applied.
func (cs *ChainStore) GetMsgLookup(ctx context.Context, c cid.Cid) (*MsgLookup, error) {
	if l, ok := cs.lookupCache.Get(c); ok {
		return l, nil
	}

	b, err := cs.ds.Get(ctx, lookupPrefix.ChildString(c.String()))
	if err != nil {
		return nil, xerrors.Errorf("loading receipt for %s: %w", c, err)
	}

	var l MsgLookup
	if err := l.UnmarshalCBOR(bytes.NewReader(b)); err != nil {
		return nil, xerrors.Errorf("decoding receipt for %s: %w", c, err)
	}

	cs.lookupCache.Add(c, &l)
	return &l, nil
}

func (cs *ChainStore) WriteHead(ctx context.Context, w dstore.Write, h Head) error {
	buf := new(bytes.Buffer)
	if err := h.MarshalCBOR(buf); err != nil {
		return xerrors.Errorf("failed to marshal chain head: %w", err)
	}

	if err := w.Put(ctx, chainHeadKey, buf.Bytes()); err != nil {
		return xerrors.Errorf("failed to write chain head to datastore: %w", err)
	}
	return nil
}

// SetHead updates the in-memory head once the batch carrying it has been
// committed, and notifies subscribers.
func (cs *ChainStore) SetHead(ctx context.Context, h Head, applied *MsgLookup) {
	cs.pubLk.Lock()
	defer cs.pubLk.Unlock()

	cs.heaviestLk.Lock()
	cs.heaviest = &h
	cs.heaviestLk.Unlock()

	if applied != nil {
		cs.lookupCache.Add(applied.Message, applied)
	}

	stats.Record(ctx, metrics.ChainNodeHeight.M(int64(h.Height)))
	cs.bestTips.Pub(&HeadChange{Head: h, Applied: applied}, headChangeTopic)
}

// SubHeadChanges streams head changes until ctx is cancelled. The current
// head, if any, is delivered first with no applied message.
func (cs *ChainStore) SubHeadChanges(ctx context.Context) chan *HeadChange {
	cs.pubLk.Lock()
	subch := cs.bestTips.Sub(headChangeTopic)
	head := cs.GetHeaviestHead()
	cs.pubLk.Unlock()

	out := make(chan *HeadChange, 16)
	if head != nil {
		out <- &HeadChange{Head: *head}
	}

	go func() {
		defer close(out)
		var unsubOnce sync.Once

		for {
			select {
			case val, ok := <-subch:
				if !ok {
					log.Warn("chain head sub exit loop")
					return
				}
				if len(out) > 0 {
					log.Warnf("head change sub is slow, has %d buffered entries", len(out))
				}
				select {
				case out <- val.(*HeadChange):
				case <-ctx.Done():
				}
			case <-ctx.Done():
				unsubOnce.Do(func() {
					go cs.bestTips.Unsub(subch)
				})
			}
		}
	}()
	return out
}
