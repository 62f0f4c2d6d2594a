package messagepool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/filecoin-project/pubsub"
	lru "github.com/hashicorp/golang-lru/v2"
	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/stats"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/crypto"

	"github.com/filecoin-project/lotus-escrow/build"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/lib/sigs"
	"github.com/filecoin-project/lotus-escrow/metrics"
)

var log = logging.Logger("messagepool")

var (
	ErrMessageTooBig = errors.New("message too big")

	ErrNonceTooLow = errors.New("message nonce too low")

	ErrNonceGap = errors.New("message nonce ahead of sender state")

	ErrNotEnoughFunds = errors.New("not enough funds to execute transaction")

	ErrInvalidToAddr = errors.New("message had invalid to address")

	ErrUnknownSender = errors.New("sender actor not found")

	ErrInvalidSignature = errors.New("invalid message signature")
)

const updatesTopic = "update"

// Provider is the view of the chain the pool needs. The state manager
// implements it.
type Provider interface {
	ApplyMessage(ctx context.Context, msg *types.Message) (*store.MsgLookup, error)
	GetActor(ctx context.Context, addr address.Address) (*types.Actor, error)
	ResolveToKeyAddress(ctx context.Context, addr address.Address) (address.Address, error)
}

type MpoolChange int

const (
	MpoolAdd MpoolChange = iota
	MpoolRemove
)

// MpoolUpdate is published for every message that enters the pool and again
// once it has been applied.
type MpoolUpdate struct {
	Type    MpoolChange
	Message *types.SignedMessage
}

// MessagePool admits signed messages. There is no pending queue: a message
// that passes validation is handed to the sequencer right away, so nonces must
// match the sender state exactly.
type MessagePool struct {
	// lk keeps nonce assignment, validation and application atomic
	lk sync.Mutex

	api Provider

	sigValCache *lru.TwoQueueCache[string, struct{}]

	changes *pubsub.PubSub
}

func New(api Provider) (*MessagePool, error) {
	verifcache, err := lru.New2Q[string, struct{}](build.VerifSigCacheSize)
	if err != nil {
		return nil, xerrors.Errorf("creating signature cache: %w", err)
	}

	return &MessagePool{
		api:         api,
		sigValCache: verifcache,
		changes:     pubsub.New(50),
	}, nil
}

func (mp *MessagePool) Close() error {
	mp.changes.Shutdown()
	return nil
}

// Push validates m and applies it. The returned lookup carries the receipt;
// a message that fails inside the VM is still a successful push.
func (mp *MessagePool) Push(ctx context.Context, m *types.SignedMessage) (*store.MsgLookup, error) {
	done := metrics.Timer(ctx, metrics.MpoolPushDuration)
	defer done()

	mp.lk.Lock()
	defer mp.lk.Unlock()

	return mp.pushLocked(ctx, m)
}

// PushWithNonce assigns the next nonce of addr to a message built and signed
// by cb, then pushes it. No other message from the pool can take the nonce
// in between.
func (mp *MessagePool) PushWithNonce(ctx context.Context, addr address.Address, cb func(uint64) (*types.SignedMessage, error)) (*types.SignedMessage, *store.MsgLookup, error) {
	done := metrics.Timer(ctx, metrics.MpoolPushDuration)
	defer done()

	mp.lk.Lock()
	defer mp.lk.Unlock()

	nonce, err := mp.GetNonce(ctx, addr)
	if err != nil {
		return nil, nil, xerrors.Errorf("get nonce: %w", err)
	}

	m, err := cb(nonce)
	if err != nil {
		return nil, nil, err
	}

	l, err := mp.pushLocked(ctx, m)
	if err != nil {
		return nil, nil, err
	}
	return m, l, nil
}

func (mp *MessagePool) pushLocked(ctx context.Context, m *types.SignedMessage) (*store.MsgLookup, error) {
	stats.Record(ctx, metrics.MessageReceived.M(1))

	if err := mp.checkMessage(ctx, m); err != nil {
		stats.Record(ctx, metrics.MessageValidationFail.M(1))
		return nil, err
	}

	mp.changes.Pub(MpoolUpdate{Type: MpoolAdd, Message: m}, updatesTopic)

	l, err := mp.api.ApplyMessage(ctx, &m.Message)
	if err != nil {
		return nil, xerrors.Errorf("applying message: %w", err)
	}

	mp.changes.Pub(MpoolUpdate{Type: MpoolRemove, Message: m}, updatesTopic)

	log.Debugw("message applied", "cid", l.Message, "from", m.Message.From, "nonce", m.Message.Nonce, "exit", l.Receipt.ExitCode)
	return l, nil
}

func (mp *MessagePool) checkMessage(ctx context.Context, m *types.SignedMessage) error {
	size := m.ChainLength()
	if size > build.MaxMessageSize {
		return xerrors.Errorf("mpool message too large (%dB): %w", size, ErrMessageTooBig)
	}

	if err := m.Message.ValidForApply(); err != nil {
		return xerrors.Errorf("message not valid: %w", err)
	}

	if m.Message.To.Protocol() == address.Actor {
		return ErrInvalidToAddr
	}

	if err := mp.VerifyMsgSig(ctx, m); err != nil {
		return xerrors.Errorf("signature verification failed: %w", err)
	}

	act, err := mp.api.GetActor(ctx, m.Message.From)
	if err != nil {
		if errors.Is(err, types.ErrActorNotFound) {
			return xerrors.Errorf("%s: %w", m.Message.From, ErrUnknownSender)
		}
		return xerrors.Errorf("loading sender: %w", err)
	}

	switch {
	case m.Message.Nonce < act.Nonce:
		return xerrors.Errorf("nonce %d, sender at %d: %w", m.Message.Nonce, act.Nonce, ErrNonceTooLow)
	case m.Message.Nonce > act.Nonce:
		return xerrors.Errorf("nonce %d, sender at %d: %w", m.Message.Nonce, act.Nonce, ErrNonceGap)
	}

	if !act.Balance.IsAllGTE(m.Message.Funds) {
		return xerrors.Errorf("balance %s, needs %s: %w", act.Balance, m.Message.Funds, ErrNotEnoughFunds)
	}

	return nil
}

// VerifyMsgSig checks the signature against the sender's key address.
// Successful verifications are cached by signed message bytes.
func (mp *MessagePool) VerifyMsgSig(ctx context.Context, m *types.SignedMessage) error {
	if m.Signature.Type != crypto.SigTypeSecp256k1 {
		return xerrors.Errorf("unsupported signature type %d: %w", m.Signature.Type, ErrInvalidSignature)
	}

	sck := sigCacheKey(m)
	if _, ok := mp.sigValCache.Get(sck); ok {
		return nil
	}

	from, err := mp.api.ResolveToKeyAddress(ctx, m.Message.From)
	if err != nil {
		return xerrors.Errorf("resolving sender key: %w", err)
	}

	if err := sigs.CheckSignature(ctx, &m.Signature, from, m.Message.SigningBytes()); err != nil {
		return xerrors.Errorf("%v: %w", err, ErrInvalidSignature)
	}

	mp.sigValCache.Add(sck, struct{}{})
	return nil
}

func sigCacheKey(m *types.SignedMessage) string {
	return fmt.Sprintf("%s:%x", m.Cid(), m.Signature.Data)
}

// GetNonce returns the nonce the next message from addr must carry.
func (mp *MessagePool) GetNonce(ctx context.Context, addr address.Address) (uint64, error) {
	act, err := mp.api.GetActor(ctx, addr)
	if err != nil {
		if errors.Is(err, types.ErrActorNotFound) {
			return 0, nil
		}
		return 0, xerrors.Errorf("loading actor %s: %w", addr, err)
	}
	return act.Nonce, nil
}

// Updates streams pool changes until ctx is done.
func (mp *MessagePool) Updates(ctx context.Context) (<-chan MpoolUpdate, error) {
	out := make(chan MpoolUpdate, 20)
	sub := mp.changes.Sub(updatesTopic)

	go func() {
		defer close(out)
		var unsubOnce sync.Once

		for {
			select {
			case u, ok := <-sub:
				if !ok {
					return
				}
				select {
				case out <- u.(MpoolUpdate):
				case <-ctx.Done():
				}
			case <-ctx.Done():
				unsubOnce.Do(func() {
					go mp.changes.Unsub(sub)
				})
			}
		}
	}()

	return out, nil
}
