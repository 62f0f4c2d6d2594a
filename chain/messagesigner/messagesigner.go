package messagesigner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/crypto"

	"github.com/filecoin-project/lotus-escrow/chain/messagepool"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var log = logging.Logger("messagesigner")

type Wallet interface {
	WalletSign(ctx context.Context, addr address.Address, msg []byte) (*crypto.Signature, error)
}

type KeyResolver interface {
	ResolveToKeyAddress(ctx context.Context, addr address.Address) (address.Address, error)
}

// MessageSigner assigns nonces to locally created messages, signs them with
// the node wallet and pushes them. Messages pushed with a UUID are remembered,
// so retrying a push returns the original message instead of sending twice.
type MessageSigner struct {
	wallet   Wallet
	mpool    *messagepool.MessagePool
	resolver KeyResolver
	ds       datastore.Batching
}

func NewMessageSigner(wallet Wallet, mpool *messagepool.MessagePool, resolver KeyResolver, ds datastore.Batching) *MessageSigner {
	ds = namespace.Wrap(ds, datastore.NewKey("/message-signer/"))
	return &MessageSigner{
		wallet:   wallet,
		mpool:    mpool,
		resolver: resolver,
		ds:       ds,
	}
}

// SignMessage fills in the next nonce of msg.From, signs msg and pushes it.
func (ms *MessageSigner) SignMessage(ctx context.Context, msg *types.Message, msgUuid uuid.UUID) (*types.SignedMessage, error) {
	if msgUuid != uuid.Nil {
		if sm, err := ms.GetSignedMessage(ctx, msgUuid); err == nil {
			log.Infow("message already pushed", "uuid", msgUuid, "cid", sm.Cid())
			return sm, nil
		} else if !errors.Is(err, datastore.ErrNotFound) {
			return nil, err
		}
	}

	keyAddr, err := ms.resolver.ResolveToKeyAddress(ctx, msg.From)
	if err != nil {
		return nil, xerrors.Errorf("resolving sender key address: %w", err)
	}

	smsg, _, err := ms.mpool.PushWithNonce(ctx, msg.From, func(nonce uint64) (*types.SignedMessage, error) {
		msg.Nonce = nonce

		sig, err := ms.wallet.WalletSign(ctx, keyAddr, msg.SigningBytes())
		if err != nil {
			return nil, xerrors.Errorf("failed to sign message: %w", err)
		}

		return &types.SignedMessage{
			Message:   *msg,
			Signature: *sig,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if msgUuid != uuid.Nil {
		if err := ms.storeSignedMessage(ctx, msgUuid, smsg); err != nil {
			// the message is applied already, the uuid only guards retries
			log.Errorw("failed to record message uuid", "uuid", msgUuid, "error", err)
		}
	}

	return smsg, nil
}

// GetSignedMessage returns the message pushed with msgUuid. The error wraps
// datastore.ErrNotFound for unknown UUIDs.
func (ms *MessageSigner) GetSignedMessage(ctx context.Context, msgUuid uuid.UUID) (*types.SignedMessage, error) {
	b, err := ms.ds.Get(ctx, uuidKey(msgUuid))
	if err != nil {
		return nil, xerrors.Errorf("message with uuid %s: %w", msgUuid, err)
	}
	return types.DecodeSignedMessage(b)
}

func (ms *MessageSigner) storeSignedMessage(ctx context.Context, msgUuid uuid.UUID, smsg *types.SignedMessage) error {
	b, err := smsg.Serialize()
	if err != nil {
		return err
	}
	return ms.ds.Put(ctx, uuidKey(msgUuid), b)
}

func uuidKey(u uuid.UUID) datastore.Key {
	return datastore.NewKey("uuid").ChildString(u.String())
}
