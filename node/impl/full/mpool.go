package full

import (
	"context"

	"github.com/google/uuid"
	"github.com/ipfs/go-cid"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/messagepool"
	"github.com/filecoin-project/lotus-escrow/chain/messagesigner"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

type MpoolAPI struct {
	fx.In

	Mpool         *messagepool.MessagePool
	MessageSigner *messagesigner.MessageSigner
}

func (a *MpoolAPI) MpoolPush(ctx context.Context, smsg *types.SignedMessage) (cid.Cid, error) {
	if _, err := a.Mpool.Push(ctx, smsg); err != nil {
		return cid.Undef, rejected(err)
	}
	return smsg.Cid(), nil
}

func (a *MpoolAPI) MpoolPushMessage(ctx context.Context, msg *types.Message, spec *api.MessageSendSpec) (*types.SignedMessage, error) {
	cp := *msg
	msg = &cp
	inMsg := *msg

	if msg.Nonce != 0 {
		return nil, xerrors.Errorf("MpoolPushMessage expects message nonce to be 0, was %d", msg.Nonce)
	}

	msgUuid := uuid.Nil
	if spec != nil {
		msgUuid = spec.MsgUuid
	}

	smsg, err := a.MessageSigner.SignMessage(ctx, msg, msgUuid)
	if err != nil {
		return nil, rejected(xerrors.Errorf("mpool push: %w", err))
	}

	if msgUuid != uuid.Nil {
		// a retried push returns the first message; make sure it is the same one
		inMsg.Nonce = smsg.Message.Nonce
		if inMsg.Cid() != smsg.Message.Cid() {
			return nil, xerrors.Errorf("message with uuid %s was pushed with different content", msgUuid)
		}
	}

	return smsg, nil
}

func (a *MpoolAPI) MpoolGetNonce(ctx context.Context, addr address.Address) (uint64, error) {
	return a.Mpool.GetNonce(ctx, addr)
}

func (a *MpoolAPI) MpoolSub(ctx context.Context) (<-chan api.MpoolUpdate, error) {
	return a.Mpool.Updates(ctx)
}

// rejected turns pool validation failures into ErrMessageRejected so RPC
// clients can tell them apart from transport errors.
func rejected(err error) error {
	for _, e := range []error{
		messagepool.ErrMessageTooBig,
		messagepool.ErrNonceTooLow,
		messagepool.ErrNonceGap,
		messagepool.ErrNotEnoughFunds,
		messagepool.ErrInvalidToAddr,
		messagepool.ErrUnknownSender,
		messagepool.ErrInvalidSignature,
	} {
		if xerrors.Is(err, e) {
			return &api.ErrMessageRejected{Reason: err.Error()}
		}
	}
	return err
}
