package full

import (
	"bytes"
	"context"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var log = logging.Logger("fullnode")

// actorClient is the part of the node API the builtin actor helpers drive.
type actorClient interface {
	MpoolPushMessage(ctx context.Context, msg *types.Message, spec *api.MessageSendSpec) (*types.SignedMessage, error)
	StateWaitMsg(ctx context.Context, msg cid.Cid) (*api.MsgLookup, error)
	StateCall(ctx context.Context, msg *types.Message) (*api.InvocResult, error)
}

type nodeClient struct {
	*MpoolAPI
	*StateAPI
}

// pushAndWait sends msg from the node wallet and returns its receipt. Failed
// receipts are returned as is, callers inspect the exit code.
func pushAndWait(ctx context.Context, c actorClient, msg *types.Message) (*api.MsgLookup, error) {
	smsg, err := c.MpoolPushMessage(ctx, msg, nil)
	if err != nil {
		return nil, err
	}

	ml, err := c.StateWaitMsg(ctx, smsg.Cid())
	if err != nil {
		return nil, xerrors.Errorf("waiting for message %s: %w", smsg.Cid(), err)
	}
	return ml, nil
}

// createActor instantiates a builtin actor through the init actor. funds go
// to the new actor's constructor.
func createActor(ctx context.Context, c actorClient, from address.Address, code cid.Cid, params cbg.CBORMarshaler, funds types.Coins) (*api.ActorCreated, error) {
	var enc []byte
	if params != nil {
		var aerr error
		if enc, aerr = serialize(params); aerr != nil {
			return nil, xerrors.Errorf("serializing constructor params: %w", aerr)
		}
	}

	execParams, err := serialize(&actors.ExecParams{
		Code:   code,
		Params: enc,
	})
	if err != nil {
		return nil, xerrors.Errorf("serializing exec params: %w", err)
	}

	ml, err := pushAndWait(ctx, c, &types.Message{
		From:   from,
		To:     actors.InitAddress,
		Method: actors.IAMethods.Exec,
		Params: execParams,
		Funds:  funds,
	})
	if err != nil {
		return nil, err
	}
	if ml.Receipt.ExitCode != exitcode.Ok {
		return nil, api.NewErrActorFailed(ml)
	}

	var ret actors.ExecReturn
	if err := ret.UnmarshalCBOR(bytes.NewReader(ml.Receipt.Return)); err != nil {
		return nil, xerrors.Errorf("decoding exec return: %w", err)
	}

	log.Infow("actor created", "code", actors.ActorNameByCode(code), "id", ret.IDAddress, "robust", ret.RobustAddress, "from", from)

	return &api.ActorCreated{
		Message:       ml.Message,
		IDAddress:     ret.IDAddress,
		RobustAddress: ret.RobustAddress,
	}, nil
}

// callActor runs a read-only method and decodes its return into out.
func callActor(ctx context.Context, c actorClient, to address.Address, method abi.MethodNum, params cbg.CBORMarshaler, out cbg.CBORUnmarshaler) error {
	var enc []byte
	if params != nil {
		var err error
		if enc, err = serialize(params); err != nil {
			return xerrors.Errorf("serializing params: %w", err)
		}
	}

	res, err := c.StateCall(ctx, &types.Message{
		To:     to,
		Method: method,
		Params: enc,
	})
	if err != nil {
		return err
	}
	if res.MsgRct.ExitCode != exitcode.Ok {
		return xerrors.Errorf("calling method %d on %s failed with exit code %d (%s): %s",
			method, to, res.MsgRct.ExitCode, actors.ExitCodeName(res.MsgRct.ExitCode), res.Error)
	}

	if err := out.UnmarshalCBOR(bytes.NewReader(res.MsgRct.Return)); err != nil {
		return xerrors.Errorf("decoding return of method %d: %w", method, err)
	}
	return nil
}

func serialize(v cbg.CBORMarshaler) ([]byte, error) {
	enc, aerr := actors.SerializeParams(v)
	if aerr != nil {
		return nil, aerr
	}
	return enc, nil
}
