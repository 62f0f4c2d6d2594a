package escrowmgr

import (
	"bytes"
	"context"
	"sort"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	cbg "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/lotus-escrow/api"
	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var log = logging.Logger("escrowmgr")

// ManagerNodeAPI defines the API methods needed by the escrow manager
type ManagerNodeAPI interface {
	MpoolPushMessage(ctx context.Context, msg *types.Message, spec *api.MessageSendSpec) (*types.SignedMessage, error)
	StateWaitMsg(ctx context.Context, cid cid.Cid) (*api.MsgLookup, error)
	StateCall(ctx context.Context, msg *types.Message) (*api.InvocResult, error)
	StateLookupID(ctx context.Context, addr address.Address) (address.Address, error)
}

// Manager creates escrows on behalf of local wallet addresses and drives
// them through deposit and settlement.
type Manager struct {
	store *Store
	api   ManagerNodeAPI
}

func NewManager(store *Store, api ManagerNodeAPI) *Manager {
	return &Manager{
		store: store,
		api:   api,
	}
}

// Create instantiates an escrow with from as the buyer and starts tracking
// it. A non-zero exit code is returned as *api.ErrActorFailed.
func (m *Manager) Create(ctx context.Context, from, seller address.Address, amount types.Coin, lockTime uint64) (*api.ActorCreated, error) {
	params, aerr := actors.SerializeParams(&actors.EscrowConstructorParams{
		Seller:   seller.String(),
		Amount:   amount,
		LockTime: lockTime,
	})
	if aerr != nil {
		return nil, xerrors.Errorf("serializing constructor params: %w", aerr)
	}

	enc, aerr := actors.SerializeParams(&actors.ExecParams{
		Code:   actors.EscrowCodeCid,
		Params: params,
	})
	if aerr != nil {
		return nil, xerrors.Errorf("serializing exec params: %w", aerr)
	}

	ml, err := m.send(ctx, &types.Message{
		From:   from,
		To:     actors.InitAddress,
		Method: actors.IAMethods.Exec,
		Params: enc,
	})
	if err != nil {
		return nil, err
	}

	var ret actors.ExecReturn
	if err := ret.UnmarshalCBOR(bytes.NewReader(ml.Receipt.Return)); err != nil {
		return nil, xerrors.Errorf("decoding exec return: %w", err)
	}

	buyer, err := m.api.StateLookupID(ctx, from)
	if err != nil {
		return nil, xerrors.Errorf("resolving buyer: %w", err)
	}

	rec := &EscrowRecord{
		Escrow:    ret.IDAddress,
		Robust:    ret.RobustAddress,
		Buyer:     buyer,
		Seller:    seller,
		Amount:    amount,
		Message:   ml.Message,
		CreatedAt: ml.Timestamp,
	}
	if err := m.store.Track(rec); err != nil {
		// the escrow exists on chain either way
		log.Errorw("failed to track escrow", "escrow", ret.IDAddress, "error", err)
	}

	log.Infow("escrow created", "escrow", ret.IDAddress, "buyer", buyer, "seller", seller, "amount", amount)

	return &api.ActorCreated{
		Message:       ml.Message,
		IDAddress:     ret.IDAddress,
		RobustAddress: ret.RobustAddress,
	}, nil
}

// Deposit funds escrow from the buyer. Empty funds attach the configured
// amount.
func (m *Manager) Deposit(ctx context.Context, from, escrow address.Address, funds types.Coins) (*api.MsgLookup, error) {
	if funds.IsZero() {
		cfg, err := m.GetConfig(ctx, escrow)
		if err != nil {
			return nil, err
		}
		funds = types.NewCoins(cfg.Amount)
	}

	return m.push(ctx, &types.Message{
		From:   from,
		To:     escrow,
		Method: actors.EscrowMethods.Deposit,
		Funds:  funds,
	})
}

func (m *Manager) Release(ctx context.Context, from, escrow address.Address) (*api.MsgLookup, error) {
	return m.push(ctx, &types.Message{
		From:   from,
		To:     escrow,
		Method: actors.EscrowMethods.Release,
	})
}

func (m *Manager) Refund(ctx context.Context, from, escrow address.Address) (*api.MsgLookup, error) {
	return m.push(ctx, &types.Message{
		From:   from,
		To:     escrow,
		Method: actors.EscrowMethods.Refund,
	})
}

// GetConfig reads the escrow configuration and status.
func (m *Manager) GetConfig(ctx context.Context, escrow address.Address) (*actors.EscrowConfigResponse, error) {
	var out actors.EscrowConfigResponse
	if err := m.call(ctx, escrow, actors.EscrowMethods.GetConfig, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the tracked escrows, oldest first.
func (m *Manager) List(ctx context.Context) ([]api.EscrowInfo, error) {
	recs, err := m.store.List()
	if err != nil {
		return nil, err
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].CreatedAt != recs[j].CreatedAt {
			return recs[i].CreatedAt < recs[j].CreatedAt
		}
		return recs[i].Escrow.String() < recs[j].Escrow.String()
	})

	out := make([]api.EscrowInfo, 0, len(recs))
	for _, r := range recs {
		out = append(out, api.EscrowInfo{
			Escrow:    r.Escrow,
			Robust:    r.Robust,
			Buyer:     r.Buyer,
			Seller:    r.Seller,
			Amount:    r.Amount,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// push sends msg and returns its receipt, whatever the exit code.
func (m *Manager) push(ctx context.Context, msg *types.Message) (*api.MsgLookup, error) {
	smsg, err := m.api.MpoolPushMessage(ctx, msg, nil)
	if err != nil {
		return nil, err
	}

	ml, err := m.api.StateWaitMsg(ctx, smsg.Cid())
	if err != nil {
		return nil, xerrors.Errorf("waiting for message %s: %w", smsg.Cid(), err)
	}
	return ml, nil
}

// send is push for callers that need a successful receipt.
func (m *Manager) send(ctx context.Context, msg *types.Message) (*api.MsgLookup, error) {
	ml, err := m.push(ctx, msg)
	if err != nil {
		return nil, err
	}
	if !ml.Ok() {
		return nil, api.NewErrActorFailed(ml)
	}
	return ml, nil
}

func (m *Manager) call(ctx context.Context, to address.Address, method abi.MethodNum, out cbg.CBORUnmarshaler) error {
	res, err := m.api.StateCall(ctx, &types.Message{
		To:     to,
		Method: method,
	})
	if err != nil {
		return err
	}
	if res.MsgRct.ExitCode != 0 {
		return xerrors.Errorf("calling method %d on %s failed with exit code %d (%s): %s",
			method, to, res.MsgRct.ExitCode, actors.ExitCodeName(res.MsgRct.ExitCode), res.Error)
	}
	if err := out.UnmarshalCBOR(bytes.NewReader(res.MsgRct.Return)); err != nil {
		return xerrors.Errorf("decoding return of method %d: %w", method, err)
	}
	return nil
}
