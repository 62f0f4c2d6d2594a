package actors

import (
	"bytes"
	"encoding/binary"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

var log = logging.Logger("actors")

// InitActor creates new actor instances and hands out their ID addresses.
type InitActor struct{}

type ExecParams struct {
	Code   cid.Cid
	Params []byte
}

type ExecReturn struct {
	IDAddress     address.Address
	RobustAddress address.Address
}

func (ia InitActor) Exports() []interface{} {
	return []interface{}{
		2: ia.Exec,
		3: ia.GetIdForAddress,
	}
}

type iaMethods struct {
	Exec            abi.MethodNum
	GetIdForAddress abi.MethodNum
}

var IAMethods = iaMethods{2, 3}

func (ia InitActor) Exec(act *types.Actor, vmctx types.VMContext, p *ExecParams) ([]byte, aerrors.ActorError) {
	if !IsBuiltinActor(p.Code) {
		return nil, aerrors.Newf(exitcode.ErrIllegalArgument, "cannot launch actor instance that is not a builtin actor (%s)", p.Code)
	}

	if IsSingletonActor(p.Code) {
		return nil, aerrors.Newf(exitcode.ErrForbidden, "cannot launch another %s actor", ActorNameByCode(p.Code))
	}

	// Compute a re-org-stable address.
	// This address exists for use by messages coming from outside the system, in order to
	// stably address the newly created actor even if a chain re-org causes it to end up with
	// a different ID.
	creator := vmctx.Origin()
	nonce := vmctx.Message().Nonce
	addr, err := ComputeActorAddress(creator, nonce)
	if err != nil {
		return nil, aerrors.Escalate(err, "computing actor address")
	}

	st, aerr := vmctx.StateTree()
	if aerr != nil {
		return nil, aerr
	}

	idAddr, err := st.RegisterNewAddress(addr)
	if err != nil {
		return nil, aerrors.Escalate(err, "registering new actor address")
	}

	if err := st.SetActor(idAddr, &types.Actor{Code: p.Code}); err != nil {
		return nil, aerrors.Escalate(err, "inserting new actor into state tree")
	}

	// the constructor gets every coin sent along with Exec
	if _, aerr := vmctx.Send(idAddr, MethodConstructor, vmctx.Message().Funds, p.Params); aerr != nil {
		return nil, aerrors.Wrapf(aerr, "constructing %s actor", ActorNameByCode(p.Code))
	}

	log.Debugw("created actor", "code", ActorNameByCode(p.Code), "id", idAddr, "robust", addr, "creator", creator)

	return SerializeParams(&ExecReturn{
		IDAddress:     idAddr,
		RobustAddress: addr,
	})
}

func (ia InitActor) GetIdForAddress(act *types.Actor, vmctx types.VMContext, p *address.Address) ([]byte, aerrors.ActorError) {
	id, err := vmctx.LookupID(*p)
	if err != nil {
		if xerrors.Is(err, types.ErrActorNotFound) {
			return nil, aerrors.Newf(exitcode.ErrNotFound, "address %s has no ID", p)
		}
		return nil, aerrors.Escalate(err, "looking up ID address")
	}
	return SerializeParams(&id)
}

func ComputeActorAddress(creator address.Address, nonce uint64) (address.Address, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.Write(creator.Bytes()); err != nil {
		return address.Undef, err
	}

	if err := binary.Write(buf, binary.BigEndian, nonce); err != nil {
		return address.Undef, err
	}

	return address.NewActorAddress(buf.Bytes())
}
