package types

import (
	"context"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
)

// Storage is the key-indexed store private to one actor.
type Storage interface {
	// Get loads the value under key into out, reporting whether it existed.
	Get(key string, out cbg.CBORUnmarshaler) (bool, aerrors.ActorError)
	Put(key string, v cbg.CBORMarshaler) aerrors.ActorError
	Has(key string) (bool, aerrors.ActorError)
	Delete(key string) aerrors.ActorError
}

type StateTree interface {
	SetActor(addr address.Address, act *Actor) error
	GetActor(addr address.Address) (*Actor, error)
	LookupID(addr address.Address) (address.Address, error)
	RegisterNewAddress(addr address.Address) (address.Address, error)
}

type VMContext interface {
	// Message returns the message being executed. From is always an ID address.
	Message() *Message
	Origin() address.Address
	Send(to address.Address, method abi.MethodNum, value Coins, params []byte) ([]byte, aerrors.ActorError)
	BlockHeight() abi.ChainEpoch
	// Timestamp is the logical clock, in seconds, shared by every message
	// applied at the current height.
	Timestamp() uint64
	Storage() Storage
	StateTree() (StateTree, aerrors.ActorError)
	LookupID(address.Address) (address.Address, error)
	// ActorExists reports whether addr resolves to an actor in the state.
	ActorExists(address.Address) (bool, aerrors.ActorError)
	GetBalance(address.Address) (Coins, aerrors.ActorError)
	EmitEvent(attrs ...EventAttribute)

	Context() context.Context
}
