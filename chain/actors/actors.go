package actors

import (
	"bytes"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	cbg "github.com/whyrusleeping/cbor-gen"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors/aerrors"
)

var (
	SystemCodeCid  = makeBuiltin("escrow/1/system")
	InitCodeCid    = makeBuiltin("escrow/1/init")
	AccountCodeCid = makeBuiltin("escrow/1/account")
	EscrowCodeCid  = makeBuiltin("escrow/1/escrow")
	FaucetCodeCid  = makeBuiltin("escrow/1/faucet")
	KVStoreCodeCid = makeBuiltin("escrow/1/kvstore")
)

var (
	SystemAddress = mustIDAddress(0)
	InitAddress   = mustIDAddress(1)
)

var BuiltInActors map[cid.Cid]string
var singletonActors map[cid.Cid]bool

func init() {
	BuiltInActors = map[cid.Cid]string{
		SystemCodeCid:  "system",
		InitCodeCid:    "init",
		AccountCodeCid: "account",
		EscrowCodeCid:  "escrow",
		FaucetCodeCid:  "faucet",
		KVStoreCodeCid: "kvstore",
	}

	singletonActors = map[cid.Cid]bool{
		SystemCodeCid:  true,
		InitCodeCid:    true,
		AccountCodeCid: true,
	}
}

func IsBuiltinActor(code cid.Cid) bool {
	_, ok := BuiltInActors[code]
	return ok
}

// IsSingletonActor reports whether instances of code can only be created by
// the system, never through the init actor.
func IsSingletonActor(code cid.Cid) bool {
	return singletonActors[code]
}

// ActorNameByCode returns the human readable name of a builtin actor code.
func ActorNameByCode(code cid.Cid) string {
	if n, ok := BuiltInActors[code]; ok {
		return n
	}
	return "<unknown>"
}

// CodeByName is the inverse of ActorNameByCode.
func CodeByName(name string) (cid.Cid, bool) {
	for c, n := range BuiltInActors {
		if n == name {
			return c, true
		}
	}
	return cid.Undef, false
}

func SerializeParams(i cbg.CBORMarshaler) ([]byte, aerrors.ActorError) {
	buf := new(bytes.Buffer)
	if err := i.MarshalCBOR(buf); err != nil {
		return nil, aerrors.Absorb(err, exitcode.ErrSerialization, "failed to encode parameter")
	}
	return buf.Bytes(), nil
}

func makeBuiltin(s string) cid.Cid {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	c, err := builder.Sum([]byte(s))
	if err != nil {
		panic(err) // ok
	}
	return c
}

func mustIDAddress(i uint64) address.Address {
	a, err := address.NewIDAddress(i)
	if err != nil {
		panic(err) // ok
	}
	return a
}
