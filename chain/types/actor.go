package types

import (
	"errors"

	"github.com/ipfs/go-cid"
)

var ErrActorNotFound = errors.New("actor not found")

type Actor struct {
	// Identifies the type of actor (string coded as a CID), see `chain/actors/builtin.go`.
	Code    cid.Cid
	Nonce   uint64
	Balance Coins
}
