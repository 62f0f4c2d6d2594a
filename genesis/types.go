package genesis

import (
	"github.com/filecoin-project/go-address"

	"github.com/filecoin-project/lotus-escrow/chain/types"
)

// Actor is a key account funded at genesis.
type Actor struct {
	Address address.Address
	Balance types.Coins
}

type Template struct {
	NetworkName string
	Accounts    []Actor

	// Timestamp seeds the logical clock of the genesis state.
	Timestamp uint64
}
