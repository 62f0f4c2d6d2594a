package types

import (
	"github.com/filecoin-project/go-address"
)

// Transfer records value that moved between two actors while a message was
// applied.
type Transfer struct {
	From   address.Address
	To     address.Address
	Amount Coins
}

func (t *Transfer) Equals(o *Transfer) bool {
	if t.From != o.From || t.To != o.To || len(t.Amount) != len(o.Amount) {
		return false
	}
	for i := range t.Amount {
		if !t.Amount[i].Equals(o.Amount[i]) {
			return false
		}
	}
	return true
}
