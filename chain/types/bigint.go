package types

import (
	"fmt"
	big2 "math/big"

	"github.com/filecoin-project/go-state-types/big"
)

var EmptyInt = BigInt{}

type BigInt = big.Int

func NewInt(i uint64) BigInt {
	return BigInt{Int: big2.NewInt(0).SetUint64(i)}
}

func BigFromString(s string) (BigInt, error) {
	v, ok := big2.NewInt(0).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("failed to parse string as a big int")
	}

	return BigInt{Int: v}, nil
}

func BigAdd(a, b BigInt) BigInt {
	return BigInt{Int: big2.NewInt(0).Add(a.Int, b.Int)}
}

func BigSub(a, b BigInt) BigInt {
	return BigInt{Int: big2.NewInt(0).Sub(a.Int, b.Int)}
}

func BigCmp(a, b BigInt) int {
	return a.Int.Cmp(b.Int)
}
