package repo

import (
	"fmt"

	"github.com/filecoin-project/lotus-escrow/node/config"
)

type RepoType int

const (
	_                 = iota // Default is invalid
	FullNode RepoType = iota
)

func (t RepoType) String() string {
	s := [...]string{
		"__invalid__",
		"FullNode",
	}
	if t < 0 || int(t) >= len(s) {
		return "__invalid__"
	}
	return s[t]
}

// Config returns the default config for the repo type.
func (t RepoType) Config() interface{} {
	switch t {
	case FullNode:
		return config.DefaultFullNode()
	default:
		panic(fmt.Sprintf("unknown RepoType(%d)", int(t)))
	}
}
