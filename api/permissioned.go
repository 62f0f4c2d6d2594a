package api

import (
	"github.com/filecoin-project/go-jsonrpc/auth"
)

// Permissions are ordered, each one implies the ones before it in
// AllPermissions when tokens are minted by the CLI.
const (
	// PermRead covers queries: escrow config, balances, message lookups.
	PermRead auth.Permission = "read"
	// PermWrite covers wallet bookkeeping that moves no funds.
	PermWrite auth.Permission = "write"
	// PermSign allows sending messages from wallet keys, including every
	// escrow, faucet and kv operation.
	PermSign auth.Permission = "sign"
	// PermAdmin allows key export and import, token minting and shutdown.
	PermAdmin auth.Permission = "admin"
)

var (
	AllPermissions = []auth.Permission{PermRead, PermWrite, PermSign, PermAdmin}
	DefaultPerms   = []auth.Permission{PermRead}
)

// PermissionedFullAPI wraps a so that each method checks the permission of
// its perm tag against the caller's token.
func PermissionedFullAPI(a FullNode) FullNode {
	var out FullNodeStruct
	for _, o := range GetInternalStructs(&out) {
		auth.PermissionedProxy(AllPermissions, DefaultPerms, a, o)
	}
	return &out
}
