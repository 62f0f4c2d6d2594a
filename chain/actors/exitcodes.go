package actors

import (
	"github.com/filecoin-project/go-state-types/exitcode"
)

// Exit codes returned by the builtin actors. Callers branch on these, so the
// values are part of the API.
const (
	ErrUnauthorized      = exitcode.ErrForbidden
	ErrInsufficientFunds = exitcode.ErrInsufficientFunds
)

const (
	ErrInvalidAddress exitcode.ExitCode = exitcode.FirstActorSpecificExitCode + iota
	ErrAlreadyFunded
	ErrNotFunded
	ErrExpired
	ErrNotExpired
	ErrClaimCooldownNotExpired
	ErrKeyAlreadyExists
	ErrKeyNotFound
)

var exitCodeNames = map[exitcode.ExitCode]string{
	exitcode.Ok:                "Ok",
	ErrUnauthorized:            "Unauthorized",
	ErrInsufficientFunds:       "InsufficientFunds",
	ErrInvalidAddress:          "InvalidAddress",
	ErrAlreadyFunded:           "AlreadyFunded",
	ErrNotFunded:               "NotFunded",
	ErrExpired:                 "Expired",
	ErrNotExpired:              "NotExpired",
	ErrClaimCooldownNotExpired: "ClaimCooldownNotExpired",
	ErrKeyAlreadyExists:        "KeyAlreadyExists",
	ErrKeyNotFound:             "KeyNotFound",
}

// ExitCodeName renders an exit code by the error kind it stands for.
func ExitCodeName(code exitcode.ExitCode) string {
	if n, ok := exitCodeNames[code]; ok {
		return n
	}
	return code.String()
}
