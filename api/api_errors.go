package api

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/filecoin-project/go-jsonrpc"
)

const (
	EActorNotFound = iota + jsonrpc.FirstUserCode
	EActorFailed
	EMessageRejected
)

var (
	RPCErrors = jsonrpc.NewErrors()

	_ error = (*ErrActorNotFound)(nil)
	_ error = (*ErrActorFailed)(nil)
	_ error = (*ErrMessageRejected)(nil)
)

func init() {
	RPCErrors.Register(EActorNotFound, new(*ErrActorNotFound))
	RPCErrors.Register(EActorFailed, new(*ErrActorFailed))
	RPCErrors.Register(EMessageRejected, new(*ErrMessageRejected))
}

func ErrorIsIn(err error, errorTypes []error) bool {
	for _, etype := range errorTypes {
		tmp := reflect.New(reflect.PointerTo(reflect.ValueOf(etype).Elem().Type())).Interface()
		if errors.As(err, tmp) {
			return true
		}
	}
	return false
}

// ErrActorNotFound signals that the actor is not found.
type ErrActorNotFound struct{}

func (ErrActorNotFound) Error() string { return "actor not found" }

// ErrActorFailed signals that a message was applied but the receiving actor
// returned a non-zero exit code. Only helpers that need the actor's return
// value to proceed report it; plain pushes carry the code in the receipt.
type ErrActorFailed struct {
	Message string
}

func NewErrActorFailed(ml *MsgLookup) *ErrActorFailed {
	return &ErrActorFailed{
		Message: fmt.Sprintf("message %s failed with exit code %d (%s)", ml.Message, ml.Receipt.ExitCode, ml.ExitCodeName()),
	}
}

func (e *ErrActorFailed) Error() string { return e.Message }

// ErrMessageRejected signals that the message pool refused a message before
// it reached the chain.
type ErrMessageRejected struct {
	Reason string
}

func (e *ErrMessageRejected) Error() string { return "message rejected: " + e.Reason }
