package types

import (
	"bytes"

	"github.com/filecoin-project/go-state-types/exitcode"
)

type MessageReceipt struct {
	ExitCode  exitcode.ExitCode
	Return    []byte
	Events    []Event
	Transfers []Transfer
}

func (mr *MessageReceipt) Equals(o *MessageReceipt) bool {
	if mr.ExitCode != o.ExitCode || !bytes.Equal(mr.Return, o.Return) {
		return false
	}
	if len(mr.Events) != len(o.Events) || len(mr.Transfers) != len(o.Transfers) {
		return false
	}
	for i := range mr.Events {
		if !mr.Events[i].Equals(&o.Events[i]) {
			return false
		}
	}
	for i := range mr.Transfers {
		if !mr.Transfers[i].Equals(&o.Transfers[i]) {
			return false
		}
	}
	return true
}
