package msgindex

import (
	"context"
	"errors"

	"github.com/ipfs/go-cid"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"
)

var ErrNotFound = errors.New("message not found")

// MsgInfo is the message metadata the index tracks.
type MsgInfo struct {
	Message cid.Cid
	// sender and receiver, as ID addresses
	From address.Address
	To   address.Address

	Nonce    uint64
	Method   abi.MethodNum
	ExitCode exitcode.ExitCode

	// the height and logical time at which the message was applied
	Height    abi.ChainEpoch
	Timestamp uint64
}

// MsgIndex is the interface to the message index
type MsgIndex interface {
	// IndexMessage records an applied message.
	IndexMessage(ctx context.Context, info MsgInfo) error
	// GetMsgInfo retrieves the message metadata through the index.
	GetMsgInfo(ctx context.Context, m cid.Cid) (MsgInfo, error)
	// ListMessages returns up to limit messages sent or received by addr,
	// newest first. A limit of zero or less means no limit.
	ListMessages(ctx context.Context, addr address.Address, limit int) ([]MsgInfo, error)
	// Close closes the index
	Close() error
}

type dummyMsgIndex struct{}

func (dummyMsgIndex) IndexMessage(context.Context, MsgInfo) error {
	return nil
}

func (dummyMsgIndex) GetMsgInfo(context.Context, cid.Cid) (MsgInfo, error) {
	return MsgInfo{}, ErrNotFound
}

func (dummyMsgIndex) ListMessages(context.Context, address.Address, int) ([]MsgInfo, error) {
	return nil, nil
}

func (dummyMsgIndex) Close() error {
	return nil
}

// DummyMsgIndex is used when indexing is disabled.
var DummyMsgIndex MsgIndex = dummyMsgIndex{}
