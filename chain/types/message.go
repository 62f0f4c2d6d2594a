package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"

	"github.com/filecoin-project/lotus-escrow/build"
)

type Message struct {
	To   address.Address
	From address.Address

	Nonce uint64

	// Funds are moved from From to To before the method runs.
	Funds Coins

	Method abi.MethodNum
	Params []byte
}

func DecodeMessage(b []byte) (*Message, error) {
	var msg Message
	if err := msg.UnmarshalCBOR(bytes.NewReader(b)); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (m *Message) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := m.MarshalCBOR(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Message) Cid() cid.Cid {
	data, err := m.Serialize()
	if err != nil {
		panic(fmt.Sprintf("failed to marshal message: %s", err)) // ok
	}

	c, err := abi.CidBuilder.Sum(data)
	if err != nil {
		panic(err) // ok
	}

	return c
}

func (m *Message) Equals(o *Message) bool {
	return m.Cid() == o.Cid()
}

// ValidForApply checks the parts of a message that do not depend on state.
func (m *Message) ValidForApply() error {
	if m.To == address.Undef {
		return xerrors.New("'To' address cannot be empty")
	}

	if m.From == address.Undef {
		return xerrors.New("'From' address cannot be empty")
	}

	if err := m.Funds.Validate(); err != nil {
		return xerrors.Errorf("invalid funds: %w", err)
	}

	if len(m.Params) > build.MaxMessageParamsSize {
		return xerrors.Errorf("params too large (%d > %d)", len(m.Params), build.MaxMessageParamsSize)
	}

	return nil
}

type mCid struct {
	*RawMessage
	CID cid.Cid
}

type RawMessage Message

func (m *Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(&mCid{
		RawMessage: (*RawMessage)(m),
		CID:        m.Cid(),
	})
}
