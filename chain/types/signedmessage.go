package types

import (
	"bytes"

	"github.com/ipfs/go-cid"

	"github.com/filecoin-project/go-state-types/crypto"
)

// SignedMessage is a message together with the sender's signature over the
// message CID. Messages are identified by the CID of the unsigned message.
type SignedMessage struct {
	Message   Message
	Signature crypto.Signature
}

func DecodeSignedMessage(data []byte) (*SignedMessage, error) {
	var msg SignedMessage
	if err := msg.UnmarshalCBOR(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (sm *SignedMessage) Serialize() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := sm.MarshalCBOR(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (sm *SignedMessage) Cid() cid.Cid {
	return sm.Message.Cid()
}

func (sm *SignedMessage) VMMessage() *Message {
	return &sm.Message
}

// SigningBytes returns the bytes a sender signs for m.
func (m *Message) SigningBytes() []byte {
	return m.Cid().Bytes()
}

// ChainLength is the serialized size of sm.
func (sm *SignedMessage) ChainLength() int {
	ser, err := sm.Serialize()
	if err != nil {
		panic(err) // ok
	}
	return len(ser)
}
