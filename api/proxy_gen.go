package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/filecoin-project/go-state-types/crypto"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/msgindex"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
	"github.com/filecoin-project/lotus-escrow/journal/alerting"
)

var ErrNotSupported = xerrors.New("method not supported")

type CommonStruct struct {
	Internal CommonMethods
}

type FullNodeStruct struct {
	CommonStruct

	Internal FullNodeMethods
}

type CommonMethods struct {
	AuthVerify func(p0 context.Context, p1 string) ([]auth.Permission, error) `perm:"read"`

	AuthNew func(p0 context.Context, p1 []auth.Permission) ([]byte, error) `perm:"admin"`

	LogList func(p0 context.Context) ([]string, error) `perm:"write"`

	LogSetLevel func(p0 context.Context, p1 string, p2 string) error `perm:"write"`

	LogAlerts func(p0 context.Context) ([]alerting.Alert, error) `perm:"admin"`

	Version func(p0 context.Context) (APIVersion, error) `perm:"read"`

	Shutdown func(p0 context.Context) error `perm:"admin"`

	Session func(p0 context.Context) (uuid.UUID, error) `perm:"read"`

	Closing func(p0 context.Context) (<-chan struct{}, error) `perm:"read"`
}

type CommonStub struct{}

func (s *CommonStruct) AuthVerify(p0 context.Context, p1 string) ([]auth.Permission, error) {
	if s.Internal.AuthVerify == nil {
		return *new([]auth.Permission), ErrNotSupported
	}
	return s.Internal.AuthVerify(p0, p1)
}

func (s *CommonStub) AuthVerify(p0 context.Context, p1 string) ([]auth.Permission, error) {
	return *new([]auth.Permission), ErrNotSupported
}

func (s *CommonStruct) AuthNew(p0 context.Context, p1 []auth.Permission) ([]byte, error) {
	if s.Internal.AuthNew == nil {
		return *new([]byte), ErrNotSupported
	}
	return s.Internal.AuthNew(p0, p1)
}

func (s *CommonStub) AuthNew(p0 context.Context, p1 []auth.Permission) ([]byte, error) {
	return *new([]byte), ErrNotSupported
}

func (s *CommonStruct) LogList(p0 context.Context) ([]string, error) {
	if s.Internal.LogList == nil {
		return *new([]string), ErrNotSupported
	}
	return s.Internal.LogList(p0)
}

func (s *CommonStub) LogList(p0 context.Context) ([]string, error) {
	return *new([]string), ErrNotSupported
}

func (s *CommonStruct) LogSetLevel(p0 context.Context, p1 string, p2 string) error {
	if s.Internal.LogSetLevel == nil {
		return ErrNotSupported
	}
	return s.Internal.LogSetLevel(p0, p1, p2)
}

func (s *CommonStub) LogSetLevel(p0 context.Context, p1 string, p2 string) error {
	return ErrNotSupported
}

func (s *CommonStruct) LogAlerts(p0 context.Context) ([]alerting.Alert, error) {
	if s.Internal.LogAlerts == nil {
		return *new([]alerting.Alert), ErrNotSupported
	}
	return s.Internal.LogAlerts(p0)
}

func (s *CommonStub) LogAlerts(p0 context.Context) ([]alerting.Alert, error) {
	return *new([]alerting.Alert), ErrNotSupported
}

func (s *CommonStruct) Version(p0 context.Context) (APIVersion, error) {
	if s.Internal.Version == nil {
		return *new(APIVersion), ErrNotSupported
	}
	return s.Internal.Version(p0)
}

func (s *CommonStub) Version(p0 context.Context) (APIVersion, error) {
	return *new(APIVersion), ErrNotSupported
}

func (s *CommonStruct) Shutdown(p0 context.Context) error {
	if s.Internal.Shutdown == nil {
		return ErrNotSupported
	}
	return s.Internal.Shutdown(p0)
}

func (s *CommonStub) Shutdown(p0 context.Context) error {
	return ErrNotSupported
}

func (s *CommonStruct) Session(p0 context.Context) (uuid.UUID, error) {
	if s.Internal.Session == nil {
		return *new(uuid.UUID), ErrNotSupported
	}
	return s.Internal.Session(p0)
}

func (s *CommonStub) Session(p0 context.Context) (uuid.UUID, error) {
	return *new(uuid.UUID), ErrNotSupported
}

func (s *CommonStruct) Closing(p0 context.Context) (<-chan struct{}, error) {
	if s.Internal.Closing == nil {
		return *new(<-chan struct{}), ErrNotSupported
	}
	return s.Internal.Closing(p0)
}

func (s *CommonStub) Closing(p0 context.Context) (<-chan struct{}, error) {
	return *new(<-chan struct{}), ErrNotSupported
}

type FullNodeMethods struct {
	ChainHead func(p0 context.Context) (*store.Head, error) `perm:"read"`

	ChainNotify func(p0 context.Context) (<-chan *store.HeadChange, error) `perm:"read"`

	ChainGetMessage func(p0 context.Context, p1 cid.Cid) (*types.Message, error) `perm:"read"`

	MpoolPush func(p0 context.Context, p1 *types.SignedMessage) (cid.Cid, error) `perm:"write"`

	MpoolPushMessage func(p0 context.Context, p1 *types.Message, p2 *MessageSendSpec) (*types.SignedMessage, error) `perm:"sign"`

	MpoolGetNonce func(p0 context.Context, p1 address.Address) (uint64, error) `perm:"read"`

	MpoolSub func(p0 context.Context) (<-chan MpoolUpdate, error) `perm:"read"`

	WalletNew func(p0 context.Context, p1 types.KeyType) (address.Address, error) `perm:"write"`

	WalletHas func(p0 context.Context, p1 address.Address) (bool, error) `perm:"write"`

	WalletList func(p0 context.Context) ([]address.Address, error) `perm:"write"`

	WalletBalance func(p0 context.Context, p1 address.Address) (types.Coins, error) `perm:"read"`

	WalletSign func(p0 context.Context, p1 address.Address, p2 []byte) (*crypto.Signature, error) `perm:"sign"`

	WalletSignMessage func(p0 context.Context, p1 address.Address, p2 *types.Message) (*types.SignedMessage, error) `perm:"sign"`

	WalletVerify func(p0 context.Context, p1 address.Address, p2 []byte, p3 *crypto.Signature) (bool, error) `perm:"read"`

	WalletDefaultAddress func(p0 context.Context) (address.Address, error) `perm:"write"`

	WalletSetDefault func(p0 context.Context, p1 address.Address) error `perm:"write"`

	WalletExport func(p0 context.Context, p1 address.Address) (*types.KeyInfo, error) `perm:"admin"`

	WalletImport func(p0 context.Context, p1 *types.KeyInfo) (address.Address, error) `perm:"admin"`

	WalletDelete func(p0 context.Context, p1 address.Address) error `perm:"admin"`

	StateCall func(p0 context.Context, p1 *types.Message) (*InvocResult, error) `perm:"read"`

	StateGetActor func(p0 context.Context, p1 address.Address) (*types.Actor, error) `perm:"read"`

	StateListActors func(p0 context.Context) ([]address.Address, error) `perm:"read"`

	StateLookupID func(p0 context.Context, p1 address.Address) (address.Address, error) `perm:"read"`

	StateAccountKey func(p0 context.Context, p1 address.Address) (address.Address, error) `perm:"read"`

	StateWaitMsg func(p0 context.Context, p1 cid.Cid) (*MsgLookup, error) `perm:"read"`

	StateSearchMsg func(p0 context.Context, p1 cid.Cid) (*MsgLookup, error) `perm:"read"`

	StateListMessages func(p0 context.Context, p1 address.Address, p2 int) ([]msgindex.MsgInfo, error) `perm:"read"`

	StateNetworkName func(p0 context.Context) (string, error) `perm:"read"`

	EscrowCreate func(p0 context.Context, p1 address.Address, p2 address.Address, p3 types.Coin, p4 uint64) (*ActorCreated, error) `perm:"sign"`

	EscrowDeposit func(p0 context.Context, p1 address.Address, p2 address.Address, p3 types.Coins) (*MsgLookup, error) `perm:"sign"`

	EscrowRelease func(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) `perm:"sign"`

	EscrowRefund func(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) `perm:"sign"`

	EscrowGetConfig func(p0 context.Context, p1 address.Address) (*actors.EscrowConfigResponse, error) `perm:"read"`

	EscrowList func(p0 context.Context) ([]EscrowInfo, error) `perm:"read"`

	FaucetCreate func(p0 context.Context, p1 address.Address, p2 uint64, p3 types.Coin, p4 types.Coins) (*ActorCreated, error) `perm:"sign"`

	FaucetClaim func(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) `perm:"sign"`

	FaucetGetConfig func(p0 context.Context, p1 address.Address) (*actors.FaucetState, error) `perm:"read"`

	FaucetGetLastClaim func(p0 context.Context, p1 address.Address, p2 address.Address) (uint64, error) `perm:"read"`

	KVStoreCreate func(p0 context.Context, p1 address.Address) (*ActorCreated, error) `perm:"sign"`

	KVCreate func(p0 context.Context, p1 address.Address, p2 address.Address, p3 string, p4 string) (*MsgLookup, error) `perm:"sign"`

	KVUpdate func(p0 context.Context, p1 address.Address, p2 address.Address, p3 string, p4 string) (*MsgLookup, error) `perm:"sign"`

	KVDelete func(p0 context.Context, p1 address.Address, p2 address.Address, p3 string) (*MsgLookup, error) `perm:"sign"`

	KVRead func(p0 context.Context, p1 address.Address, p2 string) (*actors.KVReadResponse, error) `perm:"read"`
}

type FullNodeStub struct {
	CommonStub
}

func (s *FullNodeStruct) ChainHead(p0 context.Context) (*store.Head, error) {
	if s.Internal.ChainHead == nil {
		return *new(*store.Head), ErrNotSupported
	}
	return s.Internal.ChainHead(p0)
}

func (s *FullNodeStub) ChainHead(p0 context.Context) (*store.Head, error) {
	return *new(*store.Head), ErrNotSupported
}

func (s *FullNodeStruct) ChainNotify(p0 context.Context) (<-chan *store.HeadChange, error) {
	if s.Internal.ChainNotify == nil {
		return *new(<-chan *store.HeadChange), ErrNotSupported
	}
	return s.Internal.ChainNotify(p0)
}

func (s *FullNodeStub) ChainNotify(p0 context.Context) (<-chan *store.HeadChange, error) {
	return *new(<-chan *store.HeadChange), ErrNotSupported
}

func (s *FullNodeStruct) ChainGetMessage(p0 context.Context, p1 cid.Cid) (*types.Message, error) {
	if s.Internal.ChainGetMessage == nil {
		return *new(*types.Message), ErrNotSupported
	}
	return s.Internal.ChainGetMessage(p0, p1)
}

func (s *FullNodeStub) ChainGetMessage(p0 context.Context, p1 cid.Cid) (*types.Message, error) {
	return *new(*types.Message), ErrNotSupported
}

func (s *FullNodeStruct) MpoolPush(p0 context.Context, p1 *types.SignedMessage) (cid.Cid, error) {
	if s.Internal.MpoolPush == nil {
		return *new(cid.Cid), ErrNotSupported
	}
	return s.Internal.MpoolPush(p0, p1)
}

func (s *FullNodeStub) MpoolPush(p0 context.Context, p1 *types.SignedMessage) (cid.Cid, error) {
	return *new(cid.Cid), ErrNotSupported
}

func (s *FullNodeStruct) MpoolPushMessage(p0 context.Context, p1 *types.Message, p2 *MessageSendSpec) (*types.SignedMessage, error) {
	if s.Internal.MpoolPushMessage == nil {
		return *new(*types.SignedMessage), ErrNotSupported
	}
	return s.Internal.MpoolPushMessage(p0, p1, p2)
}

func (s *FullNodeStub) MpoolPushMessage(p0 context.Context, p1 *types.Message, p2 *MessageSendSpec) (*types.SignedMessage, error) {
	return *new(*types.SignedMessage), ErrNotSupported
}

func (s *FullNodeStruct) MpoolGetNonce(p0 context.Context, p1 address.Address) (uint64, error) {
	if s.Internal.MpoolGetNonce == nil {
		return *new(uint64), ErrNotSupported
	}
	return s.Internal.MpoolGetNonce(p0, p1)
}

func (s *FullNodeStub) MpoolGetNonce(p0 context.Context, p1 address.Address) (uint64, error) {
	return *new(uint64), ErrNotSupported
}

func (s *FullNodeStruct) MpoolSub(p0 context.Context) (<-chan MpoolUpdate, error) {
	if s.Internal.MpoolSub == nil {
		return *new(<-chan MpoolUpdate), ErrNotSupported
	}
	return s.Internal.MpoolSub(p0)
}

func (s *FullNodeStub) MpoolSub(p0 context.Context) (<-chan MpoolUpdate, error) {
	return *new(<-chan MpoolUpdate), ErrNotSupported
}

func (s *FullNodeStruct) WalletNew(p0 context.Context, p1 types.KeyType) (address.Address, error) {
	if s.Internal.WalletNew == nil {
		return *new(address.Address), ErrNotSupported
	}
	return s.Internal.WalletNew(p0, p1)
}

func (s *FullNodeStub) WalletNew(p0 context.Context, p1 types.KeyType) (address.Address, error) {
	return *new(address.Address), ErrNotSupported
}

func (s *FullNodeStruct) WalletHas(p0 context.Context, p1 address.Address) (bool, error) {
	if s.Internal.WalletHas == nil {
		return *new(bool), ErrNotSupported
	}
	return s.Internal.WalletHas(p0, p1)
}

func (s *FullNodeStub) WalletHas(p0 context.Context, p1 address.Address) (bool, error) {
	return *new(bool), ErrNotSupported
}

func (s *FullNodeStruct) WalletList(p0 context.Context) ([]address.Address, error) {
	if s.Internal.WalletList == nil {
		return *new([]address.Address), ErrNotSupported
	}
	return s.Internal.WalletList(p0)
}

func (s *FullNodeStub) WalletList(p0 context.Context) ([]address.Address, error) {
	return *new([]address.Address), ErrNotSupported
}

func (s *FullNodeStruct) WalletBalance(p0 context.Context, p1 address.Address) (types.Coins, error) {
	if s.Internal.WalletBalance == nil {
		return *new(types.Coins), ErrNotSupported
	}
	return s.Internal.WalletBalance(p0, p1)
}

func (s *FullNodeStub) WalletBalance(p0 context.Context, p1 address.Address) (types.Coins, error) {
	return *new(types.Coins), ErrNotSupported
}

func (s *FullNodeStruct) WalletSign(p0 context.Context, p1 address.Address, p2 []byte) (*crypto.Signature, error) {
	if s.Internal.WalletSign == nil {
		return *new(*crypto.Signature), ErrNotSupported
	}
	return s.Internal.WalletSign(p0, p1, p2)
}

func (s *FullNodeStub) WalletSign(p0 context.Context, p1 address.Address, p2 []byte) (*crypto.Signature, error) {
	return *new(*crypto.Signature), ErrNotSupported
}

func (s *FullNodeStruct) WalletSignMessage(p0 context.Context, p1 address.Address, p2 *types.Message) (*types.SignedMessage, error) {
	if s.Internal.WalletSignMessage == nil {
		return *new(*types.SignedMessage), ErrNotSupported
	}
	return s.Internal.WalletSignMessage(p0, p1, p2)
}

func (s *FullNodeStub) WalletSignMessage(p0 context.Context, p1 address.Address, p2 *types.Message) (*types.SignedMessage, error) {
	return *new(*types.SignedMessage), ErrNotSupported
}

func (s *FullNodeStruct) WalletVerify(p0 context.Context, p1 address.Address, p2 []byte, p3 *crypto.Signature) (bool, error) {
	if s.Internal.WalletVerify == nil {
		return *new(bool), ErrNotSupported
	}
	return s.Internal.WalletVerify(p0, p1, p2, p3)
}

func (s *FullNodeStub) WalletVerify(p0 context.Context, p1 address.Address, p2 []byte, p3 *crypto.Signature) (bool, error) {
	return *new(bool), ErrNotSupported
}

func (s *FullNodeStruct) WalletDefaultAddress(p0 context.Context) (address.Address, error) {
	if s.Internal.WalletDefaultAddress == nil {
		return *new(address.Address), ErrNotSupported
	}
	return s.Internal.WalletDefaultAddress(p0)
}

func (s *FullNodeStub) WalletDefaultAddress(p0 context.Context) (address.Address, error) {
	return *new(address.Address), ErrNotSupported
}

func (s *FullNodeStruct) WalletSetDefault(p0 context.Context, p1 address.Address) error {
	if s.Internal.WalletSetDefault == nil {
		return ErrNotSupported
	}
	return s.Internal.WalletSetDefault(p0, p1)
}

func (s *FullNodeStub) WalletSetDefault(p0 context.Context, p1 address.Address) error {
	return ErrNotSupported
}

func (s *FullNodeStruct) WalletExport(p0 context.Context, p1 address.Address) (*types.KeyInfo, error) {
	if s.Internal.WalletExport == nil {
		return *new(*types.KeyInfo), ErrNotSupported
	}
	return s.Internal.WalletExport(p0, p1)
}

func (s *FullNodeStub) WalletExport(p0 context.Context, p1 address.Address) (*types.KeyInfo, error) {
	return *new(*types.KeyInfo), ErrNotSupported
}

func (s *FullNodeStruct) WalletImport(p0 context.Context, p1 *types.KeyInfo) (address.Address, error) {
	if s.Internal.WalletImport == nil {
		return *new(address.Address), ErrNotSupported
	}
	return s.Internal.WalletImport(p0, p1)
}

func (s *FullNodeStub) WalletImport(p0 context.Context, p1 *types.KeyInfo) (address.Address, error) {
	return *new(address.Address), ErrNotSupported
}

func (s *FullNodeStruct) WalletDelete(p0 context.Context, p1 address.Address) error {
	if s.Internal.WalletDelete == nil {
		return ErrNotSupported
	}
	return s.Internal.WalletDelete(p0, p1)
}

func (s *FullNodeStub) WalletDelete(p0 context.Context, p1 address.Address) error {
	return ErrNotSupported
}

func (s *FullNodeStruct) StateCall(p0 context.Context, p1 *types.Message) (*InvocResult, error) {
	if s.Internal.StateCall == nil {
		return *new(*InvocResult), ErrNotSupported
	}
	return s.Internal.StateCall(p0, p1)
}

func (s *FullNodeStub) StateCall(p0 context.Context, p1 *types.Message) (*InvocResult, error) {
	return *new(*InvocResult), ErrNotSupported
}

func (s *FullNodeStruct) StateGetActor(p0 context.Context, p1 address.Address) (*types.Actor, error) {
	if s.Internal.StateGetActor == nil {
		return *new(*types.Actor), ErrNotSupported
	}
	return s.Internal.StateGetActor(p0, p1)
}

func (s *FullNodeStub) StateGetActor(p0 context.Context, p1 address.Address) (*types.Actor, error) {
	return *new(*types.Actor), ErrNotSupported
}

func (s *FullNodeStruct) StateListActors(p0 context.Context) ([]address.Address, error) {
	if s.Internal.StateListActors == nil {
		return *new([]address.Address), ErrNotSupported
	}
	return s.Internal.StateListActors(p0)
}

func (s *FullNodeStub) StateListActors(p0 context.Context) ([]address.Address, error) {
	return *new([]address.Address), ErrNotSupported
}

func (s *FullNodeStruct) StateLookupID(p0 context.Context, p1 address.Address) (address.Address, error) {
	if s.Internal.StateLookupID == nil {
		return *new(address.Address), ErrNotSupported
	}
	return s.Internal.StateLookupID(p0, p1)
}

func (s *FullNodeStub) StateLookupID(p0 context.Context, p1 address.Address) (address.Address, error) {
	return *new(address.Address), ErrNotSupported
}

func (s *FullNodeStruct) StateAccountKey(p0 context.Context, p1 address.Address) (address.Address, error) {
	if s.Internal.StateAccountKey == nil {
		return *new(address.Address), ErrNotSupported
	}
	return s.Internal.StateAccountKey(p0, p1)
}

func (s *FullNodeStub) StateAccountKey(p0 context.Context, p1 address.Address) (address.Address, error) {
	return *new(address.Address), ErrNotSupported
}

func (s *FullNodeStruct) StateWaitMsg(p0 context.Context, p1 cid.Cid) (*MsgLookup, error) {
	if s.Internal.StateWaitMsg == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.StateWaitMsg(p0, p1)
}

func (s *FullNodeStub) StateWaitMsg(p0 context.Context, p1 cid.Cid) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) StateSearchMsg(p0 context.Context, p1 cid.Cid) (*MsgLookup, error) {
	if s.Internal.StateSearchMsg == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.StateSearchMsg(p0, p1)
}

func (s *FullNodeStub) StateSearchMsg(p0 context.Context, p1 cid.Cid) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) StateListMessages(p0 context.Context, p1 address.Address, p2 int) ([]msgindex.MsgInfo, error) {
	if s.Internal.StateListMessages == nil {
		return *new([]msgindex.MsgInfo), ErrNotSupported
	}
	return s.Internal.StateListMessages(p0, p1, p2)
}

func (s *FullNodeStub) StateListMessages(p0 context.Context, p1 address.Address, p2 int) ([]msgindex.MsgInfo, error) {
	return *new([]msgindex.MsgInfo), ErrNotSupported
}

func (s *FullNodeStruct) StateNetworkName(p0 context.Context) (string, error) {
	if s.Internal.StateNetworkName == nil {
		return *new(string), ErrNotSupported
	}
	return s.Internal.StateNetworkName(p0)
}

func (s *FullNodeStub) StateNetworkName(p0 context.Context) (string, error) {
	return *new(string), ErrNotSupported
}

func (s *FullNodeStruct) EscrowCreate(p0 context.Context, p1 address.Address, p2 address.Address, p3 types.Coin, p4 uint64) (*ActorCreated, error) {
	if s.Internal.EscrowCreate == nil {
		return *new(*ActorCreated), ErrNotSupported
	}
	return s.Internal.EscrowCreate(p0, p1, p2, p3, p4)
}

func (s *FullNodeStub) EscrowCreate(p0 context.Context, p1 address.Address, p2 address.Address, p3 types.Coin, p4 uint64) (*ActorCreated, error) {
	return *new(*ActorCreated), ErrNotSupported
}

func (s *FullNodeStruct) EscrowDeposit(p0 context.Context, p1 address.Address, p2 address.Address, p3 types.Coins) (*MsgLookup, error) {
	if s.Internal.EscrowDeposit == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.EscrowDeposit(p0, p1, p2, p3)
}

func (s *FullNodeStub) EscrowDeposit(p0 context.Context, p1 address.Address, p2 address.Address, p3 types.Coins) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) EscrowRelease(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) {
	if s.Internal.EscrowRelease == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.EscrowRelease(p0, p1, p2)
}

func (s *FullNodeStub) EscrowRelease(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) EscrowRefund(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) {
	if s.Internal.EscrowRefund == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.EscrowRefund(p0, p1, p2)
}

func (s *FullNodeStub) EscrowRefund(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) EscrowGetConfig(p0 context.Context, p1 address.Address) (*actors.EscrowConfigResponse, error) {
	if s.Internal.EscrowGetConfig == nil {
		return *new(*actors.EscrowConfigResponse), ErrNotSupported
	}
	return s.Internal.EscrowGetConfig(p0, p1)
}

func (s *FullNodeStub) EscrowGetConfig(p0 context.Context, p1 address.Address) (*actors.EscrowConfigResponse, error) {
	return *new(*actors.EscrowConfigResponse), ErrNotSupported
}

func (s *FullNodeStruct) EscrowList(p0 context.Context) ([]EscrowInfo, error) {
	if s.Internal.EscrowList == nil {
		return *new([]EscrowInfo), ErrNotSupported
	}
	return s.Internal.EscrowList(p0)
}

func (s *FullNodeStub) EscrowList(p0 context.Context) ([]EscrowInfo, error) {
	return *new([]EscrowInfo), ErrNotSupported
}

func (s *FullNodeStruct) FaucetCreate(p0 context.Context, p1 address.Address, p2 uint64, p3 types.Coin, p4 types.Coins) (*ActorCreated, error) {
	if s.Internal.FaucetCreate == nil {
		return *new(*ActorCreated), ErrNotSupported
	}
	return s.Internal.FaucetCreate(p0, p1, p2, p3, p4)
}

func (s *FullNodeStub) FaucetCreate(p0 context.Context, p1 address.Address, p2 uint64, p3 types.Coin, p4 types.Coins) (*ActorCreated, error) {
	return *new(*ActorCreated), ErrNotSupported
}

func (s *FullNodeStruct) FaucetClaim(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) {
	if s.Internal.FaucetClaim == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.FaucetClaim(p0, p1, p2)
}

func (s *FullNodeStub) FaucetClaim(p0 context.Context, p1 address.Address, p2 address.Address) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) FaucetGetConfig(p0 context.Context, p1 address.Address) (*actors.FaucetState, error) {
	if s.Internal.FaucetGetConfig == nil {
		return *new(*actors.FaucetState), ErrNotSupported
	}
	return s.Internal.FaucetGetConfig(p0, p1)
}

func (s *FullNodeStub) FaucetGetConfig(p0 context.Context, p1 address.Address) (*actors.FaucetState, error) {
	return *new(*actors.FaucetState), ErrNotSupported
}

func (s *FullNodeStruct) FaucetGetLastClaim(p0 context.Context, p1 address.Address, p2 address.Address) (uint64, error) {
	if s.Internal.FaucetGetLastClaim == nil {
		return *new(uint64), ErrNotSupported
	}
	return s.Internal.FaucetGetLastClaim(p0, p1, p2)
}

func (s *FullNodeStub) FaucetGetLastClaim(p0 context.Context, p1 address.Address, p2 address.Address) (uint64, error) {
	return *new(uint64), ErrNotSupported
}

func (s *FullNodeStruct) KVStoreCreate(p0 context.Context, p1 address.Address) (*ActorCreated, error) {
	if s.Internal.KVStoreCreate == nil {
		return *new(*ActorCreated), ErrNotSupported
	}
	return s.Internal.KVStoreCreate(p0, p1)
}

func (s *FullNodeStub) KVStoreCreate(p0 context.Context, p1 address.Address) (*ActorCreated, error) {
	return *new(*ActorCreated), ErrNotSupported
}

func (s *FullNodeStruct) KVCreate(p0 context.Context, p1 address.Address, p2 address.Address, p3 string, p4 string) (*MsgLookup, error) {
	if s.Internal.KVCreate == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.KVCreate(p0, p1, p2, p3, p4)
}

func (s *FullNodeStub) KVCreate(p0 context.Context, p1 address.Address, p2 address.Address, p3 string, p4 string) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) KVUpdate(p0 context.Context, p1 address.Address, p2 address.Address, p3 string, p4 string) (*MsgLookup, error) {
	if s.Internal.KVUpdate == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.KVUpdate(p0, p1, p2, p3, p4)
}

func (s *FullNodeStub) KVUpdate(p0 context.Context, p1 address.Address, p2 address.Address, p3 string, p4 string) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) KVDelete(p0 context.Context, p1 address.Address, p2 address.Address, p3 string) (*MsgLookup, error) {
	if s.Internal.KVDelete == nil {
		return *new(*MsgLookup), ErrNotSupported
	}
	return s.Internal.KVDelete(p0, p1, p2, p3)
}

func (s *FullNodeStub) KVDelete(p0 context.Context, p1 address.Address, p2 address.Address, p3 string) (*MsgLookup, error) {
	return *new(*MsgLookup), ErrNotSupported
}

func (s *FullNodeStruct) KVRead(p0 context.Context, p1 address.Address, p2 string) (*actors.KVReadResponse, error) {
	if s.Internal.KVRead == nil {
		return *new(*actors.KVReadResponse), ErrNotSupported
	}
	return s.Internal.KVRead(p0, p1, p2)
}

func (s *FullNodeStub) KVRead(p0 context.Context, p1 address.Address, p2 string) (*actors.KVReadResponse, error) {
	return *new(*actors.KVReadResponse), ErrNotSupported
}

var _ Common = new(CommonStruct)
var _ FullNode = new(FullNodeStruct)
