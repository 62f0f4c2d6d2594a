package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ipfs/go-cid"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/crypto"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/filecoin-project/lotus-escrow/chain/actors"
	"github.com/filecoin-project/lotus-escrow/chain/messagepool"
	"github.com/filecoin-project/lotus-escrow/chain/msgindex"
	"github.com/filecoin-project/lotus-escrow/chain/store"
	"github.com/filecoin-project/lotus-escrow/chain/types"
)

//go:generate go run github.com/golang/mock/mockgen -destination=mocks/mock_full.go -package=mocks . FullNode

// FullNode API is a low-level interface to the escrow node.
// Messages are applied synchronously: every successful push has a receipt by
// the time the call returns.
type FullNode interface {
	Common

	// MethodGroup: Chain
	// The Chain method group contains methods for interacting with the
	// message log and its head.

	// ChainHead returns the current head of the chain.
	ChainHead(context.Context) (*store.Head, error) //perm:read

	// ChainNotify returns channel with chain head updates.
	// First message is guaranteed to carry the current head.
	ChainNotify(context.Context) (<-chan *store.HeadChange, error) //perm:read

	// ChainGetMessage reads a message referenced by the specified CID from the
	// chain store.
	ChainGetMessage(context.Context, cid.Cid) (*types.Message, error) //perm:read

	// MethodGroup: Mpool
	// The Mpool methods are for interacting with the message pool.

	// MpoolPush pushes a signed message to the pool, which applies it.
	MpoolPush(context.Context, *types.SignedMessage) (cid.Cid, error) //perm:write

	// MpoolPushMessage atomically assigns a nonce, signs, and pushes a message.
	// The sender may be given by its ID address.
	MpoolPushMessage(ctx context.Context, msg *types.Message, spec *MessageSendSpec) (*types.SignedMessage, error) //perm:sign

	// MpoolGetNonce gets next nonce for the specified sender.
	MpoolGetNonce(context.Context, address.Address) (uint64, error) //perm:read

	MpoolSub(context.Context) (<-chan MpoolUpdate, error) //perm:read

	// MethodGroup: Wallet

	// WalletNew creates a new address in the wallet with the given sigType.
	WalletNew(context.Context, types.KeyType) (address.Address, error) //perm:write
	// WalletHas indicates whether the given address is in the wallet.
	WalletHas(context.Context, address.Address) (bool, error) //perm:write
	// WalletList lists all the addresses in the wallet.
	WalletList(context.Context) ([]address.Address, error) //perm:write
	// WalletBalance returns the balance of the given address at the current head of the chain.
	WalletBalance(context.Context, address.Address) (types.Coins, error) //perm:read
	// WalletSign signs the given bytes using the given address.
	WalletSign(context.Context, address.Address, []byte) (*crypto.Signature, error) //perm:sign
	// WalletSignMessage signs the given message using the given address.
	WalletSignMessage(context.Context, address.Address, *types.Message) (*types.SignedMessage, error) //perm:sign
	// WalletVerify takes an address, a signature, and some bytes, and indicates whether the signature is valid.
	// The address does not have to be in the wallet.
	WalletVerify(context.Context, address.Address, []byte, *crypto.Signature) (bool, error) //perm:read
	// WalletDefaultAddress returns the address marked as default in the wallet.
	WalletDefaultAddress(context.Context) (address.Address, error) //perm:write
	// WalletSetDefault marks the given address as the default one.
	WalletSetDefault(context.Context, address.Address) error //perm:write
	// WalletExport returns the private key of an address in the wallet.
	WalletExport(context.Context, address.Address) (*types.KeyInfo, error) //perm:admin
	// WalletImport receives a KeyInfo, which includes a private key, and imports it into the wallet.
	WalletImport(context.Context, *types.KeyInfo) (address.Address, error) //perm:admin
	// WalletDelete deletes an address from the wallet.
	WalletDelete(context.Context, address.Address) error //perm:admin

	// MethodGroup: State
	// The State methods are used to query, inspect, and interact with chain state.

	// StateCall runs the given message and returns its result without any
	// persisted changes. A message without a sender runs as the system actor.
	StateCall(context.Context, *types.Message) (*InvocResult, error) //perm:read
	// StateGetActor returns the indicated actor's nonce and balance.
	StateGetActor(ctx context.Context, actor address.Address) (*types.Actor, error) //perm:read
	// StateListActors returns the ID addresses of every actor in the state.
	StateListActors(context.Context) ([]address.Address, error) //perm:read
	// StateLookupID retrieves the ID address of the given address
	StateLookupID(context.Context, address.Address) (address.Address, error) //perm:read
	// StateAccountKey returns the public key address of the given ID address
	StateAccountKey(context.Context, address.Address) (address.Address, error) //perm:read
	// StateWaitMsg looks back in the chain for a message. If not found, it
	// blocks until the message is applied.
	StateWaitMsg(ctx context.Context, cid cid.Cid) (*MsgLookup, error) //perm:read
	// StateSearchMsg looks back in the chain for a message. It returns nil if
	// the message was never applied.
	StateSearchMsg(ctx context.Context, msg cid.Cid) (*MsgLookup, error) //perm:read
	// StateListMessages returns the messages sent or received by addr, newest
	// first. A limit of zero returns all of them.
	StateListMessages(ctx context.Context, addr address.Address, limit int) ([]msgindex.MsgInfo, error) //perm:read
	// StateNetworkName returns the name of the network the node is synced to
	StateNetworkName(context.Context) (string, error) //perm:read

	// MethodGroup: Escrow

	// EscrowCreate instantiates an escrow with from as the buyer.
	EscrowCreate(ctx context.Context, from, seller address.Address, amount types.Coin, lockTime uint64) (*ActorCreated, error) //perm:sign
	// EscrowDeposit funds an escrow. When funds is empty the configured amount
	// is attached.
	EscrowDeposit(ctx context.Context, from, escrow address.Address, funds types.Coins) (*MsgLookup, error) //perm:sign
	EscrowRelease(ctx context.Context, from, escrow address.Address) (*MsgLookup, error)                    //perm:sign
	EscrowRefund(ctx context.Context, from, escrow address.Address) (*MsgLookup, error)                     //perm:sign
	EscrowGetConfig(ctx context.Context, escrow address.Address) (*actors.EscrowConfigResponse, error)      //perm:read
	// EscrowList returns the escrows created through this node.
	EscrowList(ctx context.Context) ([]EscrowInfo, error) //perm:read

	// MethodGroup: Faucet

	FaucetCreate(ctx context.Context, from address.Address, cooldownHours uint64, amount types.Coin, funds types.Coins) (*ActorCreated, error) //perm:sign
	FaucetClaim(ctx context.Context, from, faucet address.Address) (*MsgLookup, error)                                                         //perm:sign
	FaucetGetConfig(ctx context.Context, faucet address.Address) (*actors.FaucetState, error)                                                  //perm:read
	// FaucetGetLastClaim returns the timestamp of the last claim by addr, 0
	// if it never claimed.
	FaucetGetLastClaim(ctx context.Context, faucet, addr address.Address) (uint64, error) //perm:read

	// MethodGroup: KV

	KVStoreCreate(ctx context.Context, from address.Address) (*ActorCreated, error)                //perm:sign
	KVCreate(ctx context.Context, from, kv address.Address, key, value string) (*MsgLookup, error) //perm:sign
	KVUpdate(ctx context.Context, from, kv address.Address, key, value string) (*MsgLookup, error) //perm:sign
	KVDelete(ctx context.Context, from, kv address.Address, key string) (*MsgLookup, error)        //perm:sign
	KVRead(ctx context.Context, kv address.Address, key string) (*actors.KVReadResponse, error)    //perm:read
}

type MessageSendSpec struct {
	// MsgUuid makes the push idempotent: pushing again with the same UUID
	// returns the message pushed the first time.
	MsgUuid uuid.UUID
}

type MpoolUpdate = messagepool.MpoolUpdate

type MsgLookup struct {
	Message   cid.Cid
	Receipt   types.MessageReceipt
	Height    abi.ChainEpoch
	Timestamp uint64
}

// ExitCodeName renders the receipt exit code by the error kind it stands for.
func (ml *MsgLookup) ExitCodeName() string {
	return actors.ExitCodeName(ml.Receipt.ExitCode)
}

func (ml *MsgLookup) Ok() bool {
	return ml.Receipt.ExitCode == exitcode.Ok
}

type InvocResult struct {
	Msg      *types.Message
	MsgRct   *types.MessageReceipt
	Error    string
	Duration time.Duration
}

// ActorCreated is returned by the helpers that instantiate actors.
type ActorCreated struct {
	Message       cid.Cid
	IDAddress     address.Address
	RobustAddress address.Address
}

// EscrowInfo is the node's record of an escrow it created.
type EscrowInfo struct {
	Escrow    address.Address
	Robust    address.Address
	Buyer     address.Address
	Seller    address.Address
	Amount    types.Coin
	Message   cid.Cid
	CreatedAt uint64
}
