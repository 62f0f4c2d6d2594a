package build

// /////
// Addresses

// FirstNonSingletonActorID is the first ID handed out by the init actor.
// IDs below it are reserved for built-in singletons.
const FirstNonSingletonActorID = 100

// /////
// Coins

// DefaultDenom is the denomination genesis balances use when none is given.
const DefaultDenom = "utoken"

// MaxDenomLength bounds coin denominations.
const MaxDenomLength = 128

// /////
// Messages

// MaxMessageParamsSize bounds the serialized params carried by a single message.
const MaxMessageParamsSize = 64 << 10

// MaxStorageKeyLength bounds actor storage keys.
const MaxStorageKeyLength = 256

// MaxStorageValueLength bounds values stored by the kv actor.
const MaxStorageValueLength = 16 << 10

// /////
// Faucet

const SecondsInHour = 60 * 60

// /////
// Message pool

// MaxMessageSize bounds a whole signed message as pushed over the API.
const MaxMessageSize = MaxMessageParamsSize + 4<<10

const VerifSigCacheSize = 32000
