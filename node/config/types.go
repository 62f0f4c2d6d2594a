package config

// // NOTE: ONLY PUT STRUCT DEFINITIONS IN THIS FILE

// Common is common config shared by every node type
type Common struct {
	API     API
	Logging Logging
	Journal Journal
}

// FullNode is a full node config
type FullNode struct {
	Common
	Datastore Datastore
	Index     Index
	Genesis   Genesis
}

// API contains configs for API endpoint
type API struct {
	// Binding address for the API
	ListenAddress string
	// Address written to the repo api file for clients, defaults to
	// ListenAddress
	RemoteListenAddress string
	// Timeout of a single HTTP call, websocket connections are not bounded
	Timeout Duration

	// Average number of requests per second accepted from a single
	// connection, zero disables rate limiting
	RequestsPerSecond float64
	// Maximum burst of requests above RequestsPerSecond
	Burst int
}

// Logging is the logging system config
type Logging struct {
	// SubsystemLevels specify per-subsystem log levels
	SubsystemLevels map[string]string
}

type Journal struct {
	// Events of the form "system1:event1,system1:event2[,...]"
	DisabledEvents string
}

type Datastore struct {
	// One of "leveldb", "badger" or "memory"
	Type string
}

type Index struct {
	// Index applied messages in a sqlite database for StateListMessages
	EnableMsgIndex bool
}

type Genesis struct {
	// Name of the network, recorded in metrics and returned by StateNetworkName
	NetworkName string
	// Accounts funded when the node starts on an empty datastore
	Accounts []GenesisAccount
}

type GenesisAccount struct {
	// Key address of the account
	Address string
	// Coins, e.g. "1000utoken,5stake"
	Balance string
}
