package config

import (
	"encoding"
	"time"
)

const (
	DatastoreLevelDB = "leveldb"
	DatastoreBadger  = "badger"
	DatastoreMemory  = "memory"
)

func defCommon() Common {
	return Common{
		API: API{
			ListenAddress: "/ip4/127.0.0.1/tcp/1234/http",
			Timeout:       Duration(30 * time.Second),

			RequestsPerSecond: 50,
			Burst:             100,
		},
		Logging: Logging{
			SubsystemLevels: map[string]string{},
		},
	}
}

// DefaultFullNode returns the default config
func DefaultFullNode() *FullNode {
	return &FullNode{
		Common: defCommon(),
		Datastore: Datastore{
			Type: DatastoreLevelDB,
		},
		Index: Index{
			EnableMsgIndex: true,
		},
		Genesis: Genesis{
			NetworkName: "escrownet",
		},
	}
}

var _ encoding.TextMarshaler = (*Duration)(nil)
var _ encoding.TextUnmarshaler = (*Duration)(nil)

// Duration is a wrapper type for time.Duration
// for decoding and encoding from/to TOML
type Duration time.Duration

// UnmarshalText implements interface for TOML decoding
func (dur *Duration) UnmarshalText(text []byte) error {
	d, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*dur = Duration(d)
	return err
}

func (dur Duration) MarshalText() ([]byte, error) {
	d := time.Duration(dur)
	return []byte(d.String()), nil
}
