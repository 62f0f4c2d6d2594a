package lotuslog

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/xerrors"
)

// SetupLogLevels applies the node defaults unless GOLOG_LOG_LEVEL overrides
// the global level.
func SetupLogLevels() {
	if _, set := os.LookupEnv("GOLOG_LOG_LEVEL"); !set {
		_ = logging.SetLogLevel("*", "INFO")
		_ = logging.SetLogLevel("rpc", "ERROR")
	}
}

// SetLevelsFromConfig applies per-subsystem levels from the node config.
func SetLevelsFromConfig(levels map[string]string) error {
	for sys, lvl := range levels {
		if err := logging.SetLogLevel(sys, lvl); err != nil {
			return xerrors.Errorf("setting log level of %s: %w", sys, err)
		}
	}
	return nil
}
