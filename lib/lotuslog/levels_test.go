package lotuslog

import (
	"testing"

	logging "github.com/ipfs/go-log/v2"
	"github.com/stretchr/testify/require"
)

func TestSetLevelsFromConfig(t *testing.T) {
	logging.Logger("lotuslog-test")

	require.NoError(t, SetLevelsFromConfig(map[string]string{"lotuslog-test": "debug"}))
	require.Error(t, SetLevelsFromConfig(map[string]string{"lotuslog-test": "loud"}))
}
