package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNothing(t *testing.T) {
	assert := assert.New(t)

	{
		cfg, err := FromFile(os.DevNull, DefaultFullNode())
		assert.Nil(err, "error should be nil")
		assert.Equal(DefaultFullNode(), cfg,
			"config from empty file should be the same as default")
	}

	{
		cfg, err := FromFile(filepath.Join(t.TempDir(), "does-not-exist.toml"), DefaultFullNode())
		assert.Nil(err, "error should be nil")
		assert.Equal(DefaultFullNode(), cfg,
			"config from not existing file should be the same as default")
	}
}

func TestParitalConfig(t *testing.T) {
	assert := assert.New(t)
	cfgString := `
		[API]
		Timeout = "10s"
		[Datastore]
		Type = "badger"
		[[Genesis.Accounts]]
		Address = "f1abjxfbp274xpdqcpuaykwkfb43omjotacm2p3za"
		Balance = "1000utoken"
		`
	expected := DefaultFullNode()
	expected.API.Timeout = Duration(10 * time.Second)
	expected.Datastore.Type = DatastoreBadger
	expected.Genesis.Accounts = []GenesisAccount{{
		Address: "f1abjxfbp274xpdqcpuaykwkfb43omjotacm2p3za",
		Balance: "1000utoken",
	}}

	{
		cfg, err := FromReader(bytes.NewReader([]byte(cfgString)), DefaultFullNode())
		assert.NoError(err, "error should be nil")
		assert.Equal(expected, cfg,
			"config from reader should contain changes")
	}

	{
		f := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(f, []byte(cfgString), 0644))

		cfg, err := FromFile(f, DefaultFullNode())
		assert.NoError(err, "error should be nil")
		assert.Equal(expected, cfg,
			"config from file should contain changes")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LOTUS_ESCROW_API_LISTENADDRESS", "/ip4/127.0.0.1/tcp/4321/http")
	t.Setenv("LOTUS_ESCROW_INDEX_ENABLEMSGINDEX", "false")

	cfg, err := FromReader(bytes.NewReader(nil), DefaultFullNode())
	require.NoError(t, err)

	fn := cfg.(*FullNode)
	require.Equal(t, "/ip4/127.0.0.1/tcp/4321/http", fn.API.ListenAddress)
	require.False(t, fn.Index.EnableMsgIndex)
}

func TestCommentedDefaultsDecode(t *testing.T) {
	b, err := ConfigComment(DefaultFullNode())
	require.NoError(t, err)

	cfg, err := FromReader(bytes.NewReader(b), DefaultFullNode())
	require.NoError(t, err)
	require.Equal(t, DefaultFullNode(), cfg)
}
