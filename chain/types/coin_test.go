package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoinsNormalize(t *testing.T) {
	cs := NewCoins(
		NewCoin("token", 5),
		NewCoin("stake", 0),
		NewCoin("token", 3),
	)
	require.Equal(t, "8token", cs.String())

	require.True(t, NewCoins(NewCoin("token", 0)).IsZero())
	require.Equal(t, "0", NewCoins().String())
}

func TestParseCoins(t *testing.T) {
	cs, err := ParseCoins("10token, 5stake,1token")
	require.NoError(t, err)
	require.Equal(t, "5stake,11token", cs.String())

	_, err = ParseCoins("10")
	require.Error(t, err)
	_, err = ParseCoins("-1token")
	require.Error(t, err)
}

func TestCoinsSafeSub(t *testing.T) {
	cs, err := ParseCoins("10token,5stake")
	require.NoError(t, err)

	res, ok := cs.SafeSub(NewCoins(NewCoin("token", 10)))
	require.True(t, ok)
	require.Equal(t, "5stake", res.String())

	res, ok = cs.SafeSub(NewCoins(NewCoin("stake", 6)))
	require.False(t, ok)
	require.Equal(t, cs, res)

	require.True(t, cs.IsAllGTE(NewCoins(NewCoin("stake", 5), NewCoin("token", 1))))
	require.False(t, cs.IsAllGTE(NewCoins(NewCoin("other", 1))))
	require.True(t, cs.AmountOf("stake").Equals(NewInt(5)))
}
