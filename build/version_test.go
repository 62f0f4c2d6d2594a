package build

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	v := newVer(1, 2, 3)
	require.Equal(t, "1.2.3", v.String())

	require.True(t, v.EqMajorMinor(newVer(1, 2, 9)))
	require.False(t, v.EqMajorMinor(newVer(1, 3, 3)))
	require.False(t, v.EqMajorMinor(newVer(2, 2, 3)))

	_, err := VersionForType(NodeUnknown)
	require.Error(t, err)
}
