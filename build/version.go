package build

import (
	"fmt"

	"golang.org/x/xerrors"
)

// CurrentCommit and BuildType are set through -ldflags by the Makefile.
var (
	CurrentCommit string
	BuildType     int
)

const (
	BuildDefault = 0
	BuildDebug   = 0x3
)

// BuildVersion is the local build version
const BuildVersion = "0.3.0"

func UserVersion() string {
	suffix := ""
	switch BuildType {
	case BuildDefault:
	case BuildDebug:
		suffix = "+debug"
	default:
		suffix = "+huh?"
	}
	return BuildVersion + suffix + CurrentCommit
}

// Version is a semver packed as 0x00MMmmpp.
type Version uint32

func newVer(major, minor, patch uint8) Version {
	return Version(uint32(major)<<16 | uint32(minor)<<8 | uint32(patch))
}

// Ints returns (major, minor, patch) versions
func (ve Version) Ints() (uint32, uint32, uint32) {
	v := uint32(ve)
	return v >> 16 & 0xff, v >> 8 & 0xff, v & 0xff
}

func (ve Version) String() string {
	vmj, vmi, vp := ve.Ints()
	return fmt.Sprintf("%d.%d.%d", vmj, vmi, vp)
}

// EqMajorMinor reports whether the versions are compatible. Patch releases
// never change the API surface.
func (ve Version) EqMajorMinor(v2 Version) bool {
	return ve>>8 == v2>>8
}

type NodeType int

const (
	NodeUnknown NodeType = iota

	NodeFull
)

var RunningNodeType NodeType

// FullAPIVersion is the version of the FullNode JSON-RPC API.
var FullAPIVersion = newVer(0, 3, 0)

func VersionForType(nodeType NodeType) (Version, error) {
	if nodeType != NodeFull {
		return 0, xerrors.Errorf("unknown node type %d", nodeType)
	}
	return FullAPIVersion, nil
}
