package dtypes

import (
	"github.com/gbrlsnchs/jwt/v3"
	"github.com/multiformats/go-multiaddr"
)

type APIAlg jwt.HMACSHA

type APIEndpoint multiaddr.Multiaddr

// ShutdownChan asks the daemon to stop. The RPC server and the node are shut
// down in that order.
type ShutdownChan chan struct{}
