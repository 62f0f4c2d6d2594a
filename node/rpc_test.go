package node

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func request(h http.Handler, remote string) int {
	req := httptest.NewRequest(http.MethodPost, "/rpc/v0", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiterPerHost(t *testing.T) {
	h, err := NewRateLimiterHandler(okHandler(), 0.001, 2)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, request(h, "10.0.0.1:1000"))
	// the port does not matter, the bucket is per host
	require.Equal(t, http.StatusOK, request(h, "10.0.0.1:1001"))
	require.Equal(t, http.StatusTooManyRequests, request(h, "10.0.0.1:1002"))

	require.Equal(t, http.StatusOK, request(h, "10.0.0.2:1000"))
}

func TestRateLimiterDisabled(t *testing.T) {
	h, err := NewRateLimiterHandler(okHandler(), 0, 0)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.Equal(t, http.StatusOK, request(h, "10.0.0.1:1000"))
	}
}

func TestRequestTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	h := withRequestTimeout(slow, 10*time.Millisecond)

	require.Equal(t, http.StatusServiceUnavailable, request(h, "10.0.0.1:1000"))

	require.Equal(t, http.StatusOK, request(withRequestTimeout(okHandler(), 0), "10.0.0.1:1000"))
}
