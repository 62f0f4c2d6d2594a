package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/go-jsonrpc/auth"
)

func testHandler(seen *[]auth.Permission) *Handler {
	return &Handler{
		Verify: func(ctx context.Context, token string) ([]auth.Permission, error) {
			if token != "good" {
				return nil, xerrors.New("bad token")
			}
			return []auth.Permission{"read", "sign"}, nil
		},
		Next: func(w http.ResponseWriter, r *http.Request) {
			*seen = nil
			for _, p := range []auth.Permission{"read", "write", "sign", "admin"} {
				if auth.HasPerm(r.Context(), nil, p) {
					*seen = append(*seen, p)
				}
			}
			w.WriteHeader(http.StatusOK)
		},
	}
}

func TestHandlerPermissions(t *testing.T) {
	var seen []auth.Permission
	h := testHandler(&seen)

	req := httptest.NewRequest(http.MethodPost, "/rpc/v0", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []auth.Permission{"read", "sign"}, seen)

	req = httptest.NewRequest(http.MethodGet, "/rpc/v0?token=good", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []auth.Permission{"read", "sign"}, seen)
}

func TestHandlerRejects(t *testing.T) {
	var seen []auth.Permission
	h := testHandler(&seen)

	for _, hdr := range []string{"Bearer bad", "good"} {
		req := httptest.NewRequest(http.MethodPost, "/rpc/v0", nil)
		req.Header.Set("Authorization", hdr)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, hdr)
	}
}

func TestHandlerAnonymous(t *testing.T) {
	var seen []auth.Permission
	h := testHandler(&seen)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rpc/v0", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, seen)
}
