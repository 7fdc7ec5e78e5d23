package barter_test

import (
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticQuery string

func (s staticQuery) Query(db barter.ReadOnlyKVStore, mod string, data []byte) ([]barter.Model, error) {
	return []barter.Model{barter.Pair([]byte(s), []byte(mod))}, nil
}

func TestQueryRoute(t *testing.T) {
	qr := barter.NewQueryRouter()
	qr.RegisterAll(func(r barter.QueryRouter) {
		r.Register("/escrows", staticQuery("escrows"))
		r.Register("/escrows/depositor", staticQuery("depositor"))
	})
	assert.Equal(t, []string{"/escrows", "/escrows/depositor"}, qr.Paths())

	cases := map[string]struct {
		path    string
		wantKey string
		wantMod string
		wantErr *errors.Error
	}{
		"bucket key":       {path: "/escrows", wantKey: "escrows", wantMod: barter.KeyQueryMod},
		"bucket prefix":    {path: "/escrows?prefix", wantKey: "escrows", wantMod: barter.PrefixQueryMod},
		"index key":        {path: "/escrows/depositor", wantKey: "depositor", wantMod: barter.KeyQueryMod},
		"unknown bucket":   {path: "/wallets", wantErr: errors.ErrNotFound},
		"modifier only":    {path: "?prefix", wantErr: errors.ErrNotFound},
		"trailing slash":   {path: "/escrows/", wantErr: errors.ErrNotFound},
		"empty path":       {path: "", wantErr: errors.ErrNotFound},
		"unknown modifier": {path: "/escrows?range", wantKey: "escrows", wantMod: "range"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h, mod, err := qr.Route(tc.path)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				assert.Contains(t, err.Error(), "/escrows/depositor")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMod, mod)
			models, err := h.Query(nil, mod, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, string(models[0].Key))
		})
	}
}

func TestQueryRegisterPanics(t *testing.T) {
	qr := barter.NewQueryRouter()
	qr.Register("/kinds", staticQuery("kinds"))

	assert.Panics(t, func() { qr.Register("/kinds", staticQuery("again")) })
	assert.Panics(t, func() { qr.Register("kinds", staticQuery("relative")) })
	assert.Panics(t, func() { qr.Register("/kinds?prefix", staticQuery("mod")) })
	assert.Equal(t, []string{"/kinds"}, qr.Paths())
}
