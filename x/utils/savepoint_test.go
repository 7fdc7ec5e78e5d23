package utils

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavepoint(t *testing.T) {
	// always write ok, ov before calling functions
	ok, ov := []byte("demo"), []byte("data")
	// some key, value to try to write
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		save    Savepoint
		handler barter.Handler
		check   bool // whether to call Check or Deliver
		wantErr *errors.Error

		written [][]byte // keys to find
		missing [][]byte // keys not to find
	}{
		"savepoint not active, both written": {
			save:    NewSavepoint(),
			handler: bartertest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrHuman},
			check:   true,
			wantErr: errors.ErrHuman,
			written: [][]byte{ok, nk},
		},
		"check savepoint rolls back": {
			save:    NewSavepoint().OnCheck(),
			handler: bartertest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrHuman},
			check:   true,
			wantErr: errors.ErrHuman,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"deliver savepoint rolls back": {
			save:    NewSavepoint().OnDeliver(),
			handler: bartertest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrHuman},
			wantErr: errors.ErrHuman,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double activation keeps both": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: bartertest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrHuman},
			wantErr: errors.ErrHuman,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"check savepoint does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: bartertest.WriteHandler{Key: nk, Value: nv, Err: errors.ErrHuman},
			wantErr: errors.ErrHuman,
			written: [][]byte{ok, nk},
		},
		"success is written": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: bartertest.WriteHandler{Key: nk, Value: nv},
			written: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			require.NoError(t, kv.Set(ok, ov))
			tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "test/write"}}

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, tx, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, tx, tc.handler)
			}
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)

			for _, k := range tc.written {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.True(t, has, "%x", k)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				require.NoError(t, err)
				assert.False(t, has, "%x", k)
			}
		})
	}
}
