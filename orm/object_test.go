package orm

import (
	"testing"

	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleObjValidate(t *testing.T) {
	cases := map[string]struct {
		obj     Object
		wantErr *errors.Error
	}{
		"valid":          {obj: newCounterObj("a", "alice", 1)},
		"missing key":    {obj: NewSimpleObj(nil, &Counter{}), wantErr: errors.ErrEmpty},
		"missing value":  {obj: NewSimpleObj([]byte("a"), nil), wantErr: errors.ErrEmpty},
		"invalid values": {obj: newCounterObj("a", "alice", -1), wantErr: errors.ErrInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.obj.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestSimpleObjClone(t *testing.T) {
	orig := newCounterObj("a", "alice", 5)
	cpy := orig.Clone()

	assert.Equal(t, []byte("a"), cpy.Key())
	assert.Equal(t, &Counter{}, cpy.Value(), "clone carries a blank model")
	assert.Equal(t, int64(5), orig.Value().(*Counter).Count)

	cpy.SetKey([]byte("b"))
	assert.Equal(t, []byte("a"), orig.Key())

	assert.Nil(t, NewSimpleObj(nil, &Counter{}).Clone().Key())
}
