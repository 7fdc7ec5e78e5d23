package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Owner barter.Address `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Fee   *coin.Coin     `protobuf:"bytes,2,opt,name=fee,proto3" json:"fee,omitempty"`
}

func (m *testConfig) Reset()         { *m = testConfig{} }
func (m *testConfig) String() string { return proto.CompactTextString(m) }
func (*testConfig) ProtoMessage()    {}

func (m *testConfig) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if m.Fee != nil {
		return m.Fee.Validate()
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	owner := barter.NewAddress([]byte("owner"))

	cases := map[string]struct {
		conf        *testConfig
		wantSaveErr *errors.Error
	}{
		"with a fee": {
			conf: &testConfig{Owner: owner, Fee: coin.NewCoinp(1, 5, "IOV")},
		},
		"without a fee": {
			conf: &testConfig{Owner: owner},
		},
		"invalid address cannot be saved": {
			conf:        &testConfig{Owner: barter.Address("too short")},
			wantSaveErr: errors.ErrInput,
		},
		"invalid coin cannot be saved": {
			conf:        &testConfig{Owner: owner, Fee: &coin.Coin{Whole: 1}},
			wantSaveErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Save(db, "test", tc.conf)
			if tc.wantSaveErr != nil {
				assert.True(t, tc.wantSaveErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)

			var got testConfig
			require.NoError(t, Load(db, "test", &got))
			assert.Equal(t, tc.conf.Owner, got.Owner)
			assert.Equal(t, tc.conf.Fee, got.Fee)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	var got testConfig
	err := Load(store.MemStore(), "missing", &got)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestInitConfig(t *testing.T) {
	owner := barter.NewAddress([]byte("owner"))
	raw := `{"conf": {"test": {"owner": "` + owner.String() + `", "fee": "0.01 IOV"}}}`

	var opts barter.Options
	require.NoError(t, json.Unmarshal([]byte(raw), &opts))

	db := store.MemStore()
	require.NoError(t, InitConfig(db, opts, "test", &testConfig{}))

	var got testConfig
	require.NoError(t, Load(db, "test", &got))
	assert.Equal(t, owner, got.Owner)
	assert.Equal(t, coin.NewCoinp(0, 10000000, "IOV"), got.Fee)

	err := InitConfig(db, opts, "other", &testConfig{})
	assert.True(t, errors.ErrNotFound.Is(err))
}
