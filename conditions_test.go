package barter_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("address is printed as upper case hex", t, func() {
		addr := barter.NewAddress([]byte("holding"))

		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", []byte(addr)))
		So(barter.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("condition keeps extension and type readable", t, func() {
		cond := barter.NewCondition("escrow", "holding", []byte{0xca, 0xfe})

		So(cond.String(), ShouldEqual, "escrow/holding/CAFE")
		So(cond.Validate(), ShouldBeNil)
	})
}

func TestParseAddress(t *testing.T) {
	raw := []byte("twenty-byte-address!")
	cond := barter.NewCondition("foo", "bar", []byte("conditiondata"))
	bech, err := barter.Address(raw).Bech32("iov")
	require.NoError(t, err)

	cases := map[string]struct {
		enc      string
		wantErr  *errors.Error
		wantAddr barter.Address
	}{
		"default decoding": {
			enc:      fmt.Sprintf("%X", raw),
			wantAddr: raw,
		},
		"hex decoding": {
			enc:      fmt.Sprintf("hex:%x", raw),
			wantAddr: raw,
		},
		"cond decoding": {
			enc:      "cond:foo/bar/636f6e646974696f6e64617461",
			wantAddr: cond.Address(),
		},
		"bech32 decoding": {
			enc:      "bech32:" + bech,
			wantAddr: raw,
		},
		"hex of wrong length": {
			enc:     "6865782d61646472",
			wantErr: errors.ErrInput,
		},
		"invalid condition format": {
			enc:     "cond:foo/636f6e646974696f6e64617461",
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			enc:     "cond:foo/bar/zzzzz",
			wantErr: errors.ErrInput,
		},
		"invalid bech32": {
			enc:     "bech32:iov1xxxx",
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			enc:     "foobar:xxx",
			wantErr: errors.ErrType,
		},
		"zero address": {
			enc:      "",
			wantAddr: nil,
		},
		"zero cond address": {
			enc:      "cond:",
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			addr, err := barter.ParseAddress(tc.enc)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			if err == nil && !reflect.DeepEqual(addr, tc.wantAddr) {
				t.Fatalf("got address: %q", addr)
			}
		})
	}
}

func TestAddressJSON(t *testing.T) {
	addr := barter.NewAddress([]byte("depositor"))
	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var got barter.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got)
}

func TestConditionJSON(t *testing.T) {
	cases := map[string]struct {
		json          string
		wantErr       *errors.Error
		wantCondition barter.Condition
	}{
		"default decoding": {
			json:          `"foo/bar/636f6e646974696f6e64617461"`,
			wantCondition: barter.NewCondition("foo", "bar", []byte("conditiondata")),
		},
		"invalid condition format": {
			json:    `"foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"zero condition": {
			json:          `""`,
			wantCondition: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got barter.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			if err == nil {
				assert.True(t, got.Equals(tc.wantCondition), "got %q", got)
			}
		})
	}

	out, err := json.Marshal(barter.NewCondition("foo", "bar", []byte("conditiondata")))
	require.NoError(t, err)
	assert.Equal(t, `"foo/bar/636F6E646974696F6E64617461"`, string(out))

	out, err = json.Marshal(barter.Condition(nil))
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))
}

func TestConditionParse(t *testing.T) {
	ext, typ, data, err := barter.NewCondition("escrow", "authority", []byte{1, 2}).Parse()
	require.NoError(t, err)
	assert.Equal(t, "escrow", ext)
	assert.Equal(t, "authority", typ)
	assert.Equal(t, []byte{1, 2}, data)

	_, _, _, err = barter.Condition("no-slashes").Parse()
	require.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)
}
