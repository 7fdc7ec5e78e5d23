package x

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	a := bartertest.NewCondition()
	b := bartertest.NewCondition()
	c := bartertest.NewCondition()

	ctx1 := &bartertest.CtxAuth{Key: "foo"}
	ctx2 := &bartertest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx          barter.Context
		auth         Authenticator
		mainSigner   barter.Condition
		wantInCtx    barter.Condition
		wantNotInCtx barter.Condition
		wantAll      []barter.Condition
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &bartertest.Auth{},
			wantNotInCtx: b,
		},
		"signer a": {
			ctx:          context.Background(),
			auth:         &bartertest.Auth{Signer: a},
			mainSigner:   a,
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []barter.Condition{a},
		},
		"chained auth keeps order": {
			ctx: context.Background(),
			auth: ChainAuth(
				&bartertest.Auth{Signer: b},
				&bartertest.Auth{Signer: a}),
			mainSigner:   b,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []barter.Condition{b, a},
		},
		"chained auth drops duplicates": {
			ctx: context.Background(),
			auth: ChainAuth(
				&bartertest.Auth{Signers: []barter.Condition{a, b}},
				&bartertest.Auth{Signer: a}),
			mainSigner: a,
			wantInCtx:  b,
			wantAll:    []barter.Condition{a, b},
		},
		"ctxAuth checks what is set by same key": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx1,
			mainSigner:   a,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []barter.Condition{a, b},
		},
		"ctxAuth with different key sees nothing": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))
			if tc.wantInCtx != nil {
				assert.True(t, tc.auth.HasAddress(tc.ctx, tc.wantInCtx.Address()))
			}
			if tc.wantNotInCtx != nil {
				assert.False(t, tc.auth.HasAddress(tc.ctx, tc.wantNotInCtx.Address()))
			}

			all := tc.auth.GetConditions(tc.ctx)
			assert.Equal(t, tc.wantAll, all)
			assert.True(t, HasAllConditions(tc.ctx, tc.auth, all))
			assert.True(t, HasAllAddresses(tc.ctx, tc.auth, GetAddresses(tc.ctx, tc.auth)))
			if tc.wantNotInCtx != nil {
				assert.False(t, HasAllConditions(tc.ctx, tc.auth, append(all, tc.wantNotInCtx)))
			}
		})
	}
}
