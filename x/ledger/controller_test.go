package ledger

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/gconf"
	"github.com/iov-one/barter/store"
	"github.com/iov-one/barter/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deposit = coin.NewCoin(0, 100, "IOV")

// newTestLedger returns a store with a configured ledger, the asset kinds
// GOLD and SILVER and a funded native wallet for each given address.
func newTestLedger(t testing.TB, issuer barter.Address, wallets ...barter.Address) (barter.CacheableKVStore, cash.Controller) {
	t.Helper()
	db := store.MemStore()
	conf := &Configuration{
		Metadata:       &barter.Metadata{Schema: 1},
		AccountDeposit: &deposit,
	}
	require.NoError(t, gconf.Save(db, configPkg, conf))

	kinds := NewKindBucket()
	for _, ticker := range []string{"GOLD", "SILVER"} {
		k := &AssetKind{
			Metadata: &barter.Metadata{Schema: 1},
			Ticker:   ticker,
			Name:     "test " + ticker,
			Issuer:   issuer,
		}
		require.NoError(t, kinds.Create(db, k))
	}

	cashCtrl := cash.NewController(cash.NewBucket())
	for _, w := range wallets {
		require.NoError(t, cashCtrl.IssueCoins(db, w, coin.NewCoin(1, 0, "IOV")))
	}
	return db, cashCtrl
}

func TestCreateAccount(t *testing.T) {
	alice := bartertest.NewCondition()
	bob := bartertest.NewCondition()
	poor := bartertest.NewCondition()

	db, cashCtrl := newTestLedger(t, alice.Address(), alice.Address(), bob.Address())
	auth := &bartertest.CtxAuth{Key: "auth"}
	ctrl := NewController(auth, cashCtrl)
	ctx := auth.SetConditions(context.Background(), alice)

	key := AccountCondition(bob.Address(), "GOLD", nil)
	id, err := ctrl.CreateAccount(ctx, db, alice.Address(), bob.Address(), "GOLD", key)
	require.NoError(t, err)
	assert.Equal(t, key.Address(), id)

	acc, err := ctrl.Account(db, id)
	require.NoError(t, err)
	assert.Equal(t, bob.Address(), acc.Owner)
	assert.Equal(t, "GOLD", acc.Kind)
	assert.Equal(t, uint64(0), acc.Amount)
	assert.Equal(t, &deposit, acc.Deposit)

	reserve, err := cashCtrl.Balance(db, DepositReserve)
	require.NoError(t, err)
	assert.Equal(t, coin.Coins{&deposit}, reserve)

	byOwner, err := NewAccountBucket().ByOwner(db, bob.Address())
	require.NoError(t, err)
	assert.Len(t, byOwner, 1)

	// the same key material cannot be used twice
	_, err = ctrl.CreateAccount(ctx, db, alice.Address(), bob.Address(), "GOLD", key)
	assert.True(t, errors.ErrDuplicate.Is(err), "unexpected error: %+v", err)

	_, err = ctrl.CreateAccount(ctx, db, alice.Address(), bob.Address(), "BRONZE", AccountCondition(bob.Address(), "BRONZE", nil))
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)

	// the deposit payer must sign
	_, err = ctrl.CreateAccount(ctx, db, bob.Address(), bob.Address(), "SILVER", AccountCondition(bob.Address(), "SILVER", nil))
	assert.True(t, errors.ErrUnauthorized.Is(err), "unexpected error: %+v", err)

	// and must be able to pay
	poorCtx := auth.SetConditions(context.Background(), poor)
	_, err = ctrl.CreateAccount(poorCtx, db, poor.Address(), poor.Address(), "SILVER", AccountCondition(poor.Address(), "SILVER", nil))
	assert.True(t, errors.ErrEmpty.Is(err), "unexpected error: %+v", err)
}

func TestTransfer(t *testing.T) {
	issuer := bartertest.NewCondition()
	alice := bartertest.NewCondition()
	bob := bartertest.NewCondition()

	cases := map[string]struct {
		signer  barter.Condition
		from    string
		to      string
		amount  uint64
		wantErr *errors.Error
		wantSrc uint64
		wantDst uint64
	}{
		"transfer part": {
			signer:  alice,
			from:    "alice gold",
			to:      "bob gold",
			amount:  30,
			wantSrc: 70,
			wantDst: 30,
		},
		"transfer everything": {
			signer:  alice,
			from:    "alice gold",
			to:      "bob gold",
			amount:  100,
			wantSrc: 0,
			wantDst: 100,
		},
		"transfer to self": {
			signer:  alice,
			from:    "alice gold",
			to:      "alice gold",
			amount:  10,
			wantSrc: 100,
			wantDst: 100,
		},
		"insufficient funds": {
			signer:  alice,
			from:    "alice gold",
			to:      "bob gold",
			amount:  101,
			wantErr: errors.ErrInsufficientAmount,
		},
		"kind mismatch": {
			signer:  alice,
			from:    "alice gold",
			to:      "bob silver",
			amount:  1,
			wantErr: errors.ErrInput,
		},
		"not the owner": {
			signer:  bob,
			from:    "alice gold",
			to:      "bob gold",
			amount:  1,
			wantErr: errors.ErrUnauthorized,
		},
		"zero amount": {
			signer:  alice,
			from:    "alice gold",
			to:      "bob gold",
			wantErr: errors.ErrAmount,
		},
		"missing destination": {
			signer:  alice,
			from:    "alice gold",
			to:      "nobody",
			amount:  1,
			wantErr: errors.ErrNotFound,
		},
		"overflow": {
			signer:  issuer,
			from:    "issuer gold",
			to:      "bob gold",
			amount:  1,
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db, cashCtrl := newTestLedger(t, issuer.Address())
			require.NoError(t, gconf.Save(db, configPkg, &Configuration{Metadata: &barter.Metadata{Schema: 1}}))

			auth := &bartertest.CtxAuth{Key: "auth"}
			ctrl := NewController(auth, cashCtrl)

			accounts := map[string]barter.Address{
				"nobody": AccountCondition(bob.Address(), "GOLD", []byte("nobody")).Address(),
			}
			open := func(name string, owner barter.Condition, kind string, amount uint64) {
				ctx := auth.SetConditions(context.Background(), owner)
				id, err := ctrl.CreateAccount(ctx, db, owner.Address(), owner.Address(), kind, AccountCondition(owner.Address(), kind, nil))
				require.NoError(t, err)
				if amount > 0 {
					ctx = auth.SetConditions(context.Background(), issuer)
					require.NoError(t, ctrl.Mint(ctx, db, id, amount))
				}
				accounts[name] = id
			}
			open("alice gold", alice, "GOLD", 100)
			open("bob gold", bob, "GOLD", 0)
			open("bob silver", bob, "SILVER", 0)
			open("issuer gold", issuer, "GOLD", 10)
			if testName == "overflow" {
				ctx := auth.SetConditions(context.Background(), issuer)
				require.NoError(t, ctrl.Mint(ctx, db, accounts["bob gold"], ^uint64(0)))
			}

			ctx := auth.SetConditions(context.Background(), tc.signer)
			err := ctrl.Transfer(ctx, db, accounts[tc.from], accounts[tc.to], tc.amount)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)

			got, err := ctrl.Balance(db, accounts[tc.from])
			require.NoError(t, err)
			assert.Equal(t, tc.wantSrc, got)
			got, err = ctrl.Balance(db, accounts[tc.to])
			require.NoError(t, err)
			assert.Equal(t, tc.wantDst, got)
		})
	}
}

func TestCloseAccount(t *testing.T) {
	alice := bartertest.NewCondition()
	bob := bartertest.NewCondition()

	db, cashCtrl := newTestLedger(t, alice.Address(), alice.Address())
	auth := &bartertest.CtxAuth{Key: "auth"}
	ctrl := NewController(auth, cashCtrl)
	aliceCtx := auth.SetConditions(context.Background(), alice)

	id, err := ctrl.CreateAccount(aliceCtx, db, alice.Address(), alice.Address(), "GOLD", AccountCondition(alice.Address(), "GOLD", nil))
	require.NoError(t, err)
	require.NoError(t, ctrl.Mint(aliceCtx, db, id, 5))

	err = ctrl.CloseAccount(aliceCtx, db, id, bob.Address())
	assert.True(t, errors.ErrState.Is(err), "unexpected error: %+v", err)

	burn, err := ctrl.CreateAccount(aliceCtx, db, alice.Address(), alice.Address(), "GOLD", AccountCondition(alice.Address(), "GOLD", []byte("burn")))
	require.NoError(t, err)
	require.NoError(t, ctrl.Transfer(aliceCtx, db, id, burn, 5))

	bobCtx := auth.SetConditions(context.Background(), bob)
	err = ctrl.CloseAccount(bobCtx, db, id, bob.Address())
	assert.True(t, errors.ErrUnauthorized.Is(err), "unexpected error: %+v", err)

	require.NoError(t, ctrl.CloseAccount(aliceCtx, db, id, bob.Address()))
	_, err = ctrl.Account(db, id)
	assert.True(t, errors.ErrNotFound.Is(err))

	// the deposit was released to the destination
	got, err := cashCtrl.Balance(db, bob.Address())
	require.NoError(t, err)
	assert.Equal(t, coin.Coins{&deposit}, got)

	// closing twice fails
	err = ctrl.CloseAccount(aliceCtx, db, id, bob.Address())
	assert.True(t, errors.ErrState.Is(err), "unexpected error: %+v", err)
}

func TestMint(t *testing.T) {
	issuer := bartertest.NewCondition()
	alice := bartertest.NewCondition()

	db, cashCtrl := newTestLedger(t, issuer.Address(), alice.Address())
	auth := &bartertest.CtxAuth{Key: "auth"}
	ctrl := NewController(auth, cashCtrl)
	aliceCtx := auth.SetConditions(context.Background(), alice)

	id, err := ctrl.CreateAccount(aliceCtx, db, alice.Address(), alice.Address(), "SILVER", AccountCondition(alice.Address(), "SILVER", nil))
	require.NoError(t, err)

	err = ctrl.Mint(aliceCtx, db, id, 10)
	assert.True(t, errors.ErrUnauthorized.Is(err), "unexpected error: %+v", err)

	issuerCtx := auth.SetConditions(context.Background(), issuer)
	require.NoError(t, ctrl.Mint(issuerCtx, db, id, 10))
	require.NoError(t, ctrl.Mint(issuerCtx, db, id, 5))
	got, err := ctrl.Balance(db, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), got)

	err = ctrl.Mint(issuerCtx, db, id, ^uint64(0))
	assert.True(t, errors.ErrOverflow.Is(err), "unexpected error: %+v", err)
}
