package cash

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Validate requires that all coins are in alphabetical order and
// that none of them is zero.
func (w *Wallet) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", w.Metadata.Validate())
	errs = errors.AppendField(errs, "Coins", coin.Coins(w.Coins).Validate())
	return errs
}

// Balance returns a copy of the coins held.
func (w *Wallet) Balance() coin.Coins {
	return coin.Coins(w.Coins).Clone()
}

// NewWallet creates an empty wallet stored under the given address.
func NewWallet(key barter.Address) orm.Object {
	return orm.NewSimpleObj(key, &Wallet{
		Metadata: &barter.Metadata{Schema: 1},
	})
}

// WalletWith creates a wallet holding the given coins. The coins are
// normalized before they are stored.
func WalletWith(key barter.Address, coins ...*coin.Coin) (orm.Object, error) {
	obj := NewWallet(key)
	normalized, err := coin.NormalizeCoins(coins)
	if err != nil {
		return nil, err
	}
	AsWallet(obj).Coins = normalized
	return obj, obj.Validate()
}

// AsWallet safely extracts a Wallet value from the object.
func AsWallet(obj orm.Object) *Wallet {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Wallet)
}

// add modifies the wallet holdings by the given amount, which may be
// negative. It fails if any coin would drop below zero.
func add(obj orm.Object, amount coin.Coin) error {
	w := AsWallet(obj)
	coins, err := coin.Coins(w.Coins).Add(amount)
	if err != nil {
		return err
	}
	if !coins.IsNonNegative() {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %s", amount.Ticker)
	}
	w.Coins = coins
	return nil
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// GetOrCreate returns the wallet stored under the address, or a new empty
// one if none exist yet. The new wallet is not saved.
func (b Bucket) GetOrCreate(db barter.ReadOnlyKVStore, key barter.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}
