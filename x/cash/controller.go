package cash

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to the
	// destination account. This operation is atomic.
	MoveCoins(store barter.KVStore, src, dest barter.Address, amount coin.Coin) error
}

// CoinIssuer creates new coins out of thin air.
type CoinIssuer interface {
	IssueCoins(store barter.KVStore, dest barter.Address, amount coin.Coin) error
}

// Controller is the functionality needed by cash.Handler and
// cash.FeeDecorator. BaseController should work plenty fine, but you
// can add other logic if so desired.
type Controller interface {
	CoinMover
	CoinIssuer
	Balance(store barter.ReadOnlyKVStore, addr barter.Address) (coin.Coins, error)
}

// BaseController is a simple implementation of controller wallet must
// return something that supports AsSet.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a basic controller implementation
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins stored under given address. ErrNotFound is
// returned if the wallet does not exist.
func (c BaseController) Balance(store barter.ReadOnlyKVStore, addr barter.Address) (coin.Coins, error) {
	obj, err := c.bucket.Get(store, addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "wallet %s", addr)
	}
	return AsWallet(obj).Balance(), nil
}

// MoveCoins moves the given amount from src to dest. If src doesn't
// exist, or doesn't have sufficient coins, it fails.
func (c BaseController) MoveCoins(store barter.KVStore, src, dest barter.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", amount)
	}

	sender, err := c.bucket.Get(store, src)
	if err != nil {
		return errors.Wrap(err, "cannot get sender")
	}
	if sender == nil {
		return errors.Wrapf(errors.ErrEmpty, "empty account %s", src)
	}
	if !coin.Coins(AsWallet(sender).Coins).Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "funds %s", amount)
	}
	if err := add(sender, amount.Negative()); err != nil {
		return errors.Wrap(err, "cannot subtract from sender")
	}
	if err := c.bucket.Save(store, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}

	// Loaded after the sender is saved, so that moving coins to self is
	// a no-op.
	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient")
	}
	if err := add(recipient, amount); err != nil {
		return errors.Wrap(err, "cannot add to recipient")
	}
	return c.bucket.Save(store, recipient)
}

// IssueCoins attempts to add the given amount of coins to the
// destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative.
func (c BaseController) IssueCoins(store barter.KVStore, dest barter.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(store, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient")
	}
	if err := add(recipient, amount); err != nil {
		return err
	}
	return c.bucket.Save(store, recipient)
}
