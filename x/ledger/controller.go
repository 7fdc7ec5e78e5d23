package ledger

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x"
	"github.com/iov-one/barter/x/cash"
)

// AssetLedger is the functionality other extensions need to hold and
// move assets.
type AssetLedger interface {
	// Kind returns the registered asset kind, or ErrNotFound.
	Kind(db barter.ReadOnlyKVStore, ticker string) (*AssetKind, error)
	// Account returns the account stored under the id, or ErrNotFound.
	Account(db barter.ReadOnlyKVStore, id barter.Address) (*Account, error)
	// Balance returns the amount held by the account.
	Balance(db barter.ReadOnlyKVStore, id barter.Address) (uint64, error)

	// CreateAccount allocates an empty account of the given kind. The
	// account id is the address of the key material. The configured
	// deposit is charged from the payer's native wallet.
	CreateAccount(ctx barter.Context, db barter.KVStore, payer, owner barter.Address, kind string, key barter.Condition) (barter.Address, error)
	// Transfer moves amount between two accounts of the same kind. The
	// owner of the source account must be authenticated.
	Transfer(ctx barter.Context, db barter.KVStore, from, to barter.Address, amount uint64) error
	// CloseAccount removes an empty account and releases its deposit
	// to the destination wallet.
	CloseAccount(ctx barter.Context, db barter.KVStore, id, destination barter.Address) error
	// Mint credits new assets to an account. Only the issuer of the
	// asset kind may mint.
	Mint(ctx barter.Context, db barter.KVStore, to barter.Address, amount uint64) error
}

// Controller is the default AssetLedger implementation.
type Controller struct {
	auth     x.Authenticator
	kinds    KindBucket
	accounts AccountBucket
	cash     cash.CoinMover
}

var _ AssetLedger = Controller{}

// NewController returns a ledger that authorises owners with auth and
// charges account deposits through the coin mover.
func NewController(auth x.Authenticator, cm cash.CoinMover) Controller {
	return Controller{
		auth:     auth,
		kinds:    NewKindBucket(),
		accounts: NewAccountBucket(),
		cash:     cm,
	}
}

func (c Controller) Kind(db barter.ReadOnlyKVStore, ticker string) (*AssetKind, error) {
	return c.kinds.GetKind(db, ticker)
}

func (c Controller) Account(db barter.ReadOnlyKVStore, id barter.Address) (*Account, error) {
	return c.accounts.GetAccount(db, id)
}

func (c Controller) Balance(db barter.ReadOnlyKVStore, id barter.Address) (uint64, error) {
	acc, err := c.accounts.GetAccount(db, id)
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

func (c Controller) CreateAccount(ctx barter.Context, db barter.KVStore, payer, owner barter.Address, kind string, key barter.Condition) (barter.Address, error) {
	if err := key.Validate(); err != nil {
		return nil, errors.Wrap(err, "key material")
	}
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	if _, err := c.kinds.GetKind(db, kind); err != nil {
		return nil, errors.Wrap(err, "account kind")
	}
	id := key.Address()
	switch has, err := c.accounts.Has(db, id); {
	case err != nil:
		return nil, errors.Wrap(err, "cannot check account")
	case has:
		return nil, errors.Wrapf(errors.ErrDuplicate, "account %s", id)
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	acc := &Account{
		Metadata: &barter.Metadata{Schema: 1},
		Owner:    owner,
		Kind:     kind,
	}
	if !coin.IsEmpty(conf.AccountDeposit) {
		if !c.auth.HasAddress(ctx, payer) {
			return nil, errors.Wrap(errors.ErrUnauthorized, "deposit payer signature missing")
		}
		if err := c.cash.MoveCoins(db, payer, DepositReserve, *conf.AccountDeposit); err != nil {
			return nil, errors.Wrap(err, "cannot pay account deposit")
		}
		acc.Deposit = conf.AccountDeposit.Clone()
	}
	if err := c.accounts.SaveAccount(db, id, acc); err != nil {
		return nil, errors.Wrap(err, "cannot save account")
	}
	return id, nil
}

func (c Controller) Transfer(ctx barter.Context, db barter.KVStore, from, to barter.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}
	src, err := c.accounts.GetAccount(db, from)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	dst, err := c.accounts.GetAccount(db, to)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if src.Kind != dst.Kind {
		return errors.Wrapf(errors.ErrInput, "kind mismatch: %s to %s", src.Kind, dst.Kind)
	}
	if !c.auth.HasAddress(ctx, src.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "source owner signature missing")
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", src.Amount, amount)
	}
	if from.Equals(to) {
		return nil
	}
	if dst.Amount+amount < dst.Amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}

	src.Amount -= amount
	dst.Amount += amount
	if err := c.accounts.SaveAccount(db, from, src); err != nil {
		return errors.Wrap(err, "cannot save source")
	}
	if err := c.accounts.SaveAccount(db, to, dst); err != nil {
		return errors.Wrap(err, "cannot save destination")
	}
	return nil
}

func (c Controller) CloseAccount(ctx barter.Context, db barter.KVStore, id, destination barter.Address) error {
	acc, err := c.accounts.GetAccount(db, id)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(errors.ErrState, "account %s does not exist", id)
		}
		return err
	}
	if !c.auth.HasAddress(ctx, acc.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	if acc.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "account holds %d %s", acc.Amount, acc.Kind)
	}
	if !coin.IsEmpty(acc.Deposit) {
		if err := destination.Validate(); err != nil {
			return errors.Wrap(err, "deposit destination")
		}
		if err := c.cash.MoveCoins(db, DepositReserve, destination, *acc.Deposit); err != nil {
			return errors.Wrap(err, "cannot release deposit")
		}
	}
	if err := c.accounts.Delete(db, id); err != nil {
		return errors.Wrap(err, "cannot delete account")
	}
	return nil
}

func (c Controller) Mint(ctx barter.Context, db barter.KVStore, to barter.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero mint")
	}
	acc, err := c.accounts.GetAccount(db, to)
	if err != nil {
		return err
	}
	kind, err := c.kinds.GetKind(db, acc.Kind)
	if err != nil {
		return err
	}
	if !c.auth.HasAddress(ctx, kind.Issuer) {
		return errors.Wrap(errors.ErrUnauthorized, "issuer signature missing")
	}
	if acc.Amount+amount < acc.Amount {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	acc.Amount += amount
	return c.accounts.SaveAccount(db, to, acc)
}
