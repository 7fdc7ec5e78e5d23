package ledger

import (
	"regexp"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
)

const (
	// KindBucketName is where asset kinds are stored.
	KindBucketName = "kind"
	// AccountBucketName is where accounts are stored.
	AccountBucketName = "acct"
)

// IsTicker is the RegExp to ensure valid asset tickers.
var IsTicker = regexp.MustCompile(`^[A-Z][A-Z0-9]{2,9}$`).MatchString

// DepositReserve holds the native coins paid as account deposits until
// the account is closed.
var DepositReserve = barter.NewCondition("ledger", "deposit", []byte("reserve")).Address()

// AccountCondition returns the key material of a regular account held by
// owner. A seed allows an owner to hold more than one account of the same
// kind.
func AccountCondition(owner barter.Address, kind string, seed []byte) barter.Condition {
	data := make([]byte, 0, len(owner)+len(kind)+len(seed))
	data = append(data, owner...)
	data = append(data, kind...)
	data = append(data, seed...)
	return barter.NewCondition("ledger", "account", data)
}

var isName = regexp.MustCompile(`^[a-zA-Z0-9_ ]{3,32}$`).MatchString

// Validate ensures the asset kind is well formed.
func (k *AssetKind) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", k.Metadata.Validate())
	if !IsTicker(k.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrInput, "invalid ticker %q", k.Ticker))
	}
	if !isName(k.Name) {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrInput, "invalid name %q", k.Name))
	}
	errs = errors.AppendField(errs, "Issuer", k.Issuer.Validate())
	return errs
}

// Validate ensures the account is well formed.
func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", a.Owner.Validate())
	if !IsTicker(a.Kind) {
		errs = errors.Append(errs, errors.Field("Kind", errors.ErrInput, "invalid ticker %q", a.Kind))
	}
	if a.Deposit != nil {
		errs = errors.AppendField(errs, "Deposit", a.Deposit.Validate())
		if !a.Deposit.IsNonNegative() {
			errs = errors.Append(errs, errors.Field("Deposit", errors.ErrAmount, "negative"))
		}
	}
	return errs
}

// KindBucket stores asset kinds under their ticker.
type KindBucket struct {
	orm.Bucket
}

// NewKindBucket returns a bucket for asset kinds.
func NewKindBucket() KindBucket {
	obj := orm.NewSimpleObj(nil, &AssetKind{})
	return KindBucket{
		Bucket: orm.NewBucket(KindBucketName, obj),
	}
}

// Create saves a new asset kind. It fails if the ticker is taken.
func (b KindBucket) Create(db barter.KVStore, kind *AssetKind) error {
	key := []byte(kind.Ticker)
	switch has, err := b.Has(db, key); {
	case err != nil:
		return err
	case has:
		return errors.Wrapf(errors.ErrDuplicate, "asset kind %s", kind.Ticker)
	}
	return b.Save(db, orm.NewSimpleObj(key, kind))
}

// GetKind returns the asset kind registered under the ticker, or
// ErrNotFound.
func (b KindBucket) GetKind(db barter.ReadOnlyKVStore, ticker string) (*AssetKind, error) {
	obj, err := b.Get(db, []byte(ticker))
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "asset kind %q", ticker)
	}
	return obj.Value().(*AssetKind), nil
}

// AccountBucket stores accounts under the address of their key material.
type AccountBucket struct {
	orm.Bucket
}

// NewAccountBucket returns a bucket for accounts, indexed by owner.
func NewAccountBucket() AccountBucket {
	obj := orm.NewSimpleObj(nil, &Account{})
	b := orm.NewBucket(AccountBucketName, obj).
		WithIndex("owner", ownerIndexer, false)
	return AccountBucket{Bucket: b}
}

func ownerIndexer(obj orm.Object) ([]byte, error) {
	acc, ok := obj.Value().(*Account)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return acc.Owner, nil
}

// GetAccount returns the account stored under the id, or ErrNotFound.
func (b AccountBucket) GetAccount(db barter.ReadOnlyKVStore, id barter.Address) (*Account, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "account %s", id)
	}
	return obj.Value().(*Account), nil
}

// SaveAccount writes the account under the id.
func (b AccountBucket) SaveAccount(db barter.KVStore, id barter.Address, acc *Account) error {
	return b.Save(db, orm.NewSimpleObj(id, acc))
}

// ByOwner returns all accounts owned by the address.
func (b AccountBucket) ByOwner(db barter.ReadOnlyKVStore, owner barter.Address) ([]*Account, error) {
	objs, err := b.GetIndexed(db, "owner", owner)
	if err != nil {
		return nil, err
	}
	res := make([]*Account, len(objs))
	for i, o := range objs {
		res[i] = o.Value().(*Account)
	}
	return res, nil
}
