package escrow

import (
	"fmt"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/x/ledger"
)

// BucketName is where escrows are stored
const BucketName = "esc"

var stateNames = map[State]string{
	StateInvalid:   "invalid",
	StateOpen:      "open",
	StateCancelled: "cancelled",
	StateExchanged: "exchanged",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Validate ensures the escrow is valid
func (e *Escrow) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", e.Metadata.Validate())
	errs = errors.AppendField(errs, "Depositor", e.Depositor.Validate())
	errs = errors.AppendField(errs, "AssetAKind", validateKind(e.AssetAKind))
	errs = errors.AppendField(errs, "AssetBKind", validateKind(e.AssetBKind))
	if e.AssetAKind == e.AssetBKind {
		errs = errors.Append(errs, errors.Field("AssetBKind", errors.ErrInput, "must differ from asset A"))
	}
	errs = errors.AppendField(errs, "DepositorAssetA", e.DepositorAssetA.Validate())
	errs = errors.AppendField(errs, "DepositorAssetB", e.DepositorAssetB.Validate())
	if e.AssetAAmount == 0 {
		errs = errors.Append(errs, errors.Field("AssetAAmount", errors.ErrAmount, "must be positive"))
	}
	if e.AssetBAmount == 0 {
		errs = errors.Append(errs, errors.Field("AssetBAmount", errors.ErrAmount, "must be positive"))
	}
	errs = errors.AppendField(errs, "HoldingAccount", e.HoldingAccount.Validate())
	switch e.State {
	case StateOpen, StateCancelled:
		if len(e.Counterparty) != 0 {
			errs = errors.Append(errs, errors.Field("Counterparty", errors.ErrState, "set before exchange"))
		}
	case StateExchanged:
		errs = errors.AppendField(errs, "Counterparty", e.Counterparty.Validate())
	default:
		errs = errors.Append(errs, errors.Field("State", errors.ErrState, "invalid state %s", e.State))
	}
	return errs
}

func validateKind(ticker string) error {
	if !ledger.IsTicker(ticker) {
		return errors.Wrapf(errors.ErrInput, "invalid ticker %q", ticker)
	}
	return nil
}

// AsEscrow extracts an *Escrow value or nil from the object
// Must be called on a Bucket result that is an *Escrow,
// will panic on bad type.
func AsEscrow(obj orm.Object) *Escrow {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Escrow)
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewBucket initializes an escrow Bucket with an index on the depositor.
func NewBucket() Bucket {
	b := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Escrow{})).
		WithIndex("depositor", depositorIndexer, false)
	return Bucket{
		Bucket: b,
		idSeq:  b.Sequence(orm.SeqID),
	}
}

func depositorIndexer(obj orm.Object) ([]byte, error) {
	e, ok := obj.Value().(*Escrow)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return e.Depositor, nil
}

// Create saves a new escrow under the next sequence id.
func (b Bucket) Create(db barter.KVStore, e *Escrow) ([]byte, error) {
	id, err := b.idSeq.Next(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot acquire id")
	}
	if err := b.Save(db, orm.NewSimpleObj(id, e)); err != nil {
		return nil, err
	}
	return id, nil
}

// GetEscrow returns the escrow stored under the id, or ErrNotFound.
func (b Bucket) GetEscrow(db barter.ReadOnlyKVStore, id []byte) (*Escrow, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	if e := AsEscrow(obj); e != nil {
		return e, nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "escrow %X", id)
}

// ByDepositor returns all escrows opened by the address.
func (b Bucket) ByDepositor(db barter.ReadOnlyKVStore, depositor barter.Address) ([]*Escrow, error) {
	objs, err := b.GetIndexed(db, "depositor", depositor)
	if err != nil {
		return nil, err
	}
	res := make([]*Escrow, len(objs))
	for i, o := range objs {
		res[i] = AsEscrow(o)
	}
	return res, nil
}
