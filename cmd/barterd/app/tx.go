package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/cash"
	"github.com/iov-one/barter/x/sigs"
)

// make sure tx fulfills all interfaces
var _ barter.Tx = (*Tx)(nil)
var _ cash.FeeTx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (barter.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// GetMsg returns the single message of this transaction.
func (tx *Tx) GetMsg() (barter.Msg, error) {
	var msgs []barter.Msg
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	if tx.CreateKindMsg != nil {
		msgs = append(msgs, tx.CreateKindMsg)
	}
	if tx.MintMsg != nil {
		msgs = append(msgs, tx.MintMsg)
	}
	if tx.CreateAccountMsg != nil {
		msgs = append(msgs, tx.CreateAccountMsg)
	}
	if tx.TransferMsg != nil {
		msgs = append(msgs, tx.TransferMsg)
	}
	if tx.CloseAccountMsg != nil {
		msgs = append(msgs, tx.CloseAccountMsg)
	}
	if tx.OpenEscrowMsg != nil {
		msgs = append(msgs, tx.OpenEscrowMsg)
	}
	if tx.CancelEscrowMsg != nil {
		msgs = append(msgs, tx.CancelEscrowMsg)
	}
	if tx.ExchangeEscrowMsg != nil {
		msgs = append(msgs, tx.ExchangeEscrowMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages, expected one", len(msgs))
	}
}

// GetSignBytes returns the bytes to sign, that is the
// serialized transaction without signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	stripped := *tx
	stripped.Signatures = nil
	bz, err := proto.Marshal(&stripped)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return bz, nil
}
