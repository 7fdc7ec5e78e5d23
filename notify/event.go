/*
Package notify publishes the escrow transitions of every committed block
on a NATS subject, so that services outside of the chain can follow them
without polling the node.

Every transition is published as a JSON encoded Event on
"barter.escrow.<action>", where action is one of open, cancel and
exchange. Event IDs are derived from the block position, so republishing
a block yields the same IDs.
*/
package notify

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/iov-one/barter/app"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/escrow"
)

// SubjectPrefix is prepended to the action of every published event.
const SubjectPrefix = "barter.escrow."

// SubjectAll matches the subject of every escrow event.
const SubjectAll = SubjectPrefix + ">"

// eventSpace is the namespace of the event IDs.
var eventSpace = uuid.MustParse("6f1f3c0e-2c64-4d8a-9a43-4a3b1f0d6e21")

// Event describes a single escrow transition.
type Event struct {
	ID           string `json:"id"`
	Height       int64  `json:"height"`
	Index        int    `json:"index"`
	Action       string `json:"action"`
	EscrowID     string `json:"escrow_id"`
	Depositor    string `json:"depositor"`
	Counterparty string `json:"counterparty,omitempty"`
	State        int32  `json:"state"`
}

// Subject returns the NATS subject this event is published on.
func (e *Event) Subject() string {
	return SubjectPrefix + e.Action
}

// Validate returns an error if a required field is missing.
func (e *Event) Validate() error {
	var errs error
	if _, err := uuid.Parse(e.ID); err != nil {
		errs = errors.Append(errs, errors.Field("ID", errors.ErrInput, "not a uuid"))
	}
	switch e.Action {
	case "open", "cancel", "exchange":
	default:
		errs = errors.Append(errs, errors.Field("Action", errors.ErrInput, "unknown action %q", e.Action))
	}
	if e.EscrowID == "" {
		errs = errors.Append(errs, errors.Field("EscrowID", errors.ErrEmpty, "required"))
	}
	if e.Depositor == "" {
		errs = errors.Append(errs, errors.Field("Depositor", errors.ErrEmpty, "required"))
	}
	return errs
}

// FromTxEvent builds an Event out of the tags of a delivered transaction.
// It returns false if the transaction did not touch an escrow.
func FromTxEvent(tx app.TxEvent) (*Event, bool, error) {
	e := Event{Height: tx.Height, Index: tx.Index}
	for _, tag := range tx.Tags {
		val := string(tag.Value)
		switch string(tag.Key) {
		case escrow.TagAction:
			e.Action = val
		case escrow.TagID:
			e.EscrowID = val
		case escrow.TagDepositor:
			e.Depositor = val
		case escrow.TagCounterparty:
			e.Counterparty = val
		case escrow.TagState:
			state, err := strconv.ParseInt(val, 10, 32)
			if err != nil {
				return nil, false, errors.Wrapf(errors.ErrInput, "state tag %q", val)
			}
			e.State = int32(state)
		}
	}
	if e.Action == "" {
		return nil, false, nil
	}
	key := fmt.Sprintf("%d/%d/%s/%s", e.Height, e.Index, e.EscrowID, e.Action)
	e.ID = uuid.NewSHA1(eventSpace, []byte(key)).String()
	if err := e.Validate(); err != nil {
		return nil, false, err
	}
	return &e, true, nil
}
