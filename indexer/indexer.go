package indexer

import (
	"context"
	"encoding/json"

	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/notify"
	"github.com/nats-io/nats.go"
	"github.com/tendermint/tendermint/libs/log"
)

// Indexer feeds the events received over NATS into the store.
type Indexer struct {
	store  *Store
	logger log.Logger
}

// New returns an indexer writing to store.
func New(store *Store, logger log.Logger) *Indexer {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Indexer{store: store, logger: logger.With("module", "indexer")}
}

// Handle decodes and saves a single message.
func (ix *Indexer) Handle(ctx context.Context, msg *nats.Msg) error {
	var ev notify.Event
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		return errors.Wrapf(errors.ErrInput, "decode %s: %s", msg.Subject, err)
	}
	if ev.Subject() != msg.Subject {
		return errors.Wrapf(errors.ErrInput, "%s event received on %s", ev.Action, msg.Subject)
	}
	return ix.store.Save(ctx, &ev)
}

// Run subscribes to all escrow events and indexes them until the context
// is cancelled. A message that cannot be indexed is logged and dropped.
func (ix *Indexer) Run(ctx context.Context, nc *nats.Conn) error {
	msgs := make(chan *nats.Msg, 256)
	sub, err := nc.ChanSubscribe(notify.SubjectAll, msgs)
	if err != nil {
		return errors.Wrapf(errors.ErrState, "subscribe: %s", err)
	}
	defer sub.Unsubscribe()

	ix.logger.Info("Indexing escrow events", "subject", notify.SubjectAll)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-msgs:
			if err := ix.Handle(ctx, msg); err != nil {
				ix.logger.Error("Cannot index event", "subject", msg.Subject, "err", err)
			}
		}
	}
}
