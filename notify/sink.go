package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iov-one/barter/app"
	"github.com/iov-one/barter/errors"
	"github.com/nats-io/nats.go"
	"github.com/tendermint/tendermint/libs/log"
)

// Conn is the part of *nats.Conn used by the sink.
type Conn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
}

var _ Conn = (*nats.Conn)(nil)

// Connect dials the NATS server at url.
func Connect(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "nats connect %s: %s", url, err)
	}
	return nc, nil
}

// Sink publishes escrow events. Transactions without escrow tags are
// skipped.
type Sink struct {
	conn   Conn
	logger log.Logger
}

var _ app.EventSink = (*Sink)(nil)

// NewSink returns a sink publishing on the connection.
func NewSink(conn Conn, logger log.Logger) *Sink {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Sink{conn: conn, logger: logger.With("module", "notify")}
}

// Publish sends one message per escrow event and waits until the server
// received all of them.
func (s *Sink) Publish(ctx context.Context, events []app.TxEvent) error {
	var published int
	for _, tx := range events {
		ev, ok, err := FromTxEvent(tx)
		if err != nil {
			return errors.Wrapf(err, "event %d/%d", tx.Height, tx.Index)
		}
		if !ok {
			continue
		}
		raw, err := json.Marshal(ev)
		if err != nil {
			return errors.Wrap(errors.ErrInput, err.Error())
		}
		if err := s.conn.Publish(ev.Subject(), raw); err != nil {
			return errors.Wrapf(errors.ErrState, "publish %s: %s", ev.Subject(), err)
		}
		published++
	}
	if published == 0 {
		return nil
	}
	if err := s.conn.FlushWithContext(ctx); err != nil {
		return errors.Wrapf(errors.ErrState, "flush: %s", err)
	}
	s.logger.Debug("Published escrow events", "count", published)
	return nil
}
