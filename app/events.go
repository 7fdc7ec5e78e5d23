package app

import (
	"context"

	cmn "github.com/tendermint/tendermint/libs/common"
)

// TxEvent holds the tags of one successfully delivered transaction.
type TxEvent struct {
	Height int64
	// Index of the transaction within the block.
	Index int
	Path  string
	Tags  []cmn.KVPair
}

// EventSink receives the events of a block once it is committed. Events
// of uncommitted blocks are never handed out.
type EventSink interface {
	Publish(ctx context.Context, events []TxEvent) error
}
