package utils

import (
	"strings"

	"github.com/iov-one/barter"
	"github.com/tendermint/tendermint/libs/common"
)

// Tag keys set on every delivered transaction. With "escrow/exchange"
// as route, action is the full route and module is "escrow".
const (
	ActionKey = "action"
	ModuleKey = "module"
)

// ActionTagger tags successful deliveries with the route of their
// message, so clients can subscribe to one kind of barter action or
// to everything an extension does.
type ActionTagger struct{}

var _ barter.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check is not tagged, tags only matter for indexed blocks.
func (ActionTagger) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	// an unreadable message never reaches the router
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, routeTags(msg.Path())...)
	return res, nil
}

func routeTags(route string) []common.KVPair {
	tags := []common.KVPair{{Key: []byte(ActionKey), Value: []byte(route)}}
	if i := strings.IndexByte(route, '/'); i > 0 {
		tags = append(tags, common.KVPair{Key: []byte(ModuleKey), Value: []byte(route[:i])})
	}
	return tags
}
