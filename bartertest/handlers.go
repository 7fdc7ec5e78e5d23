package bartertest

import "github.com/iov-one/barter"

// Handler is a mock implementation of the barter.Handler interface.
// It returns the configured results and counts calls.
type Handler struct {
	checkCall   int
	CheckResult barter.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult barter.DeliverResult
	DeliverErr    error
}

var _ barter.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the given key/value pair on every call and then
// returns Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ barter.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &barter.CheckResult{}, nil
}

func (h WriteHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &barter.DeliverResult{}, nil
}

// PanicHandler always panics with the given value.
type PanicHandler struct {
	Value interface{}
}

var _ barter.Handler = PanicHandler{}

func (h PanicHandler) Check(barter.Context, barter.KVStore, barter.Tx) (*barter.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(barter.Context, barter.KVStore, barter.Tx) (*barter.DeliverResult, error) {
	panic(h.Value)
}
