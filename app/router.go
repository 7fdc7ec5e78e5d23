package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]barter.Handler
}

var _ barter.Registry = (*Router)(nil)
var _ barter.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]barter.Handler),
	}
}

// Handle registers a handler for the message path. It panics on
// re-registration or an invalid path.
func (r *Router) Handle(m barter.Msg, h barter.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no handler is
// found, notFoundHandler is returned.
func (r *Router) handler(m barter.Msg) barter.Handler {
	if h, ok := r.routes[m.Path()]; ok {
		return h
	}
	return notFoundHandler(m.Path())
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, db, tx)
}

// notFoundHandler always returns ErrNotFound
type notFoundHandler string

func (path notFoundHandler) Check(barter.Context, barter.KVStore, barter.Tx) (*barter.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(barter.Context, barter.KVStore, barter.Tx) (*barter.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
