package barter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iov-one/barter/errors"
)

// Query modifiers follow the path after a "?", as in "/escrows?prefix".
// Without a modifier the data is taken as an exact key.
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is a single key/value hit returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair wraps a raw key and value as a query hit.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers queries for one path against committed state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister publishes the buckets of one extension on a router.
type QueryRegister func(QueryRouter)

// QueryRouter maps "/<bucket>" and "/<bucket>/<index>" paths to the
// handler serving them.
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter returns a router without any path.
func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll runs every register function against this router.
func (r QueryRouter) RegisterAll(regs ...QueryRegister) {
	for _, reg := range regs {
		reg(r)
	}
}

// Register binds h to path. The path must be absolute and carry no
// modifier. Binding a path twice panics.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !strings.HasPrefix(path, "/") || strings.ContainsRune(path, '?') {
		panic(fmt.Sprintf("invalid query path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query path %q registered twice", path))
	}
	r.routes[path] = h
}

// Route resolves a raw query path into the handler bound to it and
// the modifier to pass along.
func (r QueryRouter) Route(raw string) (QueryHandler, string, error) {
	path, mod := raw, KeyQueryMod
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		path, mod = raw[:i], raw[i+1:]
	}
	h, ok := r.routes[path]
	if !ok {
		return nil, "", errors.Wrapf(errors.ErrNotFound,
			"query path %q, known paths are %s", path, strings.Join(r.Paths(), ", "))
	}
	return h, mod, nil
}

// Paths lists the registered paths in lexical order.
func (r QueryRouter) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
