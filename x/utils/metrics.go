package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator that counts and times every transaction that
// passes through it.
type Metrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ barter.Decorator = Metrics{}

// NewMetrics creates a Metrics decorator and registers its collectors
// with the registerer. Registering twice with the same registerer fails.
func NewMetrics(reg prometheus.Registerer) (Metrics, error) {
	m := Metrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barter",
			Name:      "tx_total",
			Help:      "Number of processed transactions.",
		}, []string{"phase", "path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "barter",
			Name:      "tx_duration_seconds",
			Help:      "Time spent processing a transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"phase", "path"}),
	}
	for _, c := range []prometheus.Collector{m.total, m.duration} {
		if err := reg.Register(c); err != nil {
			return Metrics{}, errors.Wrap(errors.ErrInput, err.Error())
		}
	}
	return m, nil
}

// Check records the outcome of CheckTx
func (m Metrics) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	m.observe("check", tx, start, err)
	return res, err
}

// Deliver records the outcome of DeliverTx
func (m Metrics) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	m.observe("deliver", tx, start, err)
	return res, err
}

func (m Metrics) observe(phase string, tx barter.Tx, start time.Time, err error) {
	path := barter.GetPath(tx)
	code, _ := errors.ABCIInfo(err, false)
	m.total.WithLabelValues(phase, path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.duration.WithLabelValues(phase, path).Observe(time.Since(start).Seconds())
}
