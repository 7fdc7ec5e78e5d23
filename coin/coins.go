package coin

import (
	"sort"

	"github.com/iov-one/barter/errors"
)

// Coins represents a set of coins. Most operations on the coin set require
// normalized form: sorted by ticker, one entry per ticker, no zero values.
type Coins []*Coin

// CombineCoins creates a normalized Coins containing all given coins.
func CombineCoins(cs ...Coin) (Coins, error) {
	var (
		res Coins
		err error
	)
	for _, c := range cs {
		if res, err = res.Add(c); err != nil {
			return nil, err
		}
	}
	return res, res.Validate()
}

// Clone returns a copy that can be safely modified
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add returns a new set with the holdings increased by c. Currencies
// that sum up to zero are removed.
func (cs Coins) Add(c Coin) (Coins, error) {
	res := cs.Clone()
	if c.IsZero() {
		return res, nil
	}
	i := sort.Search(len(res), func(i int) bool { return res[i].Ticker >= c.Ticker })
	if i < len(res) && res[i].Ticker == c.Ticker {
		sum, err := res[i].Add(c)
		if err != nil {
			return nil, err
		}
		if sum.IsZero() {
			return append(res[:i], res[i+1:]...), nil
		}
		res[i] = &sum
		return res, nil
	}
	res = append(res, nil)
	copy(res[i+1:], res[i:])
	res[i] = &c
	return res, nil
}

// Subtract returns a new set with the holdings decreased by c.
// The result may contain negative amounts.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Combine will create a new Coins adding all the coins
// of s and o together.
func (cs Coins) Combine(o Coins) (Coins, error) {
	res := cs.Clone()
	var err error
	for _, c := range o {
		if res, err = res.Add(*c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Contains returns true if there is at least that much
// coin in the Coins.
func (cs Coins) Contains(c Coin) bool {
	for _, has := range cs {
		if has.Ticker == c.Ticker {
			return has.IsGTE(c)
		}
	}
	return c.IsZero() || !c.IsPositive()
}

// IsEmpty returns if nothing is in the Coins
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsNonNegative returns true if no coin has a negative value.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsNonNegative() {
			return false
		}
	}
	return true
}

// Equals returns true if both Coins contain same coins
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that all coins are in alphabetical
// order and that each coin is valid in it's own right
//
// Zero amounts should not be present
func (cs Coins) Validate() error {
	var err error
	last := ""
	for _, c := range cs {
		if c == nil {
			err = errors.Append(err, errors.Wrap(errors.ErrEmpty, "nil coin"))
			continue
		}
		err = errors.Append(err, errors.Wrap(c.Validate(), "coin"))
		if c.IsZero() {
			err = errors.Append(err, errors.Wrap(errors.ErrState, "zero coins"))
		}
		if c.Ticker <= last && last != "" {
			err = errors.Append(err, errors.Wrap(errors.ErrState, "not sorted"))
		}
		last = c.Ticker
	}
	return err
}

// NormalizeCoins merges coins of the same currency, drops zero values and
// orders the result by ticker.
func NormalizeCoins(cs Coins) (Coins, error) {
	var (
		res Coins
		err error
	)
	for _, c := range cs {
		if IsEmpty(c) {
			continue
		}
		if res, err = res.Add(*c); err != nil {
			return nil, errors.Wrap(err, "cannot sum coins")
		}
	}
	return res, nil
}
