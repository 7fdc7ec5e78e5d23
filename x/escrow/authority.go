package escrow

import (
	"context"
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x"
)

const (
	authorityTag    = "vault_owner"
	authorityMarker = "ProgramDerivedAddress"
	extensionName   = "barter/escrow"
)

// canonical authority, computed once
var authority, authoritySalt = FindAuthority()

// authoritySeed hashes the authority tag, the salt and the extension
// name into 32 bytes.
func authoritySeed(salt uint8) []byte {
	h := sha256.New()
	h.Write([]byte(authorityTag))
	h.Write([]byte{salt})
	h.Write([]byte(extensionName))
	h.Write([]byte(authorityMarker))
	return h.Sum(nil)
}

// onCurve returns true if the bytes decode to a point of the ed25519
// curve, that is a public key for which a private key may exist.
func onCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// DeriveAuthority returns the authority condition derived with the given
// salt. Salts that produce a valid ed25519 public key are rejected, so no
// private key can ever sign for the returned condition.
func DeriveAuthority(salt uint8) (barter.Condition, error) {
	seed := authoritySeed(salt)
	if onCurve(seed) {
		return nil, errors.Wrapf(errors.ErrInput, "salt %d derives an ed25519 public key", salt)
	}
	return barter.NewCondition("escrow", "vault", seed), nil
}

// FindAuthority searches salts from 255 down to 0 and returns the first
// successful derivation together with its salt.
func FindAuthority() (barter.Condition, uint8) {
	for salt := 255; salt >= 0; salt-- {
		if cond, err := DeriveAuthority(uint8(salt)); err == nil {
			return cond, uint8(salt)
		}
	}
	panic("no salt derives an escrow authority")
}

// ProtocolAuthority returns the keyless condition that owns every
// holding account.
func ProtocolAuthority() barter.Condition {
	return authority
}

// CanonicalSalt returns the salt that derives ProtocolAuthority.
func CanonicalSalt() uint8 {
	return authoritySalt
}

// VerifyAuthority returns the authority condition if the salt reproduces
// ProtocolAuthority. Salts outside of a byte never do.
func VerifyAuthority(salt uint32) (barter.Condition, error) {
	if salt > maxSalt {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "salt %d is out of range", salt)
	}
	cond, err := DeriveAuthority(uint8(salt))
	if err != nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, err.Error())
	}
	if !cond.Address().Equals(authority.Address()) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "salt %d is not canonical", salt)
	}
	return cond, nil
}

// HoldingCondition is the key material of the holding account of a
// depositor for one asset kind.
func HoldingCondition(depositor barter.Address, kind string) barter.Condition {
	data := make([]byte, 0, len(depositor)+len(kind))
	data = append(data, depositor...)
	data = append(data, kind...)
	return barter.NewCondition("escrow", "holding", data)
}

type contextKey int // local to the escrow module

const (
	contextKeyAuthority contextKey = iota
)

// withAuthority is a private method, as only this module can act on
// behalf of the authority.
func withAuthority(ctx barter.Context, cond barter.Condition) barter.Context {
	return context.WithValue(ctx, contextKeyAuthority, cond)
}

// Authenticate exposes the escrow authority once a handler of this
// module verified it.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the authority if it was set on this context.
func (a Authenticate) GetConditions(ctx barter.Context) []barter.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyAuthority).(barter.Condition)
	if val == nil {
		return nil
	}
	return []barter.Condition{val}
}

// HasAddress returns true iff this address is in GetConditions
func (a Authenticate) HasAddress(ctx barter.Context, addr barter.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
