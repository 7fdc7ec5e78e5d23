/*
Package escrow implements a two party, two asset escrow.

A depositor locks an amount of asset A in a holding account and names the
amount of asset B it wants in exchange. Any counterparty may then pay the
asset B amount to the depositor and receive the locked asset A in the same
transaction. Until that happens the depositor can cancel and take asset A
back.

Holding accounts are owned by the protocol authority, a condition derived
from a fixed tag and a salt such that no private key exists for it. Only
handlers of this package can act as the authority, once the caller
provided the canonical salt.

Escrows are never deleted. A consumed escrow keeps its terminal state.
*/
package escrow
