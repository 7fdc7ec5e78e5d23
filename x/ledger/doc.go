/*
Package ledger implements the asset ledger that escrows trade on.

Every asset kind is registered once by its issuer and identified by its
ticker. Balances live in accounts: each account holds a single asset
kind and belongs to a single owner. The owner may be a signer, or a
keyless condition that an extension authenticates from within its own
code, such as the escrow authority.

Allocating an account costs a deposit in native coins that is returned
when the account is closed.
*/
package ledger
