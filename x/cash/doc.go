/*
Package cash keeps the native coin wallets of the chain.

Native coins are not traded through escrows. They pay transaction fees
and the deposit that the ledger charges for every allocated asset
account. There is no logic in the coins, except that the balance of any
coin may not go below zero.
*/
package cash
