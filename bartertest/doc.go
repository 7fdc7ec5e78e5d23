/*
Package bartertest provides mocks and helpers for testing extensions:
authenticators, transactions, handlers, decorators and keys.
*/
package bartertest
