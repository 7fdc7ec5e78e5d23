/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration message stored under its package
name. The configuration is loaded from the genesis file and accessed by the
extension handlers when processing a transaction.
*/
package gconf
