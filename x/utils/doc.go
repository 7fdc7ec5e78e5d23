/*
Package utils contains decorators that every barter application chains in
front of its router: panic recovery, logging, metrics, action tagging and
savepoints.
*/
package utils
