/*
Package app contains the glue between the tendermint ABCI interface and
the barter handlers: a router dispatching messages by path, the decorator
chain, the commit store holding check and deliver caches, and the
application types implementing abci.Application.
*/
package app
