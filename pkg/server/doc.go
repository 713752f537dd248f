// Package server serves aster component trees over HTTP: the initial page is
// server-rendered, then a WebSocket carries binary event frames up and patch
// frames down for the lifetime of the session.
package server
