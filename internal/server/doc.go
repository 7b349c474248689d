// Package server runs the local stand-in of the remote movie database API:
// startup, signal handling and graceful shutdown of its HTTP server.
package server
