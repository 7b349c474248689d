// Package http implements a local stand-in for the remote movie database
// API.
//
// It serves the same paths, envelopes and status codes the client talks to,
// backed by the in-memory [store.StubStorage]: request tokens, sessions,
// account lists, search and poster images. Cross-cutting concerns such as
// API key checks, session resolution, request tracing, access logging and
// response compression are handled by middleware.
package http
