package server

// Server is the lifecycle of the stub API server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives and
	// the server has shut down.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
