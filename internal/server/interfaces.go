package server

// Server is the lifecycle contract of the inbound HTTP transport.
//
// RunServer blocks until a stop signal arrives and the graceful shutdown has
// drained in-flight requests; Shutdown may also be called directly to stop
// serving early.
type Server interface {
	RunServer()
	Shutdown()
}
