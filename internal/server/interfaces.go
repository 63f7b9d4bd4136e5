package server

// Server is the process lifecycle: RunServer blocks until SIGINT, SIGTERM or
// SIGQUIT and returns once in-flight requests finished or the shutdown
// timeout passed.
type Server interface {
	RunServer()
	Shutdown()
}
