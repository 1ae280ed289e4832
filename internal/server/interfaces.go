package server

// Server runs the diary API until the process is asked to stop.
type Server interface {
	// RunServer listens on the configured address and blocks until SIGTERM,
	// SIGINT or SIGQUIT, then drains in-flight requests.
	RunServer()

	// Shutdown stops accepting connections and waits up to shutdownTimeout
	// for active requests to finish.
	Shutdown()
}
