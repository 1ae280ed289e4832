// Package server runs the HTTP transport of the diary service, including
// signal handling and graceful shutdown.
package server
