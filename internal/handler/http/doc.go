// Package http implements the REST transport of the diary service.
//
// It wires the chi router under /api, the bearer token gate protecting the
// profile, category and entry routes, and the cross-cutting middleware for
// CORS, request tracing, access logging, panic recovery, request timeouts
// and gzip. Service errors are translated to status codes and client-facing
// messages in one place, see errors_mapper.go.
package http
