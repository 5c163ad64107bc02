// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application; this package only defines the
// settings it reads: listen port, optional API key and request body limit.
package server
