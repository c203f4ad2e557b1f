// Package http implements the HTTP transport layer of the snapshot blob
// store.
//
// It exposes route wiring, request handlers, and middleware used by the
// snapshot API. Cross-cutting concerns such as authentication, request
// tracing, access logging, and upload integrity checks are handled in this
// package before requests are delegated to the service layer.
package http
