// Package http implements the HTTP transport layer of the exercise tracker.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, response compression and CORS are
// handled here before requests are delegated to the service layer.
package http
