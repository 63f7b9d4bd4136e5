// Package http implements the REST surface of the contract import pipeline.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, metrics and upload limits are handled in
// this package before requests are delegated to the service layer.
package http
