// Package controller contains HTTP middlewares and helper handlers shared by
// the assessment API.
//
// Provided middlewares:
//   - CORS: Adds CORS headers for browser extensions and web clients and answers OPTIONS preflights.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithTimeout: Bounds the request context with a deadline.
//   - WithBodyLimit: Caps the size of request bodies.
//   - WithRecover: Converts handler panics into 500 responses.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
