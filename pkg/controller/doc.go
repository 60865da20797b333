// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Middlewares:
//   - WithCORS: answers preflight requests and sets CORS headers for one allowed origin.
//   - WithLogger: assigns a request ID, attaches a request-scoped logger and writes an access log.
//   - WithBodyLimit: caps the number of request body bytes a handler may read.
//
// Helpers:
//   - Pprof: serves net/http/pprof under PprofPrefix.
package controller
