package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path under which Pprof must be mounted; pprof.Index
// resolves named profiles relative to it.
const PprofPrefix = "/debug/pprof/"

// Pprof returns a handler serving the net/http/pprof endpoints under
// PprofPrefix.
func Pprof() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
