package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"themeconf/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprof(t *testing.T) {
	h := controller.Pprof()

	for _, path := range []string{"", "cmdline", "heap?debug=1"} {
		req := httptest.NewRequest(http.MethodGet, "http://pprof.local"+controller.PprofPrefix+path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		res := rec.Result()
		require.Equal(t, http.StatusOK, res.StatusCode, path)
		require.NotEmpty(t, res.Header.Get("Content-Type"), path)
	}
}

func TestPprof_OutsidePrefix(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local/cmdline", nil)
	rec := httptest.NewRecorder()
	controller.Pprof().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
