// Package v1handler implements the v1 HTTP API: resolving declarations and
// browsing the palette catalog.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"themeconf/internal/resolver"
	"themeconf/pkg/logger"
	"themeconf/pkg/palette"
	"themeconf/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers call.
type Deps struct {
	Resolver resolver.Resolver
	Catalog  palette.Source
}

// Options tune request handling.
type Options struct {
	// Indent is the JSON indentation of responses; zero writes compact JSON.
	Indent int
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options}
}

// Register mounts the v1 routes on mux, wrapping each in wrap when it is not nil.
func (h *Handler) Register(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	if wrap == nil {
		wrap = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("POST /v1/resolve", wrap(http.HandlerFunc(h.Resolve)))
	mux.Handle("GET /v1/palettes", wrap(http.HandlerFunc(h.ListPalettes)))
	mux.Handle("GET /v1/palettes/{name}", wrap(http.HandlerFunc(h.GetPalette)))
}

// ErrorResponse is the body written for a failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

var statusByKind = map[serrors.Kind]int{
	serrors.ErrValidation:       http.StatusBadRequest,
	serrors.ErrBadRequest:       http.StatusBadRequest,
	serrors.ErrReference:        http.StatusUnprocessableEntity,
	serrors.ErrOverrideConflict: http.StatusConflict,
	serrors.ErrNotFound:         http.StatusNotFound,
	serrors.ErrUnauthorized:     http.StatusUnauthorized,
}

var defaultMessages = map[serrors.Kind]string{
	serrors.ErrValidation:       "invalid declaration",
	serrors.ErrBadRequest:       "bad request",
	serrors.ErrReference:        "unresolved reference",
	serrors.ErrOverrideConflict: "override conflict",
	serrors.ErrNotFound:         "resource not found",
	serrors.ErrUnauthorized:     "unauthorized",
	serrors.ErrInternal:         "internal error",
}

// NewError maps err to a response. Internal errors are logged and reported
// without detail; other kinds carry the error text.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		kind, status = serrors.ErrInternal, http.StatusInternalServerError
	}

	res := &ErrorResponse{StatusCode: status, Code: kind.Error(), Message: defaultMessages[kind]}
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))

		return res
	}

	var se *serrors.Error
	if errors.As(err, &se) && err.Error() != kind.Error() {
		res.Message = err.Error()
	}

	return res
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	h.writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("error", func(e *jx.Encoder) { e.Str(res.Code) })
			e.Field("message", func(e *jx.Encoder) { e.Str(res.Message) })
		})
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, write func(e *jx.Encoder)) {
	e := &jx.Encoder{}
	e.SetIdent(h.options.Indent)
	write(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
