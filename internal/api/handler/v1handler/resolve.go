package v1handler

import (
	"errors"
	"io"
	"net/http"
	"themeconf/pkg/document"
	"themeconf/pkg/serrors"

	"github.com/go-faster/jx"
)

// Resolve decodes the declaration in the request body, in the format named by
// the Content-Type header, and answers with the resolved configuration.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	format, err := document.FormatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest,
				"declaration exceeds the %d byte limit", maxErr.Limit))

			return
		}
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}
	if len(body) == 0 {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "request body is empty"))

		return
	}

	decl, err := document.Parse(body, format)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Resolver.Resolve(r.Context(), decl)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, http.StatusOK, func(e *jx.Encoder) { document.WriteResolved(e, res) })
}
