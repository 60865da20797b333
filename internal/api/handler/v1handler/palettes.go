package v1handler

import (
	"net/http"
	"themeconf/pkg/document"

	"github.com/go-faster/jx"
)

// ListPalettes answers with the catalog palette names in catalog order.
func (h *Handler) ListPalettes(w http.ResponseWriter, r *http.Request) {
	names := h.deps.Catalog.Names()

	h.writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("palettes", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, name := range names {
						e.Str(name)
					}
				})
			})
		})
	})
}

// GetPalette answers with one palette's roles in order.
func (h *Handler) GetPalette(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	p, err := h.deps.Catalog.Palette(name)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("name", func(e *jx.Encoder) { e.Str(name) })
			e.Field("colors", func(e *jx.Encoder) { document.WritePalette(e, p) })
		})
	})
}
