package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"themeconf/internal/api/handler/v1handler"
	"themeconf/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    serrors.Kind
		message string
	}{
		{name: "plain error", err: errors.New("boom"),
			status: http.StatusInternalServerError, code: serrors.ErrInternal, message: "internal error"},
		{name: "internal kind hides detail", err: serrors.With(serrors.ErrInternal, "db password leaked"),
			status: http.StatusInternalServerError, code: serrors.ErrInternal, message: "internal error"},
		{name: "bare kind", err: serrors.ErrNotFound,
			status: http.StatusNotFound, code: serrors.ErrNotFound, message: "resource not found"},
		{name: "kind only", err: serrors.KindOnly(serrors.ErrOverrideConflict),
			status: http.StatusConflict, code: serrors.ErrOverrideConflict, message: "override conflict"},
		{name: "validation", err: serrors.With(serrors.ErrValidation, "content: at least one glob is required"),
			status: http.StatusBadRequest, code: serrors.ErrValidation, message: "content: at least one glob is required"},
		{name: "wrapped reference", err: fmt.Errorf("theme %q: %w", "dark", serrors.With(serrors.ErrReference, `palette "aqua" is not defined`)),
			status: http.StatusUnprocessableEntity, code: serrors.ErrReference, message: `theme "dark": palette "aqua" is not defined`},
		{name: "bad request", err: serrors.With(serrors.ErrBadRequest, "request body is empty"),
			status: http.StatusBadRequest, code: serrors.ErrBadRequest, message: "request body is empty"},
		{name: "unauthorized", err: serrors.With(serrors.ErrUnauthorized, "missing bearer token"),
			status: http.StatusUnauthorized, code: serrors.ErrUnauthorized, message: "missing bearer token"},
	}

	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tc.err)
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, tc.code.Error(), res.Code)
			require.Equal(t, tc.message, res.Message)
		})
	}
}
