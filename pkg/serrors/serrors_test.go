package serrors_test

import (
	"errors"
	"fmt"
	"testing"
	"themeconf/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrValidation,
		serrors.ErrReference,
		serrors.ErrOverrideConflict,
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrUnauthorized,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrValidation, serrors.ErrReference)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("unexpected EOF")

	e1 := serrors.With(serrors.ErrReference, "darkTheme %q is not a declared theme", "midnight")
	require.Equal(t, `darkTheme "midnight" is not a declared theme`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrValidation, base, "parse declaration")
	require.Equal(t, "parse declaration: unexpected EOF", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrValidation, base, "reading")

	require.ErrorIs(t, e, serrors.ErrValidation)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrReference, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrReference, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrReference, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce)
}

func TestUnwrap(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrOverrideConflict, base, "theme dark")
	require.Equal(t, serrors.ErrOverrideConflict, e.Kind())
	require.Equal(t, []error{serrors.ErrOverrideConflict, base}, e.Unwrap())
	require.Equal(t, []error{serrors.ErrNotFound}, serrors.KindOnly(serrors.ErrNotFound).Unwrap())
}

func TestKindOfPrefersOuterKind(t *testing.T) {
	inner := serrors.With(serrors.ErrNotFound, "palette %q not found", "midnight")
	outer := serrors.Wrap(serrors.ErrReference, inner, "theme dark")

	require.Equal(t, serrors.ErrReference, serrors.KindOf(outer))
	require.ErrorIs(t, outer, serrors.ErrNotFound)
	require.Equal(t, `theme dark: palette "midnight" not found`, outer.Error())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", serrors.With(serrors.ErrReference, "unknown palette"))
	require.Equal(t, serrors.ErrReference, serrors.KindOf(wrapped))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(fmt.Errorf("lookup: %w", serrors.ErrNotFound)))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(nil))
}

func TestParseKind(t *testing.T) {
	k, ok := serrors.ParseKind("OVERRIDE_CONFLICT")
	require.True(t, ok)
	require.Equal(t, serrors.ErrOverrideConflict, k)

	_, ok = serrors.ParseKind("RATE_LIMITED")
	require.False(t, ok)
}
