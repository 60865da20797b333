package domain_test

import (
	"testing"
	"themeconf/pkg/domain"

	"github.com/stretchr/testify/require"
)

func cupcake() domain.Palette {
	return domain.NewPalette(
		domain.Color{Role: "primary", Value: "#65c3c8"},
		domain.Color{Role: "secondary", Value: "#ef9fbc"},
		domain.Color{Role: "accent", Value: "#eeaf3a"},
		domain.Color{Role: "neutral", Value: "#291334"},
		domain.Color{Role: "--rounded-btn", Value: "1.9rem"},
	)
}

func TestApply_OverridePrecedence(t *testing.T) {
	base := cupcake()
	overrides := []domain.Color{
		{Role: "primary", Value: "#B387FA"},
		{Role: "accent", Value: "#FF865B"},
	}

	got, added := base.Apply(overrides...)
	require.Empty(t, added)

	for _, o := range overrides {
		v, ok := got.Get(o.Role)
		require.True(t, ok)
		require.Equal(t, o.Value, v, "overridden role %s", o.Role)
	}
	for _, role := range []string{"secondary", "neutral", "--rounded-btn"} {
		want, _ := base.Get(role)
		v, ok := got.Get(role)
		require.True(t, ok)
		require.Equal(t, want, v, "inherited role %s", role)
	}
	require.Equal(t, base.Roles(), got.Roles(), "overrides keep base order")
}

func TestApply_LastWriteWins(t *testing.T) {
	got, _ := cupcake().Apply(
		domain.Color{Role: "primary", Value: "#000000"},
		domain.Color{Role: "primary", Value: "#111111"},
	)

	v, _ := got.Get("primary")
	require.Equal(t, "#111111", v)
}

func TestApply_EmptyOverridesIsIdentity(t *testing.T) {
	base := cupcake()
	resolved, _ := base.Apply(domain.Color{Role: "accent", Value: "#abcdef"})

	again, added := resolved.Apply()
	require.Empty(t, added)
	require.True(t, again.Equal(resolved))
}

func TestApply_Deterministic(t *testing.T) {
	overrides := []domain.Color{
		{Role: "info", Value: "#89e0eb"},
		{Role: "primary", Value: "#B387FA"},
		{Role: "success", Value: "#addfad"},
	}

	first, firstAdded := cupcake().Apply(overrides...)
	second, secondAdded := cupcake().Apply(overrides...)
	require.True(t, first.Equal(second))
	require.Equal(t, first, second)
	require.Equal(t, firstAdded, secondAdded)
}

func TestApply_AddsUnknownRolesInOrder(t *testing.T) {
	got, added := cupcake().Apply(
		domain.Color{Role: "info", Value: "#89e0eb"},
		domain.Color{Role: "primary", Value: "#B387FA"},
		domain.Color{Role: "success", Value: "#addfad"},
		domain.Color{Role: "info", Value: "#00ffff"},
	)

	require.Equal(t, []string{"info", "success"}, added)
	require.Equal(t,
		[]string{"primary", "secondary", "accent", "neutral", "--rounded-btn", "info", "success"},
		got.Roles())
	v, _ := got.Get("info")
	require.Equal(t, "#00ffff", v)
}

func TestApply_DoesNotMutateBase(t *testing.T) {
	base := cupcake()
	_, _ = base.Apply(
		domain.Color{Role: "primary", Value: "#000000"},
		domain.Color{Role: "info", Value: "#89e0eb"},
	)

	v, _ := base.Get("primary")
	require.Equal(t, "#65c3c8", v)
	require.False(t, base.Has("info"))
	require.Equal(t, 5, base.Len())
}

func TestEntriesReturnsCopy(t *testing.T) {
	base := cupcake()
	entries := base.Entries()
	entries[0].Value = "#ffffff"

	v, _ := base.Get("primary")
	require.Equal(t, "#65c3c8", v)
}

func TestNewPaletteDuplicateRoles(t *testing.T) {
	p := domain.NewPalette(
		domain.Color{Role: "primary", Value: "#1"},
		domain.Color{Role: "accent", Value: "#2"},
		domain.Color{Role: "primary", Value: "#3"},
	)

	require.Equal(t, []string{"primary", "accent"}, p.Roles())
	v, _ := p.Get("primary")
	require.Equal(t, "#3", v)
}

func TestZeroPalette(t *testing.T) {
	var p domain.Palette
	require.Equal(t, 0, p.Len())
	_, ok := p.Get("primary")
	require.False(t, ok)
	require.Empty(t, p.Roles())
	require.True(t, p.Equal(domain.NewPalette()))
}
