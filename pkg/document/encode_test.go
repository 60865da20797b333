package document_test

import (
	"encoding/json"
	"strings"
	"testing"
	"themeconf/pkg/document"
	"themeconf/pkg/domain"

	"github.com/stretchr/testify/require"
)

func resolvedFixture() *domain.Resolved {
	return &domain.Resolved{
		Content:    domain.ContentGlobSet{"../templates/**/*.html"},
		FontFamily: domain.FontFamilyMap{"sans": {"Inter", "sans-serif"}, "figtree": {"Figtree"}},
		Plugins:    domain.PluginList{"daisyui"},
		Themes: []domain.ResolvedTheme{
			{Name: "dark", Base: "sunset", Palette: domain.NewPalette(
				domain.Color{Role: "primary", Value: "#B387FA"},
				domain.Color{Role: "accent", Value: "#FF865B"},
			)},
		},
		DarkTheme: "dark",
		Safelist: []domain.SafelistRule{
			{Pattern: "alert-(info|error)", Variants: []string{"hover"}},
			{Class: "checkbox-primary"},
		},
		Warnings: []domain.Warning{{Theme: "dark", Role: "brand", Message: "role not in base palette"}},
	}
}

func TestEncodeResolved(t *testing.T) {
	out := document.EncodeResolved(resolvedFixture(), 0)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.NotContains(t, got, "root")
	require.Equal(t, []any{"../templates/**/*.html"}, got["content"])
	require.Equal(t, map[string]any{
		"fontFamily": map[string]any{
			"figtree": []any{"Figtree"},
			"sans":    []any{"Inter", "sans-serif"},
		},
	}, got["theme"])
	require.Equal(t, map[string]any{
		"themes": []any{
			map[string]any{"dark": map[string]any{"primary": "#B387FA", "accent": "#FF865B"}},
		},
		"darkTheme": "dark",
	}, got["pluginOptions"])
	require.Equal(t, []any{
		map[string]any{"pattern": "alert-(info|error)", "variants": []any{"hover"}},
		"checkbox-primary",
	}, got["safelist"])
	require.Equal(t, []any{
		map[string]any{"theme": "dark", "role": "brand", "message": "role not in base palette"},
	}, got["warnings"])

	s := string(out)
	require.Less(t, strings.Index(s, `"figtree"`), strings.Index(s, `"sans"`))
	require.Less(t, strings.Index(s, `"primary"`), strings.Index(s, `"accent"`))
	require.Less(t, strings.Index(s, `"content"`), strings.Index(s, `"pluginOptions"`))
}

func TestEncodeResolvedEmpty(t *testing.T) {
	out := document.EncodeResolved(&domain.Resolved{Root: "/srv/app"}, 0)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.Equal(t, "/srv/app", got["root"])
	require.Equal(t, []any{}, got["content"])
	require.Equal(t, map[string]any{"themes": []any{}}, got["pluginOptions"])
	require.Equal(t, []any{}, got["warnings"])
}

func TestEncodeResolvedIndent(t *testing.T) {
	compact := document.EncodeResolved(resolvedFixture(), 0)
	indented := document.EncodeResolved(resolvedFixture(), 2)
	require.NotContains(t, string(compact), "\n")
	require.Contains(t, string(indented), "\n  ")
	require.JSONEq(t, string(compact), string(indented))
}

func TestEncodePalette(t *testing.T) {
	p := domain.NewPalette(
		domain.Color{Role: "primary", Value: "#65c3c8"},
		domain.Color{Role: "--rounded-btn", Value: "1.9rem"},
	)
	require.Equal(t, `{"primary":"#65c3c8","--rounded-btn":"1.9rem"}`, string(document.EncodePalette(p, 0)))
	require.Equal(t, `{}`, string(document.EncodePalette(domain.Palette{}, 0)))
}
