package document

import (
	"sort"
	"themeconf/pkg/domain"

	"github.com/go-faster/jx"
)

// EncodeResolved renders a resolved configuration as JSON, in the same shape
// as a declaration with every theme written out as its full palette:
//
//	{"content": [...], "theme": {"fontFamily": {...}}, "plugins": [...],
//	 "pluginOptions": {"themes": [{"<name>": {...}}], "darkTheme": "..."},
//	 "safelist": [...], "warnings": [...]}
//
// An indent of zero produces compact output.
func EncodeResolved(r *domain.Resolved, indent int) []byte {
	e := &jx.Encoder{}
	e.SetIdent(indent)
	WriteResolved(e, r)

	return e.Bytes()
}

// EncodePalette renders a palette as a JSON object in role order.
func EncodePalette(p domain.Palette, indent int) []byte {
	e := &jx.Encoder{}
	e.SetIdent(indent)
	WritePalette(e, p)

	return e.Bytes()
}

// WriteResolved writes r to e.
func WriteResolved(e *jx.Encoder, r *domain.Resolved) {
	e.Obj(func(e *jx.Encoder) {
		if r.Root != "" {
			e.Field("root", func(e *jx.Encoder) { e.Str(r.Root) })
		}
		e.Field(keyContent, func(e *jx.Encoder) { writeStrings(e, r.Content) })
		e.Field(keyTheme, func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field(keyFontFamily, func(e *jx.Encoder) { writeFonts(e, r.FontFamily) })
			})
		})
		e.Field(keyPlugins, func(e *jx.Encoder) { writeStrings(e, r.Plugins) })
		e.Field(keyPluginOptions, func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field(keyThemes, func(e *jx.Encoder) {
					e.Arr(func(e *jx.Encoder) {
						for _, t := range r.Themes {
							e.Obj(func(e *jx.Encoder) {
								e.Field(t.Name, func(e *jx.Encoder) { WritePalette(e, t.Palette) })
							})
						}
					})
				})
				if r.DarkTheme != "" {
					e.Field(keyDarkTheme, func(e *jx.Encoder) { e.Str(r.DarkTheme) })
				}
			})
		})
		e.Field(keySafelist, func(e *jx.Encoder) { writeSafelist(e, r.Safelist) })
		e.Field("warnings", func(e *jx.Encoder) { writeWarnings(e, r.Warnings) })
	})
}

// WritePalette writes p to e as an object in role order.
func WritePalette(e *jx.Encoder, p domain.Palette) {
	e.Obj(func(e *jx.Encoder) {
		for _, c := range p.Entries() {
			e.Field(c.Role, func(e *jx.Encoder) { e.Str(c.Value) })
		}
	})
}

func writeStrings(e *jx.Encoder, values []string) {
	e.Arr(func(e *jx.Encoder) {
		for _, v := range values {
			e.Str(v)
		}
	})
}

// writeFonts writes font roles sorted by name; fallback order is kept.
func writeFonts(e *jx.Encoder, fonts domain.FontFamilyMap) {
	roles := make([]string, 0, len(fonts))
	for role := range fonts {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	e.Obj(func(e *jx.Encoder) {
		for _, role := range roles {
			e.Field(role, func(e *jx.Encoder) { writeStrings(e, fonts[role]) })
		}
	})
}

func writeSafelist(e *jx.Encoder, rules []domain.SafelistRule) {
	e.Arr(func(e *jx.Encoder) {
		for _, rule := range rules {
			if !rule.IsPattern() {
				e.Str(rule.Class)

				continue
			}
			e.Obj(func(e *jx.Encoder) {
				e.Field("pattern", func(e *jx.Encoder) { e.Str(rule.Pattern) })
				if len(rule.Variants) > 0 {
					e.Field("variants", func(e *jx.Encoder) { writeStrings(e, rule.Variants) })
				}
			})
		}
	})
}

func writeWarnings(e *jx.Encoder, warnings []domain.Warning) {
	e.Arr(func(e *jx.Encoder) {
		for _, w := range warnings {
			e.Obj(func(e *jx.Encoder) {
				e.Field("theme", func(e *jx.Encoder) { e.Str(w.Theme) })
				e.Field("role", func(e *jx.Encoder) { e.Str(w.Role) })
				e.Field("message", func(e *jx.Encoder) { e.Str(w.Message) })
			})
		}
	})
}
