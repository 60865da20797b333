package document

import (
	"fmt"
	"themeconf/pkg/domain"
	"themeconf/pkg/serrors"
)

// Keys recognised under the top level of a declaration. "daisyui" is an
// alias of "pluginOptions".
const (
	keyContent       = "content"
	keyTheme         = "theme"
	keyFontFamily    = "fontFamily"
	keyPlugins       = "plugins"
	keyPluginOptions = "pluginOptions"
	keyDaisyUI       = "daisyui"
	keyThemes        = "themes"
	keyDarkTheme     = "darkTheme"
	keySafelist      = "safelist"
)

func invalid(path, msgFmt string, args ...any) error {
	msg := fmt.Sprintf(msgFmt, args...)
	if path != "" {
		msg = path + ": " + msg
	}

	return serrors.With(serrors.ErrValidation, "%s", msg)
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// uniqueFields returns the object's fields after checking that no key is
// repeated and every key is among allowed (when allowed is non-nil).
func uniqueFields(n *node, path string, allowed ...string) ([]field, error) {
	if n.kind != objectNode {
		return nil, invalid(path, "expected an object, got %s", n.kind)
	}

	var known map[string]bool
	if len(allowed) > 0 {
		known = make(map[string]bool, len(allowed))
		for _, k := range allowed {
			known[k] = true
		}
	}

	seen := make(map[string]bool, len(n.fields))
	for _, f := range n.fields {
		if seen[f.key] {
			return nil, invalid(join(path, f.key), "duplicate key")
		}
		seen[f.key] = true
		if known != nil && !known[f.key] {
			return nil, invalid(join(path, f.key), "unknown option")
		}
	}

	return n.fields, nil
}

func decodeString(n *node, path string) (string, error) {
	if n.kind != scalarNode {
		return "", invalid(path, "expected a string, got %s", n.kind)
	}

	return n.text, nil
}

// decodeStrings decodes a list of strings. Null yields nil.
func decodeStrings(n *node, path string) ([]string, error) {
	switch n.kind {
	case nullNode:
		return nil, nil
	case listNode:
	default:
		return nil, invalid(path, "expected a list of strings, got %s", n.kind)
	}

	out := make([]string, 0, len(n.items))
	for i, item := range n.items {
		s, err := decodeString(item, index(path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func decodeDeclaration(root *node) (domain.Declaration, error) {
	var decl domain.Declaration
	if root.kind != objectNode {
		return decl, invalid("", "declaration must be an object, got %s", root.kind)
	}

	fields, err := uniqueFields(root, "",
		keyContent, keyTheme, keyPlugins, keyPluginOptions, keyDaisyUI, keySafelist)
	if err != nil {
		return decl, err
	}

	var options *field
	for i := range fields {
		f := &fields[i]
		switch f.key {
		case keyContent:
			content, err := decodeStrings(f.value, f.key)
			if err != nil {
				return decl, err
			}
			decl.Content = content
		case keyTheme:
			fonts, err := decodeTheme(f.value, f.key)
			if err != nil {
				return decl, err
			}
			decl.FontFamily = fonts
		case keyPlugins:
			plugins, err := decodeStrings(f.value, f.key)
			if err != nil {
				return decl, err
			}
			decl.Plugins = plugins
		case keyPluginOptions, keyDaisyUI:
			if options != nil {
				return decl, invalid(f.key, "%q and %q cannot both be set", options.key, f.key)
			}
			options = f
		case keySafelist:
			rules, err := decodeSafelist(f.value, f.key)
			if err != nil {
				return decl, err
			}
			decl.Safelist = rules
		}
	}

	if options != nil && options.value.kind != nullNode {
		set, err := decodeThemeSet(options.value, options.key)
		if err != nil {
			return decl, err
		}
		decl.Themes = set
	}

	return decl, nil
}

func decodeTheme(n *node, path string) (domain.FontFamilyMap, error) {
	if n.kind == nullNode {
		return nil, nil
	}
	fields, err := uniqueFields(n, path, keyFontFamily)
	if err != nil {
		return nil, err
	}

	var fonts domain.FontFamilyMap
	for _, f := range fields {
		fonts, err = decodeFontFamily(f.value, join(path, f.key))
		if err != nil {
			return nil, err
		}
	}

	return fonts, nil
}

func decodeFontFamily(n *node, path string) (domain.FontFamilyMap, error) {
	if n.kind == nullNode {
		return nil, nil
	}
	fields, err := uniqueFields(n, path)
	if err != nil {
		return nil, err
	}

	fonts := make(domain.FontFamilyMap, len(fields))
	for _, f := range fields {
		p := join(path, f.key)
		if f.value.kind == scalarNode {
			fonts[f.key] = []string{f.value.text}

			continue
		}
		stack, err := decodeStrings(f.value, p)
		if err != nil {
			return nil, err
		}
		if stack == nil {
			stack = []string{}
		}
		fonts[f.key] = stack
	}

	return fonts, nil
}

func decodeThemeSet(n *node, path string) (*domain.ThemeSet, error) {
	fields, err := uniqueFields(n, path, keyThemes, keyDarkTheme)
	if err != nil {
		return nil, err
	}

	set := &domain.ThemeSet{}
	for _, f := range fields {
		p := join(path, f.key)
		switch f.key {
		case keyThemes:
			themes, err := decodeThemes(f.value, p)
			if err != nil {
				return nil, err
			}
			set.Themes = themes
		case keyDarkTheme:
			if f.value.kind == nullNode {
				continue
			}
			dark, err := decodeString(f.value, p)
			if err != nil {
				return nil, err
			}
			set.DarkTheme = dark
		}
	}

	return set, nil
}

func decodeThemes(n *node, path string) ([]domain.ThemeDefinition, error) {
	switch n.kind {
	case nullNode:
		return nil, nil
	case listNode:
	default:
		return nil, invalid(path, "expected a list of themes, got %s", n.kind)
	}

	themes := make([]domain.ThemeDefinition, 0, len(n.items))
	for i, item := range n.items {
		p := index(path, i)
		switch item.kind {
		case scalarNode:
			themes = append(themes, domain.ThemeDefinition{Name: item.text, Base: item.text})
		case objectNode:
			def, err := decodeThemeDefinition(item, p)
			if err != nil {
				return nil, err
			}
			themes = append(themes, def)
		default:
			return nil, invalid(p, "expected a theme name or a theme object, got %s", item.kind)
		}
	}

	return themes, nil
}

func decodeThemeDefinition(n *node, path string) (domain.ThemeDefinition, error) {
	var def domain.ThemeDefinition
	fields, err := uniqueFields(n, path, "name", "base", "overrides")
	if err != nil {
		return def, err
	}

	hasName := false
	for _, f := range fields {
		p := join(path, f.key)
		switch f.key {
		case "name":
			def.Name, err = decodeString(f.value, p)
			hasName = true
		case "base":
			if f.value.kind != nullNode {
				def.Base, err = decodeString(f.value, p)
			}
		case "overrides":
			def.Overrides, err = decodeOverrides(f.value, p)
		}
		if err != nil {
			return def, err
		}
	}
	if !hasName {
		return def, invalid(path, "theme object requires a name")
	}

	return def, nil
}

// decodeOverrides keeps every written role in order, repeated roles
// included.
func decodeOverrides(n *node, path string) ([]domain.Override, error) {
	switch n.kind {
	case nullNode:
		return nil, nil
	case objectNode:
	default:
		return nil, invalid(path, "expected an object of role overrides, got %s", n.kind)
	}

	out := make([]domain.Override, 0, len(n.fields))
	for _, f := range n.fields {
		p := join(path, f.key)
		switch f.value.kind {
		case scalarNode:
			out = append(out, domain.Override{Role: f.key, Value: domain.Literal(f.value.text)})
		case objectNode:
			ref, err := decodeReference(f.value, p)
			if err != nil {
				return nil, err
			}
			out = append(out, domain.Override{Role: f.key, Value: domain.OverrideValue{Ref: ref}})
		default:
			return nil, invalid(p, "expected a color value or a reference object, got %s", f.value.kind)
		}
	}

	return out, nil
}

func decodeReference(n *node, path string) (*domain.Reference, error) {
	fields, err := uniqueFields(n, path, "from", "role")
	if err != nil {
		return nil, err
	}

	ref := &domain.Reference{}
	hasFrom := false
	for _, f := range fields {
		p := join(path, f.key)
		switch f.key {
		case "from":
			ref.Palette, err = decodeString(f.value, p)
			hasFrom = true
		case "role":
			ref.Role, err = decodeString(f.value, p)
		}
		if err != nil {
			return nil, err
		}
	}
	if !hasFrom {
		return nil, invalid(path, "reference requires \"from\"")
	}

	return ref, nil
}

func decodeSafelist(n *node, path string) ([]domain.SafelistRule, error) {
	switch n.kind {
	case nullNode:
		return nil, nil
	case listNode:
	default:
		return nil, invalid(path, "expected a list of safelist rules, got %s", n.kind)
	}

	rules := make([]domain.SafelistRule, 0, len(n.items))
	for i, item := range n.items {
		p := index(path, i)
		switch item.kind {
		case scalarNode:
			rules = append(rules, domain.SafelistRule{Class: item.text})
		case objectNode:
			rule, err := decodePatternRule(item, p)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		default:
			return nil, invalid(p, "expected a class name or a pattern object, got %s", item.kind)
		}
	}

	return rules, nil
}

func decodePatternRule(n *node, path string) (domain.SafelistRule, error) {
	var rule domain.SafelistRule
	fields, err := uniqueFields(n, path, "pattern", "variants")
	if err != nil {
		return rule, err
	}

	hasPattern := false
	for _, f := range fields {
		p := join(path, f.key)
		switch f.key {
		case "pattern":
			rule.Pattern, err = decodeString(f.value, p)
			hasPattern = true
		case "variants":
			rule.Variants, err = decodeStrings(f.value, p)
		}
		if err != nil {
			return rule, err
		}
	}
	if !hasPattern {
		return rule, invalid(path, "pattern rule requires \"pattern\"")
	}

	return rule, nil
}
