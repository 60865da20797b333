package domain

// ContentGlobSet is the ordered list of glob patterns, relative to the
// configuration root, naming the files the external scanner inspects.
type ContentGlobSet []string

// FontFamilyMap maps a logical font role to its font stack in fallback order.
type FontFamilyMap map[string][]string

// PluginList is the ordered list of plugin identifiers registered with the
// build tool. Order is significant and preserved.
type PluginList []string

// Reference points at a role of a named catalog palette. An empty Role means
// "the role being overridden".
type Reference struct {
	Palette string
	Role    string
}

// OverrideValue is either a literal value or a Reference to a catalog palette.
type OverrideValue struct {
	Literal string
	Ref     *Reference
}

// IsReference reports whether the value must be looked up in the catalog.
func (v OverrideValue) IsReference() bool { return v.Ref != nil }

// Literal returns an OverrideValue holding a literal color value.
func Literal(value string) OverrideValue { return OverrideValue{Literal: value} }

// RefTo returns an OverrideValue referencing role of the named palette.
func RefTo(palette, role string) OverrideValue {
	return OverrideValue{Ref: &Reference{Palette: palette, Role: role}}
}

// Override replaces (or adds) one role of a theme's base palette.
type Override struct {
	Role  string
	Value OverrideValue
}

// ThemeDefinition declares a named theme: a copy of the Base catalog palette
// with Overrides applied in declaration order. An empty Base means the
// overrides alone make up the palette.
type ThemeDefinition struct {
	Name      string
	Base      string
	Overrides []Override
}

// ThemeSet is the ordered list of declared themes and the name of the theme
// used as the dark-mode selector.
type ThemeSet struct {
	Themes    []ThemeDefinition
	DarkTheme string
}

// Names returns the declared theme names in order.
func (s ThemeSet) Names() []string {
	names := make([]string, len(s.Themes))
	for i, t := range s.Themes {
		names[i] = t.Name
	}

	return names
}

// SafelistRule forces retention of generated classes. Exactly one of Class
// or Pattern is set; Pattern is an ECMAScript regular expression source and
// Variants optionally lists the variants to retain for matching classes.
type SafelistRule struct {
	Class    string
	Pattern  string
	Variants []string
}

// IsPattern reports whether the rule is a pattern rule.
func (r SafelistRule) IsPattern() bool { return r.Pattern != "" }

// Declaration is the declarative configuration record handed to the
// resolver.
type Declaration struct {
	// Root is the directory content globs are relative to. It is empty for
	// declarations that do not come from a file.
	Root       string
	Content    ContentGlobSet
	FontFamily FontFamilyMap
	Plugins    PluginList
	// Themes is nil when the declaration does not configure themes at all.
	Themes   *ThemeSet
	Safelist []SafelistRule
}
