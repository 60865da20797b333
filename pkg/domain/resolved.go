package domain

// ResolvedTheme is a declared theme with its palette fully computed.
type ResolvedTheme struct {
	Name    string
	Base    string
	Palette Palette
}

// Warning is a non-fatal finding of a resolution, such as an override that
// introduced a role its base palette does not define.
type Warning struct {
	Theme   string
	Role    string
	Message string
}

// Resolved is the normalized settings object produced from a Declaration.
// It is built once and never mutated.
type Resolved struct {
	Root       string
	Content    ContentGlobSet
	FontFamily FontFamilyMap
	Plugins    PluginList
	Themes     []ResolvedTheme
	// DarkTheme is empty when the declaration names no dark theme.
	DarkTheme string
	Safelist  []SafelistRule
	Warnings  []Warning
}

// Theme returns the resolved theme with the given name.
func (r *Resolved) Theme(name string) (ResolvedTheme, bool) {
	for _, t := range r.Themes {
		if t.Name == name {
			return t, true
		}
	}

	return ResolvedTheme{}, false
}
