package domain

// Color is a single role -> value entry of a palette.
type Color struct {
	Role  string
	Value string
}

// Palette is an immutable, ordered mapping from semantic color role to a
// concrete color or CSS custom-property value.
//
// The zero value is an empty palette. Accessors never expose the internal
// storage, so a Palette can be shared freely.
type Palette struct {
	entries []Color
	index   map[string]int
}

// NewPalette builds a palette from entries in order. A role written twice
// keeps its first position and its last value.
func NewPalette(entries ...Color) Palette {
	p, _ := Palette{}.Apply(entries...)

	return p
}

// Len returns the number of roles in the palette.
func (p Palette) Len() int { return len(p.entries) }

// Get returns the value of role and whether the palette defines it.
func (p Palette) Get(role string) (string, bool) {
	i, ok := p.index[role]
	if !ok {
		return "", false
	}

	return p.entries[i].Value, true
}

// Has reports whether the palette defines role.
func (p Palette) Has(role string) bool {
	_, ok := p.index[role]

	return ok
}

// Roles returns the role names in palette order.
func (p Palette) Roles() []string {
	roles := make([]string, len(p.entries))
	for i, e := range p.entries {
		roles[i] = e.Role
	}

	return roles
}

// Entries returns a copy of the palette entries in order.
func (p Palette) Entries() []Color {
	out := make([]Color, len(p.entries))
	copy(out, p.entries)

	return out
}

// Equal reports whether both palettes hold the same roles, in the same
// order, with the same values.
func (p Palette) Equal(other Palette) bool {
	if len(p.entries) != len(other.entries) {
		return false
	}
	for i := range p.entries {
		if p.entries[i] != other.entries[i] {
			return false
		}
	}

	return true
}

// Apply returns a copy of p with overrides applied in order: an overridden
// role takes the new value in place, a role absent from p is appended, and
// when the same role is overridden twice the last write wins. Roles not
// mentioned in overrides keep their value. p itself is never modified.
//
// The second return value lists, in first-write order, the roles that p did
// not define.
func (p Palette) Apply(overrides ...Color) (Palette, []string) {
	out := Palette{
		entries: make([]Color, len(p.entries), len(p.entries)+len(overrides)),
		index:   make(map[string]int, len(p.entries)+len(overrides)),
	}
	copy(out.entries, p.entries)
	for i, e := range out.entries {
		out.index[e.Role] = i
	}

	var added []string
	for _, o := range overrides {
		if i, ok := out.index[o.Role]; ok {
			out.entries[i].Value = o.Value

			continue
		}
		out.index[o.Role] = len(out.entries)
		out.entries = append(out.entries, o)
		added = append(added, o.Role)
	}

	return out, added
}
