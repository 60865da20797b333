package palette

import (
	"fmt"
	"themeconf/pkg/domain"

	"github.com/go-faster/jx"
)

// Decode parses a catalog JSON document. Palette and role order follow the
// document. Duplicate palette names or duplicate roles within a palette are
// rejected.
func Decode(data []byte) ([]Named, error) {
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return nil, fmt.Errorf("catalog must be a JSON object")
	}

	var out []Named
	seen := map[string]bool{}
	if err := d.Obj(func(d *jx.Decoder, name string) error {
		if name == "" {
			return fmt.Errorf("palette name must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate palette %q", name)
		}
		seen[name] = true

		p, err := DecodePalette(d)
		if err != nil {
			return fmt.Errorf("palette %q: %w", name, err)
		}
		out = append(out, Named{Name: name, Palette: p})

		return nil
	}); err != nil {
		return nil, err
	}
	if d.Next() != jx.Invalid {
		return nil, fmt.Errorf("unexpected data after catalog object")
	}

	return out, nil
}

// DecodePalette reads one object of role values from d, keeping role order.
func DecodePalette(d *jx.Decoder) (domain.Palette, error) {
	if d.Next() != jx.Object {
		return domain.Palette{}, fmt.Errorf("must be an object of role values")
	}

	var colors []domain.Color
	seen := map[string]bool{}
	if err := d.Obj(func(d *jx.Decoder, role string) error {
		if role == "" {
			return fmt.Errorf("role name must not be empty")
		}
		if seen[role] {
			return fmt.Errorf("duplicate role %q", role)
		}
		seen[role] = true

		var value string
		switch d.Next() {
		case jx.String:
			s, err := d.Str()
			if err != nil {
				return err
			}
			value = s
		case jx.Number:
			n, err := d.Num()
			if err != nil {
				return err
			}
			value = n.String()
		default:
			return fmt.Errorf("role %q: value must be a string or a number", role)
		}
		colors = append(colors, domain.Color{Role: role, Value: value})

		return nil
	}); err != nil {
		return domain.Palette{}, err
	}

	return domain.NewPalette(colors...), nil
}
