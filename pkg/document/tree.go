package document

import (
	"sort"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"gopkg.in/yaml.v3"
)

type nodeKind int

const (
	nullNode nodeKind = iota
	scalarNode
	boolNode
	listNode
	objectNode
)

func (k nodeKind) String() string {
	switch k {
	case nullNode:
		return "null"
	case scalarNode:
		return "scalar"
	case boolNode:
		return "boolean"
	case listNode:
		return "list"
	case objectNode:
		return "object"
	}

	return "unknown"
}

// node is a format-independent document value. Objects keep their fields
// in document order, duplicates included.
type node struct {
	kind   nodeKind
	text   string
	items  []*node
	fields []field
}

type field struct {
	key   string
	value *node
}

const maxDepth = 64

func parseJSON(data []byte) (*node, error) {
	d := jx.DecodeBytes(data)
	n, err := readJSON(d, 0)
	if err != nil {
		return nil, errors.Wrap(err, "decode json")
	}
	if d.Next() != jx.Invalid {
		return nil, errors.New("unexpected data after json document")
	}

	return n, nil
}

func readJSON(d *jx.Decoder, depth int) (*node, error) {
	if depth > maxDepth {
		return nil, errors.New("document nested too deeply")
	}

	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}

		return &node{kind: scalarNode, text: s}, nil
	case jx.Number:
		num, err := d.Num()
		if err != nil {
			return nil, err
		}

		return &node{kind: scalarNode, text: num.String()}, nil
	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return nil, err
		}

		return &node{kind: boolNode, text: strconv.FormatBool(b)}, nil
	case jx.Null:
		if err := d.Null(); err != nil {
			return nil, err
		}

		return &node{kind: nullNode}, nil
	case jx.Array:
		n := &node{kind: listNode}
		err := d.Arr(func(d *jx.Decoder) error {
			item, err := readJSON(d, depth+1)
			if err != nil {
				return err
			}
			n.items = append(n.items, item)

			return nil
		})

		return n, err
	case jx.Object:
		n := &node{kind: objectNode}
		err := d.Obj(func(d *jx.Decoder, key string) error {
			value, err := readJSON(d, depth+1)
			if err != nil {
				return errors.Wrapf(err, "%q", key)
			}
			n.fields = append(n.fields, field{key: key, value: value})

			return nil
		})

		return n, err
	default:
		return nil, errors.New("invalid json value")
	}
}

func parseYAML(data []byte) (*node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if doc.Kind == 0 {
		return &node{kind: nullNode}, nil
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return &node{kind: nullNode}, nil
		}
		root = doc.Content[0]
	}

	return convertYAML(root, 0)
}

func convertYAML(y *yaml.Node, depth int) (*node, error) {
	if depth > maxDepth {
		return nil, errors.New("document nested too deeply")
	}

	switch y.Kind {
	case yaml.ScalarNode:
		switch y.ShortTag() {
		case "!!null":
			return &node{kind: nullNode}, nil
		case "!!bool":
			return &node{kind: boolNode, text: y.Value}, nil
		default:
			return &node{kind: scalarNode, text: y.Value}, nil
		}
	case yaml.SequenceNode:
		n := &node{kind: listNode}
		for _, c := range y.Content {
			item, err := convertYAML(c, depth+1)
			if err != nil {
				return nil, err
			}
			n.items = append(n.items, item)
		}

		return n, nil
	case yaml.MappingNode:
		n := &node{kind: objectNode}
		for i := 0; i+1 < len(y.Content); i += 2 {
			k, v := y.Content[i], y.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, errors.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			if k.ShortTag() == "!!merge" {
				return nil, errors.Errorf("line %d: merge keys are not supported", k.Line)
			}
			value, err := convertYAML(v, depth+1)
			if err != nil {
				return nil, err
			}
			n.fields = append(n.fields, field{key: k.Value, value: value})
		}

		return n, nil
	case yaml.AliasNode:
		return convertYAML(y.Alias, depth+1)
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &node{kind: nullNode}, nil
		}

		return convertYAML(y.Content[0], depth+1)
	}

	return nil, errors.Errorf("line %d: unsupported yaml node", y.Line)
}

func parseTOML(data []byte) (*node, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrap(err, "decode toml")
	}

	return convertTOML(raw, 0)
}

func convertTOML(v any, depth int) (*node, error) {
	if depth > maxDepth {
		return nil, errors.New("document nested too deeply")
	}

	switch t := v.(type) {
	case string:
		return &node{kind: scalarNode, text: t}, nil
	case int64:
		return &node{kind: scalarNode, text: strconv.FormatInt(t, 10)}, nil
	case float64:
		return &node{kind: scalarNode, text: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	case bool:
		return &node{kind: boolNode, text: strconv.FormatBool(t)}, nil
	case time.Time:
		return &node{kind: scalarNode, text: t.Format(time.RFC3339Nano)}, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		n := &node{kind: objectNode}
		for _, k := range keys {
			value, err := convertTOML(t[k], depth+1)
			if err != nil {
				return nil, errors.Wrapf(err, "%q", k)
			}
			n.fields = append(n.fields, field{key: k, value: value})
		}

		return n, nil
	case []map[string]any:
		n := &node{kind: listNode}
		for _, item := range t {
			c, err := convertTOML(item, depth+1)
			if err != nil {
				return nil, err
			}
			n.items = append(n.items, c)
		}

		return n, nil
	case []any:
		n := &node{kind: listNode}
		for _, item := range t {
			c, err := convertTOML(item, depth+1)
			if err != nil {
				return nil, err
			}
			n.items = append(n.items, c)
		}

		return n, nil
	}

	return nil, errors.Errorf("unsupported toml value of type %T", v)
}
