// Package document reads theme declarations from JSON, YAML and TOML
// documents and writes resolved configurations and palettes as JSON.
//
// All three input formats are first converted into an ordered tree so a
// single decoder maps them onto domain.Declaration. JSON and YAML keep the
// key order of the document, which matters for override mappings where the
// same role may be written more than once (the last write wins). TOML
// forbids duplicate keys, so its tables are read in sorted key order.
package document

import (
	"mime"
	"os"
	"path/filepath"
	"strings"
	"themeconf/pkg/domain"
	"themeconf/pkg/serrors"
)

// Format identifies a declaration document syntax.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat parses a format name as given on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}

	return "", serrors.With(serrors.ErrValidation, "unsupported document format %q", name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}

	return "", serrors.With(serrors.ErrValidation, "cannot infer document format of %q", filename)
}

// FormatFromContentType picks the format from an HTTP Content-Type header.
// An empty header means JSON.
func FormatFromContentType(contentType string) (Format, error) {
	if strings.TrimSpace(contentType) == "" {
		return JSON, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid content type")
	}

	switch mediaType {
	case "application/json":
		return JSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return YAML, nil
	case "application/toml":
		return TOML, nil
	}

	return "", serrors.With(serrors.ErrBadRequest, "unsupported content type %q", mediaType)
}

// Parse decodes a declaration document of the given format. Syntax and shape
// errors carry the serrors.ErrValidation kind.
func Parse(data []byte, format Format) (domain.Declaration, error) {
	var (
		root *node
		err  error
	)
	switch format {
	case JSON:
		root, err = parseJSON(data)
	case YAML:
		root, err = parseYAML(data)
	case TOML:
		root, err = parseTOML(data)
	default:
		return domain.Declaration{}, serrors.With(serrors.ErrValidation, "unsupported document format %q", format)
	}
	if err != nil {
		return domain.Declaration{}, serrors.Wrap(serrors.ErrValidation, err, "could not parse %s declaration", format)
	}

	return decodeDeclaration(root)
}

// ReadFile reads and decodes a declaration file. An empty format is inferred
// from the file extension. The returned declaration's Root is the absolute
// directory of the file.
func ReadFile(filename string, format Format) (domain.Declaration, error) {
	if format == "" {
		f, err := FormatFromPath(filename)
		if err != nil {
			return domain.Declaration{}, err
		}
		format = f
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.Declaration{}, serrors.Wrap(serrors.ErrNotFound, err, "could not read declaration")
	}

	decl, err := Parse(data, format)
	if err != nil {
		return domain.Declaration{}, err
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return domain.Declaration{}, serrors.Wrap(serrors.ErrInternal, err, "could not resolve declaration path")
	}
	decl.Root = filepath.Dir(abs)

	return decl, nil
}
