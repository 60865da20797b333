// Package apiclient is a client for the v1 HTTP API of the theme resolver
// service. Error responses are mapped back to serrors kinds, so callers can
// handle a remote resolution failure the same way as a local one.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"themeconf/pkg/document"
	"themeconf/pkg/domain"
	"themeconf/pkg/palette"
	"themeconf/pkg/serrors"

	"github.com/go-faster/jx"
)

var contentTypes = map[document.Format]string{
	document.JSON: "application/json",
	document.YAML: "application/yaml",
	document.TOML: "application/toml",
}

// Client talks to a theme resolver service. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
}

// New constructs a Client for the service at baseURL. A non-empty token is
// sent as a bearer token.
func New(httpClient *http.Client, baseURL, token string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q must use http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{httpClient: httpClient, baseURL: u, token: token}, nil
}

// Resolve posts a declaration document and returns the resolved configuration
// as the JSON the server wrote.
func (c *Client) Resolve(ctx context.Context, data []byte, format document.Format) ([]byte, error) {
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, serrors.With(serrors.ErrValidation, "unsupported document format %q", format)
	}

	return c.do(ctx, http.MethodPost, "/v1/resolve", contentType, data)
}

// Palettes returns the names of the server's base palettes in catalog order.
func (c *Client) Palettes(ctx context.Context) ([]string, error) {
	b, err := c.do(ctx, http.MethodGet, "/v1/palettes", "", nil)
	if err != nil {
		return nil, err
	}

	var names []string
	d := jx.DecodeBytes(b)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "palettes" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			name, err := d.Str()
			if err != nil {
				return err
			}
			names = append(names, name)

			return nil
		})
	}); err != nil {
		return nil, fmt.Errorf("could not decode palettes: %w", err)
	}

	return names, nil
}

// Palette returns one of the server's base palettes.
func (c *Client) Palette(ctx context.Context, name string) (domain.Palette, error) {
	b, err := c.do(ctx, http.MethodGet, "/v1/palettes/"+url.PathEscape(name), "", nil)
	if err != nil {
		return domain.Palette{}, err
	}

	var p domain.Palette
	d := jx.DecodeBytes(b)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "colors" {
			return d.Skip()
		}
		colors, err := palette.DecodePalette(d)
		if err != nil {
			return err
		}
		p = colors

		return nil
	}); err != nil {
		return domain.Palette{}, fmt.Errorf("could not decode palette %q: %w", name, err)
	}

	return p, nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte) ([]byte, error) {
	u := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ParseError(resp.StatusCode, b)
	}

	return b, nil
}

// ParseError converts an error response into an *serrors.Error. Bodies that
// are not the service's error object keep the status text as the message.
func ParseError(status int, body []byte) error {
	var code, message string
	d := jx.DecodeBytes(body)
	_ = d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "error":
			code, err = d.Str()
		case "message":
			message, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	})

	kind, ok := serrors.ParseKind(code)
	if !ok {
		kind = kindByStatus(status)
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return serrors.With(kind, "%s", message)
}

func kindByStatus(status int) serrors.Kind {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusMethodNotAllowed:
		return serrors.ErrBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return serrors.ErrUnauthorized
	case http.StatusNotFound:
		return serrors.ErrNotFound
	case http.StatusConflict:
		return serrors.ErrOverrideConflict
	case http.StatusUnprocessableEntity:
		return serrors.ErrReference
	}

	return serrors.ErrInternal
}
