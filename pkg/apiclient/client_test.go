package apiclient_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"themeconf/pkg/apiclient"
	"themeconf/pkg/document"
	"themeconf/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(t *testing.T, token string, fn rtFunc) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(&http.Client{Transport: fn}, "http://themes.internal:8080/base", token)
	require.NoError(t, err)

	return c
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := apiclient.New(nil, "themes.internal:8080", "")
	require.Error(t, err)

	_, err = apiclient.New(nil, "ftp://themes.internal", "")
	require.ErrorContains(t, err, "must use http or https")
}

func TestResolve(t *testing.T) {
	c := newTestClient(t, "secret", func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/base/v1/resolve", r.URL.Path)
		require.Equal(t, "application/yaml", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "content: [a.html]\n", string(body))

		return respond(http.StatusOK, `{"content":["a.html"]}`), nil
	})

	out, err := c.Resolve(context.Background(), []byte("content: [a.html]\n"), document.YAML)
	require.NoError(t, err)
	require.JSONEq(t, `{"content":["a.html"]}`, string(out))
}

func TestResolveWithoutToken(t *testing.T) {
	c := newTestClient(t, "", func(r *http.Request) (*http.Response, error) {
		require.Empty(t, r.Header.Get("Authorization"))

		return respond(http.StatusOK, `{}`), nil
	})

	_, err := c.Resolve(context.Background(), []byte(`{}`), document.JSON)
	require.NoError(t, err)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    serrors.Kind
		message string
	}{
		{
			name:    "reference",
			status:  http.StatusUnprocessableEntity,
			body:    `{"error":"REFERENCE","message":"palette \"midnight\" is not defined"}`,
			kind:    serrors.ErrReference,
			message: `palette "midnight" is not defined`,
		},
		{
			name:    "override conflict",
			status:  http.StatusConflict,
			body:    `{"error":"OVERRIDE_CONFLICT","message":"override conflict"}`,
			kind:    serrors.ErrOverrideConflict,
			message: "override conflict",
		},
		{
			name:    "unknown code falls back to status",
			status:  http.StatusUnauthorized,
			body:    `{"error":"EXPIRED","message":"token expired"}`,
			kind:    serrors.ErrUnauthorized,
			message: "token expired",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream unavailable\n",
			kind:    serrors.ErrInternal,
			message: "upstream unavailable",
		},
		{
			name:    "empty body",
			status:  http.StatusNotFound,
			kind:    serrors.ErrNotFound,
			message: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, "", func(*http.Request) (*http.Response, error) {
				return respond(tt.status, tt.body), nil
			})

			_, err := c.Resolve(context.Background(), []byte(`{}`), document.JSON)
			require.ErrorIs(t, err, tt.kind)
			require.EqualError(t, err, tt.message)
		})
	}
}

func TestResolveUnsupportedFormat(t *testing.T) {
	c := newTestClient(t, "", func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	})

	_, err := c.Resolve(context.Background(), nil, document.Format("ini"))
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestPalettes(t *testing.T) {
	c := newTestClient(t, "", func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/base/v1/palettes", r.URL.Path)

		return respond(http.StatusOK, `{"palettes":["light","dark","cupcake"]}`), nil
	})

	names, err := c.Palettes(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"light", "dark", "cupcake"}, names)
}

func TestPalette(t *testing.T) {
	c := newTestClient(t, "", func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/base/v1/palettes/cup%20cake", r.URL.EscapedPath())

		return respond(http.StatusOK,
			`{"name":"cup cake","colors":{"secondary":"#ef9fbc","primary":"#65c3c8"}}`), nil
	})

	p, err := c.Palette(context.Background(), "cup cake")
	require.NoError(t, err)
	require.Equal(t, []string{"secondary", "primary"}, p.Roles())
}

func TestPaletteNotFound(t *testing.T) {
	c := newTestClient(t, "", func(*http.Request) (*http.Response, error) {
		return respond(http.StatusNotFound, `{"error":"NOT_FOUND","message":"palette \"x\" not found"}`), nil
	})

	_, err := c.Palette(context.Background(), "x")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
