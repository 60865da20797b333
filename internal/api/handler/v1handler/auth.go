package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"
	"themeconf/internal/config"
	"themeconf/pkg/logger"
	"themeconf/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthOptions configure bearer token verification.
type AuthOptions struct {
	// PublicKey is a PEM encoded RSA public key. Empty disables
	// authentication.
	PublicKey string
}

func NewAuthOptions(cfg *config.Config) *AuthOptions {
	return &AuthOptions{PublicKey: cfg.Auth.PublicKey}
}

// Auth verifies RS256 bearer tokens on v1 routes.
type Auth struct {
	handler *Handler
	key     *rsa.PublicKey
}

// NewAuth parses the verification key. A nil Auth or one without a key lets
// every request through.
func NewAuth(h *Handler, opts *AuthOptions) (*Auth, error) {
	a := &Auth{handler: h}
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return a, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}
	a.key = key

	return a, nil
}

// Enabled reports whether tokens are verified.
func (a *Auth) Enabled() bool { return a != nil && a.key != nil }

type subjectKey struct{}

// Subject returns the token subject of an authenticated request, or "".
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey{}).(string)

	return s
}

// Middleware rejects requests without a valid bearer token with 401.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	if !a.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := a.verify(r.Header.Get("Authorization"))
		if err != nil {
			a.handler.writeError(w, r, err)

			return
		}

		ctx := context.WithValue(r.Context(), subjectKey{}, subject)
		ctx = logger.WithFields(ctx, zap.String("subject", subject))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) verify(header string) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return a.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired())
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
	}

	return claims.Subject, nil
}

// SignToken issues an RS256 token for subject, as accepted by Auth.
func SignToken(privateKeyPEM, subject string, claims jwt.RegisteredClaims) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	claims.Subject = subject
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}
