package main

import (
	"errors"
	"fmt"
	"themeconf/internal/api/handler/v1handler"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

// tokenCommand constructs the 'token' subcommand that issues an RS256 bearer
// token for the v1 API, signed with the configured private key.
func tokenCommand(a *app) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a bearer token for the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Auth.PrivateKey == "" {
				return errors.New("no private key configured (AUTH_PRIVATE_KEY)")
			}

			now := time.Now()
			signed, err := v1handler.SignToken(a.cfg.Auth.PrivateKey, subject, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
			})
			if err != nil {
				return err //nolint: wrapcheck
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject (e.g., CI job name)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
