package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"themeconf/pkg/apiclient"
	"themeconf/pkg/document"
	"themeconf/pkg/domain"
	"themeconf/pkg/serrors"
	"time"

	"github.com/spf13/cobra"
)

func parseFormat(formatName string) (document.Format, error) {
	if formatName == "" {
		return "", nil
	}

	return document.ParseFormat(formatName) //nolint: wrapcheck
}

// readDeclaration reads a declaration file, or standard input when filename
// is "-".
func readDeclaration(cmd *cobra.Command, filename, formatName string) (domain.Declaration, error) {
	format, err := parseFormat(formatName)
	if err != nil {
		return domain.Declaration{}, err
	}
	if filename != "-" {
		return document.ReadFile(filename, format) //nolint: wrapcheck
	}

	data, format, err := readSource(cmd, filename, format)
	if err != nil {
		return domain.Declaration{}, err
	}

	return document.Parse(data, format) //nolint: wrapcheck
}

// readSource returns the raw document and its format. Standard input
// defaults to JSON.
func readSource(cmd *cobra.Command, filename string, format document.Format) ([]byte, document.Format, error) {
	if filename == "-" {
		if format == "" {
			format = document.JSON
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("could not read standard input: %w", err)
		}

		return data, format, nil
	}

	if format == "" {
		f, err := document.FormatFromPath(filename)
		if err != nil {
			return nil, "", err //nolint: wrapcheck
		}
		format = f
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrNotFound, err, "could not read declaration")
	}

	return data, format, nil
}

// resolveRemote sends the document to a resolver service.
func resolveRemote(cmd *cobra.Command, server, token, filename, formatName string) ([]byte, error) {
	format, err := parseFormat(formatName)
	if err != nil {
		return nil, err
	}
	data, format, err := readSource(cmd, filename, format)
	if err != nil {
		return nil, err
	}

	c, err := apiclient.New(&http.Client{Timeout: time.Minute}, server, token)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return c.Resolve(cmd.Context(), data, format) //nolint: wrapcheck
}

func printWarnings(cmd *cobra.Command, warnings []domain.Warning) {
	for _, w := range warnings {
		cmd.PrintErrf("warning: theme %q: %s\n", w.Theme, w.Message)
	}
}

// resolveCommand constructs the 'resolve' subcommand that writes the resolved
// configuration of a declaration file as JSON.
func resolveCommand(a *app) *cobra.Command {
	var (
		output string
		format string
		strict bool
		indent int
		server string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolves a declaration file into its full configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []byte
			if server != "" {
				remote, err := resolveRemote(cmd, server, token, args[0], format)
				if err != nil {
					return err
				}
				out = append(bytes.TrimRight(remote, "\n"), '\n')
			} else {
				decl, err := readDeclaration(cmd, args[0], format)
				if err != nil {
					return err
				}

				r, _, err := a.newResolver(cmd.Context(), strict, nil)
				if err != nil {
					return err
				}
				res, err := r.Resolve(cmd.Context(), decl)
				if err != nil {
					return err //nolint: wrapcheck
				}
				printWarnings(cmd, res.Warnings)
				out = append(document.EncodeResolved(res, indent), '\n')
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(out)

				return err //nolint: wrapcheck
			}
			if err := os.WriteFile(output, out, 0o644); err != nil { //nolint: gosec
				return fmt.Errorf("could not write %s: %w", output, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default standard output)")
	cmd.Flags().StringVar(&format, "format", "", "Declaration format: json, yaml or toml (default from the file extension)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on overrides of roles the base palette does not define")
	cmd.Flags().IntVar(&indent, "indent", 2, "JSON indentation, 0 for compact output")
	cmd.Flags().StringVar(&server, "server", "", "Resolve with a remote resolver service at this URL")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token for --server")
	cmd.MarkFlagsMutuallyExclusive("server", "strict")

	return cmd
}

// validateCommand constructs the 'validate' subcommand that resolves a
// declaration and reports the outcome without writing it.
func validateCommand(a *app) *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Checks that a declaration file resolves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decl, err := readDeclaration(cmd, args[0], format)
			if err != nil {
				return err
			}

			r, _, err := a.newResolver(cmd.Context(), strict, nil)
			if err != nil {
				return err
			}
			res, err := r.Resolve(cmd.Context(), decl)
			if err != nil {
				return err //nolint: wrapcheck
			}
			printWarnings(cmd, res.Warnings)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d themes, %d warnings\n", args[0], len(res.Themes), len(res.Warnings))

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Declaration format: json, yaml or toml (default from the file extension)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on overrides of roles the base palette does not define")

	return cmd
}
