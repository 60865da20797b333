package resolver

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"themeconf/internal/config"
	"themeconf/pkg/domain"
	"themeconf/pkg/logger"
	"themeconf/pkg/metrics"
	"themeconf/pkg/palette"
	"themeconf/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// Policy decides how an override that names a role missing from its base
// palette is treated.
type Policy string

const (
	// PolicyAdd accepts the role, appends it to the palette and records a
	// warning.
	PolicyAdd Policy = config.UnknownRolesAdd
	// PolicyReject fails the resolution with serrors.ErrOverrideConflict.
	PolicyReject Policy = config.UnknownRolesReject
)

// Options configure how declarations are resolved.
type Options struct {
	// UnknownRoles is the policy for override roles the base palette lacks.
	// The zero value behaves as PolicyAdd.
	UnknownRoles Policy
	// Metrics receives one record per resolution. It may be nil.
	Metrics *metrics.Resolver
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, m *metrics.Resolver) Options {
	return Options{
		UnknownRoles: Policy(cfg.Resolver.UnknownRoles),
		Metrics:      m,
	}
}

// resolver is the concrete implementation of the Resolver interface. It only
// holds immutable dependencies and is safe for concurrent use.
type resolver struct {
	options Options
	catalog palette.Source
}

// New creates a Resolver that looks base palettes up in catalog.
func New(catalog palette.Source, options Options) Resolver {
	return &resolver{
		options: options,
		catalog: catalog,
	}
}

// Resolve validates decl and computes every theme palette. It either returns
// the complete result or the first error found, checking content, font
// families, plugins, themes, the dark theme and the safelist in that order.
// The declaration is never modified and the result shares no memory with it.
func (r *resolver) Resolve(ctx context.Context, decl domain.Declaration) (*domain.Resolved, error) {
	start := time.Now()
	res, err := r.resolve(ctx, decl)

	outcome, warnings := metrics.OutcomeOK, 0
	if err != nil {
		outcome = strings.ToLower(serrors.KindOf(err).Error())
		logger.Debug(ctx, "declaration rejected", zap.Error(err))
	} else {
		warnings = len(res.Warnings)
		logger.Info(ctx, "declaration resolved",
			zap.Int("themes", len(res.Themes)),
			zap.String("darkTheme", res.DarkTheme),
			zap.Int("warnings", warnings))
	}
	r.options.Metrics.Record(ctx, outcome, time.Since(start), warnings)

	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *resolver) resolve(ctx context.Context, decl domain.Declaration) (*domain.Resolved, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolution cancelled: %w", err)
	}

	res := &domain.Resolved{Root: decl.Root}

	var err error
	if res.Content, err = checkContent(decl.Content); err != nil {
		return nil, err
	}
	if res.FontFamily, err = checkFontFamily(decl.FontFamily); err != nil {
		return nil, err
	}
	if res.Plugins, err = checkPlugins(decl.Plugins); err != nil {
		return nil, err
	}

	set := domain.ThemeSet{}
	if decl.Themes != nil {
		set = *decl.Themes
	}
	if res.Themes, res.Warnings, err = r.resolveThemes(ctx, set.Themes); err != nil {
		return nil, err
	}
	if set.DarkTheme != "" {
		if _, ok := res.Theme(set.DarkTheme); !ok {
			return nil, serrors.With(serrors.ErrReference,
				"darkTheme: %q is not one of the declared themes %q", set.DarkTheme, set.Names())
		}
		res.DarkTheme = set.DarkTheme
	}

	if _, err := CompileSafelist(decl.Safelist); err != nil {
		return nil, err
	}
	res.Safelist = cloneSafelist(decl.Safelist)

	return res, nil
}

func checkContent(content domain.ContentGlobSet) (domain.ContentGlobSet, error) {
	if len(content) == 0 {
		return nil, serrors.With(serrors.ErrValidation, "content: at least one glob is required")
	}

	for i, glob := range content {
		switch {
		case strings.TrimSpace(glob) == "":
			return nil, serrors.With(serrors.ErrValidation, "content[%d]: glob must not be empty", i)
		case path.IsAbs(glob) || filepath.IsAbs(glob):
			return nil, serrors.With(serrors.ErrValidation,
				"content[%d]: glob %q must be relative to the config root", i, glob)
		}
		if _, err := path.Match(glob, ""); errors.Is(err, path.ErrBadPattern) {
			return nil, serrors.Wrap(serrors.ErrValidation, err, "content[%d]: invalid glob %q", i, glob)
		}
	}

	return slices.Clone(content), nil
}

func checkFontFamily(fonts domain.FontFamilyMap) (domain.FontFamilyMap, error) {
	roles := make([]string, 0, len(fonts))
	for role := range fonts {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	out := make(domain.FontFamilyMap, len(fonts))
	for _, role := range roles {
		if strings.TrimSpace(role) == "" {
			return nil, serrors.With(serrors.ErrValidation, "theme.fontFamily: font role must not be empty")
		}
		stack := fonts[role]
		if len(stack) == 0 {
			return nil, serrors.With(serrors.ErrValidation,
				"theme.fontFamily.%s: at least one font is required", role)
		}
		for i, font := range stack {
			if strings.TrimSpace(font) == "" {
				return nil, serrors.With(serrors.ErrValidation,
					"theme.fontFamily.%s[%d]: font name must not be empty", role, i)
			}
		}
		out[role] = slices.Clone(stack)
	}

	return out, nil
}

func checkPlugins(plugins domain.PluginList) (domain.PluginList, error) {
	seen := make(map[string]int, len(plugins))
	for i, p := range plugins {
		if strings.TrimSpace(p) == "" {
			return nil, serrors.With(serrors.ErrValidation, "plugins[%d]: plugin name must not be empty", i)
		}
		if first, ok := seen[p]; ok {
			return nil, serrors.With(serrors.ErrValidation,
				"plugins[%d]: plugin %q is already listed at plugins[%d]", i, p, first)
		}
		seen[p] = i
	}

	return slices.Clone(plugins), nil
}

func (r *resolver) resolveThemes(ctx context.Context,
	defs []domain.ThemeDefinition) ([]domain.ResolvedTheme, []domain.Warning, error) {
	themes := make([]domain.ResolvedTheme, 0, len(defs))
	var warnings []domain.Warning

	seen := make(map[string]int, len(defs))
	for i, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			return nil, nil, serrors.With(serrors.ErrValidation, "themes[%d]: theme name must not be empty", i)
		}
		if first, ok := seen[def.Name]; ok {
			return nil, nil, serrors.With(serrors.ErrValidation,
				"themes[%d]: theme %q is already declared at themes[%d]", i, def.Name, first)
		}
		seen[def.Name] = i

		theme, added, err := r.resolveTheme(def)
		if err != nil {
			return nil, nil, err
		}
		for _, role := range added {
			w := domain.Warning{
				Theme:   def.Name,
				Role:    role,
				Message: fmt.Sprintf("role %q is not defined by base palette %q and was added", role, def.Base),
			}
			logger.Warn(ctx, "override adds unknown role",
				zap.String("theme", w.Theme), zap.String("base", def.Base), zap.String("role", w.Role))
			warnings = append(warnings, w)
		}
		logger.Debug(ctx, "theme resolved",
			zap.String("theme", theme.Name), zap.String("base", theme.Base), zap.Int("roles", theme.Palette.Len()))
		themes = append(themes, theme)
	}

	return themes, warnings, nil
}

// resolveTheme applies def's overrides to its base palette. It returns the
// roles the overrides added to a non-empty base.
func (r *resolver) resolveTheme(def domain.ThemeDefinition) (domain.ResolvedTheme, []string, error) {
	theme := domain.ResolvedTheme{Name: def.Name, Base: def.Base}

	var base domain.Palette
	if def.Base == "" {
		if len(def.Overrides) == 0 {
			return theme, nil, serrors.With(serrors.ErrValidation,
				"theme %q: a theme without a base palette needs overrides", def.Name)
		}
	} else {
		p, err := r.lookup(def.Base)
		if err != nil {
			return theme, nil, fmt.Errorf("theme %q: base palette: %w", def.Name, err)
		}
		base = p
	}

	colors := make([]domain.Color, 0, len(def.Overrides))
	for _, o := range def.Overrides {
		value, err := r.overrideValue(def.Name, o)
		if err != nil {
			return theme, nil, err
		}
		colors = append(colors, domain.Color{Role: o.Role, Value: value})
	}

	p, added := base.Apply(colors...)
	theme.Palette = p
	if def.Base == "" || len(added) == 0 {
		return theme, nil, nil
	}
	if r.options.UnknownRoles == PolicyReject {
		return theme, nil, serrors.With(serrors.ErrOverrideConflict,
			"theme %q: override role %q is not defined by base palette %q", def.Name, added[0], def.Base)
	}

	return theme, added, nil
}

func (r *resolver) overrideValue(theme string, o domain.Override) (string, error) {
	if strings.TrimSpace(o.Role) == "" {
		return "", serrors.With(serrors.ErrValidation, "theme %q: override role must not be empty", theme)
	}
	if !o.Value.IsReference() {
		if strings.TrimSpace(o.Value.Literal) == "" {
			return "", serrors.With(serrors.ErrValidation,
				"theme %q: override %q has an empty value", theme, o.Role)
		}

		return o.Value.Literal, nil
	}

	ref := o.Value.Ref
	if ref.Palette == "" {
		return "", serrors.With(serrors.ErrValidation,
			"theme %q: override %q references no palette", theme, o.Role)
	}
	role := ref.Role
	if role == "" {
		role = o.Role
	}

	p, err := r.lookup(ref.Palette)
	if err != nil {
		return "", fmt.Errorf("theme %q: override %q: %w", theme, o.Role, err)
	}
	value, ok := p.Get(role)
	if !ok {
		return "", serrors.With(serrors.ErrReference,
			"theme %q: override %q references role %q, which palette %q does not define",
			theme, o.Role, role, ref.Palette)
	}

	return value, nil
}

// lookup maps a missing catalog palette to a reference error.
func (r *resolver) lookup(name string) (domain.Palette, error) {
	p, err := r.catalog.Palette(name)
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return domain.Palette{}, serrors.With(serrors.ErrReference, "palette %q is not defined", name)
	case err != nil:
		return domain.Palette{}, fmt.Errorf("could not look up palette %q: %w", name, err)
	}

	return p, nil
}

func cloneSafelist(rules []domain.SafelistRule) []domain.SafelistRule {
	if rules == nil {
		return nil
	}
	out := make([]domain.SafelistRule, len(rules))
	for i, rule := range rules {
		rule.Variants = slices.Clone(rule.Variants)
		out[i] = rule
	}

	return out
}
