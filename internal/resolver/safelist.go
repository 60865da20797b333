package resolver

import (
	"strings"
	"themeconf/pkg/domain"
	"themeconf/pkg/serrors"
	"time"

	"github.com/dlclark/regexp2"
)

// patternTimeout bounds a single pattern match.
const patternTimeout = 100 * time.Millisecond

// Matcher answers whether a class name is retained by a safelist. A class is
// retained when any rule retains it.
type Matcher struct {
	classes  map[string]struct{}
	patterns []pattern
}

type pattern struct {
	re       *regexp2.Regexp
	variants map[string]struct{}
}

// CompileSafelist validates rules and compiles their patterns as ECMAScript
// regular expressions. Errors carry the serrors.ErrValidation kind.
func CompileSafelist(rules []domain.SafelistRule) (*Matcher, error) {
	m := &Matcher{classes: make(map[string]struct{}, len(rules))}

	for i, rule := range rules {
		if !rule.IsPattern() {
			if strings.TrimSpace(rule.Class) == "" {
				return nil, serrors.With(serrors.ErrValidation, "safelist[%d]: class name must not be empty", i)
			}
			m.classes[rule.Class] = struct{}{}

			continue
		}

		re, err := regexp2.Compile(rule.Pattern, regexp2.ECMAScript)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrValidation, err, "safelist[%d]: invalid pattern %q", i, rule.Pattern)
		}
		re.MatchTimeout = patternTimeout

		p := pattern{re: re, variants: make(map[string]struct{}, len(rule.Variants))}
		for j, v := range rule.Variants {
			if strings.TrimSpace(v) == "" || strings.Contains(v, ":") {
				return nil, serrors.With(serrors.ErrValidation,
					"safelist[%d].variants[%d]: invalid variant %q", i, j, v)
			}
			p.variants[v] = struct{}{}
		}
		m.patterns = append(m.patterns, p)
	}

	return m, nil
}

// Retains reports whether class is kept by a literal rule, matches a pattern,
// or is a pattern match prefixed only by variants that pattern lists, as in
// "hover:bg-red-500".
func (m *Matcher) Retains(class string) bool {
	if _, ok := m.classes[class]; ok {
		return true
	}

	i := strings.LastIndexByte(class, ':')
	var prefixes []string
	utility := class
	if i >= 0 {
		prefixes = strings.Split(class[:i], ":")
		utility = class[i+1:]
	}

	for _, p := range m.patterns {
		if len(prefixes) > 0 && !p.allows(prefixes) {
			continue
		}
		if ok, err := p.re.MatchString(utility); err == nil && ok {
			return true
		}
	}

	return false
}

func (p pattern) allows(prefixes []string) bool {
	for _, v := range prefixes {
		if _, ok := p.variants[v]; !ok {
			return false
		}
	}

	return true
}
