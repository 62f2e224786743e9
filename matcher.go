// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

// PropertyMatcher answers which derived properties apply to concrete paths.
type PropertyMatcher struct {
	entries []matcherEntry
}

// matcherEntry is one compiled rule with its derived properties.
type matcherEntry struct {
	pattern *compiledPattern
	props   []Property
}

// NewPropertyMatcher compiles rules into a path-queryable matcher.
//
// Rules with invalid patterns are logged and skipped, same policy as
// TranslateRules.
func NewPropertyMatcher(rules []Rule, opts TranslateOptions) *PropertyMatcher {
	opts.applyDefaults()

	entries := make([]matcherEntry, 0, len(rules))
	for i := range rules {
		cp, err := compilePattern(rules[i].Pattern)
		if err != nil {
			opts.Logger.Warn().
				Err(err).
				Str("pattern", rules[i].Pattern).
				Msg("skipping rule with invalid pattern")
			continue
		}

		props := appendRuleProperties(nil, rules[i], cp, opts.Version)
		if len(props) == 0 {
			continue
		}

		entries = append(entries, matcherEntry{
			pattern: cp,
			props:   props,
		})
	}

	return &PropertyMatcher{entries: entries}
}

// PropertiesFor returns file properties effective for one relative path.
//
// Decision policy:
// - rules are evaluated in source order, later rules win per property name
// - an explicit clear drops the property accumulated by earlier rules
func (m *PropertyMatcher) PropertiesFor(relPath string) map[string]string {
	props := make(map[string]string)

	candidate := normalizePath(relPath)
	if candidate == "" {
		return props
	}

	for i := range m.entries {
		if !m.entries[i].pattern.matches(candidate) {
			continue
		}

		for _, p := range m.entries[i].props {
			fp, ok := p.(FileProperty)
			if !ok {
				continue
			}

			if fp.HasValue {
				props[fp.Name] = fp.Value
			} else {
				delete(props, fp.Name)
			}
		}
	}

	return props
}

// FilterFor returns the content filter name effective for one relative path.
func (m *PropertyMatcher) FilterFor(relPath string) (string, bool) {
	candidate := normalizePath(relPath)
	if candidate == "" {
		return "", false
	}

	filter := ""
	found := false
	for i := range m.entries {
		if !m.entries[i].pattern.matches(candidate) {
			continue
		}

		for _, p := range m.entries[i].props {
			if fp, ok := p.(FilterProperty); ok {
				filter = fp.Filter
				found = true
			}
		}
	}

	return filter, found
}
