// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import (
	"io"
	"strings"
)

// TranslateReader parses attribute rules from reader and translates them
// into derived properties.
//
// Read failures abort the translation. Rules with patterns that fail to
// compile are logged and skipped; the rest of the stream is still translated.
func TranslateReader(r io.Reader, opts TranslateOptions) ([]Property, error) {
	rules, err := ParseAttributes(r)
	if err != nil {
		return nil, err
	}

	return TranslateRules(rules, opts), nil
}

// TranslateString translates rules from string input.
func TranslateString(src string, opts TranslateOptions) ([]Property, error) {
	return TranslateReader(strings.NewReader(src), opts)
}

// TranslateRules translates parsed rules into derived properties.
//
// Output preserves source rule order; within one rule properties follow
// mime-type, eol-style, needs-lock, filter order. A rule whose pattern fails
// to compile contributes nothing and does not affect neighbor rules.
func TranslateRules(rules []Rule, opts TranslateOptions) []Property {
	opts.applyDefaults()

	out := make([]Property, 0, len(rules)*2)
	for i := range rules {
		cp, err := compilePattern(rules[i].Pattern)
		if err != nil {
			opts.Logger.Warn().
				Err(err).
				Str("pattern", rules[i].Pattern).
				Msg("skipping rule with invalid pattern")
			continue
		}

		out = appendRuleProperties(out, rules[i], cp, opts.Version)
	}

	return out
}

// appendRuleProperties derives and appends properties for one compiled rule.
func appendRuleProperties(out []Property, rule Rule, cp *compiledPattern, version FormatVersion) []Property {
	attrs := expandMacros(rule.Attrs)
	class := classifyEol(attrs, version)

	mime, mimeOK := class.MimeType()
	out = emitValue(out, rule.Pattern, PropMimeType, mime, mimeOK, cp.svnCompatible)

	eol, eolOK := class.EolStyle()
	out = emitValue(out, rule.Pattern, PropEolStyle, eol, eolOK, cp.svnCompatible)

	lock, lockOK := needsLock(attrs)
	out = emitValue(out, rule.Pattern, PropNeedsLock, lock, lockOK, cp.svnCompatible)

	if filter, ok := filterName(attrs); ok {
		out = append(out, FilterProperty{
			Pattern: rule.Pattern,
			Filter:  filter,
		})
	}

	return out
}

// needsLock returns the needs-lock property value for one attribute set.
//
// Lock extraction is independent of EOL classification and format version.
func needsLock(attrs AttrSet) (string, bool) {
	if attrs.IsSet("lockable") {
		return needsLockValue, true
	}

	return "", false
}

// filterName returns the content filter name for one attribute set.
func filterName(attrs AttrSet) (string, bool) {
	return attrs.Value("filter")
}
