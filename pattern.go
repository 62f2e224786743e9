// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import (
	"fmt"
	"regexp"
	"strings"
)

// compiledPattern is the matcher-internal compiled representation of one
// rule pattern.
type compiledPattern struct {
	// componentRE matches basename patterns with char classes.
	componentRE *regexp.Regexp
	// componentExact matches basename patterns without glob meta.
	componentExact string
	// componentGlob matches basename patterns with "*" and "?" without regexp.
	componentGlob string
	// pathExact matches slash patterns without glob meta.
	pathExact string
	// pathRE matches slash patterns with glob meta.
	pathRE *regexp.Regexp
	// hasSlash means pattern targets a full path, not a basename. Patterns
	// containing a slash are rooted at the attributes file directory.
	hasSlash bool
	// svnCompatible means pattern is expressible in svn's own auto-props
	// fnmatch dialect: a pure basename pattern without "**".
	svnCompatible bool
}

// compilePattern compiles one rule pattern into the cheapest matching
// strategy that preserves gitattributes semantics.
func compilePattern(raw string) (*compiledPattern, error) {
	pattern := strings.TrimSpace(raw)
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	anchored := strings.HasPrefix(pattern, "/")
	pattern = strings.Trim(pattern, "/")
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty after normalization (%q)", ErrInvalidPattern, raw)
	}

	cp := &compiledPattern{
		hasSlash: anchored || strings.Contains(pattern, "/"),
	}
	cp.svnCompatible = !cp.hasSlash && !strings.Contains(pattern, "**")

	hasMeta := patternHasGlobMeta(pattern)

	if !cp.hasSlash {
		// Basename rules avoid regexp for exact and simple wildcard cases.
		switch {
		case !hasMeta:
			cp.componentExact = pattern
		case !patternHasCharClass(pattern):
			cp.componentGlob = pattern
		default:
			re, err := regexp.Compile("^" + globToRegex(pattern, true) + "$")
			if err != nil {
				return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, raw, err)
			}

			cp.componentRE = re
		}

		return cp, nil
	}

	if !hasMeta {
		cp.pathExact = pattern
		return cp, nil
	}

	re, err := regexp.Compile("^" + globToRegex(pattern, false) + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, raw, err)
	}

	cp.pathRE = re
	return cp, nil
}

// matches reports whether compiled pattern matches normalized candidate path.
func (cp *compiledPattern) matches(candidate string) bool {
	if candidate == "" {
		return false
	}

	if cp.hasSlash {
		if cp.pathExact != "" {
			return candidate == cp.pathExact
		}

		return cp.pathRE != nil && cp.pathRE.MatchString(candidate)
	}

	base := pathBase(candidate)
	switch {
	case cp.componentExact != "":
		return base == cp.componentExact
	case cp.componentGlob != "":
		return matchSimpleWildcard(cp.componentGlob, base)
	default:
		return cp.componentRE != nil && cp.componentRE.MatchString(base)
	}
}

// patternHasGlobMeta reports whether pattern contains supported glob meta.
func patternHasGlobMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?':
			return true
		case '[':
			if findCharClassEnd(pattern, i) >= 0 {
				return true
			}
		}
	}

	return false
}

// patternHasCharClass reports whether pattern contains at least one valid "[...]" class.
func patternHasCharClass(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '[' && findCharClassEnd(pattern, i) >= 0 {
			return true
		}
	}

	return false
}

// matchSimpleWildcard matches "*" and "?" wildcard pattern against one
// path component using iterative backtracking.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx, sIdx := 0, 0
	starPattern, starInput := -1, 0

	for sIdx < len(input) {
		switch {
		case pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]):
			pIdx++
			sIdx++
		case pIdx < len(pattern) && pattern[pIdx] == '*':
			starPattern = pIdx
			starInput = sIdx
			pIdx++
		case starPattern >= 0:
			// Mismatch after a star: let the star consume one more byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
		default:
			return false
		}
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}

// globToRegex converts a gitattributes glob into a regexp body.
//
// When component is true the pattern targets a single path component and
// "**" degrades to "*"; otherwise "**" spans directories and "**/" matches
// zero or more leading directories.
func globToRegex(pattern string, component bool) string {
	var b strings.Builder

	for i := 0; i < len(pattern); i++ {
		if !component && pattern[i] == '*' && i+2 < len(pattern) &&
			pattern[i+1] == '*' && pattern[i+2] == '/' {
			b.WriteString(`(?:.*/)?`)
			i += 2
			continue
		}

		if next, ok := appendCharClassRegex(pattern, i, &b); ok {
			i = next
			continue
		}

		switch c := pattern[i]; c {
		case '*':
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				i++
				if !component {
					b.WriteString(`.*`)
					continue
				}
			}

			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// appendCharClassRegex appends a parsed glob char class (`[...]`) as regex class.
func appendCharClassRegex(pattern string, start int, b *strings.Builder) (int, bool) {
	end := findCharClassEnd(pattern, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')

	idx := start + 1
	if idx < end && pattern[idx] == '!' {
		// gitattributes-style class negation "[!x]" maps to regex "[^x]".
		b.WriteByte('^')
		idx++
	} else if idx < end && pattern[idx] == '^' {
		b.WriteString(`\^`)
		idx++
	}

	if idx < end && pattern[idx] == ']' {
		// Leading ']' is literal in both glob and regex classes.
		b.WriteByte(']')
		idx++
	}

	for ; idx < end; idx++ {
		if pattern[idx] == '\\' {
			b.WriteString(`\\`)
			continue
		}

		b.WriteByte(pattern[idx])
	}

	b.WriteByte(']')
	return end, true
}

// findCharClassEnd locates closing bracket for a glob char class.
func findCharClassEnd(pattern string, start int) int {
	if start < 0 || start >= len(pattern) || pattern[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pattern) && (pattern[idx] == '!' || pattern[idx] == '^') {
		idx++
	}

	if idx < len(pattern) && pattern[idx] == ']' {
		idx++
	}

	for ; idx < len(pattern); idx++ {
		if pattern[idx] == ']' {
			return idx
		}
	}

	return -1
}
