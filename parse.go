// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseAttributes parses gitattributes-style rules from reader.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - the first whitespace-separated token of a line is the path pattern
// - remaining tokens are attribute assignments: "attr" sets, "-attr" unsets,
//   "!attr" unspecifies, "attr=value" assigns
// - negative patterns are forbidden in attribute files, such lines are ignored
// - "\#" and "\!" escape leading comment/negation tokens in the pattern
func ParseAttributes(r io.Reader) ([]Rule, error) {
	s := bufio.NewScanner(r)
	rules := make([]Rule, 0, 16)

	for s.Scan() {
		line := strings.TrimSpace(strings.TrimRight(s.Text(), "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "!") {
			continue
		}

		fields := strings.Fields(line)
		pattern := fields[0]
		if strings.HasPrefix(pattern, `\#`) || strings.HasPrefix(pattern, `\!`) {
			pattern = pattern[1:]
		}

		attrs := make(AttrSet, 0, len(fields)-1)
		for _, token := range fields[1:] {
			attr, ok := parseAttrToken(token)
			if !ok {
				continue
			}

			attrs = append(attrs, attr)
		}

		rules = append(rules, Rule{
			Pattern: pattern,
			Attrs:   attrs,
		})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan attribute rules: %w", err)
	}

	return rules, nil
}

// ParseAttributesString parses rules from string input.
func ParseAttributesString(src string) ([]Rule, error) {
	return ParseAttributes(strings.NewReader(src))
}

// parseAttrToken parses one attribute assignment token.
func parseAttrToken(token string) (Attribute, bool) {
	state := StateSet
	switch {
	case strings.HasPrefix(token, "-"):
		state = StateUnset
		token = token[1:]
	case strings.HasPrefix(token, "!"):
		state = StateUnspecified
		token = token[1:]
	}

	if token == "" {
		return Attribute{}, false
	}

	if key, value, found := strings.Cut(token, "="); found {
		// "=" is only meaningful in the plain assignment form.
		if state != StateSet || key == "" {
			return Attribute{}, false
		}

		return Attribute{
			Key:   key,
			Value: value,
			State: StateValue,
		}, true
	}

	return Attribute{
		Key:   token,
		State: state,
	}, true
}
