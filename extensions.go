// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import "strings"

// BinaryExtensionRules converts an extension list to rules marking content binary.
//
// Accepted extension forms:
//   - "png"
//   - ".png"
//   - "*.png"
//
// Empty values are skipped. Returned patterns are normalized to lower-case
// "*.ext" form and preserve input order.
func BinaryExtensionRules(exts []string) []Rule {
	rules := make([]Rule, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		rules = append(rules, Rule{
			Pattern: "*." + ext,
			Attrs: AttrSet{
				{Key: "binary", State: StateSet},
			},
		})
	}

	return rules
}
