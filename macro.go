// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

// expandMacro expands one builtin attribute macro.
//
// Only the "binary" macro is handled: a set "binary" becomes an unset "text".
// Any other macro-looking attribute passes through untouched, so repositories
// relying on a literal custom attribute name keep observing it.
func expandMacro(attr Attribute) Attribute {
	if attr.Key == "binary" && attr.State == StateSet {
		return Attribute{
			Key:   "text",
			State: StateUnset,
		}
	}

	return attr
}

// expandMacros expands macros across one rule's attribute set.
func expandMacros(attrs AttrSet) AttrSet {
	out := make(AttrSet, len(attrs))
	for i := range attrs {
		out[i] = expandMacro(attrs[i])
	}

	return out
}
