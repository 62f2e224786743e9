// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

// Well-known svn property names derived from attribute rules.
const (
	// PropMimeType is the mime-type property name.
	PropMimeType = "svn:mime-type"
	// PropEolStyle is the eol-style property name.
	PropEolStyle = "svn:eol-style"
	// PropNeedsLock is the lock requirement property name.
	PropNeedsLock = "svn:needs-lock"
)

// needsLockValue is the needs-lock property value applied to all matched paths.
const needsLockValue = "*"

// Property is one derived path-scoped property.
//
// Implementations form a closed set: AutoProperty, FileProperty and
// FilterProperty. All are immutable value records produced once during
// translation.
type Property interface {
	// property marks the closed implementation set.
	property()
}

// AutoProperty is a property applied automatically to newly added paths.
//
// Emitted only for patterns expressible in svn's own auto-props dialect;
// Value is always non-empty.
type AutoProperty struct {
	// Pattern is the source rule pattern.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Name is the property name.
	Name string `json:"name" yaml:"name"`
	// Value is the non-empty property value.
	Value string `json:"value" yaml:"value"`
}

// FileProperty is a property applied to existing paths matching pattern.
type FileProperty struct {
	// Pattern is the source rule pattern.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Name is the property name.
	Name string `json:"name" yaml:"name"`
	// Value is the property value when HasValue is true.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// HasValue is false when the property must be explicitly cleared.
	HasValue bool `json:"has_value" yaml:"has_value"`
}

// FilterProperty binds a pattern to a content filter name.
type FilterProperty struct {
	// Pattern is the source rule pattern.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Filter is the content filter name.
	Filter string `json:"filter" yaml:"filter"`
}

func (AutoProperty) property()   {}
func (FileProperty) property()   {}
func (FilterProperty) property() {}

// emitValue appends properties for one derived optional value.
//
// Emission policy:
// - absent value emits nothing
// - non-empty value emits FileProperty, plus AutoProperty for svn-compatible patterns
// - empty value emits a single clearing FileProperty; clearing is not
//   expressible as an autoprop
func emitValue(out []Property, pattern, name, value string, present, svnCompatible bool) []Property {
	if !present {
		return out
	}

	if value == "" {
		return append(out, FileProperty{
			Pattern: pattern,
			Name:    name,
		})
	}

	out = append(out, FileProperty{
		Pattern:  pattern,
		Name:     name,
		Value:    value,
		HasValue: true,
	})

	if svnCompatible {
		out = append(out, AutoProperty{
			Pattern: pattern,
			Name:    name,
			Value:   value,
		})
	}

	return out
}
