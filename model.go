// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import "github.com/rs/zerolog"

// AttrState represents one of the four git attribute assignment forms.
type AttrState uint8

const (
	// StateUnspecified marks "!attr" form or an attribute never mentioned.
	StateUnspecified AttrState = iota
	// StateSet marks plain "attr" form.
	StateSet
	// StateUnset marks "-attr" form.
	StateUnset
	// StateValue marks "attr=value" form.
	StateValue
)

// Attribute is one parsed attribute assignment.
type Attribute struct {
	// Key is the attribute name.
	Key string `json:"key" yaml:"key"`
	// Value is the assignment value for StateValue attributes, empty otherwise.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	// State is the parsed assignment form.
	State AttrState `json:"state" yaml:"state"`
}

// AttrSet is the ordered attribute list of one rule.
//
// Lookup policy: when one key appears multiple times, the last occurrence
// wins, matching git's own per-line override order.
type AttrSet []Attribute

// Rule is one source rule: a path pattern plus ordered attribute assignments.
type Rule struct {
	// Pattern is a gitattributes wildcard pattern.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Attrs are attribute assignments in file order.
	Attrs AttrSet `json:"attrs" yaml:"attrs"`
}

// FormatVersion is the repository format generation selecting the EOL
// resolution algorithm.
type FormatVersion int

const (
	// FormatV4 is the legacy repository format.
	FormatV4 FormatVersion = 4
	// FormatV5 is the current repository format.
	FormatV5 FormatVersion = 5
)

// modernEolFormat is the first format generation using the modern EOL algorithm.
const modernEolFormat = FormatV5

// modern reports whether version resolves EOL with the modern algorithm.
func (v FormatVersion) modern() bool {
	return v >= modernEolFormat
}

// TranslateOptions controls translation behavior.
type TranslateOptions struct {
	// Logger receives warnings for skipped rules. Nil disables logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// Version selects the EOL resolution algorithm generation.
	// Zero value defaults to FormatV5.
	Version FormatVersion `json:"version,omitempty" yaml:"version,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *TranslateOptions) applyDefaults() {
	if opts.Version == 0 {
		opts.Version = FormatV5
	}

	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
}

// lookup returns the winning assignment for key.
func (s AttrSet) lookup(key string) (Attribute, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Key == key {
			return s[i], true
		}
	}

	return Attribute{}, false
}

// IsSet reports whether key is present in plain "attr" form.
func (s AttrSet) IsSet(key string) bool {
	attr, ok := s.lookup(key)
	return ok && attr.State == StateSet
}

// IsUnset reports whether key is present in "-attr" form.
func (s AttrSet) IsUnset(key string) bool {
	attr, ok := s.lookup(key)
	return ok && attr.State == StateUnset
}

// IsUnspecified reports whether key is never mentioned or present in "!attr" form.
func (s AttrSet) IsUnspecified(key string) bool {
	attr, ok := s.lookup(key)
	return !ok || attr.State == StateUnspecified
}

// Value returns the "attr=value" assignment value for key.
func (s AttrSet) Value(key string) (string, bool) {
	attr, ok := s.lookup(key)
	if !ok || attr.State != StateValue {
		return "", false
	}

	return attr.Value, true
}
