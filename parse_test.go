// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	t.Parallel()

	rules, err := ParseAttributesString(`
# comment

*.txt text
*.jpg -text
*.dat !text
*.c text eol=lf crlf=input
!negative binary
\#hash binary
win.* text=auto
`)
	require.NoError(t, err)
	require.Len(t, rules, 6)

	assert.Equal(t, Rule{
		Pattern: "*.txt",
		Attrs:   AttrSet{{Key: "text", State: StateSet}},
	}, rules[0])

	assert.Equal(t, Rule{
		Pattern: "*.jpg",
		Attrs:   AttrSet{{Key: "text", State: StateUnset}},
	}, rules[1])

	assert.Equal(t, Rule{
		Pattern: "*.dat",
		Attrs:   AttrSet{{Key: "text", State: StateUnspecified}},
	}, rules[2])

	assert.Equal(t, Rule{
		Pattern: "*.c",
		Attrs: AttrSet{
			{Key: "text", State: StateSet},
			{Key: "eol", Value: "lf", State: StateValue},
			{Key: "crlf", Value: "input", State: StateValue},
		},
	}, rules[3])

	// Negative patterns are forbidden in attribute files and dropped.
	assert.Equal(t, "#hash", rules[4].Pattern)
	assert.Equal(t, "win.*", rules[5].Pattern)
	assert.Equal(t, AttrSet{{Key: "text", Value: "auto", State: StateValue}}, rules[5].Attrs)
}

func TestParseAttrToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  Attribute
		ok    bool
	}{
		{name: "set", token: "text", want: Attribute{Key: "text", State: StateSet}, ok: true},
		{name: "unset", token: "-text", want: Attribute{Key: "text", State: StateUnset}, ok: true},
		{name: "unspecified", token: "!text", want: Attribute{Key: "text", State: StateUnspecified}, ok: true},
		{name: "value", token: "eol=lf", want: Attribute{Key: "eol", Value: "lf", State: StateValue}, ok: true},
		{name: "empty value", token: "filter=", want: Attribute{Key: "filter", Value: "", State: StateValue}, ok: true},
		{name: "bare dash", token: "-", ok: false},
		{name: "bare bang", token: "!", ok: false},
		{name: "unset with value", token: "-eol=lf", ok: false},
		{name: "missing key", token: "=lf", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			attr, ok := parseAttrToken(tc.token)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, attr)
			}
		})
	}
}

func TestAttrSetLookup(t *testing.T) {
	t.Parallel()

	attrs := AttrSet{
		{Key: "text", State: StateSet},
		{Key: "eol", Value: "lf", State: StateValue},
		{Key: "text", State: StateUnset},
	}

	// Last occurrence of a duplicate key wins.
	assert.False(t, attrs.IsSet("text"))
	assert.True(t, attrs.IsUnset("text"))
	assert.False(t, attrs.IsUnspecified("text"))

	v, ok := attrs.Value("eol")
	require.True(t, ok)
	assert.Equal(t, "lf", v)

	assert.True(t, attrs.IsUnspecified("crlf"))
	assert.False(t, attrs.IsSet("crlf"))
	assert.False(t, attrs.IsUnset("crlf"))

	_, ok = attrs.Value("text")
	assert.False(t, ok)
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("stream broken")
}

func TestParseAttributesReadError(t *testing.T) {
	t.Parallel()

	_, err := ParseAttributes(failReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan attribute rules")
	assert.Contains(t, err.Error(), "stream broken")
}
