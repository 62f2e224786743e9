// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(key string) Attribute        { return Attribute{Key: key, State: StateSet} }
func unset(key string) Attribute      { return Attribute{Key: key, State: StateUnset} }
func unspec(key string) Attribute     { return Attribute{Key: key, State: StateUnspecified} }
func val(key, value string) Attribute { return Attribute{Key: key, Value: value, State: StateValue} }

func TestClassifyEolModern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs AttrSet
		want  EolClassification
	}{
		{name: "empty", attrs: nil, want: EolAutodetect},
		{name: "text unset", attrs: AttrSet{unset("text")}, want: EolBinary},
		{name: "text unset beats eol", attrs: AttrSet{unset("text"), val("eol", "lf")}, want: EolBinary},
		{name: "crlf set", attrs: AttrSet{set("crlf")}, want: EolNative},
		{name: "crlf set without text", attrs: AttrSet{set("crlf")}, want: EolNative},
		{name: "crlf set beats text value", attrs: AttrSet{set("crlf"), val("text", "auto")}, want: EolNative},
		{name: "crlf unset", attrs: AttrSet{unset("crlf")}, want: EolBinary},
		{name: "crlf input", attrs: AttrSet{val("crlf", "input")}, want: EolLF},
		{name: "crlf other value falls through", attrs: AttrSet{val("crlf", "weird")}, want: EolAutodetect},
		{name: "text auto", attrs: AttrSet{val("text", "auto")}, want: EolAutodetect},
		{name: "eol lf", attrs: AttrSet{set("text"), val("eol", "lf")}, want: EolLF},
		{name: "eol crlf", attrs: AttrSet{set("text"), val("eol", "crlf")}, want: EolCRLF},
		{name: "eol lf without text", attrs: AttrSet{val("eol", "lf")}, want: EolLF},
		{name: "text set", attrs: AttrSet{set("text")}, want: EolNative},
		{name: "text unrecognized value", attrs: AttrSet{val("text", "weird")}, want: EolAutodetect},
		{name: "text explicitly unspecified", attrs: AttrSet{unspec("text")}, want: EolAutodetect},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, classifyEolModern(tc.attrs))
		})
	}
}

func TestClassifyEolLegacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs AttrSet
		want  EolClassification
	}{
		{name: "empty", attrs: nil, want: EolAutodetect},
		{name: "text unset", attrs: AttrSet{unset("text")}, want: EolBinary},
		{name: "eol lf", attrs: AttrSet{val("eol", "lf")}, want: EolLF},
		{name: "eol crlf", attrs: AttrSet{val("eol", "crlf")}, want: EolCRLF},
		{name: "eol lf with text set", attrs: AttrSet{set("text"), val("eol", "lf")}, want: EolLF},
		{name: "text never mentioned", attrs: AttrSet{set("lockable")}, want: EolAutodetect},
		{name: "text explicitly unspecified", attrs: AttrSet{unspec("text")}, want: EolAutodetect},
		{name: "text set", attrs: AttrSet{set("text")}, want: EolNative},
		{name: "text unrecognized value normalizes", attrs: AttrSet{val("text", "weird")}, want: EolNative},
		{name: "crlf ignored by legacy", attrs: AttrSet{set("crlf")}, want: EolAutodetect},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, classifyEolLegacy(tc.attrs))
		})
	}
}

func TestClassifyEolVersionSelection(t *testing.T) {
	t.Parallel()

	// The two generations must disagree on an explicit unrecognized "text"
	// value: legacy normalizes, modern autodetects.
	attrs := AttrSet{val("text", "weird")}
	assert.Equal(t, EolNative, classifyEol(attrs, FormatV4))
	assert.Equal(t, EolAutodetect, classifyEol(attrs, FormatV5))

	// Binary is binary under both generations.
	binary := AttrSet{unset("text")}
	assert.Equal(t, EolBinary, classifyEol(binary, FormatV4))
	assert.Equal(t, EolBinary, classifyEol(binary, FormatV5))

	// eol=lf resolves to LF under both generations.
	lf := AttrSet{set("text"), val("eol", "lf")}
	assert.Equal(t, EolLF, classifyEol(lf, FormatV4))
	assert.Equal(t, EolLF, classifyEol(lf, FormatV5))
}

func TestEolClassificationProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class       EolClassification
		mime        string
		mimePresent bool
		eol         string
		eolPresent  bool
	}{
		{class: EolAutodetect},
		{class: EolBinary, mime: MimeBinary, mimePresent: true, eol: "", eolPresent: true},
		{class: EolNative, mime: "", mimePresent: true, eol: EolStyleNative, eolPresent: true},
		{class: EolLF, mime: "", mimePresent: true, eol: EolStyleLF, eolPresent: true},
		{class: EolCRLF, mime: "", mimePresent: true, eol: EolStyleCRLF, eolPresent: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.class.String(), func(t *testing.T) {
			t.Parallel()

			mime, ok := tc.class.MimeType()
			require.Equal(t, tc.mimePresent, ok)
			assert.Equal(t, tc.mime, mime)

			eol, ok := tc.class.EolStyle()
			require.Equal(t, tc.eolPresent, ok)
			assert.Equal(t, tc.eol, eol)
		})
	}
}

func TestExpandMacro(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unset("text"), expandMacro(set("binary")))

	// Only the set form expands; everything else passes through literally.
	assert.Equal(t, unset("binary"), expandMacro(unset("binary")))
	assert.Equal(t, val("binary", "x"), expandMacro(val("binary", "x")))
	assert.Equal(t, set("diff"), expandMacro(set("diff")))

	expanded := expandMacros(AttrSet{set("binary"), set("lockable")})
	assert.Equal(t, AttrSet{unset("text"), set("lockable")}, expanded)
}
