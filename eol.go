// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

// EolClassification is the derived binary/line-ending decision for one rule.
type EolClassification uint8

const (
	// EolAutodetect leaves normalization to content autodetection.
	EolAutodetect EolClassification = iota
	// EolBinary marks content as binary.
	EolBinary
	// EolNative normalizes to the platform-native line ending.
	EolNative
	// EolLF normalizes to LF.
	EolLF
	// EolCRLF normalizes to CRLF.
	EolCRLF
)

// MimeBinary is the mime-type sentinel applied to binary content.
const MimeBinary = "application/octet-stream"

// svn:eol-style property value tokens.
const (
	// EolStyleNative is the platform-native eol-style token.
	EolStyleNative = "native"
	// EolStyleLF is the LF eol-style token.
	EolStyleLF = "LF"
	// EolStyleCRLF is the CRLF eol-style token.
	EolStyleCRLF = "CRLF"
)

// classifyEol resolves the applicable classification for one expanded
// attribute set under the given format generation.
func classifyEol(attrs AttrSet, version FormatVersion) EolClassification {
	if version.modern() {
		return classifyEolModern(attrs)
	}

	return classifyEolLegacy(attrs)
}

// classifyEolModern implements the current classification order.
//
// The legacy "crlf" attribute predates "text"/"eol" and is checked before
// them: an explicit legacy setting wins when both generations are present
// in old trees.
func classifyEolModern(attrs AttrSet) EolClassification {
	switch {
	case attrs.IsUnset("text"):
		return EolBinary
	case attrs.IsSet("crlf"):
		return EolNative
	case attrs.IsUnset("crlf"):
		return EolBinary
	}

	if v, ok := attrs.Value("crlf"); ok && v == "input" {
		return EolLF
	}

	if v, ok := attrs.Value("text"); ok && v == "auto" {
		return EolAutodetect
	}

	if v, ok := attrs.Value("eol"); ok {
		switch v {
		case "lf":
			return EolLF
		case "crlf":
			return EolCRLF
		}
	}

	if attrs.IsSet("text") {
		return EolNative
	}

	return EolAutodetect
}

// classifyEolLegacy implements the pre-V5 classification order.
//
// Here an explicit but unrecognized "text" value still means "normalize";
// only a never-mentioned "text" falls back to autodetection.
func classifyEolLegacy(attrs AttrSet) EolClassification {
	if attrs.IsUnset("text") {
		return EolBinary
	}

	if v, ok := attrs.Value("eol"); ok {
		switch v {
		case "lf":
			return EolLF
		case "crlf":
			return EolCRLF
		}
	}

	if attrs.IsUnspecified("text") {
		return EolAutodetect
	}

	return EolNative
}

// MimeType returns the derived mime-type property value.
//
// A present empty value means the property must be explicitly cleared.
func (c EolClassification) MimeType() (string, bool) {
	switch c {
	case EolBinary:
		return MimeBinary, true
	case EolNative, EolLF, EolCRLF:
		return "", true
	default:
		return "", false
	}
}

// EolStyle returns the derived eol-style property value.
//
// A present empty value means the property must be explicitly cleared.
func (c EolClassification) EolStyle() (string, bool) {
	switch c {
	case EolBinary:
		return "", true
	case EolNative:
		return EolStyleNative, true
	case EolLF:
		return EolStyleLF, true
	case EolCRLF:
		return EolStyleCRLF, true
	default:
		return "", false
	}
}

// String returns classification name for logs.
func (c EolClassification) String() string {
	switch c {
	case EolAutodetect:
		return "autodetect"
	case EolBinary:
		return "binary"
	case EolNative:
		return "native"
	case EolLF:
		return "lf"
	case EolCRLF:
		return "crlf"
	default:
		return "unknown"
	}
}
