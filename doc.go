// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

/*
Package attrprops translates git attribute rules into svn-style path properties.

A .gitattributes file maps wildcard patterns to attribute assignments. Version
control layers that only understand path-scoped property metadata (mime type,
eol-style, lock requirement, content filter) consume that information as
derived properties per pattern.

Basic flow:
  - parse rules from text (`ParseAttributes` / `ParseAttributesString`)
  - optionally load rules from file (`LoadAttributesFile`)
  - translate rules into ordered properties (`TranslateRules` / `TranslateReader`)
  - optionally query effective properties per path (`NewPropertyMatcher`)

Translation resolves each rule's end-of-line/binary classification with one of
two generation-specific algorithms selected by `FormatVersion`, expands the
builtin "binary" attribute macro, and derives per rule: mime-type, eol-style,
needs-lock and filter properties. Patterns expressible in svn's own auto-props
dialect additionally yield `AutoProperty` entries for newly added paths.

Rules whose patterns fail to compile are logged and skipped without affecting
neighbor rules; read failures on the source stream abort the translation.
*/
package attrprops
