// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/attrprops

package attrprops

import (
	"fmt"
	"os"
)

// LoadAttributesFile reads and parses attribute rules from a file.
func LoadAttributesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open attributes file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rules, err := ParseAttributes(f)
	if err != nil {
		return nil, fmt.Errorf("parse attributes file: %w", err)
	}

	return rules, nil
}

// TranslateFile loads one attributes file and translates it into properties.
func TranslateFile(path string, opts TranslateOptions) ([]Property, error) {
	rules, err := LoadAttributesFile(path)
	if err != nil {
		return nil, err
	}

	return TranslateRules(rules, opts), nil
}
