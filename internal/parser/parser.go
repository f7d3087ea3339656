//-----------------------------------------------------------------------------
// Copyright (c) 2026-present The Shire Authors
//
// This file is part of Shire.
//
// Shire is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2026-present The Shire Authors
//-----------------------------------------------------------------------------

// Package parser parses a block of outliner note text into an expression
// tree.
//
// Two closely related dialects are supported. The dialect is always given
// explicitly; there is no global parser state, so blocks may be parsed
// concurrently.
package parser

import (
	"fmt"
	"slices"
	"strings"
)

// Dialect selects the grammar variant.
type Dialect uint8

// Constants for Dialect.
const (
	Roam   Dialect = iota // Italic is __x__, tasks are {{[[TODO]]}}, attributes are name:: value.
	Logseq                // Italic is _x_ or *x*, tasks are bare TODO/DONE keywords.
)

// dialectInfo describes a single dialect.
type dialectInfo struct {
	Name     string
	AltNames []string
	Dialect  Dialect
}

var registry = map[string]*dialectInfo{}
var primary = map[Dialect]*dialectInfo{}

// register the dialect (info) for later retrieval.
func register(di *dialectInfo) {
	if _, ok := registry[di.Name]; ok {
		panic(fmt.Sprintf("Dialect %q already registered", di.Name))
	}
	registry[di.Name] = di
	for _, alt := range di.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Dialect %q already registered", alt))
		}
		registry[alt] = di
	}
	primary[di.Dialect] = di
}

func init() {
	register(&dialectInfo{
		Name:     "roam",
		AltNames: []string{"a", "roam-research"},
		Dialect:  Roam,
	})
	register(&dialectInfo{
		Name:     "logseq",
		AltNames: []string{"b"},
		Dialect:  Logseq,
	})
}

// GetDialect returns the dialect registered under the given name.
func GetDialect(name string) (Dialect, bool) {
	if di := registry[strings.ToLower(strings.TrimSpace(name))]; di != nil {
		return di.Dialect, true
	}
	return Roam, false
}

// DialectNames returns the sorted list of all registered dialect names,
// including the alternative names.
func DialectNames() []string {
	result := make([]string, 0, len(registry))
	for name := range registry {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}

func (d Dialect) String() string {
	if di := primary[d]; di != nil {
		return di.Name
	}
	return fmt.Sprintf("Dialect(%d)", uint8(d))
}
