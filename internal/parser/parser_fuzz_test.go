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

package parser_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shire-lang/shire/internal/ast"
	"github.com/shire-lang/shire/internal/parser"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"", "[[a]]", "#[[a [[b]]]]", "{{embed: ((x))}}", "**a __b__**",
		"https://x.y/(a)", "a:: b", "TODO x", "> q", "```x```",
		"x **a ^^b^^** y", "> a:: [[b]] c", "a [x](y) b #c d", "plain text",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, src string) {
		t.Parallel()
		for _, name := range []string{"roam", "logseq"} {
			dialect, _ := parser.GetDialect(name)
			is, err := parser.Parse(dialect, src)
			if !utf8.ValidString(src) {
				if err == nil {
					t.Errorf("%s: invalid UTF-8 accepted: %q", name, src)
				}
				continue
			}
			if err != nil {
				t.Errorf("%s: unexpected error %v for %q", name, err, src)
			}
			if src != "" && len(is) == 0 {
				t.Errorf("%s: no nodes for %q", name, src)
			}
			checkContent(t, name, src, is)
		}
	})
}

// checkContent verifies that all text of the tree is taken from the source,
// in order and without overlap. A tree with only text nodes must return the
// whole source.
func checkContent(t *testing.T, name, src string, is ast.InlineSlice) {
	t.Helper()
	var tc textCollector
	ast.WalkSlice(&tc, is)
	rest := src
	for _, text := range tc.texts {
		if text == "" {
			t.Errorf("%s: empty text node for %q", name, src)
			continue
		}
		pos := strings.Index(rest, text)
		if pos < 0 {
			t.Errorf("%s: text %q not found in order in %q", name, text, src)
			return
		}
		rest = rest[pos+len(text):]
	}

	var sb strings.Builder
	for _, in := range is {
		tn, ok := in.(*ast.TextNode)
		if !ok {
			return
		}
		sb.WriteString(tn.Text)
	}
	if got := sb.String(); got != src {
		t.Errorf("%s: text nodes give %q, but source is %q", name, got, src)
	}
}

type textCollector struct{ texts []string }

func (tc *textCollector) Visit(node ast.Node) ast.Visitor {
	if tn, ok := node.(*ast.TextNode); ok {
		tc.texts = append(tc.texts, tn.Text)
	}
	return tc
}
