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

package parser

import (
	"unicode/utf8"

	"github.com/shire-lang/shire/internal/ast"
)

// scanner holds the parameters of one inline scan.
type scanner struct {
	dialect        Dialect
	allowAttribute bool
}

// parseInline parses the whole text into a sequence of nodes. Text that is
// not part of a directive becomes a text node.
//
// The first position where any directive matches wins, even if a directive
// with a higher priority would match later.
func parseInline(dialect Dialect, allowAttribute bool, s string) ast.InlineSlice {
	sc := scanner{dialect: dialect, allowAttribute: allowAttribute}
	var result ast.InlineSlice
	for s != "" {
		node, pos, rest := sc.next(s)
		if node == nil {
			result = append(result, &ast.TextNode{Text: s})
			break
		}
		if pos > 0 {
			result = append(result, &ast.TextNode{Text: s[:pos]})
		}
		result = append(result, node)
		s = rest
	}
	return result
}

// next searches the leftmost position where a directive matches.
func (sc *scanner) next(s string) (ast.Node, int, string) {
	for pos := 0; pos < len(s); {
		if node, rest, ok := sc.directive(s[pos:]); ok {
			return node, pos, rest
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return nil, len(s), ""
}
