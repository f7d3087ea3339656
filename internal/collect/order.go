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

package collect

import "github.com/shire-lang/shire/internal/ast"

// Order returns the first page link of every block, in block order. Blocks
// without a page link are skipped. This is the order an outline of links
// implies, e.g. for a table of contents.
func Order(blocks []ast.InlineSlice) []string {
	var result []string
	for _, is := range blocks {
		if page, ok := firstInlinePageLink(is); ok {
			result = append(result, page)
		}
	}
	return result
}

func firstInlinePageLink(is ast.InlineSlice) (string, bool) {
	for _, in := range is {
		switch n := in.(type) {
		case *ast.LinkNode:
			return n.Page, true
		case *ast.MarkdownInternalLinkNode:
			return n.Page, true
		case *ast.FormatNode, *ast.BlockQuoteNode:
			if page, ok := firstInlinePageLink(ast.Children(n)); ok {
				return page, true
			}
		}
	}
	return "", false
}
