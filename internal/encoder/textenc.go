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

package encoder

// textenc encodes the expression tree into its text.

import (
	"io"

	"github.com/shire-lang/shire/internal/ast"
)

// textEncoder encodes just the text and ignores any formatting.
type textEncoder struct{}

// WriteInlines writes an inline slice to the writer.
func (*textEncoder) WriteInlines(w io.Writer, is ast.InlineSlice) error {
	v := textVisitor{b: newEncWriter(w)}
	v.visitInlines(is)
	return v.b.Flush()
}

// textVisitor writes the content of the nodes to an io.Writer.
type textVisitor struct{ b encWriter }

func (v *textVisitor) visitInlines(is ast.InlineSlice) {
	for _, in := range is {
		v.visitNode(in)
	}
}

func (v *textVisitor) visitNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.TextNode:
		v.b.WriteString(n.Text)
	case *ast.RawHyperlinkNode:
		v.b.WriteString(n.URL)
	case *ast.ImageNode:
		v.b.WriteString(n.Alt)
	case *ast.VideoNode:
		v.b.WriteString(n.URL)
	case *ast.BraceDirectiveNode:
		v.b.WriteString(n.Content)
	case *ast.TodoNode:
		if n.Done {
			v.b.WriteString("[x]")
		} else {
			v.b.WriteString("[ ]")
		}
	case *ast.PageEmbedNode:
		v.b.WriteString(n.Page)
	case *ast.BlockEmbedNode:
		v.b.WriteString(n.BlockID)
	case *ast.CodeBlockNode:
		v.b.WriteString(n.Code)
	case *ast.CodeNode:
		v.b.WriteString(n.Code)
	case *ast.HashtagNode:
		v.b.WriteString(n.Tag)
	case *ast.LinkNode:
		v.b.WriteString(n.Page)
	case *ast.MarkdownInternalLinkNode:
		v.b.WriteString(n.Label)
	case *ast.MarkdownExternalLinkNode:
		v.b.WriteString(n.Title)
	case *ast.BlockRefNode:
		v.b.WriteString(n.BlockID)
	case *ast.AttributeNode:
		v.b.WriteStrings(n.Name, ": ")
		v.visitInlines(n.Value)
	case *ast.FormatNode:
		v.visitInlines(n.Inlines)
	case *ast.LatexNode:
		v.b.WriteString(n.Math)
	case *ast.BlockQuoteNode:
		v.visitInlines(n.Inlines)
	case *ast.RawHTMLNode, *ast.TableNode, *ast.HRuleNode:
		// Do nothing
	}
}
