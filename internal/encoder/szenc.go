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

// szenc encodes the expression tree into a s-expression.

import (
	"fmt"
	"io"

	"t73f.de/r/sx"

	"github.com/shire-lang/shire/internal/ast"
)

// Symbols of the s-expression encoding.
var (
	SymInline               = sx.MakeSymbol("INLINE")
	SymText                 = sx.MakeSymbol("TEXT")
	SymRawHTML              = sx.MakeSymbol("RAW-HTML")
	SymRawHyperlink         = sx.MakeSymbol("RAW-HYPERLINK")
	SymImage                = sx.MakeSymbol("IMAGE")
	SymVideo                = sx.MakeSymbol("VIDEO")
	SymBraceDirective       = sx.MakeSymbol("BRACE-DIRECTIVE")
	SymTable                = sx.MakeSymbol("TABLE")
	SymTodo                 = sx.MakeSymbol("TODO")
	SymDone                 = sx.MakeSymbol("DONE")
	SymPageEmbed            = sx.MakeSymbol("PAGE-EMBED")
	SymBlockEmbed           = sx.MakeSymbol("BLOCK-EMBED")
	SymCodeBlock            = sx.MakeSymbol("CODE-BLOCK")
	SymCode                 = sx.MakeSymbol("CODE")
	SymHashtag              = sx.MakeSymbol("HASHTAG")
	SymDotHashtag           = sx.MakeSymbol("DOT-HASHTAG")
	SymLink                 = sx.MakeSymbol("LINK")
	SymMarkdownInternalLink = sx.MakeSymbol("MARKDOWN-INTERNAL-LINK")
	SymMarkdownExternalLink = sx.MakeSymbol("MARKDOWN-EXTERNAL-LINK")
	SymBlockRef             = sx.MakeSymbol("BLOCK-REF")
	SymAttribute            = sx.MakeSymbol("ATTRIBUTE")
	SymBold                 = sx.MakeSymbol("BOLD")
	SymItalic               = sx.MakeSymbol("ITALIC")
	SymStrike               = sx.MakeSymbol("STRIKE")
	SymHighlight            = sx.MakeSymbol("HIGHLIGHT")
	SymLatex                = sx.MakeSymbol("LATEX")
	SymBlockQuote           = sx.MakeSymbol("BLOCK-QUOTE")
	SymHRule                = sx.MakeSymbol("HRULE")
	SymUnknown              = sx.MakeSymbol("UNKNOWN")
)

var mapFormatKindS = map[ast.FormatKind]*sx.Symbol{
	ast.FormatBold:      SymBold,
	ast.FormatItalic:    SymItalic,
	ast.FormatStrike:    SymStrike,
	ast.FormatHighlight: SymHighlight,
}

// szEncoder writes the s-expression form of the nodes.
type szEncoder struct{}

// WriteInlines writes an inline slice to the writer.
func (*szEncoder) WriteInlines(w io.Writer, is ast.InlineSlice) error {
	_, err := GetSz(is).Print(w)
	return err
}

// GetSz transforms the given nodes into a sx list, headed by INLINE.
func GetSz(is ast.InlineSlice) *sx.Pair {
	return getInlineList(is).Cons(SymInline)
}

func getInlineList(is ast.InlineSlice) *sx.Pair {
	var lb sx.ListBuilder
	for _, in := range is {
		lb.Add(getNodeSz(in))
	}
	return lb.List()
}

func getNodeSz(node ast.Node) *sx.Pair {
	switch n := node.(type) {
	case *ast.TextNode:
		return sx.MakeList(SymText, sx.MakeString(n.Text))
	case *ast.RawHTMLNode:
		return sx.MakeList(SymRawHTML, sx.MakeString(n.HTML))
	case *ast.RawHyperlinkNode:
		return sx.MakeList(SymRawHyperlink, sx.MakeString(n.URL))
	case *ast.ImageNode:
		return sx.MakeList(SymImage, sx.MakeString(n.Alt), sx.MakeString(n.URL))
	case *ast.VideoNode:
		return sx.MakeList(SymVideo, sx.MakeString(n.URL))
	case *ast.BraceDirectiveNode:
		return sx.MakeList(SymBraceDirective, sx.MakeString(n.Content))
	case *ast.TableNode:
		return sx.MakeList(SymTable)
	case *ast.TodoNode:
		if n.Done {
			return sx.MakeList(SymDone)
		}
		return sx.MakeList(SymTodo)
	case *ast.PageEmbedNode:
		return sx.MakeList(SymPageEmbed, sx.MakeString(n.Page))
	case *ast.BlockEmbedNode:
		return sx.MakeList(SymBlockEmbed, sx.MakeString(n.BlockID))
	case *ast.CodeBlockNode:
		return sx.MakeList(SymCodeBlock, sx.MakeString(n.Code))
	case *ast.CodeNode:
		return sx.MakeList(SymCode, sx.MakeString(n.Code))
	case *ast.HashtagNode:
		if n.Dot {
			return sx.MakeList(SymDotHashtag, sx.MakeString(n.Tag))
		}
		return sx.MakeList(SymHashtag, sx.MakeString(n.Tag))
	case *ast.LinkNode:
		return sx.MakeList(SymLink, sx.MakeString(n.Page))
	case *ast.MarkdownInternalLinkNode:
		return sx.MakeList(SymMarkdownInternalLink, sx.MakeString(n.Label), sx.MakeString(n.Page))
	case *ast.MarkdownExternalLinkNode:
		return sx.MakeList(SymMarkdownExternalLink, sx.MakeString(n.Title), sx.MakeString(n.URL))
	case *ast.BlockRefNode:
		return sx.MakeList(SymBlockRef, sx.MakeString(n.BlockID))
	case *ast.AttributeNode:
		return getInlineList(n.Value).Cons(sx.MakeString(n.Name)).Cons(SymAttribute)
	case *ast.FormatNode:
		sym, found := mapFormatKindS[n.Kind]
		if !found {
			sym = SymUnknown
		}
		return getInlineList(n.Inlines).Cons(sym)
	case *ast.LatexNode:
		return sx.MakeList(SymLatex, sx.MakeString(n.Math))
	case *ast.BlockQuoteNode:
		return getInlineList(n.Inlines).Cons(SymBlockQuote)
	case *ast.HRuleNode:
		return sx.MakeList(SymHRule)
	}
	return sx.MakeList(SymUnknown, sx.MakeString(fmt.Sprintf("%T %v", node, node)))
}
