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

// htmlenc encodes the expression tree into a HTML5 fragment.

import (
	"io"
	"strings"

	"github.com/yuin/goldmark/util"
	"t73f.de/r/sx"
	"t73f.de/r/sxwebs/sxhtml"

	"github.com/shire-lang/shire/internal/ast"
)

// htmlEncoder contains all data needed for encoding.
type htmlEncoder struct {
	gen *sxhtml.Generator
}

// WriteInlines encodes an inline slice as a HTML fragment.
func (he *htmlEncoder) WriteInlines(w io.Writer, is ast.InlineSlice) error {
	if he.gen == nil {
		he.gen = sxhtml.NewGenerator()
	}
	return he.gen.WriteListHTML(w, GetHTML(is))
}

// GetHTML transforms the nodes into a list of sxhtml elements.
func GetHTML(is ast.InlineSlice) *sx.Pair {
	var lb sx.ListBuilder
	for _, in := range is {
		lb.Add(getNodeHTML(in))
	}
	return lb.List()
}

var (
	symA          = sx.MakeSymbol("a")
	symBlockquote = sx.MakeSymbol("blockquote")
	symCode       = sx.MakeSymbol("code")
	symDel        = sx.MakeSymbol("del")
	symEm         = sx.MakeSymbol("em")
	symHR         = sx.MakeSymbol("hr")
	symImg        = sx.MakeSymbol("img")
	symInput      = sx.MakeSymbol("input")
	symMark       = sx.MakeSymbol("mark")
	symPre        = sx.MakeSymbol("pre")
	symSpan       = sx.MakeSymbol("span")
	symStrong     = sx.MakeSymbol("strong")
	symTable      = sx.MakeSymbol("table")
	symVideo      = sx.MakeSymbol("video")

	symAttrAlt      = sx.MakeSymbol("alt")
	symAttrChecked  = sx.MakeSymbol("checked")
	symAttrClass    = sx.MakeSymbol("class")
	symAttrDisabled = sx.MakeSymbol("disabled")
	symAttrHref     = sx.MakeSymbol("href")
	symAttrSrc      = sx.MakeSymbol("src")
	symAttrType     = sx.MakeSymbol("type")
)

var mapFormatKindHTML = map[ast.FormatKind]*sx.Symbol{
	ast.FormatBold:      symStrong,
	ast.FormatItalic:    symEm,
	ast.FormatStrike:    symDel,
	ast.FormatHighlight: symMark,
}

func getNodeHTML(node ast.Node) sx.Object {
	switch n := node.(type) {
	case *ast.TextNode:
		return sx.MakeString(n.Text)
	case *ast.RawHTMLNode:
		return sx.MakeList(sxhtml.SymNoEscape, sx.MakeString(n.HTML))
	case *ast.RawHyperlinkNode:
		return makeLink(n.URL, "external", sx.MakeString(n.URL))
	case *ast.ImageNode:
		return sx.MakeList(symImg, makeAttrs(attr{symAttrSrc, urlEscape(n.URL)}, attr{symAttrAlt, n.Alt}))
	case *ast.VideoNode:
		return sx.MakeList(symVideo, makeAttrs(attr{symAttrSrc, urlEscape(n.URL)}))
	case *ast.BraceDirectiveNode:
		return makeSpan("directive", sx.MakeString(n.Content))
	case *ast.TableNode:
		return sx.MakeList(symTable)
	case *ast.TodoNode:
		if n.Done {
			return sx.MakeList(symInput, makeAttrs(attr{symAttrType, "checkbox"}, attr{symAttrDisabled, ""}, attr{symAttrChecked, ""}))
		}
		return sx.MakeList(symInput, makeAttrs(attr{symAttrType, "checkbox"}, attr{symAttrDisabled, ""}))
	case *ast.PageEmbedNode:
		return makeSpan("page-embed", makeLink(pageURL(n.Page), "page", sx.MakeString(n.Page)))
	case *ast.BlockEmbedNode:
		return makeSpan("block-embed", makeLink(blockURL(n.BlockID), "block", sx.MakeString(n.BlockID)))
	case *ast.CodeBlockNode:
		return sx.MakeList(symPre, sx.MakeList(symCode, sx.MakeString(n.Code)))
	case *ast.CodeNode:
		return sx.MakeList(symCode, sx.MakeString(n.Code))
	case *ast.HashtagNode:
		return makeLink(pageURL(n.Tag), "tag", sx.MakeString("#"+n.Tag))
	case *ast.LinkNode:
		return makeLink(pageURL(n.Page), "page", sx.MakeString(n.Page))
	case *ast.MarkdownInternalLinkNode:
		return makeLink(pageURL(n.Page), "page", sx.MakeString(n.Label))
	case *ast.MarkdownExternalLinkNode:
		return makeLink(urlEscape(n.URL), "external", sx.MakeString(n.Title))
	case *ast.BlockRefNode:
		return makeLink(blockURL(n.BlockID), "block", sx.MakeString(n.BlockID))
	case *ast.AttributeNode:
		return GetHTML(n.Value).
			Cons(sx.MakeString(": ")).
			Cons(makeSpan("attribute-name", sx.MakeString(n.Name))).
			Cons(makeAttrs(attr{symAttrClass, "attribute"})).
			Cons(symSpan)
	case *ast.FormatNode:
		sym, found := mapFormatKindHTML[n.Kind]
		if !found {
			sym = symSpan
		}
		return GetHTML(n.Inlines).Cons(sym)
	case *ast.LatexNode:
		return makeSpan("math", sx.MakeString(n.Math))
	case *ast.BlockQuoteNode:
		return GetHTML(n.Inlines).Cons(symBlockquote)
	case *ast.HRuleNode:
		return sx.MakeList(symHR)
	}
	return sx.Nil()
}

type attr struct {
	key *sx.Symbol
	val string
}

func makeAttrs(attrs ...attr) *sx.Pair {
	var lb sx.ListBuilder
	lb.Add(sxhtml.SymAttr)
	for _, a := range attrs {
		lb.Add(sx.Cons(a.key, sx.MakeString(a.val)))
	}
	return lb.List()
}

func makeLink(href, class string, content sx.Object) *sx.Pair {
	return sx.MakeList(symA, makeAttrs(attr{symAttrHref, href}, attr{symAttrClass, class}), content)
}

func makeSpan(class string, content sx.Object) *sx.Pair {
	return sx.MakeList(symSpan, makeAttrs(attr{symAttrClass, class}), content)
}

func pageURL(page string) string {
	return "#" + urlEscape(strings.ReplaceAll(page, " ", "_"))
}

func blockURL(id string) string { return "#((" + urlEscape(id) + "))" }

func urlEscape(s string) string { return string(util.URLEscape([]byte(s), false)) }
