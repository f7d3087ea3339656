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

// Encodes the expression tree into CommonMark.

import (
	"io"
	"strings"

	"github.com/shire-lang/shire/internal/ast"
)

// mdEncoder contains all data needed for encoding.
type mdEncoder struct{}

// WriteInlines writes an inline slice to the writer.
func (*mdEncoder) WriteInlines(w io.Writer, is ast.InlineSlice) error {
	v := mdVisitor{b: newEncWriter(w), lineStart: true}
	v.visitInlines(is)
	return v.b.Flush()
}

type mdVisitor struct {
	b         encWriter
	lineStart bool
}

func (v *mdVisitor) visitInlines(is ast.InlineSlice) {
	for _, in := range is {
		v.visitNode(in)
	}
}

func (v *mdVisitor) visitNode(node ast.Node) {
	if tn, ok := node.(*ast.TextNode); ok {
		v.writeText(tn.Text)
		return
	}
	v.lineStart = false
	switch n := node.(type) {
	case *ast.RawHTMLNode:
		v.b.WriteString(n.HTML)
	case *ast.RawHyperlinkNode:
		v.b.WriteStrings("<", n.URL, ">")
	case *ast.ImageNode:
		v.b.WriteString("![")
		v.writeLabel(n.Alt)
		v.writeDestination("", n.URL)
	case *ast.VideoNode:
		v.b.WriteStrings("<", n.URL, ">")
	case *ast.BraceDirectiveNode:
		v.writeCode(n.Content)
	case *ast.TodoNode:
		if n.Done {
			v.b.WriteString("[x]")
		} else {
			v.b.WriteString("[ ]")
		}
	case *ast.PageEmbedNode:
		v.writePageLink(n.Page, n.Page)
	case *ast.BlockEmbedNode:
		v.writeBlockRef(n.BlockID)
	case *ast.CodeBlockNode:
		v.writeCodeBlock(n.Code)
	case *ast.CodeNode:
		v.writeCode(n.Code)
	case *ast.HashtagNode:
		v.writePageLink("#"+n.Tag, n.Tag)
	case *ast.LinkNode:
		v.writePageLink(n.Page, n.Page)
	case *ast.MarkdownInternalLinkNode:
		v.writePageLink(n.Label, n.Page)
	case *ast.MarkdownExternalLinkNode:
		v.b.WriteString("[")
		v.writeLabel(n.Title)
		v.writeDestination("", n.URL)
	case *ast.BlockRefNode:
		v.writeBlockRef(n.BlockID)
	case *ast.AttributeNode:
		v.b.WriteString("**")
		v.writeLabel(n.Name)
		v.b.WriteString("**: ")
		v.visitInlines(n.Value)
	case *ast.FormatNode:
		v.visitFormat(n)
	case *ast.LatexNode:
		v.b.WriteStrings("$$", n.Math, "$$")
	case *ast.BlockQuoteNode:
		v.b.WriteString("> ")
		v.lineStart = true
		v.visitInlines(n.Inlines)
	case *ast.TableNode:
		// Do nothing
	case *ast.HRuleNode:
		v.b.WriteString("---")
	}
}

func (v *mdVisitor) visitFormat(fn *ast.FormatNode) {
	var delim string
	switch fn.Kind {
	case ast.FormatBold:
		delim = "**"
	case ast.FormatItalic:
		delim = "*"
	case ast.FormatStrike:
		delim = "~~"
	case ast.FormatHighlight:
		delim = "=="
	}
	v.b.WriteString(delim)
	v.visitInlines(fn.Inlines)
	v.b.WriteString(delim)
}

func (v *mdVisitor) writePageLink(text, page string) {
	v.b.WriteString("[")
	v.writeLabel(text)
	v.writeDestination("", page)
}

func (v *mdVisitor) writeBlockRef(id string) {
	v.b.WriteString("[")
	v.writeLabel(id)
	v.writeDestination("#", id)
}

// mdEscapeChars are escaped everywhere in text.
const mdEscapeChars = "\\`*_[]<>#!~=|&"

// writeText writes text, so that no character is read as markup.
func (v *mdVisitor) writeText(s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		if v.lineStart {
			if n := listNumberLen(s[i:]); n > 0 {
				i += n
				v.b.WriteStrings(s[last:i], "\\")
				last = i
				v.lineStart = false
				continue
			}
		}
		ch := s[i]
		if strings.IndexByte(mdEscapeChars, ch) >= 0 || (v.lineStart && (ch == '-' || ch == '+')) {
			v.b.WriteStrings(s[last:i], "\\")
			last = i
		}
		switch ch {
		case '\n':
			v.lineStart = true
		case ' ', '\t':
		default:
			v.lineStart = false
		}
	}
	v.b.WriteString(s[last:])
}

// writeLabel writes the text of a link or image, which is not parsed
// further.
func (v *mdVisitor) writeLabel(s string) {
	v.lineStart = false
	v.writeText(s)
	v.lineStart = false
}

// writeDestination writes a link destination in angle brackets.
func (v *mdVisitor) writeDestination(prefix, dest string) {
	v.b.WriteStrings("](<", prefix)
	v.b.WriteString(mdDestReplacer.Replace(dest))
	v.b.WriteString(">)")
}

var mdDestReplacer = strings.NewReplacer(
	"\\", "\\\\",
	"<", "\\<",
	">", "\\>",
	"\n", "%0A",
	"\r", "%0D",
)

// listNumberLen returns the number of digits of an ordered list marker at
// the start of s, or zero.
func listNumberLen(s string) int {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		return i
	}
	return 0
}

// writeCodeBlock writes a fenced code block. The first line of the code is
// the info string. The closing fence is on its own line.
func (v *mdVisitor) writeCodeBlock(code string) {
	fenceChar := "`"
	if info, _, _ := strings.Cut(code, "\n"); strings.Contains(info, "`") {
		fenceChar = "~"
	}
	fence := strings.Repeat(fenceChar, 3)
	for strings.Contains(code, fence) {
		fence += fenceChar
	}
	v.b.WriteStrings("\n", fence, code, "\n", fence, "\n")
}

// writeCode writes a code span, using a fence that is longer than any
// backtick run in the code.
func (v *mdVisitor) writeCode(code string) {
	fence := "`"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	v.b.WriteString(fence)
	if strings.HasPrefix(code, "`") || strings.HasSuffix(code, "`") {
		v.b.WriteStrings(" ", code, " ")
	} else {
		v.b.WriteString(code)
	}
	v.b.WriteString(fence)
}
