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

// directive provides the recognizers for all inline constructs.

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shire-lang/shire/internal/ast"
)

// recognizer tries to match one construct at the start of the input. On
// success, it returns the node and the remaining input.
type recognizer func(sc *scanner, s string) (ast.Node, string, bool)

// grammar lists all recognizers in the order they are tried.
var grammar []recognizer

func init() {
	grammar = []recognizer{
		(*scanner).tripleBacktick,
		(*scanner).singleBacktick,
		(*scanner).braceDirective,
		(*scanner).hashtag,
		(*scanner).link,
		(*scanner).blockRef,
		(*scanner).image,
		(*scanner).rawHTML,
		(*scanner).markdownLink,
		(*scanner).bold,
		(*scanner).italic,
		(*scanner).strike,
		(*scanner).highlight,
		(*scanner).latex,
		(*scanner).rawHyperlink,
		(*scanner).attribute,
	}
}

// directive tries all recognizers at the start of s. The first one that
// matches wins.
func (sc *scanner) directive(s string) (ast.Node, string, bool) {
	for _, rec := range grammar {
		if node, rest, ok := rec(sc, s); ok {
			return node, rest, true
		}
	}
	return nil, s, false
}

func (*scanner) tripleBacktick(s string) (ast.Node, string, bool) {
	if code, rest, ok := fenced(s, "```", "```"); ok {
		return &ast.CodeBlockNode{Code: code}, rest, true
	}
	return nil, s, false
}

func (*scanner) singleBacktick(s string) (ast.Node, string, bool) {
	if len(s) < 3 || s[0] != '`' {
		return nil, s, false
	}
	if n := strings.IndexByte(s[1:], '`'); n > 0 {
		return &ast.CodeNode{Code: s[1 : n+1]}, s[n+2:], true
	}
	return nil, s, false
}

func (sc *scanner) braceDirective(s string) (ast.Node, string, bool) {
	content, rest, ok := fenced(s, "{{", "}}")
	if !ok {
		return nil, s, false
	}
	content = strings.TrimSpace(content)
	if node := sc.braceContent(content); node != nil {
		return node, rest, true
	}
	return &ast.BraceDirectiveNode{Content: content}, rest, true
}

// braceContent interprets the whole content of a brace directive. It
// returns nil if the content has no special meaning.
func (sc *scanner) braceContent(content string) ast.Node {
	if sc.dialect == Roam {
		switch {
		case isFixedLinkOrWord(content, "TODO"), isFixedLinkOrWord(content, "DOING"):
			return &ast.TodoNode{Done: false}
		case isFixedLinkOrWord(content, "DONE"):
			return &ast.TodoNode{Done: true}
		}
	}
	if isFixedLinkOrWord(content, "table") {
		return &ast.TableNode{}
	}
	if rest, ok := fixedLinkOrWord(content, "video"); ok {
		if rest, ok = spaces1(rest); ok {
			if url, rest, ok := rawURL(rest); ok && rest == "" {
				return &ast.VideoNode{URL: url}
			}
		}
	}
	if rest, ok := fixedLinkOrWord(content, "embed"); ok {
		if rest, ok = sc.embedSeparator(rest); ok {
			if id, rest, ok := blockRef(rest); ok && rest == "" {
				return &ast.BlockEmbedNode{BlockID: id}
			}
			if page, rest, ok := link(rest); ok && rest == "" {
				return &ast.PageEmbedNode{Page: page}
			}
		}
	}
	if val, rest, ok := linkOrWord(content); ok && rest == "" {
		return &ast.BraceDirectiveNode{Content: val}
	}
	return nil
}

// embedSeparator skips the separator between "embed" and its target:
// Roam uses a colon, Logseq just some space.
func (sc *scanner) embedSeparator(s string) (string, bool) {
	if sc.dialect == Roam {
		if rest, found := strings.CutPrefix(s, ":"); found {
			return spaces0(rest), true
		}
		return s, false
	}
	return spaces1(s)
}

func (*scanner) hashtag(s string) (ast.Node, string, bool) {
	rest, found := strings.CutPrefix(s, "#")
	if !found {
		return nil, s, false
	}
	rest, dot := strings.CutPrefix(rest, ".")
	if tag, rest, ok := linkOrWord(rest); ok {
		return &ast.HashtagNode{Tag: tag, Dot: dot}, rest, true
	}
	return nil, s, false
}

func (*scanner) link(s string) (ast.Node, string, bool) {
	if page, rest, ok := link(s); ok {
		return &ast.LinkNode{Page: page}, rest, true
	}
	return nil, s, false
}

func (*scanner) blockRef(s string) (ast.Node, string, bool) {
	if id, rest, ok := blockRef(s); ok {
		return &ast.BlockRefNode{BlockID: id}, rest, true
	}
	return nil, s, false
}

func (*scanner) image(s string) (ast.Node, string, bool) {
	if rest, found := strings.CutPrefix(s, "!"); found {
		if alt, url, rest, ok := markdownLink(rest); ok {
			return &ast.ImageNode{Alt: alt, URL: url}, rest, true
		}
	}
	return nil, s, false
}

func (*scanner) rawHTML(s string) (ast.Node, string, bool) {
	if html, rest, ok := fenced(s, "@@html: ", "@@"); ok {
		return &ast.RawHTMLNode{HTML: html}, rest, true
	}
	return nil, s, false
}

func (*scanner) markdownLink(s string) (ast.Node, string, bool) {
	title, url, rest, ok := markdownLink(s)
	if !ok {
		return nil, s, false
	}
	if page, after, isLink := link(url); isLink && after == "" {
		return &ast.MarkdownInternalLinkNode{Label: title, Page: page}, rest, true
	}
	return &ast.MarkdownExternalLinkNode{Title: title, URL: url}, rest, true
}

func (sc *scanner) bold(s string) (ast.Node, string, bool) {
	if is, rest, ok := sc.style(s, "**"); ok {
		return &ast.FormatNode{Kind: ast.FormatBold, Inlines: is}, rest, true
	}
	if sc.dialect == Logseq {
		if is, rest, ok := sc.style(s, "__"); ok {
			return &ast.FormatNode{Kind: ast.FormatBold, Inlines: is}, rest, true
		}
	}
	return nil, s, false
}

func (sc *scanner) italic(s string) (ast.Node, string, bool) {
	var markers []string
	if sc.dialect == Roam {
		markers = []string{"__"}
	} else {
		markers = []string{"_", "*"}
	}
	for _, marker := range markers {
		if is, rest, ok := sc.style(s, marker); ok {
			return &ast.FormatNode{Kind: ast.FormatItalic, Inlines: is}, rest, true
		}
	}
	return nil, s, false
}

func (sc *scanner) strike(s string) (ast.Node, string, bool) {
	if is, rest, ok := sc.style(s, "~~"); ok {
		return &ast.FormatNode{Kind: ast.FormatStrike, Inlines: is}, rest, true
	}
	return nil, s, false
}

func (sc *scanner) highlight(s string) (ast.Node, string, bool) {
	if is, rest, ok := sc.style(s, "^^"); ok {
		return &ast.FormatNode{Kind: ast.FormatHighlight, Inlines: is}, rest, true
	}
	return nil, s, false
}

// style recognizes text fenced by the given marker. The text is parsed
// again, but must not contain attributes.
func (sc *scanner) style(s, marker string) (ast.InlineSlice, string, bool) {
	content, rest, ok := fenced(s, marker, marker)
	if !ok {
		return nil, s, false
	}
	return parseInline(sc.dialect, false, content), rest, true
}

func (*scanner) latex(s string) (ast.Node, string, bool) {
	if math, rest, ok := fenced(s, "$$", "$$"); ok {
		return &ast.LatexNode{Math: math}, rest, true
	}
	return nil, s, false
}

func (*scanner) rawHyperlink(s string) (ast.Node, string, bool) {
	if url, rest, ok := rawURL(s); ok {
		return &ast.RawHyperlinkNode{URL: url}, rest, true
	}
	return nil, s, false
}

func (sc *scanner) attribute(s string) (ast.Node, string, bool) {
	if !sc.allowAttribute {
		return nil, s, false
	}
	if node, ok := parseAttribute(sc.dialect, s); ok {
		return node, "", true
	}
	return nil, s, false
}

// parseAttribute recognizes "name:: value". The value extends to the end of
// the input and must not contain further attributes.
//
// Roam does not trim the name, and the space after the colons is optional.
// Logseq ignores leading space, the name is a single word without colons,
// and a space must follow the colons.
func parseAttribute(dialect Dialect, s string) (*ast.AttributeNode, bool) {
	var name, rest string
	switch dialect {
	case Roam:
		n := strings.IndexAny(s, ":`")
		if n == 0 {
			return nil, false
		}
		if n < 0 {
			n = len(s)
		}
		name = s[:n]
		var found bool
		if rest, found = strings.CutPrefix(s[n:], "::"); !found {
			return nil, false
		}
	case Logseq:
		s = spaces0(s)
		n := strings.IndexFunc(s, func(ch rune) bool { return unicode.IsSpace(ch) || ch == ',' || ch == ':' })
		if n == 0 {
			return nil, false
		}
		if n < 0 {
			n = len(s)
		}
		name = s[:n]
		var found bool
		if rest, found = strings.CutPrefix(s[n:], ":: "); !found {
			return nil, false
		}
	default:
		return nil, false
	}
	return &ast.AttributeNode{
		Name:  name,
		Value: parseInline(dialect, false, spaces0(rest)),
	}, true
}

// ----- Helper functions, not bound to a dialect.

// fenced returns the text between start and the first following end.
func fenced(s, start, end string) (content, rest string, ok bool) {
	after, found := strings.CutPrefix(s, start)
	if !found {
		return "", s, false
	}
	if n := strings.Index(after, end); n >= 0 {
		return after[:n], after[n+len(end):], true
	}
	return "", s, false
}

// link recognizes a bracket balanced [[page]].
func link(s string) (page, rest string, ok bool) {
	return balanced(s, "[[", "]]", '[', ']')
}

// blockRef recognizes a bracket balanced ((id)).
func blockRef(s string) (id, rest string, ok bool) {
	return balanced(s, "((", "))", '(', ')')
}

func balanced(s, start, end string, opening, closing byte) (string, string, bool) {
	after, found := strings.CutPrefix(s, start)
	if !found {
		return "", s, false
	}
	content, rest, ok := takeUntilUnbalanced(opening, closing, after)
	if !ok {
		return "", s, false
	}
	if rest, found = strings.CutPrefix(rest, end); !found {
		return "", s, false
	}
	return content, rest, true
}

// markdownLink recognizes [title](url). The url may contain balanced
// parentheses.
func markdownLink(s string) (title, url, rest string, ok bool) {
	title, rest, ok = fenced(s, "[", "]")
	if !ok {
		return "", "", s, false
	}
	rest, found := strings.CutPrefix(rest, "(")
	if !found {
		return "", "", s, false
	}
	url, rest, ok = takeUntilUnbalanced('(', ')', rest)
	if !ok {
		return "", "", s, false
	}
	if rest, found = strings.CutPrefix(rest, ")"); !found {
		return "", "", s, false
	}
	return title, url, rest, true
}

// word recognizes a non-empty sequence of characters up to the next space
// or comma.
func word(s string) (w, rest string, ok bool) {
	n := strings.IndexFunc(s, func(ch rune) bool { return unicode.IsSpace(ch) || ch == ',' })
	switch {
	case n == 0 || s == "":
		return "", s, false
	case n < 0:
		return s, "", true
	}
	return s[:n], s[n:], true
}

func linkOrWord(s string) (string, string, bool) {
	if page, rest, ok := link(s); ok {
		return page, rest, true
	}
	return word(s)
}

// fixedLinkOrWord recognizes the given word, either bare or as [[word]].
func fixedLinkOrWord(s, w string) (string, bool) {
	if rest, found := strings.CutPrefix(s, w); found {
		return rest, true
	}
	return strings.CutPrefix(s, "[["+w+"]]")
}

func isFixedLinkOrWord(s, w string) bool {
	rest, ok := fixedLinkOrWord(s, w)
	return ok && rest == ""
}

func isMultiSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' }

// spaces0 skips optional space characters.
func spaces0(s string) string { return strings.TrimLeftFunc(s, isMultiSpace) }

// spaces1 skips at least one space character.
func spaces1(s string) (string, bool) {
	if ch, _ := utf8.DecodeRuneInString(s); !isMultiSpace(ch) {
		return s, false
	}
	return spaces0(s), true
}
