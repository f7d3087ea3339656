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

// Package ast provides the expression tree of a parsed note block.
//
// The set of node types is closed: only the types of this package implement
// Node. Nodes are created once by the parser and never changed afterwards.
package ast

// Node is the interface all nodes of the expression tree must implement.
type Node interface {
	exprNode()
}

// InlineSlice is a sequence of nodes.
type InlineSlice []Node

// Children returns the nested expressions of a node, or nil if the node has
// no nested expressions.
func Children(node Node) InlineSlice {
	switch n := node.(type) {
	case *FormatNode:
		return n.Inlines
	case *BlockQuoteNode:
		return n.Inlines
	case *AttributeNode:
		return n.Value
	}
	return nil
}

// --------------------------------------------------------------------------

// TextNode just contains some text.
type TextNode struct {
	Text string // The text itself.
}

func (*TextNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// RawHTMLNode contains HTML that must be emitted verbatim.
type RawHTMLNode struct {
	HTML string
}

func (*RawHTMLNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// RawHyperlinkNode is an URL found in the middle of text.
type RawHyperlinkNode struct {
	URL string
}

func (*RawHyperlinkNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// ImageNode is an image, written as ![alt](url).
type ImageNode struct {
	Alt string
	URL string
}

func (*ImageNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// VideoNode is an embedded video.
type VideoNode struct {
	URL string
}

func (*VideoNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// BraceDirectiveNode is a {{...}} directive that has no special meaning.
type BraceDirectiveNode struct {
	Content string // trimmed content, without a surrounding [[...]]
}

func (*BraceDirectiveNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// TableNode is the {{table}} directive.
type TableNode struct{}

func (*TableNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// TodoNode is a task checkbox.
type TodoNode struct {
	Done bool
}

func (*TodoNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// PageEmbedNode embeds a whole page.
type PageEmbedNode struct {
	Page string
}

func (*PageEmbedNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// BlockEmbedNode embeds a single block.
type BlockEmbedNode struct {
	BlockID string
}

func (*BlockEmbedNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// CodeBlockNode is code fenced by triple backticks. The first line may
// name the language.
type CodeBlockNode struct {
	Code string
}

func (*CodeBlockNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// CodeNode is inline code, fenced by single backticks.
type CodeNode struct {
	Code string
}

func (*CodeNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// HashtagNode contains a tag.
type HashtagNode struct {
	Tag string
	Dot bool // Written as #.tag
}

func (*HashtagNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// LinkNode is a link to a page, written as [[page]].
type LinkNode struct {
	Page string
}

func (*LinkNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// MarkdownInternalLinkNode is a link to a page with a label, written as
// [label]([[page]]).
type MarkdownInternalLinkNode struct {
	Label string
	Page  string
}

func (*MarkdownInternalLinkNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// MarkdownExternalLinkNode is a link written as [title](url).
type MarkdownExternalLinkNode struct {
	Title string
	URL   string
}

func (*MarkdownExternalLinkNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// BlockRefNode references another block, written as ((id)).
type BlockRefNode struct {
	BlockID string
}

func (*BlockRefNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// AttributeNode is a property of a block, written as name:: value.
type AttributeNode struct {
	Name  string
	Value InlineSlice
}

func (*AttributeNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// FormatKind specifies the format that is applied to the inline nodes.
type FormatKind int

// Constants for FormatKind
const (
	_               FormatKind = iota
	FormatBold                 // Bold text.
	FormatItalic               // Italic text.
	FormatStrike               // Struck-through text.
	FormatHighlight            // Highlighted text.
)

// FormatNode specifies some inline formatting.
type FormatNode struct {
	Kind    FormatKind
	Inlines InlineSlice
}

func (*FormatNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// LatexNode contains some math, written as $$...$$.
type LatexNode struct {
	Math string
}

func (*LatexNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// BlockQuoteNode is a quoted block.
type BlockQuoteNode struct {
	Inlines InlineSlice
}

func (*BlockQuoteNode) exprNode() { /* Just a marker */ }

// --------------------------------------------------------------------------

// HRuleNode specifies a horizontal rule.
type HRuleNode struct{}

func (*HRuleNode) exprNode() { /* Just a marker */ }
