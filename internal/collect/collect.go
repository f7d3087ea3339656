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

// Package collect provides functions to collect items from an expression tree.
package collect

import (
	"iter"

	"github.com/shire-lang/shire/internal/ast"
)

// RefKind states what a reference points to.
type RefKind int

// Constants for RefKind
const (
	_           RefKind = iota
	RefPage             // A page, via link or embed.
	RefTag              // A page, via hashtag.
	RefBlock            // A block, via reference or embed.
	RefExternal         // An URL.
)

func (k RefKind) String() string {
	switch k {
	case RefPage:
		return "page"
	case RefTag:
		return "tag"
	case RefBlock:
		return "block"
	case RefExternal:
		return "external"
	}
	return "unknown"
}

// Reference is a target of a node.
type Reference struct {
	Kind   RefKind
	Target string
}

type refYielder struct {
	yield func(Reference) bool
	stop  bool
}

// ReferenceSeq returns an iterator of all references of the given nodes,
// in document order.
func ReferenceSeq(is ast.InlineSlice) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		yielder := refYielder{yield, false}
		ast.WalkSlice(&yielder, is)
	}
}

// Visit all node to collect data for the summary.
func (y *refYielder) Visit(node ast.Node) ast.Visitor {
	if y.stop {
		return nil
	}
	ref, ok := nodeReference(node)
	if ok && !y.yield(ref) {
		y.stop = true
		return nil
	}
	return y
}

func nodeReference(node ast.Node) (Reference, bool) {
	switch n := node.(type) {
	case *ast.LinkNode:
		return Reference{RefPage, n.Page}, true
	case *ast.MarkdownInternalLinkNode:
		return Reference{RefPage, n.Page}, true
	case *ast.PageEmbedNode:
		return Reference{RefPage, n.Page}, true
	case *ast.HashtagNode:
		return Reference{RefTag, n.Tag}, true
	case *ast.BlockRefNode:
		return Reference{RefBlock, n.BlockID}, true
	case *ast.BlockEmbedNode:
		return Reference{RefBlock, n.BlockID}, true
	case *ast.RawHyperlinkNode:
		return Reference{RefExternal, n.URL}, true
	case *ast.MarkdownExternalLinkNode:
		return Reference{RefExternal, n.URL}, true
	case *ast.ImageNode:
		return Reference{RefExternal, n.URL}, true
	case *ast.VideoNode:
		return Reference{RefExternal, n.URL}, true
	}
	return Reference{}, false
}
