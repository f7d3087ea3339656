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

package ast

// Visitor is a visitor for walking the expression tree.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses the expression tree in depth-first order.
//
// Visit is called with node. If the resulting visitor w is not nil, the
// children of node are walked with w, followed by a call of w.Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	WalkSlice(v, Children(node))
	v.Visit(nil)
}

// WalkSlice traverses all nodes of the given slice.
func WalkSlice(v Visitor, is InlineSlice) {
	for _, in := range is {
		Walk(v, in)
	}
}
