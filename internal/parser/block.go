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
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shire-lang/shire/internal/ast"
)

// ErrInvalidUTF8 is returned if a block is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("block is not valid UTF-8")

// Parse parses one block of text. The block is first matched as a whole
// against horizontal rules, quotes, attributes (Roam) and task keywords
// (Logseq). Otherwise it is parsed as a sequence of inline nodes.
func Parse(dialect Dialect, block string) (ast.InlineSlice, error) {
	if !utf8.ValidString(block) {
		return nil, ErrInvalidUTF8
	}
	if block == "---" {
		return ast.InlineSlice{&ast.HRuleNode{}}, nil
	}
	if rest, found := strings.CutPrefix(block, "> "); found {
		return ast.InlineSlice{&ast.BlockQuoteNode{Inlines: parseInline(dialect, true, rest)}}, nil
	}
	switch dialect {
	case Roam:
		if attr, ok := parseAttribute(dialect, block); ok {
			return ast.InlineSlice{attr}, nil
		}
	case Logseq:
		if todo, rest, ok := taskKeyword(block); ok {
			return append(ast.InlineSlice{todo}, parseInline(dialect, true, rest)...), nil
		}
	}
	return parseInline(dialect, true, block), nil
}

// ParseText parses one block of text. If the block cannot be parsed, it is
// returned as a single text node.
func ParseText(dialect Dialect, block string) ast.InlineSlice {
	if is, err := Parse(dialect, block); err == nil {
		return is
	}
	return ast.InlineSlice{&ast.TextNode{Text: block}}
}

var taskKeywords = []struct {
	keyword string
	done    bool
}{
	{"TODO", false},
	{"DOING", false},
	{"NOW", false},
	{"LATER", false},
	{"DONE", true},
}

// taskKeyword recognizes a Logseq task keyword at the start of a block.
func taskKeyword(s string) (*ast.TodoNode, string, bool) {
	for _, tk := range taskKeywords {
		if rest, found := strings.CutPrefix(s, tk.keyword); found {
			return &ast.TodoNode{Done: tk.done}, rest, true
		}
	}
	return nil, s, false
}
