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

// Package outline splits an outline document into its blocks.
//
// An outline is a list of bullets, each starting with "- ". Lines that do
// not start a bullet continue the current block, e.g. properties or the
// lines of a fenced code block.
package outline

import (
	"strings"

	"t73f.de/r/zsx/input"
)

// Block is one bullet of an outline.
type Block struct {
	Depth int    // Indentation of the bullet, in characters.
	Text  string // Content, without bullet and indentation.
}

// Blocks returns the content of all blocks of the outline.
func Blocks(src []byte) []string {
	bs := Parse(src)
	result := make([]string, len(bs))
	for i, b := range bs {
		result[i] = b.Text
	}
	return result
}

// Parse splits the source into blocks. Empty lines outside of code fences
// are ignored.
func Parse(src []byte) []Block {
	var sp splitter
	inp := input.NewInput(src)
	for inp.Ch != input.EOS {
		pos := inp.Pos
		inp.SkipToEOL()
		sp.addLine(string(inp.Src[pos:inp.Pos]))
		inp.EatEOL()
	}
	return sp.finish()
}

type splitter struct {
	result  []Block
	lines   []string
	depth   int
	inBlock bool
	inFence bool
}

func (sp *splitter) addLine(line string) {
	content := strings.TrimLeft(line, " \t")
	indent := len(line) - len(content)
	if sp.inFence {
		sp.lines = append(sp.lines, dedent(line, sp.depth+2))
		sp.checkFence(content)
		return
	}
	if content == "" {
		return
	}
	if rest, isBullet := bullet(content); isBullet {
		sp.flush()
		sp.depth, sp.inBlock = indent, true
		sp.lines = append(sp.lines, rest)
		sp.checkFence(rest)
		return
	}
	if !sp.inBlock {
		sp.depth, sp.inBlock = indent, true
		sp.lines = append(sp.lines, content)
	} else {
		sp.lines = append(sp.lines, dedent(line, sp.depth+2))
	}
	sp.checkFence(content)
}

func (sp *splitter) checkFence(s string) {
	if strings.Count(s, "```")%2 == 1 {
		sp.inFence = !sp.inFence
	}
}

func (sp *splitter) flush() {
	if sp.inBlock {
		sp.result = append(sp.result, Block{Depth: sp.depth, Text: strings.Join(sp.lines, "\n")})
	}
	sp.lines = sp.lines[:0]
	sp.inBlock = false
}

func (sp *splitter) finish() []Block {
	sp.flush()
	return sp.result
}

func bullet(s string) (string, bool) {
	if s == "-" {
		return "", true
	}
	return strings.CutPrefix(s, "- ")
}

// dedent removes at most n leading space characters.
func dedent(line string, n int) string {
	i := 0
	for i < n && i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[i:]
}
