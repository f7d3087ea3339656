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

// Package urlocate provides an automaton to locate an URL, one character at
// a time.
//
// The automaton is fed with the characters of a text, starting with the
// first character of a potential URL. After each character it reports
// whether it is still reading the scheme, the end of the longest valid URL
// seen so far, or that no URL can be found anymore.
package urlocate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"t73f.de/r/zero/set"
)

// Kind states the result of advancing the automaton.
type Kind uint8

// Constants for Kind.
const (
	Reset  Kind = iota // No (more) URL characters possible.
	Scheme             // Still reading the scheme, or no valid URL yet.
	URL                // A valid URL was seen, End is valid.
)

// Location is the result of advancing the automaton by one character.
type Location struct {
	Kind Kind
	End  int // Byte offset after the longest valid URL, if Kind == URL.
}

var knownSchemes = set.New("http", "https", "ftp", "file", "git", "ssh", "mailto", "news")

// Schemes that are not followed by "//".
var opaqueSchemes = set.New("mailto", "news")

// Characters that may appear inside an URL, but not at its end.
const trailingChars = ".,:;?!'*"

// Characters that are never part of an URL.
const invalidChars = "<>\"{}|\\^`"

type state uint8

const (
	stateScheme state = iota
	stateSlash
	stateSecondSlash
	statePath
)

// Locator is the automaton. The zero value is ready to use.
type Locator struct {
	state    state
	scheme   []byte
	pos      int // bytes consumed so far
	end      int // end of the longest valid URL
	parens   int
	brackets int
}

// Advance feeds the next character into the automaton.
//
// After a Reset, the automaton starts from the beginning, so that the next
// character is treated as the first one of a new text.
func (l *Locator) Advance(ch rune) Location {
	l.pos += utf8.RuneLen(ch)
	switch l.state {
	case stateScheme:
		return l.advanceScheme(ch)
	case stateSlash:
		if ch == '/' {
			l.state = stateSecondSlash
			return Location{Kind: Scheme}
		}
	case stateSecondSlash:
		if ch == '/' {
			l.state = statePath
			return Location{Kind: Scheme}
		}
	case statePath:
		return l.advancePath(ch)
	}
	return l.reset()
}

func (l *Locator) advanceScheme(ch rune) Location {
	if isSchemeChar(ch, len(l.scheme) == 0) {
		l.scheme = append(l.scheme, byte(unicode.ToLower(ch)))
		return Location{Kind: Scheme}
	}
	if ch != ':' {
		return l.reset()
	}
	scheme := string(l.scheme)
	if !knownSchemes.Contains(scheme) {
		return l.reset()
	}
	if opaqueSchemes.Contains(scheme) {
		l.state = statePath
	} else {
		l.state = stateSlash
	}
	return Location{Kind: Scheme}
}

func (l *Locator) advancePath(ch rune) Location {
	switch {
	case ch == utf8.RuneError || unicode.IsSpace(ch) || unicode.IsControl(ch):
		return l.reset()
	case strings.ContainsRune(invalidChars, ch):
		return l.reset()
	case ch == '(':
		l.parens++
		return l.current()
	case ch == '[':
		l.brackets++
		return l.current()
	case ch == ')':
		if l.parens == 0 {
			return l.reset()
		}
		l.parens--
	case ch == ']':
		if l.brackets == 0 {
			return l.reset()
		}
		l.brackets--
	case strings.ContainsRune(trailingChars, ch):
		return l.current()
	}
	l.end = l.pos
	return Location{Kind: URL, End: l.end}
}

func (l *Locator) current() Location {
	if l.end == 0 {
		return Location{Kind: Scheme}
	}
	return Location{Kind: URL, End: l.end}
}

func (l *Locator) reset() Location {
	*l = Locator{scheme: l.scheme[:0]}
	return Location{Kind: Reset}
}

func isSchemeChar(ch rune, first bool) bool {
	if 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' {
		return true
	}
	if first {
		return false
	}
	return '0' <= ch && ch <= '9' || ch == '+' || ch == '-' || ch == '.'
}
