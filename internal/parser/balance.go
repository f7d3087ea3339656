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
	"strings"
	"unicode/utf8"
)

// takeUntilUnbalanced returns the prefix of s that ends before the first
// closing character without a matching opening character. A backslash
// escapes the following character. The rest starts with the unmatched
// closing character.
//
// If there is no unmatched closing character, the whole input is returned,
// provided all opening characters were matched.
func takeUntilUnbalanced(opening, closing byte, s string) (prefix, rest string, ok bool) {
	delims := string([]byte{opening, closing, '\\'})
	depth := 0
	pos := 0
	for {
		n := strings.IndexAny(s[pos:], delims)
		if n < 0 {
			break
		}
		pos += n
		switch s[pos] {
		case '\\':
			pos++
			if pos < len(s) {
				_, size := utf8.DecodeRuneInString(s[pos:])
				pos += size
			}
		case opening:
			depth++
			pos++
		case closing:
			if depth == 0 {
				return s[:pos], s[pos:], true
			}
			depth--
			pos++
		}
	}
	if depth == 0 {
		return s, "", true
	}
	return "", s, false
}
