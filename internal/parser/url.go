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

import "github.com/shire-lang/shire/internal/urlocate"

// rawURL recognizes an URL at the start of s. Trailing punctuation is not
// part of the URL.
func rawURL(s string) (url, rest string, ok bool) {
	var loc urlocate.Locator
	end := 0
	for _, ch := range s {
		l := loc.Advance(ch)
		if l.Kind == urlocate.Reset {
			break
		}
		if l.Kind == urlocate.URL {
			end = l.End
		}
	}
	if end > 0 {
		return s[:end], s[end:], true
	}
	return "", s, false
}
