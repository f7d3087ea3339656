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

package urlocate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shire-lang/shire/internal/urlocate"
)

// locate feeds s into a fresh locator and returns the last reported URL end,
// stopping at the first reset.
func locate(s string) int {
	var l urlocate.Locator
	end := 0
	for _, ch := range s {
		loc := l.Advance(ch)
		if loc.Kind == urlocate.Reset {
			break
		}
		if loc.Kind == urlocate.URL {
			end = loc.End
		}
	}
	return end
}

func TestLocate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		src string
		exp string
	}{
		{"", ""},
		{"word", ""},
		{"Source: https://example.com", ""},
		{"completed:: true", ""},
		{"https://", ""},
		{"https:/example.com", ""},
		{"gopher://example.com", ""},
		{"https://example.com", "https://example.com"},
		{"HTTPS://example.com", "HTTPS://example.com"},
		{"https://example.com/def.", "https://example.com/def"},
		{"https://example.com/def/ghi?abc=def#an-anchor.", "https://example.com/def/ghi?abc=def#an-anchor"},
		{"https://example.com/a b", "https://example.com/a"},
		{"https://example.com/sp(i)ped.html", "https://example.com/sp(i)ped.html"},
		{"https://example.com/x)", "https://example.com/x"},
		{"https://example.com/x(", "https://example.com/x"},
		{"https://example.com/x]]", "https://example.com/x"},
		{"https://example.com/<b>", "https://example.com/"},
		{"https://example.com/x`y", "https://example.com/x"},
		{"mailto:user@example.com, please", "mailto:user@example.com"},
		{"ftp://files.example.com/ärger.txt!", "ftp://files.example.com/ärger.txt"},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			end := locate(tc.src)
			assert.Equal(t, tc.exp, tc.src[:end])
		})
	}
}

func TestAdvanceKinds(t *testing.T) {
	t.Parallel()
	var l urlocate.Locator
	for _, ch := range "http://" {
		assert.Equal(t, urlocate.Scheme, l.Advance(ch).Kind, "%q", ch)
	}
	assert.Equal(t, urlocate.Location{Kind: urlocate.URL, End: 8}, l.Advance('a'))
	assert.Equal(t, urlocate.Location{Kind: urlocate.URL, End: 8}, l.Advance('.'))
	assert.Equal(t, urlocate.Location{Kind: urlocate.URL, End: 10}, l.Advance('b'))
	assert.Equal(t, urlocate.Reset, l.Advance(' ').Kind)
}

func TestAdvanceAfterReset(t *testing.T) {
	t.Parallel()
	var l urlocate.Locator
	assert.Equal(t, urlocate.Reset, l.Advance(' ').Kind)
	for _, ch := range "news:" {
		assert.Equal(t, urlocate.Scheme, l.Advance(ch).Kind)
	}
	assert.Equal(t, urlocate.Location{Kind: urlocate.URL, End: 6}, l.Advance('x'))
}
