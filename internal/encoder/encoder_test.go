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

package encoder_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"t73f.de/r/sx/sxreader"

	"github.com/shire-lang/shire/internal/ast"
	"github.com/shire-lang/shire/internal/encoder"
	"github.com/shire-lang/shire/internal/parser"
)

type encTestCase struct {
	descr  string
	src    string
	expect expectMap
}

type expectMap map[string]string

const (
	encoderHTML = encoder.EncoderHTML
	encoderMD   = encoder.EncoderMD
	encoderSz   = encoder.EncoderSz
	encoderText = encoder.EncoderText
)

var tcsRoam = []encTestCase{
	{
		descr: "Empty block",
		src:   "",
		expect: expectMap{
			encoderHTML: "",
			encoderMD:   "",
			encoderSz:   "(INLINE)",
			encoderText: "",
		},
	},
	{
		descr: "Bold text",
		src:   "**bold** text",
		expect: expectMap{
			encoderHTML: "<strong>bold</strong> text",
			encoderMD:   "**bold** text",
			encoderSz:   `(INLINE (BOLD (TEXT "bold")) (TEXT " text"))`,
			encoderText: "bold text",
		},
	},
	{
		descr: "Page link",
		src:   "[[my page]]",
		expect: expectMap{
			encoderMD:   "[my page](<my page>)",
			encoderSz:   `(INLINE (LINK "my page"))`,
			encoderText: "my page",
		},
	},
	{
		descr: "Open task",
		src:   "{{[[TODO]]}} write",
		expect: expectMap{
			encoderMD:   "[ ] write",
			encoderSz:   `(INLINE (TODO) (TEXT " write"))`,
			encoderText: "[ ] write",
		},
	},
	{
		descr: "Finished task",
		src:   "{{DONE}}",
		expect: expectMap{
			encoderSz:   "(INLINE (DONE))",
			encoderText: "[x]",
		},
	},
	{
		descr: "Inline code is escaped",
		src:   "`a<b`",
		expect: expectMap{
			encoderHTML: "<code>a&lt;b</code>",
			encoderMD:   "`a<b`",
			encoderSz:   `(INLINE (CODE "a<b"))`,
			encoderText: "a<b",
		},
	},
	{
		descr: "Dot hashtag",
		src:   "#.tag",
		expect: expectMap{
			encoderSz:   `(INLINE (DOT-HASHTAG "tag"))`,
			encoderText: "tag",
		},
	},
	{
		descr: "Attribute",
		src:   "a:: b",
		expect: expectMap{
			encoderMD:   "**a**: b",
			encoderSz:   `(INLINE (ATTRIBUTE "a" (TEXT "b")))`,
			encoderText: "a: b",
		},
	},
	{
		descr: "Horizontal rule",
		src:   "---",
		expect: expectMap{
			encoderMD:   "---",
			encoderSz:   "(INLINE (HRULE))",
			encoderText: "",
		},
	},
	{
		descr: "Quoted highlight",
		src:   "> ^^hi^^",
		expect: expectMap{
			encoderHTML: "<blockquote><mark>hi</mark></blockquote>",
			encoderMD:   "> ==hi==",
			encoderSz:   `(INLINE (BLOCK-QUOTE (HIGHLIGHT (TEXT "hi"))))`,
			encoderText: "hi",
		},
	},
	{
		descr: "Markdown link with label",
		src:   "[label]([[page]])",
		expect: expectMap{
			encoderMD:   "[label](<page>)",
			encoderSz:   `(INLINE (MARKDOWN-INTERNAL-LINK "label" "page"))`,
			encoderText: "label",
		},
	},
	{
		descr: "Math",
		src:   "$$x^2$$",
		expect: expectMap{
			encoderMD:   "$$x^2$$",
			encoderSz:   `(INLINE (LATEX "x^2"))`,
			encoderText: "x^2",
		},
	},
}

func TestEncoder(t *testing.T) {
	t.Parallel()
	for testNum, tc := range tcsRoam {
		is := parser.ParseText(parser.Roam, tc.src)
		checkEncodings(t, testNum, is, tc.descr, tc.expect)
		checkSz(t, testNum, is, tc.descr)
	}
}

func checkEncodings(t *testing.T, testNum int, is ast.InlineSlice, descr string, expected expectMap) {
	t.Helper()
	for enc, exp := range expected {
		got, err := encode(encoder.Create(enc), is)
		if err != nil {
			t.Errorf("Test #%d\nReason:   %s\nEncoder:  %s\nError:    %v", testNum, descr, enc, err)
			continue
		}
		if got != exp {
			t.Errorf("Test #%d\nReason:   %s\nEncoder:  %s\nExpected: %q\nGot:      %q", testNum, descr, enc, exp, got)
		}
	}
}

func checkSz(t *testing.T, testNum int, is ast.InlineSlice, descr string) {
	t.Helper()
	exp, err := encode(encoder.Create(encoderSz), is)
	if err != nil {
		t.Error(err)
		return
	}
	val, err := sxreader.MakeReader(strings.NewReader(exp)).Read()
	if err != nil {
		t.Error(err)
		return
	}
	if got := val.String(); exp != got {
		t.Errorf("Test #%d\nReason:   %s\n\nExpected: %q\nGot:      %q", testNum, descr, exp, got)
	}
}

func encode(e encoder.Encoder, is ast.InlineSlice) (string, error) {
	var sb strings.Builder
	err := e.WriteInlines(&sb, is)
	return sb.String(), err
}

func TestCreate(t *testing.T) {
	t.Parallel()
	encs := encoder.GetEncodings()
	if exp := []string{"html", "md", "sz", "text"}; fmt.Sprint(encs) != fmt.Sprint(exp) {
		t.Errorf("expected encodings %v, but got %v", exp, encs)
	}
	for _, enc := range encs {
		if encoder.Create(enc) == nil {
			t.Errorf("no encoder for %q", enc)
		}
	}
	if encoder.Create("zmk") != nil {
		t.Error("encoder for unknown encoding zmk")
	}
}

func TestHTMLLink(t *testing.T) {
	t.Parallel()
	got, err := encode(encoder.Create(encoderHTML), parser.ParseText(parser.Roam, "see [[my page]]"))
	if err != nil {
		t.Fatal(err)
	}
	for _, exp := range []string{"see ", "<a ", `href="#my_page"`, ">my page</a>"} {
		if !strings.Contains(got, exp) {
			t.Errorf("%q not found in %q", exp, got)
		}
	}
}

// The Markdown encoding must be understood by a CommonMark processor.
func TestMarkdownRendering(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		src  string
		html string
	}{
		{"**bold** and __it__", "<strong>bold</strong> and <em>it</em>"},
		{"~~gone~~", "<del>gone</del>"},
		{"see [[my page]]", `<a href="my%20page">my page</a>`},
		{"`x`", "<code>x</code>"},
		{"this is *not* bold or italic", "<p>this is *not* bold or italic</p>"},
		{"<b>x</b> & y", "<p>&lt;b&gt;x&lt;/b&gt; &amp; y</p>"},
		{"# no heading", "<p># no heading</p>"},
		{">no quote", "<p>&gt;no quote</p>"},
		{"- no list", "<p>- no list</p>"},
		{"1. no list", "<p>1. no list</p>"},
		{"[[a > b]]", ">a &gt; b</a>"},
		{"[[x_y]] and [b]([[c*d]])", ">x_y</a> and <a href="},
	}
	md := goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	for _, tc := range testCases {
		src, err := encode(encoder.Create(encoderMD), parser.ParseText(parser.Roam, tc.src))
		if err != nil {
			t.Error(err)
			continue
		}
		var buf bytes.Buffer
		if err = md.Convert([]byte(src), &buf); err != nil {
			t.Error(err)
			continue
		}
		if got := buf.String(); !strings.Contains(got, tc.html) {
			t.Errorf("%q: expected %q in rendered %q", tc.src, tc.html, got)
		}
	}
}

func TestMarkdownCodeBlock(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		src  string
		html string
	}{
		{"```css\nbackground: #203;\ntext-shadow: 0 0 .1em, 0 0 .3em;```",
			"<pre><code class=\"language-css\">background: #203;\ntext-shadow: 0 0 .1em, 0 0 .3em;\n</code></pre>"},
		{"```a`b\nc```", "c\n</code></pre>"},
	}
	md := goldmark.New()
	for _, tc := range testCases {
		src, err := encode(encoder.Create(encoderMD), parser.ParseText(parser.Roam, tc.src))
		if err != nil {
			t.Error(err)
			continue
		}
		// The next block must not become part of the code.
		src += "\n\nafter\n"
		var buf bytes.Buffer
		if err = md.Convert([]byte(src), &buf); err != nil {
			t.Error(err)
			continue
		}
		got := buf.String()
		if !strings.Contains(got, tc.html) {
			t.Errorf("%q: expected %q in rendered %q", tc.src, tc.html, got)
		}
		if !strings.HasSuffix(got, "<p>after</p>\n") {
			t.Errorf("%q: code block not closed in %q", tc.src, got)
		}
	}
}
