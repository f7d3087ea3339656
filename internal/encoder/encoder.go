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

// Package encoder provides a generic interface to encode the expression tree
// of a block into some text form.
package encoder

import (
	"io"
	"slices"

	"github.com/shire-lang/shire/internal/ast"
)

// Encoder is an interface that allows to encode the nodes of a block.
type Encoder interface {
	// WriteInlines encodes the nodes and writes them to the Writer.
	WriteInlines(io.Writer, ast.InlineSlice) error
}

// Names of the supported encodings.
const (
	EncoderHTML = "html"
	EncoderMD   = "md"
	EncoderSz   = "sz"
	EncoderText = "text"
)

// Create builds a new encoder for the given encoding. It returns nil if
// the encoding is unknown.
func Create(enc string) Encoder {
	switch enc {
	case EncoderHTML:
		return &htmlEncoder{}
	case EncoderMD:
		return (*mdEncoder)(nil)
	case EncoderSz:
		return (*szEncoder)(nil)
	case EncoderText:
		return (*textEncoder)(nil)
	}
	return nil
}

// GetEncodings returns all supported encodings, ordered by name.
func GetEncodings() []string {
	result := []string{EncoderHTML, EncoderMD, EncoderSz, EncoderText}
	slices.Sort(result)
	return result
}
