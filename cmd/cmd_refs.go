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

package cmd

import (
	"flag"
	"fmt"

	"github.com/shire-lang/shire/internal/ast"
	"github.com/shire-lang/shire/internal/collect"
	"github.com/shire-lang/shire/internal/outline"
	"github.com/shire-lang/shire/internal/parser"
)

// ---------- Subcommand: refs -----------------------------------------------

func flgRefs(fs *flag.FlagSet) {
	fs.String("d", "", "dialect of the input")
	fs.Bool("o", false, "list only the first page link of every block")
}

func cmdRefs(env *environment, fs *flag.FlagSet) (int, error) {
	dialect, err := env.dialect()
	if err != nil {
		return 2, err
	}
	src, err := env.readInput(fs.Args())
	if err != nil {
		return 2, err
	}
	blocks := outline.Blocks(src)
	trees := make([]ast.InlineSlice, len(blocks))
	for i, block := range blocks {
		trees[i] = parser.ParseText(dialect, block)
	}

	if fs.Lookup("o").Value.String() == "true" {
		for _, page := range collect.Order(trees) {
			fmt.Fprintln(env.stdout, page)
		}
		return 0, nil
	}
	for _, is := range trees {
		for ref := range collect.ReferenceSeq(is) {
			fmt.Fprintf(env.stdout, "%s\t%s\n", ref.Kind, ref.Target)
		}
	}
	return 0, nil
}
