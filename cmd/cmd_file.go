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
	"io"
	"os"

	"golang.org/x/term"

	"github.com/shire-lang/shire/internal/encoder"
	"github.com/shire-lang/shire/internal/logging"
	"github.com/shire-lang/shire/internal/outline"
	"github.com/shire-lang/shire/internal/parser"
)

// ---------- Subcommand: file -----------------------------------------------

func cmdFile(env *environment, fs *flag.FlagSet) (int, error) {
	dialect, encdr, err := env.renderOptions()
	if err != nil {
		return 2, err
	}
	src, err := env.readInput(fs.Args())
	if err != nil {
		return 2, err
	}
	if err = renderDocument(env, env.stdout, dialect, encdr, src); err != nil {
		return 1, err
	}
	return 0, nil
}

func (env *environment) renderOptions() (parser.Dialect, encoder.Encoder, error) {
	dialect, err := env.dialect()
	if err != nil {
		return dialect, nil, err
	}
	encdr, err := env.encoder()
	return dialect, encdr, err
}

func (env *environment) readInput(args []string) ([]byte, error) {
	if len(args) < 1 {
		if f, isFile := env.stdin.(*os.File); isFile && term.IsTerminal(int(f.Fd())) {
			env.logger.Info("reading outline from terminal, end input with Ctrl-D")
		}
		return io.ReadAll(env.stdin)
	}
	return os.ReadFile(args[0])
}

// renderDocument splits the outline into blocks, parses every block and
// writes it to w, one block per line.
func renderDocument(env *environment, w io.Writer, dialect parser.Dialect, encdr encoder.Encoder, src []byte) error {
	blocks := outline.Blocks(src)
	for _, block := range blocks {
		is, err := parser.Parse(dialect, block)
		if err != nil {
			env.logger.Warn("unable to parse block", logging.Block(block), logging.Err(err))
			is = parser.ParseText(dialect, block)
		}
		logging.LogTrace(env.logger, "block parsed", logging.Block(block), "nodes", len(is))
		if err = encdr.WriteInlines(w, is); err != nil {
			return err
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	env.logger.Debug("document rendered", "dialect", dialect.String(), "blocks", len(blocks))
	return nil
}

// ---------- Subcommand: dialects -------------------------------------------

func cmdDialects(env *environment, _ *flag.FlagSet) (int, error) {
	for _, name := range parser.DialectNames() {
		d, _ := parser.GetDialect(name)
		if primary := d.String(); primary != name {
			fmt.Fprintf(env.stdout, "%s (%s)\n", name, primary)
		} else {
			fmt.Fprintln(env.stdout, name)
		}
	}
	return 0, nil
}
