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
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/shire-lang/shire/internal/logging"
)

// ---------- Subcommand: watch ----------------------------------------------

func cmdWatch(env *environment, fs *flag.FlagSet) (int, error) {
	if fs.NArg() != 1 {
		fs.Usage()
		return 2, nil
	}
	dialect, encdr, err := env.renderOptions()
	if err != nil {
		return 2, err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = watchFile(ctx, env.logger, fs.Arg(0), func(src []byte) error {
		return renderDocument(env, env.stdout, dialect, encdr, src)
	})
	if err != nil {
		return 1, err
	}
	return 0, nil
}

// watchFile calls render with the content of the file, and again every time
// the file is written, until the context is done.
//
// The parent directory is watched, because many editors replace a file
// instead of writing to it.
func watchFile(ctx context.Context, logger *slog.Logger, path string, render func([]byte) error) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()
	if err = watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	renderFile := func() error {
		src, errRead := os.ReadFile(absPath)
		if errRead != nil {
			return errRead
		}
		return render(src)
	}
	if err = renderFile(); err != nil {
		return err
	}
	logging.LogMandatory(logger, "start watching", "path", absPath)
	for {
		select {
		case <-ctx.Done():
			logging.LogMandatory(logger, "stop watching", "path", absPath)
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("unable to watch", "path", absPath, logging.Err(err))
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logging.LogTrace(logger, "file event", "name", ev.Name, "op", ev.Op)
			if ev.Name != absPath || !(ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write)) {
				continue
			}
			if err = renderFile(); err != nil {
				logger.Error("unable to render", "path", absPath, logging.Err(err))
				continue
			}
			logger.Info("rendered again", "path", absPath)
		}
	}
}
