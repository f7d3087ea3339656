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

// Package cmd provides the commands to call Shire from the command line.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"t73f.de/r/zsc/domain/id"
	"t73f.de/r/zsc/domain/meta"
	"t73f.de/r/zsx/input"

	"github.com/shire-lang/shire/internal/encoder"
	"github.com/shire-lang/shire/internal/logging"
	"github.com/shire-lang/shire/internal/parser"
)

func init() {
	RegisterCommand(Command{
		Name: "help",
		Func: func(env *environment, _ *flag.FlagSet) (int, error) {
			fmt.Fprintln(env.stdout, "Available commands:")
			for _, name := range List() {
				fmt.Fprintf(env.stdout, "- %q\n", name)
			}
			return 0, nil
		},
	})
	RegisterCommand(Command{
		Name:   "version",
		Func:   func(*environment, *flag.FlagSet) (int, error) { return 0, nil },
		Header: true,
	})
	RegisterCommand(Command{
		Name: "dialects",
		Func: cmdDialects,
	})
	RegisterCommand(Command{
		Name:     "file",
		Func:     cmdFile,
		SetFlags: flgRender,
	})
	RegisterCommand(Command{
		Name:     "refs",
		Func:     cmdRefs,
		SetFlags: flgRefs,
	})
	RegisterCommand(Command{
		Name:     "watch",
		Func:     cmdWatch,
		Header:   true,
		SetFlags: flgRender,
	})
}

func flgRender(fs *flag.FlagSet) {
	fs.String("d", "", "dialect of the input")
	fs.String("t", "", "target output encoding")
}

// environment contains everything a command needs to run.
type environment struct {
	progName  string
	version   string
	buildTime time.Time
	cfgFile   string
	cfg       *meta.Meta
	logger    *slog.Logger
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

const (
	keyDialect  = "dialect"
	keyEncoding = "encoding"
	keyLogLevel = "log-level"

	defaultDialect  = "roam"
	defaultEncoding = encoder.EncoderSz
)

func fetchStartupConfiguration(fs *flag.FlagSet) (string, *meta.Meta) {
	if configFlag := fs.Lookup("c"); configFlag != nil {
		if filename := configFlag.Value.String(); filename != "" {
			content, err := readConfiguration(filename)
			return filename, createConfiguration(content, err)
		}
	}
	filename, content, err := searchAndReadConfiguration()
	return filename, createConfiguration(content, err)
}

func createConfiguration(content []byte, err error) *meta.Meta {
	if err != nil {
		return meta.New(id.Invalid)
	}
	return meta.NewFromInput(id.Invalid, input.NewInput(content))
}

func readConfiguration(filename string) ([]byte, error) { return os.ReadFile(filename) }

func searchAndReadConfiguration() (string, []byte, error) {
	for _, filename := range []string{"shire.cfg", ".shire.cfg"} {
		if content, err := readConfiguration(filename); err == nil {
			return filename, content, nil
		}
	}
	return "", nil, os.ErrNotExist
}

func getConfig(fs *flag.FlagSet) (string, *meta.Meta) {
	filename, cfg := fetchStartupConfiguration(fs)
	fs.Visit(func(flg *flag.Flag) {
		switch flg.Name {
		case "d":
			cfg.Set(keyDialect, meta.Value(flg.Value.String()))
		case "t":
			cfg.Set(keyEncoding, meta.Value(flg.Value.String()))
		case "l":
			cfg.Set(keyLogLevel, meta.Value(flg.Value.String()))
		}
	})
	return filename, cfg
}

func createLogger(w io.Writer, cfg *meta.Meta) *slog.Logger {
	level, unknown := slog.LevelInfo, ""
	if text, found := cfg.Get(keyLogLevel); found {
		if l := logging.ParseLevel(string(text)); l != logging.LevelMissing {
			level = l
		} else {
			unknown = string(text)
		}
	}
	logger := slog.New(logging.NewHandler(w, level))
	if unknown != "" {
		logger.Warn("unknown log level, using INFO", "level", unknown)
	}
	return logger
}

// dialect returns the configured dialect.
func (env *environment) dialect() (parser.Dialect, error) {
	name := string(env.cfg.GetDefault(keyDialect, defaultDialect))
	d, ok := parser.GetDialect(name)
	if !ok {
		return d, fmt.Errorf("unknown dialect %q", name)
	}
	return d, nil
}

// encoder returns an encoder for the configured encoding.
func (env *environment) encoder() (encoder.Encoder, error) {
	enc := string(env.cfg.GetDefault(keyEncoding, defaultEncoding))
	if encdr := encoder.Create(enc); encdr != nil {
		return encdr, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", enc)
}

func executeCommand(env *environment, name string, args ...string) int {
	command, ok := Get(name)
	if !ok {
		fmt.Fprintf(env.stderr, "Unknown command %q\n", name)
		return 1
	}
	fs := command.GetFlags()
	fs.SetOutput(env.stderr)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(env.stderr, "%s: unable to parse flags: %v %v\n", name, args, err)
		return 1
	}
	env.cfgFile, env.cfg = getConfig(fs)
	env.logger = createLogger(env.stderr, env.cfg).With("system", "SHIRE")
	if env.cfgFile != "" {
		logging.LogTrace(env.logger, "configuration read", "file", env.cfgFile)
	}

	if command.Header {
		fmt.Fprintf(env.stdout, "%s %s (%s)\n", env.progName, env.version, env.buildTime.Format(time.DateOnly))
	}
	exitCode, err := command.Func(env, fs)
	if err != nil {
		fmt.Fprintf(env.stderr, "%s: %v\n", name, err)
	}
	return exitCode
}

// Main is the real entrypoint of the program.
func Main(progName, buildVersion string) int {
	info := retrieveVCSInfo(buildVersion)
	fullVersion := info.revision
	if info.dirty {
		fullVersion += "-dirty"
	}
	env := &environment{
		progName:  progName,
		version:   fullVersion,
		buildTime: info.time,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		return executeCommand(env, "help")
	}
	return executeCommand(env, args[0], args[1:]...)
}

type vcsInfo struct {
	revision string
	dirty    bool
	time     time.Time
}

func retrieveVCSInfo(version string) vcsInfo {
	buildTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vcsInfo{revision: version, dirty: false, time: buildTime}
	}
	result := vcsInfo{revision: version, time: buildTime}
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			revision := "+" + kv.Value
			if len(revision) > 11 {
				revision = revision[:11]
			}
			result.revision = version + revision
		case "vcs.modified":
			if kv.Value == "true" {
				result.dirty = true
			}
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, kv.Value); err == nil {
				result.time = t
			}
		}
	}
	return result
}
