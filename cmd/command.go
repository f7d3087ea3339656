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
	"maps"
	"slices"
)

// Command stores information about commands / sub-commands.
type Command struct {
	Name     string              // command name as it appears on the command line
	Func     CommandFunc         // function that executes a command
	Header   bool                // Print a heading on startup
	SetFlags func(*flag.FlagSet) // function to set up flag.FlagSet
}

// CommandFunc is the function that executes the command.
// It accepts the environment of the call and the parsed command line
// parameters. It returns the exit code and an error.
type CommandFunc func(*environment, *flag.FlagSet) (int, error)

// GetFlags return a new flag.FlagSet defined for the command.
func (c *Command) GetFlags() *flag.FlagSet {
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.String("c", "", "configuration file")
	fs.String("l", "", "log level (trace, debug, info, warn, error)")
	if c.SetFlags != nil {
		c.SetFlags(fs)
	}
	return fs
}

var commands = make(map[string]Command)

// RegisterCommand registers the given command.
func RegisterCommand(cmd Command) {
	if cmd.Name == "" || cmd.Func == nil {
		panic("Required command values missing")
	}
	if _, ok := commands[cmd.Name]; ok {
		panic("Command already registered: " + cmd.Name)
	}
	commands[cmd.Name] = cmd
}

// Get returns the command identified by the given name and a bool to signal success.
func Get(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered command names.
func List() []string {
	return slices.Sorted(maps.Keys(commands))
}
