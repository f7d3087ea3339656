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

package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Handler is a slog.Handler that writes one line per record, starting with
// a timestamp, the padded level and the name of the subsystem.
type Handler struct {
	out    *lineWriter
	level  slog.Leveler
	system string
	attrs  string
}

// NewHandler creates a new handler that writes to w.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{out: &lineWriter{w: w}, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(h.attrs)
	rec.Attrs(func(attr slog.Attr) bool {
		if !attr.Equal(slog.Attr{}) {
			buf.WriteByte(' ')
			buf.WriteString(attr.String())
		}
		return true
	})
	return h.out.writeMessage(rec.Level, rec.Time, h.system, rec.Message, buf.Bytes())
}

// WithAttrs returns a new handler, whose records will contain the given
// attributes. An attribute with key "system" names the subsystem.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	result := &Handler{out: h.out, level: h.level, system: h.system, attrs: h.attrs}
	for _, attr := range attrs {
		if attr.Equal(slog.Attr{}) {
			continue
		}
		if attr.Key == "system" {
			system := attr.Value.String()
			if len(system) < 6 {
				system += "      "[:6-len(system)]
			}
			result.system = system
			continue
		}
		result.attrs += " " + attr.String()
	}
	return result
}

// WithGroup returns the handler itself, groups are not supported.
func (h *Handler) WithGroup(string) slog.Handler { return h }

// lineWriter serializes the output of all handlers derived from one handler.
type lineWriter struct {
	mx  sync.Mutex
	w   io.Writer
	buf []byte
}

func (lw *lineWriter) writeMessage(level slog.Level, ts time.Time, system, msg string, details []byte) error {
	lw.mx.Lock()
	defer lw.mx.Unlock()

	buf := lw.buf[:0]
	if !ts.IsZero() {
		buf = ts.AppendFormat(buf, time.DateTime)
		buf = append(buf, ' ')
	}
	buf = append(buf, LevelStringPad(level)...)
	buf = append(buf, ' ')
	if system != "" {
		buf = append(buf, system...)
		buf = append(buf, ' ')
	}
	buf = append(buf, msg...)
	buf = append(buf, details...)
	buf = append(buf, '\n')
	lw.buf = buf
	_, err := lw.w.Write(buf)
	return err
}
