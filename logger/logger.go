// @license
// Copyright (C) 2024  nure-tools authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package logger

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the global logger instance used across all packages. It defaults
// to structured JSON output on stderr, switching to the slower colored console
// writer when stderr is an interactive terminal.
var Logger zerolog.Logger

func init() {
	var w io.Writer = os.Stderr

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(w).
		With().
		Timestamp().
		Logger()
}

// Output duplicates the global logger and sets w as its output.
func Output(w io.Writer) zerolog.Logger {
	return Logger.Output(w)
}

// With creates a child logger context from the global logger.
func With() zerolog.Context {
	return Logger.With()
}

// Debug starts a new message with debug level.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts a new message with info level.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a new message with warn level.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts a new message with error level.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal starts a new message with fatal level, terminating the program with
// os.Exit(1) once the message is sent.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// Panic starts a new message with panic level, calling panic() once the
// message is sent.
func Panic() *zerolog.Event {
	return Logger.Panic()
}

// Print sends a log event without an explicit level, using debug level and
// fmt.Sprint to format its operands.
func Print(v ...interface{}) {
	Logger.Print(v...)
}

// Printf sends a log event without an explicit level, using debug level and
// fmt.Sprintf to format its operands.
func Printf(format string, v ...interface{}) {
	Logger.Printf(format, v...)
}
