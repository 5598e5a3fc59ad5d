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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/nure-tools/nuretools/fetch"
	"github.com/nure-tools/nuretools/period"
)

var (
	fs = ff.NewFlagSet("nure-tools")

	debug       = fs.Bool('v', "verbose", "enable verbose/debug log level")
	colorLogs   = fs.Bool('l', "colorlogs", "enable slow colored console logging")
	showVersion = fs.BoolLong("version", "print version information and exit")
	apiURL      = fs.StringLong("api", fetch.DefaultBaseURL, "schedule API base URL")
	groupName   = fs.String('g', "group", "пзпі-23-2", "group name to search the schedule for")
	fromString  = fs.String('s', "from", "", "period start (most common date/time formats accepted)")
	toString    = fs.String('e', "to", "", "period end (most common date/time formats accepted)")
	day         = fs.BoolLong("day", "fetch the schedule for the current day only")
	nextWeek    = fs.BoolLong("next-week", "fetch the schedule for the next week instead of the current one")

	errPeriodBounds = errors.New("both --from and --to must be given")
)

// parseFlags parses input arguments and flags.
func parseFlags() {
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("NURE")); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))

		if errors.Is(err, ff.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "err=%v\n", err)
		os.Exit(1)
	}
}

// choosePeriod constructs the requested schedule period from flags: explicit
// --from/--to strings win, then --day and --next-week, defaulting to the
// current calendar week.
func choosePeriod() (period.Period, error) {
	switch {
	case *fromString != "" || *toString != "":
		if *fromString == "" || *toString == "" {
			return period.Period{}, errPeriodBounds
		}

		return period.FromStrings(*fromString, *toString)
	case *day:
		return period.Today(), nil
	case *nextWeek:
		return period.NextWeek(), nil
	default:
		return period.ThisWeek(), nil
	}
}
