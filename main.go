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

// nure-tools is a demonstration client for the Mindenit schedule API: it
// finds all groups matching a search term and prints their lectures for the
// requested period.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/mattn/go-isatty"
	"github.com/tj/go-spin"

	"github.com/nure-tools/nuretools/fetch"
	"github.com/nure-tools/nuretools/groups"
	"github.com/nure-tools/nuretools/logger"
	"github.com/nure-tools/nuretools/schedule"
	"github.com/nure-tools/nuretools/version"
)

const (
	maxMemRatio        = 0.9
	spinnerRotateDelay = 100 * time.Millisecond // spinner delay
	lectureTimeFormat  = "Mon 02.01 15:04"
)

var (
	GitTag    = ""
	GitCommit = ""
	GitDirty  = ""
	BuildTime = ""
)

// init trims leading and trailing white spaces from the values of GitTag,
// GitCommit, GitDirty and BuildTime.
//
//nolint:gochecknoinits
func init() {
	GitTag = strings.TrimSpace(GitTag)
	GitCommit = strings.TrimSpace(GitCommit)
	GitDirty = strings.TrimSpace(GitDirty)
	BuildTime = strings.TrimSpace(BuildTime)
}

// main is the entry point of the demonstration client.
//
// It parses flags, sets the global log level, configures GOMEMLIMIT, sets up
// a context with signal integration, constructs the requested period, finds
// all groups matching the search term and prints their schedule.
func main() {
	parseFlags()

	initLog()

	if *showVersion {
		tag := GitTag
		if tag == "" {
			tag = version.Main()
		}

		fmt.Printf("nure-tools %v %v%v, built on %v, with %v\n", tag, GitCommit, GitDirty,
			BuildTime, runtime.Version())
		fmt.Printf("date parsing: %v\n", version.ReadVersion("github.com/araddon/dateparse"))

		return
	}

	logger.Debug().Msgf("nure-tools %v %v%v, built on %v, with %v", GitTag, GitCommit, GitDirty,
		BuildTime, runtime.Version())

	// configure GOMEMLIMIT to 90% of available memory (Cgroups v2/v1 or system)
	limit, err := memlimit.SetGoMemLimitWithOpts(
		memlimit.WithRatio(maxMemRatio),
		memlimit.WithProvider(
			memlimit.ApplyFallback(
				memlimit.FromCgroup,
				memlimit.FromSystem,
			),
		),
	)

	if err != nil {
		logger.Warn().Msgf("Unable to get/set GOMEMLIMIT: %v", err)
	} else {
		logger.Debug().Msgf("GOMEMLIMIT is set to: %v", humanize.Bytes(uint64(limit))) //nolint:gosec
	}

	// context with signal integration
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := choosePeriod()
	if err != nil {
		logger.Fatal().Msgf("Unable to construct the requested period: %v", err)
	}

	logger.Debug().Msgf("Requesting schedule for period %v", p)

	client := fetch.NewClientWithContext(ctx, *apiURL)
	defer client.CloseConnections()

	done := make(chan struct{})
	if isatty.IsTerminal(os.Stderr.Fd()) {
		go runSpinner(done)
	}

	matched, err := groups.Find(client, *groupName)
	if err != nil {
		close(done)
		logger.Fatal().Msgf("Unable to find groups: %v", err)
	}

	type groupSchedule struct {
		group    groups.Group
		lectures []schedule.Lecture
	}

	results := make([]groupSchedule, 0, len(matched))

	for _, g := range matched {
		lectures, err := schedule.Get(client, schedule.ForGroup(g), p)
		if err != nil {
			close(done)
			logger.Fatal().Msgf("Unable to fetch schedule for group %v: %v", g.Name, err)
		}

		results = append(results, groupSchedule{group: g, lectures: lectures})
	}

	close(done)

	for _, r := range results {
		fmt.Printf("%v (id %v): %v lectures in %v\n", r.group.Name, r.group.ID, len(r.lectures), p)

		for _, l := range r.lectures {
			fmt.Printf("  #%d %v %v %v [%v] (%v)\n", l.NumberPair,
				l.Period.Start.Format(lectureTimeFormat), l.Subject.Brief, l.Type,
				l.LectureRoom, durafmt.Parse(l.Period.Duration()).String())
		}
	}
}

// runSpinner rotates a terminal spinner on stderr until done is closed.
func runSpinner(done <-chan struct{}) {
	s := spin.New()

	ticker := time.NewTicker(spinnerRotateDelay)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			fmt.Fprintf(os.Stderr, "\r \r")

			return
		case <-ticker.C:
			fmt.Fprintf(os.Stderr, "\rFetching %s", s.Next())
		}
	}
}
