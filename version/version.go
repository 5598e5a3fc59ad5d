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

// Package version reports module and dependency versions from the embedded
// build info.
package version

import (
	"runtime/debug"
	"strings"
)

// ReadVersion returns "path@version" for the dependency with the given
// module path, as recorded in the build info, or just path when no build
// info or no such dependency is available.
func ReadVersion(path string) string {
	i, ok := debug.ReadBuildInfo()
	if ok {
		for _, d := range i.Deps {
			if d.Path == path {
				return strings.Join([]string{path, d.Version}, "@")
			}
		}
	}

	return path
}

// Main returns the main module version recorded in the build info, or
// "(devel)" when none is available. The CLI banner falls back to it when no
// tag was injected at link time.
func Main() string {
	if i, ok := debug.ReadBuildInfo(); ok && i.Main.Version != "" {
		return i.Main.Version
	}

	return "(devel)"
}
