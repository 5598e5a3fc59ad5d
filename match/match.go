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

// Package match implements the case-insensitive name matching used by all
// fuzzy "find" lookups.
package match

import (
	"regexp"
	"strings"
)

// InvalidRegexError denotes a search term that is not a syntactically valid
// regular expression.
type InvalidRegexError struct {
	Pattern string
}

func (e *InvalidRegexError) Error() string {
	return "can't compile regex from given string: " + e.Pattern
}

// Find reports whether needle matches anywhere within haystack. Both sides
// are lower-cased first and needle is compiled as a regular expression, not
// escaped as a literal: regex metacharacters in search terms keep their
// meaning, which is part of the lookup contract. An uncompilable needle
// yields *InvalidRegexError.
func Find(needle, haystack string) (bool, error) {
	re, err := regexp.Compile(strings.ToLower(needle))
	if err != nil {
		return false, &InvalidRegexError{Pattern: needle}
	}

	return re.MatchString(strings.ToLower(haystack)), nil
}
