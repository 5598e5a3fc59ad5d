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

// Package teachers queries teacher listings from the schedule API.
package teachers

import (
	"strings"

	"github.com/nure-tools/nuretools/fetch"
	"github.com/nure-tools/nuretools/match"
)

const listPath = "/teachers"

// Teacher identifies one teacher by id, abbreviated name ("Іванов І. І.")
// and full name. Immutable once decoded.
type Teacher struct {
	ID        int    `json:"id"`
	ShortName string `json:"shortName"`
	FullName  string `json:"fullName"`
}

// InvalidNameError denotes a find query that matched no teacher.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return "can't find teacher with name: " + e.Name
}

// Decode converts a generic JSON array into teachers, one per object
// element, preserving input order. Non-object elements are skipped; absent
// or wrong-typed fields decode to type defaults.
func Decode(arr []interface{}) []Teacher {
	result := make([]Teacher, 0, len(arr))

	for _, el := range arr {
		obj, ok := fetch.Object(el)
		if !ok {
			continue
		}

		result = append(result, Teacher{
			ID:        fetch.IntField(obj, "id"),
			ShortName: fetch.StringField(obj, "shortName"),
			FullName:  fetch.StringField(obj, "fullName"),
		})
	}

	return result
}

// Get fetches all existing teachers.
func Get(c *fetch.Client) ([]Teacher, error) {
	arr, err := c.GetArray(listPath, nil)
	if err != nil {
		return nil, err
	}

	return Decode(arr), nil
}

// Find fetches all teachers whose full name matches name, compiled as a
// case-insensitive regular expression. An uncompilable name propagates
// *match.InvalidRegexError; an empty result yields *InvalidNameError.
func Find(c *fetch.Client, name string) ([]Teacher, error) {
	all, err := Get(c)
	if err != nil {
		return nil, err
	}

	var result []Teacher

	for _, teacher := range all {
		ok, err := match.Find(name, teacher.FullName)
		if err != nil {
			return nil, err
		}

		if ok {
			result = append(result, teacher)
		}
	}

	if len(result) == 0 {
		return nil, &InvalidNameError{Name: name}
	}

	return result, nil
}

// FindExact fetches the single teacher whose short name equals name,
// case-insensitively. Short names are the form the institution's schedule
// uses, so that is the exact-lookup key. No match yields *InvalidNameError.
func FindExact(c *fetch.Client, name string) (Teacher, error) {
	all, err := Get(c)
	if err != nil {
		return Teacher{}, err
	}

	for _, teacher := range all {
		if strings.EqualFold(teacher.ShortName, name) {
			return teacher, nil
		}
	}

	return Teacher{}, &InvalidNameError{Name: name}
}
