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

// Package lecturerooms queries lecture room (auditory) listings from the
// schedule API.
package lecturerooms

import (
	"strings"

	"github.com/nure-tools/nuretools/fetch"
	"github.com/nure-tools/nuretools/match"
)

const listPath = "/auditories"

// LectureRoom identifies one auditory. Immutable once decoded.
type LectureRoom struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// InvalidNameError denotes a find query that matched no lecture room.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return "can't find lecture room with name: " + e.Name
}

// Decode converts a generic JSON array into lecture rooms, one per object
// element, preserving input order. Non-object elements are skipped; absent
// or wrong-typed fields decode to type defaults.
func Decode(arr []interface{}) []LectureRoom {
	result := make([]LectureRoom, 0, len(arr))

	for _, el := range arr {
		obj, ok := fetch.Object(el)
		if !ok {
			continue
		}

		result = append(result, LectureRoom{
			ID:   fetch.IntField(obj, "id"),
			Name: fetch.StringField(obj, "name"),
		})
	}

	return result
}

// Get fetches all existing lecture rooms.
func Get(c *fetch.Client) ([]LectureRoom, error) {
	arr, err := c.GetArray(listPath, nil)
	if err != nil {
		return nil, err
	}

	return Decode(arr), nil
}

// Find fetches all lecture rooms whose name matches name, compiled as a
// case-insensitive regular expression. An uncompilable name propagates
// *match.InvalidRegexError; an empty result yields *InvalidNameError.
func Find(c *fetch.Client, name string) ([]LectureRoom, error) {
	all, err := Get(c)
	if err != nil {
		return nil, err
	}

	var result []LectureRoom

	for _, room := range all {
		ok, err := match.Find(name, room.Name)
		if err != nil {
			return nil, err
		}

		if ok {
			result = append(result, room)
		}
	}

	if len(result) == 0 {
		return nil, &InvalidNameError{Name: name}
	}

	return result, nil
}

// FindExact fetches the single lecture room whose name equals name,
// case-insensitively. No match yields *InvalidNameError.
func FindExact(c *fetch.Client, name string) (LectureRoom, error) {
	all, err := Get(c)
	if err != nil {
		return LectureRoom{}, err
	}

	for _, room := range all {
		if strings.EqualFold(room.Name, name) {
			return room, nil
		}
	}

	return LectureRoom{}, &InvalidNameError{Name: name}
}
