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

package fetch

import "encoding/json"

// Field extraction helpers shared by all entity decoders. The API payloads
// are loosely structured, so an absent or wrong-typed field never fails a
// decode: it yields the type default instead, and each record decodes fresh
// so nothing leaks between array elements.

// Object returns v as a generic JSON object when it is one.
func Object(v interface{}) (map[string]interface{}, bool) {
	obj, ok := v.(map[string]interface{})

	return obj, ok
}

// ObjectField returns the object under key, reporting whether the key holds
// an object at all.
func ObjectField(obj map[string]interface{}, key string) (map[string]interface{}, bool) {
	return Object(obj[key])
}

// ArrayField returns the array under key, or nil when the key is absent or
// holds a non-array value.
func ArrayField(obj map[string]interface{}, key string) []interface{} {
	arr, _ := obj[key].([]interface{})

	return arr
}

// StringField returns the string under key, or "" when the key is absent or
// holds a non-string value.
func StringField(obj map[string]interface{}, key string) string {
	s, _ := obj[key].(string)

	return s
}

// Int64Field returns the integer under key, or 0 when the key is absent,
// holds a non-number value or holds a non-integral number. Both json.Number
// (the decoder default here) and float64 representations are handled.
func Int64Field(obj map[string]interface{}, key string) int64 {
	switch n := obj[key].(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}

		return i
	case float64:
		i := int64(n)
		if float64(i) != n {
			return 0
		}

		return i
	}

	return 0
}

// IntField is Int64Field narrowed to int, which is what the record ids use.
func IntField(obj map[string]interface{}, key string) int {
	return int(Int64Field(obj, key))
}
