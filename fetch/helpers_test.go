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

import (
	"encoding/json"
	"testing"
)

func TestFieldHelpers(t *testing.T) {
	t.Parallel()

	obj := map[string]interface{}{
		"id":     json.Number("42"),
		"float":  float64(7),
		"frac":   float64(1.5),
		"name":   "ПІ-23",
		"badNum": "42",
		"list":   []interface{}{"a"},
		"nested": map[string]interface{}{"id": json.Number("1")},
	}

	if got := Int64Field(obj, "id"); got != 42 {
		t.Errorf("Int64Field(id) = %d, want 42", got)
	}

	if got := Int64Field(obj, "float"); got != 7 {
		t.Errorf("Int64Field(float) = %d, want 7", got)
	}

	if got := Int64Field(obj, "frac"); got != 0 {
		t.Errorf("Int64Field(frac) = %d, want 0 for non-integral", got)
	}

	if got := Int64Field(obj, "badNum"); got != 0 {
		t.Errorf("Int64Field(badNum) = %d, want 0 for wrong type", got)
	}

	if got := Int64Field(obj, "missing"); got != 0 {
		t.Errorf("Int64Field(missing) = %d, want 0", got)
	}

	if got := StringField(obj, "name"); got != "ПІ-23" {
		t.Errorf("StringField(name) = %q", got)
	}

	if got := StringField(obj, "id"); got != "" {
		t.Errorf("StringField(id) = %q, want empty for wrong type", got)
	}

	if got := ArrayField(obj, "list"); len(got) != 1 {
		t.Errorf("ArrayField(list) = %v, want 1 element", got)
	}

	if got := ArrayField(obj, "name"); got != nil {
		t.Errorf("ArrayField(name) = %v, want nil for wrong type", got)
	}

	if _, ok := ObjectField(obj, "nested"); !ok {
		t.Error("ObjectField(nested) not found")
	}

	if _, ok := ObjectField(obj, "name"); ok {
		t.Error("ObjectField(name) unexpectedly found for wrong type")
	}
}

func TestObject(t *testing.T) {
	t.Parallel()

	if _, ok := Object(map[string]interface{}{}); !ok {
		t.Error("Object() rejected a map")
	}

	if _, ok := Object("string"); ok {
		t.Error("Object() accepted a string")
	}

	if _, ok := Object(nil); ok {
		t.Error("Object() accepted nil")
	}
}
