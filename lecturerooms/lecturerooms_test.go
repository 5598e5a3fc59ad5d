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

package lecturerooms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/nure-tools/nuretools/fetch"
)

func decodeArray(t *testing.T, s string) []interface{} {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("test payload does not decode: %v", err)
	}

	arr, ok := v.([]interface{})
	if !ok {
		t.Fatalf("test payload is not an array")
	}

	return arr
}

func testServer(t *testing.T, payload string) *fetch.Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/auditories", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload)) //nolint:errcheck
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return fetch.NewClientWithContext(context.Background(), srv.URL)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	arr := decodeArray(t, `[{"id": 287, "name": "287"}, {"name": "філія"}, 42]`)

	expected := []LectureRoom{
		{ID: 287, Name: "287"},
		{ID: 0, Name: "філія"},
	}

	actual := Decode(arr)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Decode() = %+v, want %+v", actual, expected)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	c := testServer(t, `[{"id": 287, "name": "287"}, {"id": 300, "name": "філія 1"}]`)

	found, err := Find(c, "філія")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(found) != 1 || found[0].ID != 300 {
		t.Errorf("expected only room 300, got %+v", found)
	}

	_, err = Find(c, "басейн")

	var invalidName *InvalidNameError
	if !errors.As(err, &invalidName) {
		t.Fatalf("expected *InvalidNameError, got %v", err)
	}

	if invalidName.Name != "басейн" {
		t.Errorf("expected original input preserved, got %q", invalidName.Name)
	}
}

func TestFindExact(t *testing.T) {
	t.Parallel()

	c := testServer(t, `[{"id": 287, "name": "287"}, {"id": 300, "name": "Філія 1"}]`)

	room, err := FindExact(c, "філія 1")
	if err != nil {
		t.Fatalf("FindExact failed: %v", err)
	}

	if room.ID != 300 {
		t.Errorf("expected room 300, got %+v", room)
	}
}
