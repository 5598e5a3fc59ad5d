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

package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/nure-tools/nuretools/fetch"
	"github.com/nure-tools/nuretools/groups"
	"github.com/nure-tools/nuretools/period"
	"github.com/nure-tools/nuretools/teachers"
)

const lecturePayload = `[
	{
		"auditory": "287",
		"startTime": 1704189600,
		"endTime": 1704195300,
		"numberPair": 3,
		"type": "Лк",
		"teachers": [{"id": 10, "shortName": "Новіков О. В.", "fullName": "Новіков Олексій Вікторович"}],
		"groups": [{"id": 1, "name": "ПЗПІ-23-2"}],
		"subject": {"brief": "ОПНJ", "id": 5, "title": "Основи програмування на Java"}
	}
]`

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

func TestDecode(t *testing.T) {
	t.Parallel()

	lectures, err := Decode(decodeArray(t, lecturePayload))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(lectures) != 1 {
		t.Fatalf("expected 1 lecture, got %d", len(lectures))
	}

	expectedPeriod, err := period.FromTimestamps(1704189600, 1704195300)
	if err != nil {
		t.Fatalf("FromTimestamps failed: %v", err)
	}

	expected := Lecture{
		LectureRoom: "287",
		Period:      expectedPeriod,
		NumberPair:  3,
		Type:        "Лк",
		Teachers: []teachers.Teacher{
			{ID: 10, ShortName: "Новіков О. В.", FullName: "Новіков Олексій Вікторович"},
		},
		Groups: []groups.Group{
			{ID: 1, Name: "ПЗПІ-23-2"},
		},
		Subject: Subject{Brief: "ОПНJ", ID: 5, Title: "Основи програмування на Java"},
	}

	if !reflect.DeepEqual(lectures[0], expected) {
		t.Errorf("Decode() = %+v, want %+v", lectures[0], expected)
	}

	if got := lectures[0].Period.Start.Unix(); got != 1704189600 {
		t.Errorf("expected lecture start epoch 1704189600, got %v", got)
	}
}

func TestDecodeDefaults(t *testing.T) {
	t.Parallel()

	lectures, err := Decode(decodeArray(t, `[
		{
			"startTime": 1704189600,
			"endTime": 1704195300,
			"numberPair": 1000,
			"teachers": "broken",
			"groups": [],
			"subject": "broken"
		},
		{
			"startTime": 1704189600,
			"endTime": 1704195300,
			"numberPair": -2
		},
		"not an object"
	]`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(lectures) != 2 {
		t.Fatalf("expected 2 lectures, got %d", len(lectures))
	}

	l := lectures[0]

	if l.LectureRoom != "" || l.Type != "" {
		t.Errorf("expected empty room and type, got %+v", l)
	}

	// out-of-range pair numbers narrow to the default
	if l.NumberPair != 0 {
		t.Errorf("expected pair number 0, got %d", l.NumberPair)
	}

	if lectures[1].NumberPair != 0 {
		t.Errorf("expected negative pair number to default to 0, got %d", lectures[1].NumberPair)
	}

	if len(l.Teachers) != 0 || len(l.Groups) != 0 {
		t.Errorf("expected empty nested records, got %+v", l)
	}

	if l.Subject != (Subject{}) {
		t.Errorf("expected default subject, got %+v", l.Subject)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	p, err := period.FromStrings("2024-01-02", "2024-01-03")
	if err != nil {
		t.Fatalf("FromStrings failed: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/schedule/groups/1", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if q.Get("start") == "" || q.Get("end") == "" {
			t.Errorf("expected start and end query parameters, got %v", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(lecturePayload)) //nolint:errcheck
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := fetch.NewClientWithContext(context.Background(), srv.URL)

	lectures, err := Get(c, ForGroup(groups.Group{ID: 1, Name: "ПЗПІ-23-2"}), p)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if len(lectures) != 1 {
		t.Fatalf("expected 1 lecture, got %d", len(lectures))
	}

	if lectures[0].Subject.Brief != "ОПНJ" {
		t.Errorf("unexpected subject: %+v", lectures[0].Subject)
	}
}

func TestTargets(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		target   Target
		expected Target
	}{
		{
			name:     "Group",
			target:   ForGroup(groups.Group{ID: 1}),
			expected: Target{kind: "groups", id: 1},
		},
		{
			name:     "Teacher",
			target:   ForTeacher(teachers.Teacher{ID: 2}),
			expected: Target{kind: "teachers", id: 2},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if tc.target != tc.expected {
				t.Errorf("target = %+v, want %+v", tc.target, tc.expected)
			}
		})
	}
}
