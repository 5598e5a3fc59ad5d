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

// Package schedule queries composite schedule entries (lectures) for a
// group, a teacher or a lecture room over a period.
package schedule

import (
	"math"
	"net/url"
	"strconv"

	"github.com/nure-tools/nuretools/fetch"
	"github.com/nure-tools/nuretools/groups"
	"github.com/nure-tools/nuretools/lecturerooms"
	"github.com/nure-tools/nuretools/period"
	"github.com/nure-tools/nuretools/teachers"
)

// Subject is the course a lecture belongs to. The zero value is the defined
// default used when a payload carries no usable subject.
type Subject struct {
	Brief string `json:"brief"`
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Lecture represents one scheduled session. NumberPair is the ordinal index
// of the session within the institution's daily timetable.
type Lecture struct {
	LectureRoom string
	Period      period.Period
	NumberPair  uint8
	Type        string
	Teachers    []teachers.Teacher
	Groups      []groups.Group
	Subject     Subject
}

// Target selects the resource a schedule is requested for: its API resource
// kind and numeric id.
type Target struct {
	kind string
	id   int
}

// ForGroup targets the schedule of one group.
func ForGroup(g groups.Group) Target {
	return Target{kind: "groups", id: g.ID}
}

// ForTeacher targets the schedule of one teacher.
func ForTeacher(t teachers.Teacher) Target {
	return Target{kind: "teachers", id: t.ID}
}

// ForLectureRoom targets the schedule of one lecture room.
func ForLectureRoom(r lecturerooms.LectureRoom) Target {
	return Target{kind: "auditories", id: r.ID}
}

// Get fetches all lectures scheduled for target within p, in the order the
// API returns them.
func Get(c *fetch.Client, target Target, p period.Period) ([]Lecture, error) {
	query := url.Values{}
	query.Set("start", strconv.FormatInt(p.Start.Unix(), 10))
	query.Set("end", strconv.FormatInt(p.End.Unix(), 10))

	arr, err := c.GetArray("/schedule/"+target.kind+"/"+strconv.Itoa(target.id), query)
	if err != nil {
		return nil, err
	}

	return Decode(arr)
}

// Decode converts a generic JSON array into lectures, one per object
// element, preserving input order. Non-object elements are skipped; absent
// or wrong-typed scalar fields decode to type defaults, nested teachers and
// groups arrays decode through their own decoders and a missing or malformed
// subject falls back to the Subject zero value. A startTime/endTime pair the
// period parser rejects fails the whole decode.
func Decode(arr []interface{}) ([]Lecture, error) {
	result := make([]Lecture, 0, len(arr))

	for _, el := range arr {
		obj, ok := fetch.Object(el)
		if !ok {
			continue
		}

		p, err := period.FromTimestamps(
			fetch.Int64Field(obj, "startTime"),
			fetch.Int64Field(obj, "endTime"),
		)
		if err != nil {
			return nil, err
		}

		// pair numbers are small ordinals, anything outside uint8 is garbage
		var numberPair uint8
		if n := fetch.Int64Field(obj, "numberPair"); n >= 0 && n <= math.MaxUint8 {
			numberPair = uint8(n)
		}

		result = append(result, Lecture{
			LectureRoom: fetch.StringField(obj, "auditory"),
			Period:      p,
			NumberPair:  numberPair,
			Type:        fetch.StringField(obj, "type"),
			Teachers:    teachers.Decode(fetch.ArrayField(obj, "teachers")),
			Groups:      groups.Decode(fetch.ArrayField(obj, "groups")),
			Subject:     decodeSubject(obj),
		})
	}

	return result, nil
}

// decodeSubject extracts the nested subject object, falling back to the
// Subject zero value when absent or malformed.
func decodeSubject(obj map[string]interface{}) Subject {
	sub, ok := fetch.ObjectField(obj, "subject")
	if !ok {
		return Subject{}
	}

	return Subject{
		Brief: fetch.StringField(sub, "brief"),
		ID:    fetch.IntField(sub, "id"),
		Title: fetch.StringField(sub, "title"),
	}
}
