// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

import (
	"reflect"
	"testing"
)

func makeParticipant(name string, a, b, c int, prefs ...string) Participant {
	return Participant{Name: name, Rating: Rating{A: a, B: b, C: c}, Prefs: prefs}
}

func makeGroup(name string, a, b, c int) Group {
	return Group{Name: name, Rating: Rating{A: a, B: b, C: c}}
}

func TestNewStore(t *testing.T) {
	t.Run("NaturalOrder", func(t *testing.T) {
		s, err := NewStore(
			[]Participant{
				makeParticipant("J10", 1, 1, 1),
				makeParticipant("J2", 1, 1, 1),
				makeParticipant("J1", 1, 1, 1),
			},
			[]Group{
				makeGroup("G2", 1, 1, 1),
				makeGroup("G10", 1, 1, 1),
				makeGroup("G9", 1, 1, 1),
			},
		)
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"J1", "J2", "J10"}; !reflect.DeepEqual(s.Participants(), want) {
			t.Errorf("Expected %v, got %v", want, s.Participants())
		}
		if want := []string{"G2", "G9", "G10"}; !reflect.DeepEqual(s.Groups(), want) {
			t.Errorf("Expected %v, got %v", want, s.Groups())
		}
	})

	t.Run("DuplicateGroup", func(t *testing.T) {
		_, err := NewStore(nil, []Group{makeGroup("G", 0, 0, 0), makeGroup("G", 1, 1, 1)})
		if err == nil {
			t.Error("Expected error")
		}
	})

	t.Run("DuplicateParticipant", func(t *testing.T) {
		_, err := NewStore(
			[]Participant{makeParticipant("P", 0, 0, 0), makeParticipant("P", 1, 1, 1)},
			[]Group{makeGroup("G", 0, 0, 0)},
		)
		if err == nil {
			t.Error("Expected error")
		}
	})

	t.Run("UnknownPreference", func(t *testing.T) {
		_, err := NewStore(
			[]Participant{makeParticipant("P", 0, 0, 0, "Nowhere")},
			[]Group{makeGroup("G", 0, 0, 0)},
		)
		if err == nil {
			t.Error("Expected error")
		}
	})
}

func TestStoreCapacity(t *testing.T) {
	cases := []struct {
		participants int
		groups       int
		capacity     int
	}{
		{12, 3, 4},
		{7, 3, 2},
		{2, 3, 0},
		{0, 3, 0},
		{5, 0, 0},
	}

	for _, c := range cases {
		var ps []Participant
		for i := 0; i < c.participants; i++ {
			ps = append(ps, makeParticipant("P"+string(rune('a'+i)), 0, 0, 0))
		}
		var gs []Group
		for i := 0; i < c.groups; i++ {
			gs = append(gs, makeGroup("G"+string(rune('a'+i)), 0, 0, 0))
		}
		s, err := NewStore(ps, gs)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.Capacity(); got != c.capacity {
			t.Errorf("%d/%d: expected capacity %d, got %d",
				c.participants, c.groups, c.capacity, got)
		}
	}
}
