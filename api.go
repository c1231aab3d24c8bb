// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefmatch provides slot assignment algorithms that respect
// participant preference order under per-group capacity limits.
package prefmatch

type Matcher interface {
	Match(store *Store) (Result, error)
}

// Rating holds the three skill axes shared by participants and groups.
type Rating struct {
	A int
	B int
	C int
}

func (r Rating) Dot(o Rating) int {
	return r.A*o.A + r.B*o.B + r.C*o.C
}

type Participant struct {
	Name   string
	Rating Rating
	// Prefs lists group names, most preferred first. It may be empty and
	// is never mutated after construction.
	Prefs []string
}

type Group struct {
	Name   string
	Rating Rating
}

// Seat is one roster position: who holds it, the score that won it, and
// whether it was won through the participant's preference list.
type Seat struct {
	Participant string
	Score       float64
	Preferred   bool
}

type Result struct {
	Rosters  map[string][]Seat // group name, seats descending by score
	Capacity int
}
