// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

import (
	"errors"
	"fmt"
)

// ErrNoPlacement is returned when a participant fits nowhere: total
// population exceeds total usable capacity. There is no partial result.
var ErrNoPlacement = errors.New("no placement for participant")

type displaceMatcher struct {
	verbose bool
}

// DisplaceMatcher returns a Matcher that walks each participant through its
// preference list, displacing lower-scoring occupants, and falls back to a
// best-fit search over every group once the preferences are exhausted.
func DisplaceMatcher(verbose bool) Matcher {
	return displaceMatcher{verbose}
}

type requestMode int

const (
	tryPreference requestMode = iota
	fallbackSearch
)

// request is one pending reassignment: seat the participant starting at
// preference index pref, or run the fallback search.
type request struct {
	participant string
	mode        requestMode
	pref        int
}

func (m displaceMatcher) Match(store *Store) (Result, error) {
	limit := store.Capacity()

	rosters := make(map[string]*roster, len(store.Groups()))
	for _, name := range store.Groups() {
		rosters[name] = &roster{group: store.Group(name)}
	}

	// Each participant's displacement cascade drains fully before the next
	// participant enters: LIFO keeps the cascade depth-first.
	var stack []request
	for _, name := range store.Participants() {
		stack = append(stack[:0], request{participant: name, mode: tryPreference})
		for len(stack) > 0 {
			req := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			next, err := m.place(store, rosters, req, limit)
			if err != nil {
				return Result{}, err
			}
			if next != nil {
				stack = append(stack, *next)
			}
		}
	}

	result := Result{
		Rosters:  make(map[string][]Seat, len(rosters)),
		Capacity: limit,
	}
	for name, r := range rosters {
		seats := make([]Seat, len(r.seats))
		for i, e := range r.seats {
			seats[i] = Seat{Participant: e.name, Score: e.score, Preferred: e.preferred}
		}
		result.Rosters[name] = seats
	}
	return result, nil
}

func (m displaceMatcher) place(store *Store, rosters map[string]*roster, req request, limit int) (*request, error) {
	p := store.Participant(req.participant)

	if req.mode == tryPreference {
		for rank := req.pref; rank < len(p.Prefs); rank++ {
			r := rosters[p.Prefs[rank]]
			e := seat{name: p.Name, score: weightedFit(p, r.group, rank), preferred: true}
			ok, evicted := r.tryInsert(e, limit)
			if !ok {
				continue
			}
			if m.verbose {
				fmt.Println(p.Name, "seated:", r.group.Name, "rank:", rank, "score:", e.score)
			}
			if evicted != nil {
				if m.verbose {
					fmt.Println(evicted.name, "bumped:", r.group.Name)
				}
				return reassign(store, r.group.Name, evicted.name), nil
			}
			return nil, nil
		}
		// preferences exhausted, fall through to the full search
	}

	// Best fit over every group by raw score: earliest winnable position,
	// then higher raw score, then store order.
	var best *roster
	bestPos, bestScore := -1, 0
	for _, name := range store.Groups() {
		r := rosters[name]
		score := rawFit(p, r.group)
		pos := r.insertPos(float64(score), limit)
		if pos < 0 {
			continue
		}
		if bestPos < 0 || pos < bestPos || (pos == bestPos && score > bestScore) {
			best, bestPos, bestScore = r, pos, score
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPlacement, p.Name)
	}

	_, evicted := best.tryInsert(seat{name: p.Name, score: float64(bestScore)}, limit)
	if m.verbose {
		fmt.Println(p.Name, "seated:", best.group.Name, "fallback score:", bestScore)
	}
	if evicted != nil {
		if m.verbose {
			fmt.Println(evicted.name, "bumped:", best.group.Name)
		}
		return reassign(store, best.group.Name, evicted.name), nil
	}
	return nil, nil
}

// reassign builds the follow-up request for a bumped participant: its next
// preference after the group it lost, or the fallback search when that
// group was not on its list at all.
func reassign(store *Store, group, name string) *request {
	p := store.Participant(name)
	for rank, pref := range p.Prefs {
		if pref == group {
			return &request{participant: name, mode: tryPreference, pref: rank + 1}
		}
	}
	return &request{participant: name, mode: fallbackSearch}
}
