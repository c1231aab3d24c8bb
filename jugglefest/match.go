// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

import (
	"fmt"

	"github.com/someonegg/prefmatch"
)

// Match assigns every juggler to a circuit. Rosters come back in natural
// circuit order, each in descending seat-score order.
func (m *Matcher) Match(jugglers []*Juggler, circuits []*Circuit) ([]*Roster, Summary, error) {
	var summ Summary
	summ.JugglersCount = len(jugglers)
	summ.CircuitsCount = len(circuits)

	store, err := genStore(jugglers, circuits)
	if err != nil {
		return nil, summ, err
	}
	summ.Capacity = store.Capacity()

	if m.Verbose {
		fmt.Printf("jugglers: %v, circuits: %v, capacity: %v\n",
			len(jugglers), len(circuits), summ.Capacity)
	}

	result, err := prefmatch.DisplaceMatcher(m.Verbose).Match(store)
	if err != nil {
		return nil, summ, err
	}

	jmap := make(map[string]*Juggler, len(jugglers))
	for _, j := range jugglers {
		jmap[j.Name] = j
	}
	cmap := make(map[string]*Circuit, len(circuits))
	for _, c := range circuits {
		cmap[c.Name] = c
	}

	rosters := make([]*Roster, 0, len(circuits))
	for _, cname := range store.Groups() {
		ro := &Roster{Circuit: cname}
		for _, st := range result.Rosters[cname] {
			j := jmap[st.Participant]
			a := Assignment{Juggler: j.Name}
			for _, pref := range j.Prefs {
				a.Scores = append(a.Scores, FitScore{Circuit: pref, Score: fit(j, cmap[pref])})
			}
			if !st.Preferred {
				a.Fallback = &FitScore{Circuit: cname, Score: fit(j, cmap[cname])}
				summ.Fallbacks++
			}
			ro.Jugglers = append(ro.Jugglers, a)
		}
		rosters = append(rosters, ro)
	}

	return rosters, summ, nil
}

func fit(j *Juggler, c *Circuit) int {
	return j.H*c.H + j.E*c.E + j.P*c.P
}

func genStore(jugglers []*Juggler, circuits []*Circuit) (*prefmatch.Store, error) {
	participants := make([]prefmatch.Participant, len(jugglers))
	for i, j := range jugglers {
		participants[i] = prefmatch.Participant{
			Name:   j.Name,
			Rating: prefmatch.Rating{A: j.H, B: j.E, C: j.P},
			Prefs:  j.Prefs,
		}
	}

	groups := make([]prefmatch.Group, len(circuits))
	for i, c := range circuits {
		groups[i] = prefmatch.Group{
			Name:   c.Name,
			Rating: prefmatch.Rating{A: c.H, B: c.E, C: c.P},
		}
	}

	return prefmatch.NewStore(participants, groups)
}
