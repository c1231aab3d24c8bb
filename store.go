// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

import (
	"fmt"
	"sort"
)

// Store owns every participant and group record for one run. Iteration
// order is natural name order, see natLess.
type Store struct {
	participants map[string]*Participant
	groups       map[string]*Group
	pnames       []string
	gnames       []string
}

// NewStore validates the records and indexes them by name. Duplicate names
// and preferences that name no known group are rejected here, before any
// matching starts.
func NewStore(participants []Participant, groups []Group) (*Store, error) {
	s := &Store{
		participants: make(map[string]*Participant, len(participants)),
		groups:       make(map[string]*Group, len(groups)),
		pnames:       make([]string, 0, len(participants)),
		gnames:       make([]string, 0, len(groups)),
	}

	for i := range groups {
		g := &groups[i]
		if _, dup := s.groups[g.Name]; dup {
			return nil, fmt.Errorf("duplicate group %q", g.Name)
		}
		s.groups[g.Name] = g
		s.gnames = append(s.gnames, g.Name)
	}

	for i := range participants {
		p := &participants[i]
		if _, dup := s.participants[p.Name]; dup {
			return nil, fmt.Errorf("duplicate participant %q", p.Name)
		}
		for _, pref := range p.Prefs {
			if _, ok := s.groups[pref]; !ok {
				return nil, fmt.Errorf("participant %q prefers unknown group %q", p.Name, pref)
			}
		}
		s.participants[p.Name] = p
		s.pnames = append(s.pnames, p.Name)
	}

	sort.Slice(s.gnames, func(i, j int) bool { return natLess(s.gnames[i], s.gnames[j]) })
	sort.Slice(s.pnames, func(i, j int) bool { return natLess(s.pnames[i], s.pnames[j]) })

	return s, nil
}

func (s *Store) Participant(name string) *Participant {
	return s.participants[name]
}

func (s *Store) Group(name string) *Group {
	return s.groups[name]
}

// Participants returns every participant name in natural order.
func (s *Store) Participants() []string {
	return s.pnames
}

// Groups returns every group name in natural order.
func (s *Store) Groups() []string {
	return s.gnames
}

// Capacity is the uniform per-group roster bound. It is derived, never
// stored: floor of participant count over group count.
func (s *Store) Capacity() int {
	if len(s.gnames) == 0 {
		return 0
	}
	return len(s.pnames) / len(s.gnames)
}
