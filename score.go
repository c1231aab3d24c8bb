// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

// rawFit scores a participant against a group it expressed no preference
// for: the plain dot product of the two ratings.
func rawFit(p *Participant, g *Group) int {
	return p.Rating.Dot(g.Rating)
}

// weightedFit adds a fractional preference bonus to the raw fit. The bonus
// stays inside (0, 1), so among equal raw fits the participant that ranks
// the group higher always wins, and a real raw-fit difference is never
// overturned. rank is the zero-based position of g in p.Prefs.
func weightedFit(p *Participant, g *Group, rank int) float64 {
	bonus := 1.0 - float64(rank+1)/float64(len(p.Prefs)+1)
	return float64(rawFit(p, g)) + bonus
}
