// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefmatch

type seat struct {
	name      string
	score     float64
	preferred bool
}

// roster is one group's admitted seats, descending by score, never longer
// than the run capacity between operations.
type roster struct {
	group *Group
	seats []seat
}

// insertPos returns the position a score would enter at, or -1 when the
// roster offers no seat that score can win within limit. Ties keep the
// incumbent: strictly greater scores only.
func (r *roster) insertPos(score float64, limit int) int {
	for i := 0; i < limit; i++ {
		if i >= len(r.seats) || r.seats[i].score < score {
			return i
		}
	}
	return -1
}

// tryInsert seats e if it wins a position. When the insert pushes the
// roster past limit, the new tail is cut and returned for reassignment; at
// most one seat is evicted per call.
func (r *roster) tryInsert(e seat, limit int) (ok bool, evicted *seat) {
	pos := r.insertPos(e.score, limit)
	if pos < 0 {
		return false, nil
	}

	r.seats = append(r.seats, seat{})
	copy(r.seats[pos+1:], r.seats[pos:])
	r.seats[pos] = e

	if len(r.seats) > limit {
		out := r.seats[len(r.seats)-1]
		r.seats = r.seats[:len(r.seats)-1]
		return true, &out
	}
	return true, nil
}
