// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

import (
	"bytes"
	"fmt"
)

// Render writes the roster text format: one line per circuit, jugglers in
// seat order separated by ", ", each followed by its fit against every
// preferred circuit as name:score. A juggler seated off its preference
// list also carries the assigned circuit as name=score.
func Render(rosters []*Roster) string {
	var buf bytes.Buffer

	for _, ro := range rosters {
		buf.WriteString(ro.Circuit)
		for i, a := range ro.Jugglers {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte(' ')
			buf.WriteString(a.Juggler)
			for _, s := range a.Scores {
				fmt.Fprintf(&buf, " %s:%d", s.Circuit, s.Score)
			}
			if a.Fallback != nil {
				fmt.Fprintf(&buf, " %s=%d", a.Fallback.Circuit, a.Fallback.Score)
			}
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}
