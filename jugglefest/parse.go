// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads the fest text format: one record per line, blank lines
// ignored.
//
//	C <name> H:<n> E:<n> P:<n>
//	J <name> H:<n> E:<n> P:<n> <circuit>,<circuit>,...
//
// The preference list of a J record may be absent. Malformed lines are
// rejected with their line number.
func Parse(r io.Reader) ([]*Juggler, []*Circuit, error) {
	var (
		jugglers []*Juggler
		circuits []*Circuit
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		switch fields[0] {
		case "C":
			c, err := parseCircuit(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}
			circuits = append(circuits, c)
		case "J":
			j, err := parseJuggler(fields)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", line, err)
			}
			jugglers = append(jugglers, j)
		default:
			return nil, nil, fmt.Errorf("line %d: unknown record type %q", line, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	return jugglers, circuits, nil
}

func parseCircuit(fields []string) (*Circuit, error) {
	if len(fields) != 5 {
		return nil, fmt.Errorf("circuit record needs 5 fields, has %d", len(fields))
	}
	h, e, p, err := parseRatings(fields[2:5])
	if err != nil {
		return nil, err
	}
	return &Circuit{Name: fields[1], H: h, E: e, P: p}, nil
}

func parseJuggler(fields []string) (*Juggler, error) {
	if len(fields) != 5 && len(fields) != 6 {
		return nil, fmt.Errorf("juggler record needs 5 or 6 fields, has %d", len(fields))
	}
	h, e, p, err := parseRatings(fields[2:5])
	if err != nil {
		return nil, err
	}
	j := &Juggler{Name: fields[1], H: h, E: e, P: p}
	if len(fields) == 6 {
		j.Prefs = strings.Split(fields[5], ",")
		for _, pref := range j.Prefs {
			if pref == "" {
				return nil, fmt.Errorf("empty circuit name in preference list %q", fields[5])
			}
		}
	}
	return j, nil
}

func parseRatings(fields []string) (h, e, p int, err error) {
	if h, err = parseRating(fields[0], "H"); err != nil {
		return
	}
	if e, err = parseRating(fields[1], "E"); err != nil {
		return
	}
	p, err = parseRating(fields[2], "P")
	return
}

func parseRating(field, axis string) (int, error) {
	val, ok := strings.CutPrefix(field, axis+":")
	if !ok {
		return 0, fmt.Errorf("rating %q does not start with %s:", field, axis)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("rating %q is not a number", field)
	}
	if n < 0 {
		return 0, fmt.Errorf("rating %q is negative", field)
	}
	return n, nil
}
