// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jugglefest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the structured fest-file form of the text format.
type File struct {
	Circuits []*Circuit `json:"circuits" yaml:"circuits"`
	Jugglers []*Juggler `json:"jugglers" yaml:"jugglers"`
}

// DecodeFile parses a YAML fest file and applies the same record checks the
// text parser does.
func DecodeFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	for _, c := range f.Circuits {
		if c.Name == "" {
			return nil, fmt.Errorf("circuit without a name")
		}
		if c.H < 0 || c.E < 0 || c.P < 0 {
			return nil, fmt.Errorf("circuit %q has a negative rating", c.Name)
		}
	}
	for _, j := range f.Jugglers {
		if j.Name == "" {
			return nil, fmt.Errorf("juggler without a name")
		}
		if j.H < 0 || j.E < 0 || j.P < 0 {
			return nil, fmt.Errorf("juggler %q has a negative rating", j.Name)
		}
		for _, pref := range j.Prefs {
			if pref == "" {
				return nil, fmt.Errorf("juggler %q has an empty circuit preference", j.Name)
			}
		}
	}

	return &f, nil
}
