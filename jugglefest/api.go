// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jugglefest uses prefmatch to assign jugglers to circuits.
package jugglefest

type Circuit struct {
	Name string `json:"name" yaml:"name"`
	H    int    `json:"h" yaml:"h"`
	E    int    `json:"e" yaml:"e"`
	P    int    `json:"p" yaml:"p"`
}

type Juggler struct {
	Name  string   `json:"name" yaml:"name"`
	H     int      `json:"h" yaml:"h"`
	E     int      `json:"e" yaml:"e"`
	P     int      `json:"p" yaml:"p"`
	Prefs []string `json:"prefs,omitempty" yaml:"prefs,omitempty"`
}

// FitScore is a juggler's raw fit against one circuit.
type FitScore struct {
	Circuit string `json:"circuit"`
	Score   int    `json:"score"`
}

// Assignment is one seated juggler: its fit against every circuit on its
// preference list, in preference order, plus the fit against the circuit it
// actually landed in when that circuit was not on the list.
type Assignment struct {
	Juggler  string     `json:"juggler"`
	Scores   []FitScore `json:"scores"`
	Fallback *FitScore  `json:"fallback,omitempty"`
}

type Roster struct {
	Circuit  string       `json:"circuit"`
	Jugglers []Assignment `json:"jugglers"`
}

type Summary struct {
	JugglersCount int `json:"jugglers"`
	CircuitsCount int `json:"circuits"`
	Capacity      int `json:"capacity"`
	Fallbacks     int `json:"fallbacks"`
}

type Matcher struct {
	Verbose bool `json:"vv"`
}
