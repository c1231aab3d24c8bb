// Copyright 2026 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jf "github.com/someonegg/prefmatch/jugglefest"
)

type Rosters struct {
	Rosters []*jf.Roster `json:"rosters"`
}

func doRun(ctx context.Context, input, output string, asJSON, verbose bool) error {
	jugglers, circuits, err := loadFest(input)
	if err != nil {
		return fmt.Errorf("load fest file failed: %w", err)
	}

	matcher := &jf.Matcher{
		Verbose: verbose,
	}

	rosters, summ, err := matcher.Match(jugglers, circuits)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}
	fmt.Printf("%+v\n", summ)

	if asJSON {
		err = writeJSON(output, rosters)
	} else {
		err = writeText(output, rosters)
	}
	if err != nil {
		return fmt.Errorf("write roster file failed: %w", err)
	}

	return nil
}

func loadFest(file string) ([]*jf.Juggler, []*jf.Circuit, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, nil, err
	}

	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		f, err := jf.DecodeFile(data)
		if err != nil {
			return nil, nil, err
		}
		return f.Jugglers, f.Circuits, nil
	default:
		return jf.Parse(bytes.NewReader(data))
	}
}

func writeText(file string, rosters []*jf.Roster) error {
	return os.WriteFile(file, []byte(jf.Render(rosters)), 0644)
}

func writeJSON(file string, rosters []*jf.Roster) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(Rosters{rosters}); err != nil {
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
