// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/typereduction/interval"
)

const (
	setSeparator  = "---"
	commentMarker = '#'
)

var errNoInput = errors.New("no intervals given")

// readSets collects rule sets from args when present, otherwise from the
// file at path ("" or "-" meaning stdin).
func readSets(args []string, path string, stdin io.Reader) ([]interval.Sequence, error) {
	if len(args) > 0 {
		return parseSets(strings.NewReader(strings.Join(args, " ")))
	}
	if path == "" || path == "-" {
		return parseSets(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseSets(f)
}

// parseSets reads whitespace-separated "a,b,c,d" tokens. A "---" token
// closes the current rule set and '#' comments out the rest of a line.
// Empty sets between separators are skipped.
func parseSets(r io.Reader) ([]interval.Sequence, error) {
	var (
		sets []interval.Sequence
		flat []float64
		sc   = bufio.NewScanner(r)
	)
	flush := func() error {
		if len(flat) == 0 {
			return nil
		}
		seq, err := interval.FromFlat(flat)
		if err != nil {
			return err
		}
		sets = append(sets, seq)
		flat = nil

		return nil
	}
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, commentMarker); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Fields(line) {
			if tok == setSeparator {
				if err := flush(); err != nil {
					return nil, err
				}
				continue
			}
			v, err := parseInterval(tok)
			if err != nil {
				return nil, err
			}
			flat = append(flat, v[:]...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, errNoInput
	}

	return sets, nil
}

// parseInterval splits one token into its row of the flat (a,b,c,d) layout.
func parseInterval(tok string) ([interval.FlatWidth]float64, error) {
	var v [interval.FlatWidth]float64
	fields := strings.Split(tok, ",")
	if len(fields) != interval.FlatWidth {
		return v, fmt.Errorf("parse interval %q: want %d fields, got %d", tok, interval.FlatWidth, len(fields))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return v, fmt.Errorf("parse interval %q: %w", tok, err)
		}
		v[i] = x
	}

	return v, nil
}
