// Package file reads roster and match files and writes reports.
package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/okian/tagscore/internal/domain/model"
	"github.com/okian/tagscore/internal/domain/roster"
)

// hitFields is the number of fields on a match line:
// shooter, target, timestamp (ms), location.
const hitFields = 4

// ReadRoster opens path and parses it with ParseRoster.
func ReadRoster(path string) (model.RosterSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.RosterSpec{}, fmt.Errorf("%w: %w", ErrMissingFile, err)
	}
	defer func() { _ = f.Close() }()

	spec, err := ParseRoster(f)
	if err != nil {
		return model.RosterSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// ParseRoster reads a roster: the team name, the declared player count, then
// one "<id> <name>" line per player. Lines past the declared count are not
// parsed.
func ParseRoster(r io.Reader) (model.RosterSpec, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return model.RosterSpec{}, scanErr(sc, "missing team name")
	}
	spec := model.RosterSpec{Name: strings.TrimRight(sc.Text(), "\r")}

	if !sc.Scan() {
		return model.RosterSpec{}, scanErr(sc, "missing player count")
	}
	declared, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || declared < 0 {
		return model.RosterSpec{}, fmt.Errorf("%w: line 2: player count %q", ErrMalformedRecord, sc.Text())
	}
	spec.Declared = declared
	spec.Entries = make([]model.RosterEntry, 0, declared)

	for line := 3; len(spec.Entries) < declared && sc.Scan(); line++ {
		e, err := roster.ParseEntry(sc.Text())
		if err != nil {
			return model.RosterSpec{}, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, line, err)
		}
		spec.Entries = append(spec.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return model.RosterSpec{}, readErr(err)
	}
	return spec, nil
}

// ReadMatch opens path and parses it with ParseMatch.
func ReadMatch(path string) (model.MatchSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.MatchSpec{}, fmt.Errorf("%w: %w", ErrMissingFile, err)
	}
	defer func() { _ = f.Close() }()

	spec, err := ParseMatch(f)
	if err != nil {
		return model.MatchSpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// ParseMatch reads the declared hit count followed by one hit per line.
// Blank lines are skipped. Every remaining line is returned, even past the
// declared count, so the caller can reject the overflow.
func ParseMatch(r io.Reader) (model.MatchSpec, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return model.MatchSpec{}, scanErr(sc, "missing hit count")
	}
	declared, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || declared < 0 {
		return model.MatchSpec{}, fmt.Errorf("%w: line 1: hit count %q", ErrMalformedRecord, sc.Text())
	}
	spec := model.MatchSpec{Declared: declared, Events: make([]model.HitEvent, 0, declared)}

	for line := 2; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		ev, err := ParseHit(text)
		if err != nil {
			return model.MatchSpec{}, fmt.Errorf("line %d: %w", line, err)
		}
		spec.Events = append(spec.Events, ev)
	}
	if err := sc.Err(); err != nil {
		return model.MatchSpec{}, readErr(err)
	}
	return spec, nil
}

// ParseHit parses "<shooter> <target> <timestampMs> <location>".
func ParseHit(line string) (model.HitEvent, error) {
	fields := strings.Fields(line)
	if len(fields) != hitFields {
		return model.HitEvent{}, fmt.Errorf("%w: want %d fields, got %d in %q", ErrMalformedRecord, hitFields, len(fields), line)
	}

	var nums [hitFields]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return model.HitEvent{}, fmt.Errorf("%w: field %d %q is not an integer", ErrMalformedRecord, i+1, f)
		}
		nums[i] = n
	}
	return model.HitEvent{
		ShooterID: nums[0],
		TargetID:  nums[1],
		At:        time.Duration(nums[2]) * time.Millisecond,
		Location:  nums[3],
	}, nil
}

func scanErr(sc *bufio.Scanner, what string) error {
	if err := sc.Err(); err != nil {
		return readErr(err)
	}
	return fmt.Errorf("%w: %s", ErrMalformedRecord, what)
}

// readErr classifies a scanner failure. An oversized line is a bad record in
// a readable file; anything else means the file could not be read.
func readErr(err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return fmt.Errorf("%w: %w", ErrMissingFile, err)
}
