// Package causes reads the crash-artifact directory convention spec.md
// §4.7 describes for the (out-of-scope) cause tracker: one file per
// crashing input, named "<cause>%<suffix>" where <cause> is a
// human-readable bug tag with underscores standing in for spaces.
//
// This package implements only the parsing half of the original cause
// tracker (see original_source/src/causes.rs): reading a directory and
// recovering the tag/suffix/creation-order triples, plus Missing, which
// reconciles the found tags against an expected list. The "found_all"
// bookkeeping the original performs is out of scope here, same as the
// rest of the broker machinery.
package causes

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Cause is one parsed crash-artifact entry.
type Cause struct {
	// Tag is the human-readable bug identifier, with underscores
	// replaced by spaces.
	Tag string
	// Suffix is whatever followed the first "%" in the filename, or
	// empty if the filename had none.
	Suffix string
	// Path is the artifact's full path.
	Path string
	// ModTime orders causes the same way the original orders by
	// creation time: earliest first.
	ModTime time.Time
}

// Scan reads dir and returns one Cause per entry, ordered by ModTime
// ascending (earliest-discovered first, mirroring the original's
// time-to-exposure ordering).
func Scan(dir string) ([]Cause, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	causesList := make([]Cause, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}

		tag, suffix := splitCauseName(entry.Name())
		causesList = append(causesList, Cause{
			Tag:     tag,
			Suffix:  suffix,
			Path:    filepath.Join(dir, entry.Name()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(causesList, func(i, j int) bool {
		return causesList[i].ModTime.Before(causesList[j].ModTime)
	})
	return causesList, nil
}

// splitCauseName splits a "<cause>%<suffix>" filename on its first "%"
// and replaces underscores in the cause part with spaces.
func splitCauseName(name string) (tag, suffix string) {
	before, after, found := strings.Cut(name, "%")
	tag = strings.ReplaceAll(before, "_", " ")
	if found {
		suffix = after
	}
	return tag, suffix
}

// Missing returns the entries of expected not present as a Tag among
// found, preserving expected's order.
func Missing(found []Cause, expected []string) []string {
	seen := make(map[string]bool, len(found))
	for _, c := range found {
		seen[c.Tag] = true
	}

	var missing []string
	for _, tag := range expected {
		if !seen[tag] {
			missing = append(missing, tag)
		}
	}
	return missing
}
