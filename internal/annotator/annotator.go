// Package annotator inserts latitude/longitude fields into seed documents.
//
// A seed document is treated as opaque text. For every entry of a coordinate
// table the annotator looks for a literal anchor built from the entry's
// city and district and inserts the two coordinate fields at a fixed point
// of that anchor. Text that does not match an anchor is copied unchanged.
package annotator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"seed-geocoder/internal/models"
)

// DefaultIndent is the field separator used by the seed file's object literals.
const DefaultIndent = "    "

var (
	ErrUnknownMode     = errors.New("annotator: unknown mode")
	ErrDuplicateKey    = errors.New("annotator: duplicate location key")
	ErrInvalidLocation = errors.New("annotator: invalid location")
	ErrNotText         = errors.New("annotator: document is not valid UTF-8 text")
)

// Mode selects the anchor used to find insertion points.
type Mode int

const (
	// ModeCityDistrict anchors on `city: "<CITY>",` followed by `district: "<DISTRICT>",`
	// and inserts the fields after the district field.
	ModeCityDistrict Mode = iota + 1
	// ModeDistrictImages anchors on `district: "<DISTRICT>",` followed by `images:`
	// and inserts the fields between the two.
	ModeDistrictImages
)

func (m Mode) String() string {
	switch m {
	case ModeCityDistrict:
		return "city-district"
	case ModeDistrictImages:
		return "district-images"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the textual name of a mode. The empty string selects ModeCityDistrict.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "city-district":
		return ModeCityDistrict, nil
	case "district-images":
		return ModeDistrictImages, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Options tune the text layout of anchors and inserted fields.
type Options struct {
	// Indent follows every newline inside anchors and inserted fields. Defaults to DefaultIndent.
	Indent string
}

// Match counts the insertions made for one table entry.
type Match struct {
	Key   models.LocationKey `json:"key"`
	Count int                `json:"count"`
}

// Report summarizes one annotation pass.
type Report struct {
	Mode     Mode                 `json:"-"`
	Inserted int                  `json:"inserted"`
	Matches  []Match              `json:"matches"`
	Missing  []models.LocationKey `json:"missing"`
}

// Annotate runs AnnotateWithOptions with the default layout.
func Annotate(doc string, table *Table, mode Mode) (string, Report, error) {
	return AnnotateWithOptions(doc, table, mode, Options{})
}

// AnnotateWithOptions inserts coordinate fields into doc for every table entry, in table order.
// Entries whose anchor does not occur are reported as missing, which is not an error.
// Occurrences already followed by a latitude field are left alone, so annotating
// an annotated document returns it unchanged.
func AnnotateWithOptions(doc string, table *Table, mode Mode, opts Options) (string, Report, error) {
	report := Report{Mode: mode}

	if !utf8.ValidString(doc) {
		return "", report, ErrNotText
	}
	if table == nil {
		return doc, report, nil
	}
	if err := table.validateFor(mode); err != nil {
		return "", report, err
	}

	nl := "\n" + opts.Indent
	if opts.Indent == "" {
		nl = "\n" + DefaultIndent
	}
	guard := nl + "latitude:"

	for _, loc := range table.entries {
		head, tail := anchor(mode, loc, nl)
		fields := fmt.Sprintf(`%slatitude: "%s",%slongitude: "%s",`, nl, loc.Latitude, nl, loc.Longitude)

		var n int
		doc, n = insertAll(doc, head, tail, fields, guard)
		if n == 0 {
			report.Missing = append(report.Missing, loc.Key())
			continue
		}
		report.Inserted += n
		report.Matches = append(report.Matches, Match{Key: loc.Key(), Count: n})
	}

	return doc, report, nil
}

// anchor returns the two halves of the anchor; fields go between them.
func anchor(mode Mode, loc models.Location, nl string) (head, tail string) {
	district := fmt.Sprintf(`district: "%s",`, loc.District)
	if mode == ModeDistrictImages {
		return district, nl + "images:"
	}
	return fmt.Sprintf(`city: "%s",%s%s`, loc.City, nl, district), ""
}

// insertAll places fields after every non-overlapping occurrence of head+tail,
// skipping occurrences where the text after head already starts with guard.
func insertAll(doc, head, tail, fields, guard string) (string, int) {
	pattern := head + tail

	var b strings.Builder
	n, last := 0, 0
	for i := 0; i <= len(doc); {
		j := strings.Index(doc[i:], pattern)
		if j < 0 {
			break
		}
		at := i + j + len(head)
		if !strings.HasPrefix(doc[at:], guard) {
			if n == 0 {
				b.Grow(len(doc) + len(fields))
			}
			b.WriteString(doc[last:at])
			b.WriteString(fields)
			last = at
			n++
		}
		i += j + len(pattern)
	}
	if n == 0 {
		return doc, 0
	}
	b.WriteString(doc[last:])
	return b.String(), n
}
