// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package issue locates issue directories and orders their page images.
// An issue is one dated publication unit, identified by year and month,
// whose pages live as individual JPEG scans in a single directory.
package issue

import (
	"regexp"
	"strconv"
	"strings"
)

// pageNamePattern matches the strict page naming convention
// PREFIX_YYYY_MM_NNN[sub][letter].jpg: an alphabetic prefix, 4-digit year,
// 2-digit month, 3-digit page sequence, optional single-digit sub-index and
// optional single trailing letter. Case-insensitive, .jpg or .jpeg.
var pageNamePattern = regexp.MustCompile(`(?i)^([a-z]+)_(\d{4})_(\d{2})_(\d{3})(\d)?([a-z])?\.jpe?g$`)

// PageName is the parsed, sortable form of a filename following the strict
// page naming convention.
type PageName struct {
	Year  int
	Month int
	Seq   int

	// Sub is the optional single-digit sub-index; 0 when absent.
	Sub int

	// Suffix is the optional trailing letter, upper-cased; "" when absent.
	Suffix string
}

// ParsePageName classifies a filename. ok is false for any filename that
// does not follow the strict convention; there is no third outcome, so
// every filename is either a numbered page or an extra.
func ParsePageName(name string) (PageName, bool) {
	m := pageNamePattern.FindStringSubmatch(name)
	if m == nil {
		return PageName{}, false
	}

	year, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	seq, _ := strconv.Atoi(m[4])
	sub := 0
	if m[5] != "" {
		sub, _ = strconv.Atoi(m[5])
	}

	return PageName{
		Year:   year,
		Month:  month,
		Seq:    seq,
		Sub:    sub,
		Suffix: strings.ToUpper(m[6]),
	}, true
}

// Less orders page names by (year, month, sequence, sub-index, letter
// suffix), all ascending and all compared numerically where numeric. A
// missing suffix sorts before any letter, so "051" precedes "051B" at the
// same sequence number.
func (p PageName) Less(q PageName) bool {
	if p.Year != q.Year {
		return p.Year < q.Year
	}
	if p.Month != q.Month {
		return p.Month < q.Month
	}
	if p.Seq != q.Seq {
		return p.Seq < q.Seq
	}
	if p.Sub != q.Sub {
		return p.Sub < q.Sub
	}
	return p.Suffix < q.Suffix
}
