// Package dimen implements TeX dimensions and units.
//
/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Dimen is a dimension type.
// Values are in scaled points, TeX's internal unit: 1pt = 65536sp.
type Dimen int64

// Units understood by ParseDimen. Fractional units are rounded to the
// nearest scaled point, as TeX does.
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point
	PT   Dimen = 65536   // printer's point, 1/72.27 inch
	BP   Dimen = 65782   // big (PostScript) point, 1/72 inch
	PC   Dimen = 786432  // pica = 12pt
	DD   Dimen = 70124   // didot point
	CC   Dimen = 841489  // cicero = 12dd
	MM   Dimen = 186468  // millimeter
	CM   Dimen = 1864680 // centimeter
	IN   Dimen = 4736287 // inch
)

// Infinity is the largest possible dimension.
const Infinity = math.MaxInt64

// Stringer implementation, printing points with TeX's precision.
func (d Dimen) String() string {
	return fmt.Sprintf("%.5gpt", d.Points())
}

// Points returns a dimension in (TeX) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(PT)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)\s*(sp|pt|bp|pc|dd|cc|mm|cm|in)$`)

var errDimenFormat = errors.New("format error parsing dimension")

// ParseDimen parses a string to return a dimension. Syntax is a decimal
// number followed by one of TeX's length units, e.g. “3cm” or “2.5in”.
// Font-relative units (em, ex) and macro-relative lengths cannot be
// resolved without a context and are rejected.
func ParseDimen(s string) (Dimen, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 3 {
		return 0, errDimenFormat
	}
	var scale Dimen
	switch d[2] {
	case "sp":
		scale = SP
	case "pt":
		scale = PT
	case "bp":
		scale = BP
	case "pc":
		scale = PC
	case "dd":
		scale = DD
	case "cc":
		scale = CC
	case "mm":
		scale = MM
	case "cm":
		scale = CM
	case "in":
		scale = IN
	default:
		return 0, errDimenFormat
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, errDimenFormat
	}
	return Dimen(math.Round(n * float64(scale))), nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
