// Package num formats numbers for SVG attribute values and path data.
//
// Every positional number written by the builder (coordinates, radii, path
// points) goes through a single [Format], so one document never mixes
// conventions. The zero-configuration [Default] writes the shortest decimal
// that round-trips ("10", "10.5", "-3.25"). A fixed precision rounds half away
// from zero, and grouping inserts English thousands separators.
//
// Grouping is not safe for path data: "," also separates the two halves of a
// coordinate pair, so "M1,234,5" is ambiguous. It exists for attribute values
// that are only ever read by people (labels, titles built from numbers).
package num

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Shortest is the precision value that selects shortest round-trip formatting.
const Shortest = -1

// MaxPrecision is the largest fixed precision accepted from scenes, flags
// and query parameters.
const MaxPrecision = 12

// maxGroupedFraction caps fraction digits when grouping is combined with
// shortest formatting, since x/text has no round-trip mode.
const maxGroupedFraction = 6

// Format describes how a float64 is rendered.
type Format struct {
	// Precision is the fixed number of decimals, or Shortest.
	Precision int
	// Grouping enables thousands separators ("1,234").
	Grouping bool
}

// Default is the format used when nothing else is configured.
var Default = Format{Precision: Shortest}

// Fixed returns an ungrouped format with n decimals. A negative n selects Shortest.
func Fixed(n int) Format {
	if n < 0 {
		n = Shortest
	}
	return Format{Precision: n}
}

// Float renders v. Negative zero is rendered as "0".
func (f Format) Float(v float64) string {
	if f.Precision >= 0 {
		v = Round(v, f.Precision)
	}
	if v == 0 {
		v = 0
	}
	if f.Grouping {
		return grouped(v, f.Precision)
	}
	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}

// Pair renders a coordinate pair as "x,y".
func (f Format) Pair(x, y float64) string {
	return f.Float(x) + "," + f.Float(y)
}

// Round rounds v to n decimals, halves away from zero.
func Round(v float64, n int) float64 {
	if n <= 0 {
		return math.Round(v)
	}
	p := math.Pow10(n)
	r := math.Round(v*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}

// Integer renders an integral float without decimals or grouping.
// Used for viewBox values, which are always whole numbers.
func Integer(v float64) string {
	v = math.Trunc(v)
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

func grouped(v float64, prec int) string {
	p := message.NewPrinter(language.English)
	if prec < 0 {
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(maxGroupedFraction)))
	}
	return p.Sprint(number.Decimal(v, number.Scale(prec)))
}
