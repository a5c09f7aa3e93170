package path

import (
	"slices"
	"strings"

	"github.com/matzehuels/svgbuild/pkg/errors"
	"github.com/matzehuels/svgbuild/pkg/svg/num"
)

// Kind identifies one of the supported path-data commands.
type Kind uint8

// Supported commands. The zero Kind is invalid.
const (
	_ Kind = iota
	MoveTo
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CubicBezierCurve
	QuadraticBezierCurve
	SmoothQuadraticBezierCurve
)

// unit is the kind of value a command is built from.
type unit uint8

const (
	unitPair unit = iota
	unitScalar
)

type kindInfo struct {
	name   string
	letter byte // absolute form; relative is the lower-case letter
	unit   unit
	group  int // units per segment; 1 means "at least one"
}

var kinds = [...]kindInfo{
	MoveTo:                     {"MoveTo", 'M', unitPair, 1},
	LineTo:                     {"LineTo", 'L', unitPair, 1},
	HorizontalLineTo:           {"HorizontalLineTo", 'H', unitScalar, 1},
	VerticalLineTo:             {"VerticalLineTo", 'V', unitScalar, 1},
	CubicBezierCurve:           {"CubicBezierCurve", 'C', unitPair, 3},
	QuadraticBezierCurve:       {"QuadraticBezierCurve", 'Q', unitPair, 2},
	SmoothQuadraticBezierCurve: {"SmoothQuadraticBezierCurve", 'T', unitPair, 1},
}

// Valid reports whether k is one of the supported commands.
func (k Kind) Valid() bool {
	return k > 0 && int(k) < len(kinds)
}

// String returns the command name, e.g. "CubicBezierCurve".
func (k Kind) String() string {
	if !k.Valid() {
		return "Invalid"
	}
	return kinds[k].name
}

// Prefix returns the command letter: upper case when absolute, lower case otherwise.
func (k Kind) Prefix(absolute bool) string {
	if !k.Valid() {
		return "?"
	}
	c := kinds[k].letter
	if !absolute {
		c += 'a' - 'A'
	}
	return string(c)
}

// Scalar reports whether the command takes single values (H, V) instead of pairs.
func (k Kind) Scalar() bool {
	return k.Valid() && kinds[k].unit == unitScalar
}

// KindFromLetter maps a command letter (either case) to its Kind.
// The second result reports absolute (upper-case) form.
func KindFromLetter(letter string) (Kind, bool, bool) {
	if len(letter) != 1 {
		return 0, false, false
	}
	c := letter[0]
	abs := c >= 'A' && c <= 'Z'
	if !abs {
		c -= 'a' - 'A'
	}
	for k := MoveTo; k.Valid(); k++ {
		if kinds[k].letter == c {
			return k, abs, true
		}
	}
	return 0, false, false
}

// Point is a coordinate pair.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Command is one path-data instruction. It is an immutable value: appending
// returns a new Command and the original is left untouched.
//
// Pair commands keep their coordinates in points, scalar commands (H, V) in
// values; the other slice is always nil.
type Command struct {
	kind     Kind
	absolute bool
	points   []Point
	values   []float64
}

// New builds a pair command of the given kind. It fails for scalar kinds,
// for an empty point list, and when the point count does not match the
// command's segment size.
func New(kind Kind, absolute bool, pts ...Point) (Command, error) {
	c := Command{kind: kind, absolute: absolute, points: slices.Clone(pts)}
	if err := c.validate(); err != nil {
		return Command{}, err
	}
	return c, nil
}

// NewScalar builds a scalar command (H or V).
func NewScalar(kind Kind, absolute bool, vs ...float64) (Command, error) {
	c := Command{kind: kind, absolute: absolute, values: slices.Clone(vs)}
	if err := c.validate(); err != nil {
		return Command{}, err
	}
	return c, nil
}

// NewMoveTo builds an M/m command.
func NewMoveTo(absolute bool, pts ...Point) (Command, error) {
	return New(MoveTo, absolute, pts...)
}

// NewLineTo builds an L/l command.
func NewLineTo(absolute bool, pts ...Point) (Command, error) {
	return New(LineTo, absolute, pts...)
}

// NewHorizontalLineTo builds an H/h command.
func NewHorizontalLineTo(absolute bool, xs ...float64) (Command, error) {
	return NewScalar(HorizontalLineTo, absolute, xs...)
}

// NewVerticalLineTo builds a V/v command.
func NewVerticalLineTo(absolute bool, ys ...float64) (Command, error) {
	return NewScalar(VerticalLineTo, absolute, ys...)
}

// NewCubicBezierCurve builds a C/c command. Points come in triplets:
// first control point, second control point, end point.
func NewCubicBezierCurve(absolute bool, pts ...Point) (Command, error) {
	return New(CubicBezierCurve, absolute, pts...)
}

// NewQuadraticBezierCurve builds a Q/q command. Points come in pairs:
// control point, end point.
func NewQuadraticBezierCurve(absolute bool, pts ...Point) (Command, error) {
	return New(QuadraticBezierCurve, absolute, pts...)
}

// NewSmoothQuadraticBezierCurve builds a T/t command.
func NewSmoothQuadraticBezierCurve(absolute bool, pts ...Point) (Command, error) {
	return New(SmoothQuadraticBezierCurve, absolute, pts...)
}

// Must panics if err is non-nil. It is intended for command literals in
// tests and examples.
func Must(c Command, err error) Command {
	if err != nil {
		panic(err)
	}
	return c
}

// Append returns a copy of c with pts added. The result is checked against
// the same arity rule as construction, so a cubic curve only accepts whole
// triplets.
func (c Command) Append(pts ...Point) (Command, error) {
	if c.kind.Scalar() {
		return Command{}, errors.New(errors.ErrCodeInvalidPathCommand,
			"%s takes half coordinates, not coordinate pairs", c.Prefix())
	}
	next := Command{kind: c.kind, absolute: c.absolute, points: append(slices.Clip(c.points), pts...)}
	if err := next.validate(); err != nil {
		return Command{}, err
	}
	return next, nil
}

// AppendScalar returns a copy of c with vs added. Only H and V accept scalars.
func (c Command) AppendScalar(vs ...float64) (Command, error) {
	if !c.kind.Scalar() {
		return Command{}, errors.New(errors.ErrCodeInvalidPathCommand,
			"%s takes coordinate pairs, not half coordinates", c.Prefix())
	}
	next := Command{kind: c.kind, absolute: c.absolute, values: append(slices.Clip(c.values), vs...)}
	if err := next.validate(); err != nil {
		return Command{}, err
	}
	return next, nil
}

// Kind returns the command kind.
func (c Command) Kind() Kind { return c.kind }

// Absolute reports whether coordinates are absolute (upper-case prefix).
func (c Command) Absolute() bool { return c.absolute }

// Prefix returns the command letter, cased by Absolute.
func (c Command) Prefix() string { return c.kind.Prefix(c.absolute) }

// Points returns a copy of the coordinate pairs. It is nil for H and V.
func (c Command) Points() []Point { return slices.Clone(c.points) }

// Values returns a copy of the scalar values. It is nil for pair commands.
func (c Command) Values() []float64 { return slices.Clone(c.values) }

// Len returns the number of coordinate units (pairs or scalars).
func (c Command) Len() int {
	if c.kind.Scalar() {
		return len(c.values)
	}
	return len(c.points)
}

// String renders the command with the default number format, e.g. "L20,20 30,30".
func (c Command) String() string {
	return c.Format(num.Default)
}

// Format renders the command with f.
func (c Command) Format(f num.Format) string {
	var sb strings.Builder
	sb.WriteString(c.Prefix())
	if c.kind.Scalar() {
		for i, v := range c.values {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(f.Float(v))
		}
		return sb.String()
	}
	for i, p := range c.points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Pair(p.X, p.Y))
	}
	return sb.String()
}

// Join renders cmds as a single path-data string, one space between commands.
func Join(cmds []Command, f num.Format) string {
	parts := make([]string, len(cmds))
	for i, c := range cmds {
		parts[i] = c.Format(f)
	}
	return strings.Join(parts, " ")
}

func (c Command) validate() error {
	if !c.kind.Valid() {
		return errors.New(errors.ErrCodeInvalidPathCommand, "unknown path command kind %d", c.kind)
	}
	info := kinds[c.kind]
	prefix := c.Prefix()

	if info.unit == unitScalar {
		if c.points != nil {
			return errors.New(errors.ErrCodeInvalidPathCommand, "%s takes half coordinates, not coordinate pairs", prefix)
		}
		if len(c.values) < 1 {
			return errors.New(errors.ErrCodeInvalidPathCommand, "%s requires at least 1 half coordinate", prefix)
		}
		return nil
	}

	if c.values != nil {
		return errors.New(errors.ErrCodeInvalidPathCommand, "%s takes coordinate pairs, not half coordinates", prefix)
	}
	switch n := len(c.points); {
	case n < 1:
		return errors.New(errors.ErrCodeInvalidPathCommand, "%s requires at least 1 coordinate", prefix)
	case info.group == 3 && n%3 != 0:
		return errors.New(errors.ErrCodeInvalidPathCommand, "%s must consist of coordinate triplets", prefix)
	case info.group == 2 && n%2 != 0:
		return errors.New(errors.ErrCodeInvalidPathCommand, "%s must consist of coordinate pairs", prefix)
	}
	return nil
}
