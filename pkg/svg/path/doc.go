// Package path models SVG path-data commands.
//
// A [Command] is a tagged value: its [Kind] selects the letter (M, L, H, V,
// C, Q, T), the unit it is built from (coordinate pairs, or single values for
// H and V) and the arity rule checked at construction:
//
//	Kind                        Letters  Unit    Arity
//	MoveTo                      M m      pair    at least 1
//	LineTo                      L l      pair    at least 1
//	HorizontalLineTo            H h      scalar  at least 1
//	VerticalLineTo              V v      scalar  at least 1
//	CubicBezierCurve            C c      pair    multiple of 3
//	QuadraticBezierCurve        Q q      pair    multiple of 2
//	SmoothQuadraticBezierCurve  T t      pair    at least 1
//
// Constructors and [Command.Append] return an *errors.Error with code
// INVALID_PATH_COMMAND when the rule is broken; a Command value that exists
// is always valid.
//
// Commands render as the cased letter followed by their units separated by
// spaces, pairs as "x,y":
//
//	m := path.Must(path.NewMoveTo(true, path.Pt(10, 10)))
//	l := path.Must(path.NewLineTo(true, path.Pt(20, 20), path.Pt(30, 30)))
//	path.Join([]path.Command{m, l}, num.Default) // "M10,10 L20,20 30,30"
package path
