// Package svg builds SVG documents through a fluent, append-only API.
//
// # Overview
//
// [New] returns the root [Node] of a fresh [Document]. Every add-operation
// mutates a node and returns it, so calls chain:
//
//	root := svg.New().
//		AddViewBox(0, 0, 100, 50).
//		AddDimensions(100, 50, 0).
//		AddLine(0, 0, 100, 50).
//		AddCircle(50, 25, 10, svg.WithTitle("centre"))
//	fmt.Println(root)
//
// Groups are created with [Node.AddGroup], which returns the parent, and
// fetched back by id with [Node.Group]; [Node.NewGroup] returns the new
// group directly. [Node.Up] and [Node.Parent] walk back out.
//
// # Storage
//
// A Document keeps all nodes in one arena. Parents list children by
// [NodeID] in their content, children store the NodeID of their parent, so
// there are no pointer cycles. Nothing is ever removed; the Document is
// dropped as a whole.
//
// Attributes keep insertion order and a repeated key overwrites in place.
// Shape elements (line, circle, text, path) are rendered to markup as soon
// as they are added; groups are rendered when their ancestor is serialized.
//
// # Defaults
//
// Each shape has a default attribute set that is merged under the caller's
// attributes:
//
//	line    stroke="#000" stroke-width="1"
//	circle  stroke="#000" stroke-width="1" fill="#000"
//	text    font-family="sans-serif" font-size="12px" fill="#000"
//	path    stroke="#000" stroke-width="1" fill="none"
//
// [WithAttr] overrides a default, [WithoutAttr] removes it, and
// [WithoutDefaults] drops the whole set for one call.
//
// # Output
//
// Attribute values, text and titles are escaped with [Escape]. Positional
// numbers use the document's [num.Format] (shortest decimal unless
// [WithPrecision] or [WithGrouping] says otherwise). viewBox values are
// always whole numbers.
package svg
