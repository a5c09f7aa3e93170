package svg

import (
	"math"

	"cogentcore.org/core/ordmap"

	"github.com/matzehuels/svgbuild/pkg/svg/num"
)

// Namespace is the SVG namespace URI every root node declares by default.
const Namespace = "http://www.w3.org/2000/svg"

// NodeID indexes a node in its Document's arena.
type NodeID int32

// noNode marks the absent parent of the root and content fragments that are
// plain markup rather than child nodes.
const noNode NodeID = -1

// rootID is the arena slot of the root node.
const rootID NodeID = 0

// Document owns every node of one tree. Nodes refer to each other by NodeID:
// a parent lists its children in content, a child keeps only the index of
// its parent.
//
// A Document is not safe for concurrent use.
type Document struct {
	nodes  []node
	format num.Format
	stats  Stats
}

type node struct {
	parent  NodeID
	attrs   *ordmap.Map[string, attrValue]
	content []fragment
	named   map[string]NodeID
}

// fragment is one piece of a node's content: either pre-rendered markup or
// a child node rendered when the parent is serialized.
type fragment struct {
	markup string
	child  NodeID
}

// Stats counts what has been added to a Document.
type Stats struct {
	Groups  int
	Lines   int
	Circles int
	Texts   int
	Paths   int
}

// Elements returns the total number of drawable elements (groups excluded).
func (s Stats) Elements() int {
	return s.Lines + s.Circles + s.Texts + s.Paths
}

// Option configures a Document.
type Option func(*Document)

// WithPrecision renders positional numbers with n fixed decimals.
// A negative n selects the shortest exact representation, the default.
func WithPrecision(n int) Option {
	return func(d *Document) {
		if n < 0 {
			n = num.Shortest
		}
		d.format.Precision = n
	}
}

// WithGrouping renders positional numbers with thousands separators.
// Path data becomes ambiguous for values of 1000 and above, see package num.
func WithGrouping() Option {
	return func(d *Document) { d.format.Grouping = true }
}

// WithNumberFormat replaces the positional number format wholesale.
func WithNumberFormat(f num.Format) Option {
	return func(d *Document) { d.format = f }
}

// New creates a document and returns its root node. The root declares the
// default SVG namespace.
func New(opts ...Option) Node {
	d := &Document{format: num.Default}
	for _, opt := range opts {
		opt(d)
	}
	d.nodes = append(d.nodes, newNode(noNode))
	root := Node{doc: d, id: rootID}
	return root.AddAttribute("xmlns", Namespace)
}

func newNode(parent NodeID) node {
	return node{parent: parent, attrs: ordmap.New[string, attrValue]()}
}

// Root returns the document's root node.
func (d *Document) Root() Node { return Node{doc: d, id: rootID} }

// Format returns the number format used for positional values.
func (d *Document) Format() num.Format { return d.format }

// Stats returns element counts for the whole tree.
func (d *Document) Stats() Stats { return d.stats }

// Len returns the number of nodes (root plus groups) in the arena.
func (d *Document) Len() int { return len(d.nodes) }

// String serializes the whole document from the root.
func (d *Document) String() string { return d.Root().String() }

// Node is a handle to a root or group node. It is a small value meant to be
// passed around and chained:
//
//	svg.New().
//		AddViewBox(0, 0, 100, 100).
//		AddLine(0, 0, 100, 100)
//
// The zero Node is returned for lookup misses (see [Node.Group] and
// [Node.Parent]). Group, Parent and Up on it miss again and String renders
// ""; any other method panics.
type Node struct {
	doc *Document
	id  NodeID
}

// Valid reports whether n refers to a node.
func (n Node) Valid() bool { return n.doc != nil }

// ID returns the arena index of n.
func (n Node) ID() NodeID { return n.id }

// Document returns the document n belongs to, nil for the zero Node.
func (n Node) Document() *Document { return n.doc }

// IsRoot reports whether n is the document root.
func (n Node) IsRoot() bool { return n.Valid() && n.id == rootID }

func (n Node) node() *node {
	if n.doc == nil {
		panic("svg: use of zero Node")
	}
	return &n.doc.nodes[n.id]
}

// AddAttribute stores key=value on n, overwriting an earlier value for key
// in place. The value is escaped when rendered; the key is not.
func (n Node) AddAttribute(key, value string) Node {
	n.node().attrs.Add(key, attrValue{value: value})
	return n
}

// OmitAttribute marks key as explicitly absent: it renders as nothing,
// replacing any earlier value. OmitAttribute("xmlns") drops the default
// namespace from a root.
func (n Node) OmitAttribute(key string) Node {
	n.node().attrs.Add(key, attrValue{omit: true})
	return n
}

// Attribute returns the stored value for key. Absent and omitted
// attributes report false.
func (n Node) Attribute(key string) (string, bool) {
	v, ok := n.node().attrs.ValueByKeyTry(key)
	if !ok || v.omit {
		return "", false
	}
	return v.value, true
}

// AddViewBox sets viewBox to the smallest whole-number rectangle covering
// (minX, minY)-(maxX, maxY): "floor(minX) floor(minY) width height" with
// width = ceil(maxX)-floor(minX) and height = ceil(maxY)-floor(minY).
func (n Node) AddViewBox(minX, minY, maxX, maxY float64) Node {
	x, y := math.Floor(minX), math.Floor(minY)
	w, h := math.Ceil(maxX)-x, math.Ceil(maxY)-y
	return n.AddAttribute("viewBox",
		num.Integer(x)+" "+num.Integer(y)+" "+num.Integer(w)+" "+num.Integer(h))
}

// AddDimensions sets width and height to the ceiling of the given values,
// written with precision fixed decimals (negative for shortest form).
func (n Node) AddDimensions(width, height float64, precision int) Node {
	f := num.Fixed(precision)
	return n.
		AddAttribute("width", f.Float(math.Ceil(width))).
		AddAttribute("height", f.Float(math.Ceil(height)))
}

// AddNamespace sets the default namespace declaration (xmlns).
func (n Node) AddNamespace(uri string) Node {
	return n.AddAttribute("xmlns", uri)
}

// AddPrefixedNamespace declares xmlns:prefix.
func (n Node) AddPrefixedNamespace(prefix, uri string) Node {
	return n.AddAttribute("xmlns:"+prefix, uri)
}

// AddGroup appends a new group carrying attrs to n and returns n, so calls
// keep chaining on the parent. A group whose attrs include a non-absent id
// is registered for [Node.Group]; a later group with the same id takes over
// the registration while both stay in the output.
func (n Node) AddGroup(attrs ...Attr) Node {
	n.NewGroup(attrs...)
	return n
}

// NewGroup is AddGroup returning the new group instead of n.
func (n Node) NewGroup(attrs ...Attr) Node {
	n.node() // panics on the zero Node before the arena grows
	d := n.doc
	child := Node{doc: d, id: NodeID(len(d.nodes))}
	d.nodes = append(d.nodes, newNode(n.id))

	cn := child.node()
	for _, a := range attrs {
		cn.attrs.Add(a.Key, a.value())
	}

	pn := n.node()
	pn.content = append(pn.content, fragment{child: child.id})
	if id, ok := child.Attribute("id"); ok {
		if pn.named == nil {
			pn.named = make(map[string]NodeID)
		}
		pn.named[id] = child.id
	}
	d.stats.Groups++
	return child
}

// Group returns the direct child group registered under id.
// Grandchildren are not searched. The zero Node has no groups.
func (n Node) Group(id string) (Node, bool) {
	if !n.Valid() {
		return Node{}, false
	}
	cid, ok := n.node().named[id]
	if !ok {
		return Node{}, false
	}
	return Node{doc: n.doc, id: cid}, true
}

// Parent returns the node n was added to; the root and the zero Node have none.
func (n Node) Parent() (Node, bool) {
	if !n.Valid() {
		return Node{}, false
	}
	p := n.node().parent
	if p == noNode {
		return Node{}, false
	}
	return Node{doc: n.doc, id: p}, true
}

// Up is Parent without the flag, for chaining back out of a group:
//
//	root.AddGroup(svg.A("id", "g")).MustGroup("g").AddLine(0, 0, 1, 1).Up()
//
// At the root it returns the zero Node. Lookups on the zero Node miss, but
// adding to it or reading its attributes panics, so check Valid before
// building on the result of Up at an unknown depth.
func (n Node) Up() Node {
	p, _ := n.Parent()
	return p
}

// MustGroup is Group for callers that know the id exists. It panics on a miss.
func (n Node) MustGroup(id string) Node {
	g, ok := n.Group(id)
	if !ok {
		panic("svg: no group with id " + id)
	}
	return g
}

// Len returns the number of content fragments (child groups and elements) of n.
func (n Node) Len() int {
	return len(n.node().content)
}

func (n Node) appendMarkup(s string) Node {
	nd := n.node()
	nd.content = append(nd.content, fragment{markup: s, child: noNode})
	return n
}
