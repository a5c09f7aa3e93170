package svg

import (
	"slices"
	"strings"

	"cogentcore.org/core/ordmap"

	"github.com/matzehuels/svgbuild/pkg/svg/path"
)

// titleKey is the caller attribute rendered as a nested <title> element.
const titleKey = "title"

// Default attribute sets, in render order.
var (
	lineDefaults = []Attr{
		A("stroke", "#000"),
		A("stroke-width", "1"),
	}
	circleDefaults = []Attr{
		A("stroke", "#000"),
		A("stroke-width", "1"),
		A("fill", "#000"),
	}
	textDefaults = []Attr{
		A("font-family", "sans-serif"),
		A("font-size", "12px"),
		A("fill", "#000"),
	}
	pathDefaults = []Attr{
		A("stroke", "#000"),
		A("stroke-width", "1"),
		A("fill", "none"),
	}
)

// ShapeOption configures one AddLine, AddCircle, AddText or AddPath call.
type ShapeOption func(*shapeConfig)

type shapeConfig struct {
	attrs      *ordmap.Map[string, attrValue]
	noDefaults bool
}

// WithAttr sets key=value on the shape, overriding a default for key.
// Keys naming a positional attribute of the shape (x1, y1, x2, y2 on lines;
// cx, cy, r on circles; x, y on text; d on paths) are ignored: the
// positional argument always wins.
func WithAttr(key, value string) ShapeOption {
	return func(c *shapeConfig) { c.attrs.Add(key, attrValue{value: value}) }
}

// WithAttrs applies attrs in order; Absent entries behave like WithoutAttr.
func WithAttrs(attrs ...Attr) ShapeOption {
	return func(c *shapeConfig) {
		for _, a := range attrs {
			c.attrs.Add(a.Key, a.value())
		}
	}
}

// WithoutAttr suppresses key entirely, including its default.
func WithoutAttr(key string) ShapeOption {
	return func(c *shapeConfig) { c.attrs.Add(key, attrValue{omit: true}) }
}

// WithTitle attaches a tooltip. Circles and text render it as a nested
// <title> element (an empty title is dropped); lines and paths keep it as a
// plain title attribute.
func WithTitle(title string) ShapeOption {
	return WithAttr(titleKey, title)
}

// WithoutDefaults drops the shape's default attribute set for this call.
func WithoutDefaults() ShapeOption {
	return func(c *shapeConfig) { c.noDefaults = true }
}

// shape is a single element ready to render: positional attributes first,
// then caller attributes, then the defaults the caller did not name.
type shape struct {
	name       string
	positional []Attr
	attrs      []Attr
	title      string
}

func newShape(name string, positional, defaults []Attr, nestTitle bool, opts []ShapeOption) shape {
	cfg := shapeConfig{attrs: ordmap.New[string, attrValue]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.noDefaults {
		for _, a := range defaults {
			if _, ok := cfg.attrs.ValueByKeyTry(a.Key); !ok {
				cfg.attrs.Add(a.Key, a.value())
			}
		}
	}

	s := shape{name: name, positional: positional}
	for _, kv := range cfg.attrs.Order {
		switch {
		case kv.Value.omit:
			continue
		case nestTitle && kv.Key == titleKey:
			s.title = kv.Value.value
		case slices.ContainsFunc(positional, func(p Attr) bool { return p.Key == kv.Key }):
			// positional values win over caller attributes of the same name
		default:
			s.attrs = append(s.attrs, Attr{Key: kv.Key, Value: kv.Value.value})
		}
	}
	return s
}

func (s shape) open(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(s.name)
	for _, a := range s.positional {
		writeAttr(sb, a.Key, a.Value)
	}
	for _, a := range s.attrs {
		writeAttr(sb, a.Key, a.Value)
	}
}

func (s shape) writeTitle(sb *strings.Builder) {
	if s.title == "" {
		return
	}
	sb.WriteString("<title>")
	sb.WriteString(Escape(s.title))
	sb.WriteString("</title>")
}

// selfClosing renders <name .../>.
func (s shape) selfClosing() string {
	var sb strings.Builder
	s.open(&sb)
	sb.WriteString("/>")
	return sb.String()
}

// withTitle renders <name .../> or, when a title is set,
// <name ...><title>..</title></name>.
func (s shape) withTitle() string {
	if s.title == "" {
		return s.selfClosing()
	}
	var sb strings.Builder
	s.open(&sb)
	sb.WriteByte('>')
	s.writeTitle(&sb)
	sb.WriteString("</")
	sb.WriteString(s.name)
	sb.WriteByte('>')
	return sb.String()
}

// withBody renders <name ...>body[<title>..</title>]</name>.
func (s shape) withBody(body string) string {
	var sb strings.Builder
	s.open(&sb)
	sb.WriteByte('>')
	sb.WriteString(Escape(body))
	s.writeTitle(&sb)
	sb.WriteString("</")
	sb.WriteString(s.name)
	sb.WriteByte('>')
	return sb.String()
}

// AddLine draws a line from (x1, y1) to (x2, y2).
// Defaults: stroke="#000" stroke-width="1". Caller attributes named x1, y1,
// x2 or y2 are dropped.
func (n Node) AddLine(x1, y1, x2, y2 float64, opts ...ShapeOption) Node {
	f := n.docFormat()
	s := newShape("line", []Attr{
		A("x1", f.Float(x1)),
		A("y1", f.Float(y1)),
		A("x2", f.Float(x2)),
		A("y2", f.Float(y2)),
	}, lineDefaults, false, opts)
	n.doc.stats.Lines++
	return n.appendMarkup(s.selfClosing())
}

// AddCircle draws a circle centred on (cx, cy) with radius r.
// Defaults: stroke="#000" stroke-width="1" fill="#000". A title renders
// as a nested <title> element. Caller attributes named cx, cy or r are
// dropped.
func (n Node) AddCircle(cx, cy, r float64, opts ...ShapeOption) Node {
	f := n.docFormat()
	s := newShape("circle", []Attr{
		A("cx", f.Float(cx)),
		A("cy", f.Float(cy)),
		A("r", f.Float(r)),
	}, circleDefaults, true, opts)
	n.doc.stats.Circles++
	return n.appendMarkup(s.withTitle())
}

// AddText writes text at (x, y). The text is escaped.
// Defaults: font-family="sans-serif" font-size="12px" fill="#000". A title
// renders as a nested <title> element after the text. Caller attributes
// named x or y are dropped.
func (n Node) AddText(text string, x, y float64, opts ...ShapeOption) Node {
	f := n.docFormat()
	s := newShape("text", []Attr{
		A("x", f.Float(x)),
		A("y", f.Float(y)),
	}, textDefaults, true, opts)
	n.doc.stats.Texts++
	return n.appendMarkup(s.withBody(text))
}

// AddPath draws cmds as one path element; d is the commands joined by a
// single space. Defaults: stroke="#000" stroke-width="1" fill="none". A
// caller attribute named d is dropped.
func (n Node) AddPath(cmds []path.Command, opts ...ShapeOption) Node {
	f := n.docFormat()
	s := newShape("path", []Attr{
		A("d", path.Join(cmds, f)),
	}, pathDefaults, false, opts)
	n.doc.stats.Paths++
	return n.appendMarkup(s.selfClosing())
}
