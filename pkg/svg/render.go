package svg

import (
	"io"
	"strings"

	"github.com/matzehuels/svgbuild/pkg/svg/num"
)

// XMLDeclaration starts every serialized root.
const XMLDeclaration = `<?xml version="1.0" encoding="utf-8"?>`

func (n Node) docFormat() num.Format {
	n.node()
	return n.doc.format
}

// String serializes n and everything below it. The root renders as the XML
// declaration, a newline and an <svg> element; any other node renders as a
// standalone <g> element. Empty elements self-close.
//
// String only reads the tree: calling it twice without changes in between
// returns identical output. The zero Node renders as "".
func (n Node) String() string {
	if !n.Valid() {
		return ""
	}
	var sb strings.Builder
	n.doc.write(&sb, n.id)
	return sb.String()
}

// WriteTo writes the serialized form of n to w. It implements io.WriterTo.
func (n Node) WriteTo(w io.Writer) (int64, error) {
	written, err := io.WriteString(w, n.String())
	return int64(written), err
}

func (d *Document) write(sb *strings.Builder, id NodeID) {
	nd := &d.nodes[id]

	tag := "g"
	if nd.parent == noNode {
		tag = "svg"
		sb.WriteString(XMLDeclaration)
		sb.WriteByte('\n')
	}

	sb.WriteByte('<')
	sb.WriteString(tag)
	writeNodeAttrs(sb, nd)
	if len(nd.content) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, f := range nd.content {
		if f.child != noNode {
			d.write(sb, f.child)
			continue
		}
		sb.WriteString(f.markup)
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}
