package svg

import "strings"

// Attr is one attribute passed to a group or shape. Omit marks the
// attribute as explicitly absent: nothing is rendered for it, and on shapes
// it suppresses the default for the same key.
type Attr struct {
	Key   string
	Value string
	Omit  bool
}

// A returns the attribute key=value.
func A(key, value string) Attr { return Attr{Key: key, Value: value} }

// Absent returns an explicitly absent attribute for key.
func Absent(key string) Attr { return Attr{Key: key, Omit: true} }

func (a Attr) value() attrValue { return attrValue{value: a.Value, omit: a.Omit} }

type attrValue struct {
	value string
	omit  bool
}

// writeAttr appends ` key="escaped value"`.
func writeAttr(sb *strings.Builder, key, value string) {
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteString(`="`)
	sb.WriteString(Escape(value))
	sb.WriteByte('"')
}

// writeNodeAttrs renders a node's attributes in insertion order.
func writeNodeAttrs(sb *strings.Builder, nd *node) {
	for _, kv := range nd.attrs.Order {
		if kv.Value.omit {
			continue
		}
		writeAttr(sb, kv.Key, kv.Value.value)
	}
}
