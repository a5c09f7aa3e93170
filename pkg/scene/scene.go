package scene

import (
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/svgbuild/pkg/errors"
	"github.com/matzehuels/svgbuild/pkg/svg"
	"github.com/matzehuels/svgbuild/pkg/svg/num"
	"github.com/matzehuels/svgbuild/pkg/svg/path"
)

// Element types.
const (
	TypeGroup  = "group"
	TypeLine   = "line"
	TypeCircle = "circle"
	TypeText   = "text"
	TypePath   = "path"
)

// Scene describes one SVG document.
type Scene struct {
	Width     float64 `toml:"width" yaml:"width" json:"width"`
	Height    float64 `toml:"height" yaml:"height" json:"height"`
	Precision int     `toml:"precision" yaml:"precision" json:"precision"` // decimals for width/height

	// NumberPrecision fixes the decimals of every coordinate. Nil keeps the
	// shortest exact form.
	NumberPrecision *int `toml:"number_precision" yaml:"number_precision" json:"number_precision"`
	Grouping        bool `toml:"grouping" yaml:"grouping" json:"grouping"`

	ViewBox    []float64   `toml:"view_box" yaml:"view_box" json:"view_box"` // minX, minY, maxX, maxY
	Namespaces []Namespace `toml:"namespaces" yaml:"namespaces" json:"namespaces"`
	Attributes []Attribute `toml:"attributes" yaml:"attributes" json:"attributes"`
	Elements   []Element   `toml:"elements" yaml:"elements" json:"elements"`
}

// Namespace is an xmlns declaration; an empty Prefix sets the default namespace.
type Namespace struct {
	Prefix string `toml:"prefix" yaml:"prefix" json:"prefix"`
	URI    string `toml:"uri" yaml:"uri" json:"uri"`
}

// Attribute is a key/value pair. Lists of attributes keep their order in
// the output, which maps and tables would not.
type Attribute struct {
	Key   string `toml:"key" yaml:"key" json:"key"`
	Value string `toml:"value" yaml:"value" json:"value"`
	Omit  bool   `toml:"omit" yaml:"omit" json:"omit"`
}

// Element is one group or shape. Which coordinate fields apply depends on Type.
type Element struct {
	Type       string      `toml:"type" yaml:"type" json:"type"`
	ID         string      `toml:"id" yaml:"id" json:"id"`
	Attributes []Attribute `toml:"attributes" yaml:"attributes" json:"attributes"`
	NoDefaults bool        `toml:"no_defaults" yaml:"no_defaults" json:"no_defaults"`
	Title      string      `toml:"title" yaml:"title" json:"title"`

	X1 float64 `toml:"x1" yaml:"x1" json:"x1"`
	Y1 float64 `toml:"y1" yaml:"y1" json:"y1"`
	X2 float64 `toml:"x2" yaml:"x2" json:"x2"`
	Y2 float64 `toml:"y2" yaml:"y2" json:"y2"`

	CX float64 `toml:"cx" yaml:"cx" json:"cx"`
	CY float64 `toml:"cy" yaml:"cy" json:"cy"`
	R  float64 `toml:"r" yaml:"r" json:"r"`

	X    float64 `toml:"x" yaml:"x" json:"x"`
	Y    float64 `toml:"y" yaml:"y" json:"y"`
	Text string  `toml:"text" yaml:"text" json:"text"`

	Commands []Command `toml:"commands" yaml:"commands" json:"commands"`
	Elements []Element `toml:"elements" yaml:"elements" json:"elements"`
}

// Command is one path command. Kind is the SVG letter, its case selecting
// absolute (upper) or relative (lower) coordinates. Points is used by pair
// commands, Values by H and V.
type Command struct {
	Kind   string      `toml:"kind" yaml:"kind" json:"kind"`
	Points [][]float64 `toml:"points" yaml:"points" json:"points"`
	Values []float64   `toml:"values" yaml:"values" json:"values"`
}

// Path converts c into a path.Command, applying the same arity rules as the
// path package.
func (c Command) Path() (path.Command, error) {
	kind, abs, ok := path.KindFromLetter(c.Kind)
	if !ok {
		return path.Command{}, errors.New(errors.ErrCodeInvalidPathCommand, "unknown path command %q", c.Kind)
	}
	if kind.Scalar() {
		if len(c.Points) > 0 {
			return path.Command{}, errors.New(errors.ErrCodeInvalidPathCommand, "%s takes values, not points", c.Kind)
		}
		return path.NewScalar(kind, abs, c.Values...)
	}
	if len(c.Values) > 0 {
		return path.Command{}, errors.New(errors.ErrCodeInvalidPathCommand, "%s takes points, not values", c.Kind)
	}
	pts := make([]path.Point, len(c.Points))
	for i, p := range c.Points {
		if len(p) != 2 {
			return path.Command{}, errors.New(errors.ErrCodeInvalidPathCommand,
				"%s point %d has %d values, want 2", c.Kind, i, len(p))
		}
		pts[i] = path.Pt(p[0], p[1])
	}
	return path.New(kind, abs, pts...)
}

// Validate checks the whole scene and reports every problem found, joined
// into one INVALID_SCENE error.
func (s *Scene) Validate() error {
	var errs []error
	add := func(where string, err error) {
		errs = append(errs, fmt.Errorf("%s: %s", where, errors.UserMessage(err)))
	}

	if len(s.ViewBox) != 0 && len(s.ViewBox) != 4 {
		add("view_box", errors.New(errors.ErrCodeInvalidScene, "want 4 values, got %d", len(s.ViewBox)))
	}
	if s.Width < 0 || s.Height < 0 {
		add("dimensions", errors.New(errors.ErrCodeInvalidScene, "width and height must not be negative"))
	}
	if s.Precision > num.MaxPrecision {
		add("precision", errors.New(errors.ErrCodeInvalidScene, "must be at most %d, got %d", num.MaxPrecision, s.Precision))
	}
	if s.NumberPrecision != nil && *s.NumberPrecision > num.MaxPrecision {
		add("number_precision", errors.New(errors.ErrCodeInvalidScene, "must be at most %d, got %d", num.MaxPrecision, *s.NumberPrecision))
	}
	for i, ns := range s.Namespaces {
		where := fmt.Sprintf("namespaces[%d]", i)
		if ns.URI == "" {
			add(where, errors.New(errors.ErrCodeInvalidScene, "uri cannot be empty"))
		}
		if ns.Prefix != "" {
			if err := errors.ValidateNamespacePrefix(ns.Prefix); err != nil {
				add(where, err)
			}
		}
	}
	validateAttributes("attributes", s.Attributes, add)
	validateElements("elements", s.Elements, add)

	if len(errs) == 0 {
		return nil
	}
	return errors.Wrap(errors.ErrCodeInvalidScene, stderrors.Join(errs...), "invalid scene")
}

func validateAttributes(where string, attrs []Attribute, add func(string, error)) {
	for i, a := range attrs {
		if err := errors.ValidateAttributeName(a.Key); err != nil {
			add(fmt.Sprintf("%s[%d]", where, i), err)
		}
	}
}

func validateElements(where string, elems []Element, add func(string, error)) {
	for i, e := range elems {
		at := fmt.Sprintf("%s[%d]", where, i)
		validateAttributes(at+".attributes", e.Attributes, add)

		if e.Type != TypeGroup && len(e.Elements) > 0 {
			add(at, errors.New(errors.ErrCodeInvalidScene, "%s cannot contain elements", e.Type))
		}
		if e.Type != TypePath && len(e.Commands) > 0 {
			add(at, errors.New(errors.ErrCodeInvalidScene, "%s cannot have path commands", e.Type))
		}

		switch e.Type {
		case TypeGroup:
			validateElements(at+".elements", e.Elements, add)
		case TypeLine, TypeText:
		case TypeCircle:
			if e.R < 0 {
				add(at, errors.New(errors.ErrCodeInvalidScene, "radius must not be negative"))
			}
		case TypePath:
			for j, c := range e.Commands {
				if _, err := c.Path(); err != nil {
					add(fmt.Sprintf("%s.commands[%d]", at, j), err)
				}
			}
		case "":
			add(at, errors.New(errors.ErrCodeInvalidScene, "missing element type"))
		default:
			add(at, errors.New(errors.ErrCodeInvalidScene, "unknown element type %q", e.Type))
		}
	}
}

// Build validates s and replays it onto a new document. Options in opts
// are applied after the scene's own number settings.
func (s *Scene) Build(opts ...svg.Option) (svg.Node, error) {
	if err := s.Validate(); err != nil {
		return svg.Node{}, err
	}

	var docOpts []svg.Option
	if s.NumberPrecision != nil {
		docOpts = append(docOpts, svg.WithPrecision(*s.NumberPrecision))
	}
	if s.Grouping {
		docOpts = append(docOpts, svg.WithGrouping())
	}
	root := svg.New(append(docOpts, opts...)...)

	for _, ns := range s.Namespaces {
		if ns.Prefix == "" {
			root.AddNamespace(ns.URI)
		} else {
			root.AddPrefixedNamespace(ns.Prefix, ns.URI)
		}
	}
	if len(s.ViewBox) == 4 {
		root.AddViewBox(s.ViewBox[0], s.ViewBox[1], s.ViewBox[2], s.ViewBox[3])
	}
	if s.Width > 0 || s.Height > 0 {
		root.AddDimensions(s.Width, s.Height, s.Precision)
	}
	for _, a := range s.Attributes {
		if a.Omit {
			root.OmitAttribute(a.Key)
		} else {
			root.AddAttribute(a.Key, a.Value)
		}
	}

	if err := addElements(root, s.Elements); err != nil {
		return svg.Node{}, err
	}
	return root, nil
}

// Render builds s and returns the serialized document.
func (s *Scene) Render(opts ...svg.Option) ([]byte, error) {
	root, err := s.Build(opts...)
	if err != nil {
		return nil, err
	}
	return []byte(root.String()), nil
}

func addElements(parent svg.Node, elems []Element) error {
	for _, e := range elems {
		switch e.Type {
		case TypeGroup:
			var attrs []svg.Attr
			if e.ID != "" {
				attrs = append(attrs, svg.A("id", e.ID))
			}
			attrs = append(attrs, toAttrs(e.Attributes)...)
			if err := addElements(parent.NewGroup(attrs...), e.Elements); err != nil {
				return err
			}
		case TypeLine:
			parent.AddLine(e.X1, e.Y1, e.X2, e.Y2, shapeOptions(e)...)
		case TypeCircle:
			parent.AddCircle(e.CX, e.CY, e.R, shapeOptions(e)...)
		case TypeText:
			parent.AddText(e.Text, e.X, e.Y, shapeOptions(e)...)
		case TypePath:
			cmds := make([]path.Command, 0, len(e.Commands))
			for _, c := range e.Commands {
				pc, err := c.Path()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInvalidScene, err, "path command %q", c.Kind)
				}
				cmds = append(cmds, pc)
			}
			parent.AddPath(cmds, shapeOptions(e)...)
		default:
			return errors.New(errors.ErrCodeInvalidScene, "unknown element type %q", e.Type)
		}
	}
	return nil
}

func toAttrs(in []Attribute) []svg.Attr {
	out := make([]svg.Attr, len(in))
	for i, a := range in {
		out[i] = svg.Attr{Key: a.Key, Value: a.Value, Omit: a.Omit}
	}
	return out
}

func shapeOptions(e Element) []svg.ShapeOption {
	var opts []svg.ShapeOption
	if e.ID != "" {
		opts = append(opts, svg.WithAttr("id", e.ID))
	}
	opts = append(opts, svg.WithAttrs(toAttrs(e.Attributes)...))
	if e.Title != "" {
		opts = append(opts, svg.WithTitle(e.Title))
	}
	if e.NoDefaults {
		opts = append(opts, svg.WithoutDefaults())
	}
	return opts
}
