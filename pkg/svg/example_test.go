package svg_test

import (
	"fmt"

	"github.com/matzehuels/svgbuild/pkg/svg"
	"github.com/matzehuels/svgbuild/pkg/svg/path"
)

func ExampleNew() {
	root := svg.New().
		AddViewBox(0, 0, 100, 50).
		AddLine(0, 0, 100, 50)

	fmt.Println(root)
	// Output:
	// <?xml version="1.0" encoding="utf-8"?>
	// <svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50"><line x1="0" y1="0" x2="100" y2="50" stroke="#000" stroke-width="1"/></svg>
}

func ExampleNode_AddGroup() {
	root := svg.New().AddGroup(svg.A("id", "labels"))

	root.MustGroup("labels").
		AddText("A&B", 10, 20, svg.WithoutDefaults())

	g, _ := root.Group("labels")
	fmt.Println(g)
	// Output:
	// <g id="labels"><text x="10" y="20">A&amp;B</text></g>
}

func ExampleNode_AddCircle() {
	g := svg.New().NewGroup()
	g.AddCircle(10, 20, 30, svg.WithTitle("t"), svg.WithAttr("fill", "red"))

	fmt.Println(g)
	// Output:
	// <g><circle cx="10" cy="20" r="30" fill="red" stroke="#000" stroke-width="1"><title>t</title></circle></g>
}

func ExampleNode_AddPath() {
	g := svg.New().NewGroup()
	g.AddPath([]path.Command{
		path.Must(path.NewMoveTo(true, path.Pt(10, 10))),
		path.Must(path.NewLineTo(true, path.Pt(20, 20), path.Pt(30, 30))),
	}, svg.WithoutAttr("stroke-width"))

	fmt.Println(g)
	// Output:
	// <g><path d="M10,10 L20,20 30,30" stroke="#000" fill="none"/></g>
}
