// Package scene describes SVG documents as data and replays them onto the
// svg builder.
//
// A scene can be written in TOML, YAML or JSON. The three formats share one
// schema:
//
//	width = 200
//	height = 100
//	view_box = [0, 0, 200, 100]
//
//	[[elements]]
//	type = "group"
//	id = "axes"
//
//	  [[elements.elements]]
//	  type = "line"
//	  x1 = 0
//	  y1 = 50
//	  x2 = 200
//	  y2 = 50
//
//	[[elements]]
//	type = "path"
//	attributes = [{ key = "stroke", value = "red" }]
//
//	  [[elements.commands]]
//	  kind = "M"
//	  points = [[0, 0]]
//
//	  [[elements.commands]]
//	  kind = "h"
//	  values = [20]
//
// Attributes are lists of key/value pairs rather than maps so their order
// is kept. Setting omit = true on an attribute suppresses it, which is how
// a shape drops one of its defaults.
//
// [Scene.Validate] reports every problem in one error. [Scene.Build] only
// touches the builder once the scene is valid, so a bad scene never yields
// a partial document.
package scene
