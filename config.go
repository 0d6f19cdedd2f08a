package diagram

// CircleSegments is the number of points used to approximate a full circle
// or ellipse. Arcs use a proportional share.
const CircleSegments = 50

// DefaultLineSpacing is the line spacing of new multiline text, in multiples
// of the font size.
const DefaultLineSpacing = 1.2

// DefaultStyle returns the style attributes a renderer should assume for
// shapes that don't set them. Each call returns a new map.
func DefaultStyle() map[string]string {
	return map[string]string{
		"fill":             "none",
		"stroke":           "black",
		"stroke-width":     "1",
		"stroke-linecap":   "butt",
		"stroke-linejoin":  "round",
		"stroke-dasharray": "none",
		"stroke-opacity":   "1",
		"fill-opacity":     "1",
		"vector-effect":    "non-scaling-stroke",
	}
}

// DefaultTextStyle is like [DefaultStyle], for text.
func DefaultTextStyle() map[string]string {
	return map[string]string{
		"fill":          "black",
		"stroke":        "none",
		"stroke-width":  "1",
		"vector-effect": "non-scaling-stroke",
	}
}

// DefaultTextData returns the text attributes a renderer should assume for
// text that doesn't set them. Each call returns a new map.
func DefaultTextData() map[string]string {
	return map[string]string{
		"font-family": "Latin Modern Math, sans-serif",
		"font-size":   "18",
		"font-weight": "normal",
		"font-style":  "normal",
		"font-scale":  "auto",
		"text-anchor": "middle",
		"dy":          "0.25em",
		"angle":       "0",
	}
}

// DefaultMultilineData returns the layout parameters of new multiline text,
// without any spans.
func DefaultMultilineData() MultilineData {
	return MultilineData{
		ScaleFactor: 1,
		LineSpacing: DefaultLineSpacing,
	}
}
