package devtools

import (
	"fmt"
	"html"
	"io"
	"strings"

	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/gameplay"
)

// tileColors are the swatch colours for tile ids, wrapping around.
var tileColors = []string{
	"#46413c", "#3c3732", "#37322d", "#827d73",
	"#6e645a", "#64503c", "#3c6e3c", "#325096",
}

// WriteScreenshotHTML renders the camera window of the last frame as an
// HTML page, one swatch per tile with the actor marked.
func WriteScreenshotHTML(w io.Writer, title string, grid *world.Grid, fi gameplay.FrameInfo) error {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(title) + `</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .meta { color: #888; margin-bottom: 20px; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
        }
        .map-row { white-space: pre; line-height: 0; }
        .tile {
            display: inline-block;
            width: 24px;
            height: 24px;
            font-size: 12px;
            line-height: 24px;
            text-align: center;
            color: #ccc;
        }
        .player { color: #00ff00; font-weight: bold; font-size: 18px; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(title))
	fmt.Fprintf(&b, `    <div class="meta">frame %d, actor %d,%d, window x %d..%d y %d..%d</div>`+"\n",
		fi.Frame, fi.GridX, fi.GridY, fi.Window.StartX, fi.Window.EndX, fi.Window.StartY, fi.Window.EndY)

	b.WriteString(`    <div class="map-container">` + "\n")
	for y := fi.Window.StartY; y < fi.Window.EndY; y++ {
		b.WriteString(`        <div class="map-row">`)
		for x := fi.Window.StartX; x < fi.Window.EndX; x++ {
			id := grid.At(x, y)
			bg := tileColors[int(id)%len(tileColors)]
			if x == fi.GridX && y == fi.GridY {
				fmt.Fprintf(&b, `<span class="tile player" style="background:%s">@</span>`, bg)
				continue
			}
			fmt.Fprintf(&b, `<span class="tile" style="background:%s" title="%d,%d">%d</span>`, bg, x, y, id)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")
	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}
