package main

import (
	"github.com/gdamore/tcell/v2"

	"rayframe/internal/render"
)

// upperHalf paints the top half of a cell in the foreground colour, so each
// terminal cell carries two frame rows.
const upperHalf = '▀'

// blit scales f to cols x rows cells with nearest-neighbour sampling.
func blit(screen tcell.Screen, f *render.Frame, cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * f.H / (2 * rows)
		bottom := (2*cy + 1) * f.H / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			x := cx * f.W / cols
			style := tcell.StyleDefault.
				Foreground(pixelColor(f, x, top)).
				Background(pixelColor(f, x, bottom))
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

func pixelColor(f *render.Frame, x, y int) tcell.Color {
	r, g, b, _ := f.RGBA(x, y)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
