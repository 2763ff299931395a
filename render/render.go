// Package render draws a maze, its solved path and the robot marker to a raster image.
package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/pdrpinto/astar-maze/maze"
)

const DefaultCellSize = 40

var (
	WallColor  = color.Black
	OpenColor  = color.White
	StartColor = color.RGBA{0, 128, 0, 255}
	GoalColor  = color.RGBA{255, 0, 0, 255}
	PathColor  = color.RGBA{173, 216, 230, 255}
	RobotColor = color.RGBA{0, 0, 255, 255}
	GridColor  = color.RGBA{200, 200, 200, 255}
)

// Options controls the image geometry.
type Options struct {
	CellSize int
}

func (o Options) cellSize() int {
	if o.CellSize <= 0 {
		return DefaultCellSize
	}
	return o.CellSize
}

// Center returns the pixel center of c for square cells of size px.
func Center(c maze.Coord, size int) (x, y float64) {
	return float64(c.Col*size + size/2), float64(c.Row*size + size/2)
}

// Fill returns the color a cell kind is painted with.
func Fill(kind maze.Cell) color.Color {
	switch kind {
	case maze.Wall:
		return WallColor
	case maze.Start:
		return StartColor
	case maze.Goal:
		return GoalColor
	}
	return OpenColor
}

// Image draws g with path highlighted. robot may be nil.
func Image(g *maze.Grid, path maze.Path, robot *maze.Coord, opts Options) image.Image {
	return draw(g, path, robot, opts).Image()
}

// WritePNG encodes the same picture as Image to w.
func WritePNG(w io.Writer, g *maze.Grid, path maze.Path, robot *maze.Coord, opts Options) error {
	return draw(g, path, robot, opts).EncodePNG(w)
}

func draw(g *maze.Grid, path maze.Path, robot *maze.Coord, opts Options) *gg.Context {
	size := opts.cellSize()
	dc := gg.NewContext(g.Cols()*size, g.Rows()*size)

	onPath := make(map[maze.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			pos := maze.Coord{Row: r, Col: c}
			kind := g.At(pos)
			fill := Fill(kind)
			if kind == maze.Open && onPath[pos] {
				fill = PathColor
			}
			x, y := float64(c*size), float64(r*size)
			dc.DrawRectangle(x, y, float64(size), float64(size))
			dc.SetColor(fill)
			dc.FillPreserve()
			dc.SetColor(GridColor)
			dc.SetLineWidth(1)
			dc.Stroke()
		}
	}

	if robot != nil && g.InBounds(*robot) {
		x, y := Center(*robot, size)
		dc.SetColor(RobotColor)
		dc.DrawCircle(x, y, float64(size)*0.35)
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawStringAnchored("R", x, y, 0.5, 0.5)
	}
	return dc
}
