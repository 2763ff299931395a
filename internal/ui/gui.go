//go:build !nogui
// +build !nogui

package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pdrpinto/astar-maze/maze"
	"github.com/pdrpinto/astar-maze/render"
)

// board draws the grid as absolutely positioned rectangles plus the robot label.
type board struct {
	cellSize float32
	content  *fyne.Container
	cells    []*canvas.Rectangle
	robot    *canvas.Text
}

func newBoard(cellSize int) *board {
	return &board{cellSize: float32(cellSize), content: container.NewWithoutLayout()}
}

func (b *board) draw(ctrl *Controller) {
	g := ctrl.Grid()
	pathCells := make(map[maze.Coord]bool, len(ctrl.Solution().Path))
	for _, c := range ctrl.Solution().Path {
		pathCells[c] = true
	}

	// the background rectangle gives the layout-less container its size
	bg := canvas.NewRectangle(color.Black)
	bg.SetMinSize(fyne.NewSize(float32(g.Cols())*b.cellSize, float32(g.Rows())*b.cellSize))
	bg.Resize(bg.MinSize())

	objects := []fyne.CanvasObject{bg}
	b.cells = b.cells[:0]
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			pos := maze.Coord{Row: r, Col: c}
			kind := g.At(pos)
			fill := render.Fill(kind)
			if kind == maze.Open && pathCells[pos] {
				fill = render.PathColor
			}
			rect := canvas.NewRectangle(fill)
			rect.StrokeColor = render.GridColor
			rect.StrokeWidth = 1
			rect.Resize(fyne.NewSize(b.cellSize, b.cellSize))
			rect.Move(fyne.NewPos(float32(c)*b.cellSize, float32(r)*b.cellSize))
			b.cells = append(b.cells, rect)
			objects = append(objects, rect)
		}
	}

	b.robot = canvas.NewText("R", render.RobotColor)
	b.robot.TextStyle = fyne.TextStyle{Bold: true}
	b.robot.TextSize = b.cellSize * 0.45
	b.robot.Resize(b.robot.MinSize())
	objects = append(objects, b.robot)

	b.content.Objects = objects
	b.moveRobot(ctrl.RobotAt())
	b.content.Refresh()
}

func (b *board) moveRobot(at maze.Coord) {
	x, y := render.Center(at, int(b.cellSize))
	size := b.robot.MinSize()
	b.robot.Move(fyne.NewPos(float32(x)-size.Width/2, float32(y)-size.Height/2))
	b.robot.Refresh()
}

// Run opens the maze window and blocks until it is closed.
func Run(opts Options) error {
	ctrl, err := opts.controller()
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("Maze Solver")

	b := newBoard(opts.CellSize)
	b.draw(ctrl)

	buttons := container.NewHBox(
		widget.NewButton("Start", func() { ctrl.Start() }),
		widget.NewButton("Pause", func() { ctrl.Pause() }),
		widget.NewButton("Reset", func() {
			ctrl.Reset()
			b.moveRobot(ctrl.RobotAt())
		}),
		widget.NewButton("Regenerate Maze", func() {
			if err := ctrl.Regenerate(); err != nil {
				dialog.ShowError(err, w)
				return
			}
			b.draw(ctrl)
		}),
	)
	w.SetContent(container.NewBorder(nil, buttons, nil, nil, b.content))
	w.Resize(fyne.NewSize(float32(ctrl.Grid().Cols())*b.cellSize, float32(ctrl.Grid().Rows())*b.cellSize+48))

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(opts.MoveDelay)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(func() {
					if ctrl.Tick() {
						b.moveRobot(ctrl.RobotAt())
					}
				})
			}
		}
	}()

	w.ShowAndRun()
	close(stop)
	return nil
}
