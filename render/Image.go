package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
)

// Colours used by PlotGridWorld
var (
	BackgroundColour = color.RGBA{255, 255, 255, 255}
	LineColour       = color.RGBA{0, 0, 0, 255}
	StartColour      = color.RGBA{100, 149, 237, 255}
	GoalColour       = color.RGBA{46, 139, 87, 255}
	HazardColour     = color.RGBA{220, 20, 60, 255}
	AgentColour      = color.RGBA{255, 215, 0, 255}
)

const (
	arrowMargin = 0.15 // fraction of a cell left free at each end of an arrow
	headLength  = 0.2  // fraction of a cell
	headWidth   = 0.25 // fraction of a cell
)

// Image renders a grid of cols x rows cells, each cell cellSize pixels
// wide. Cells can be coloured individually and arrows can be drawn in
// cells to visualize a policy. The origin of the grid is the lower-left
// cell.
type Image struct {
	dc         *gg.Context
	rows, cols int
	cellSize   float64
}

// NewImage returns a new blank Image of cols x rows cells
func NewImage(cols, rows, cellSize int) (*Image, error) {
	if cols <= 0 || rows <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("newImage: dimensions must be positive, "+
			"have cols = %d, rows = %d, cell size = %d", cols, rows, cellSize)
	}

	dc := gg.NewContext(cols*cellSize, rows*cellSize)
	dc.SetColor(BackgroundColour)
	dc.Clear()

	return &Image{dc, rows, cols, float64(cellSize)}, nil
}

// PlotGrid draws the dashed border and grid lines
func (im *Image) PlotGrid() {
	w, h := float64(im.cols)*im.cellSize, float64(im.rows)*im.cellSize

	im.dc.SetColor(LineColour)
	im.dc.SetLineWidth(1.0)
	im.dc.SetDash(4, 4)

	for i := 0; i <= im.cols; i++ {
		x := float64(i) * im.cellSize
		im.dc.DrawLine(x, 0, x, h)
	}
	for j := 0; j <= im.rows; j++ {
		y := float64(j) * im.cellSize
		im.dc.DrawLine(0, y, w, y)
	}
	im.dc.Stroke()
	im.dc.SetDash()
}

// PlotRect fills cell pos with colour c
func (im *Image) PlotRect(pos gridworld.Position, c color.Color) {
	x, y := im.topLeft(pos)

	im.dc.SetColor(c)
	im.dc.DrawRectangle(x, y, im.cellSize, im.cellSize)
	im.dc.Fill()
}

// PlotArrow draws an arrow in cell pos pointing in the direction of
// action a
func (im *Image) PlotArrow(pos gridworld.Position, a gridworld.Action) error {
	d, err := a.Displacement()
	if err != nil {
		return fmt.Errorf("plotArrow: %w", err)
	}

	// Pixel y coordinates grow downwards
	dx, dy := float64(d.X), -float64(d.Y)
	cx, cy := im.centre(pos)

	half := im.cellSize * (0.5 - arrowMargin)
	startX, startY := cx-dx*half, cy-dy*half
	endX, endY := cx+dx*half, cy+dy*half

	head := im.cellSize * headLength
	width := im.cellSize * headWidth / 2
	baseX, baseY := endX-dx*head, endY-dy*head

	im.dc.SetColor(LineColour)
	im.dc.SetLineWidth(2.0)
	im.dc.DrawLine(startX, startY, baseX, baseY)
	im.dc.Stroke()

	// Perpendicular of (dx, dy) is (-dy, dx)
	im.dc.MoveTo(endX, endY)
	im.dc.LineTo(baseX-dy*width, baseY+dx*width)
	im.dc.LineTo(baseX+dy*width, baseY-dx*width)
	im.dc.ClosePath()
	im.dc.Fill()

	return nil
}

// PlotPolicy draws an arrow in every cell for the action policy selects
// in that cell
func (im *Image) PlotPolicy(policy func(gridworld.Position) gridworld.Action) error {
	for x := 0; x < im.cols; x++ {
		for y := 0; y < im.rows; y++ {
			cell := gridworld.Position{X: x, Y: y}
			if err := im.PlotArrow(cell, policy(cell)); err != nil {
				return fmt.Errorf("plotPolicy: cell %v: %w", cell, err)
			}
		}
	}
	return nil
}

// PlotGridWorld colours the start, goal, hazard, and agent cells of g
// and draws the grid lines
func (im *Image) PlotGridWorld(g Grid) error {
	if r, c := g.Dims(); r != im.rows || c != im.cols {
		return fmt.Errorf("plotGridWorld: image has shape (%d, %d) but grid "+
			"has shape (%d, %d)", im.rows, im.cols, r, c)
	}

	im.PlotRect(g.StartPosition(), StartColour)
	for _, hazard := range g.HazardPositions() {
		if hazard.In(im.rows, im.cols) {
			im.PlotRect(hazard, HazardColour)
		}
	}
	im.PlotRect(g.GoalPosition(), GoalColour)
	im.PlotRect(g.Position(), AgentColour)
	im.PlotGrid()

	return nil
}

// Image returns the rendered image
func (im *Image) Image() image.Image {
	return im.dc.Image()
}

// SavePNG saves the rendered image as a PNG file
func (im *Image) SavePNG(filename string) error {
	if err := im.dc.SavePNG(filename); err != nil {
		return fmt.Errorf("savePNG: %v", err)
	}
	return nil
}

// EncodePNG writes the rendered image to w as a PNG
func (im *Image) EncodePNG(w io.Writer) error {
	if err := im.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encodePNG: %v", err)
	}
	return nil
}

// topLeft returns the pixel coordinates of the top-left corner of cell
// pos
func (im *Image) topLeft(pos gridworld.Position) (float64, float64) {
	x := float64(pos.X) * im.cellSize
	y := float64(im.rows-1-pos.Y) * im.cellSize
	return x, y
}

// centre returns the pixel coordinates of the centre of cell pos
func (im *Image) centre(pos gridworld.Position) (float64, float64) {
	x, y := im.topLeft(pos)
	return x + im.cellSize/2, y + im.cellSize/2
}
