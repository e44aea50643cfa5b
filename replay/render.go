package replay

import (
	"fmt"
	"math"

	"github.com/akmonengine/particlesim/actor"
	"github.com/akmonengine/particlesim/eventlog"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	styleBorder    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleObstacle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(240, 128, 128))
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleCollision = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)

	// Particles are colored by mass, light to heavy
	massPalette = []tcell.Color{
		tcell.NewRGBColor(253, 231, 37),
		tcell.NewRGBColor(94, 201, 98),
		tcell.NewRGBColor(33, 145, 140),
		tcell.NewRGBColor(59, 82, 139),
		tcell.NewRGBColor(68, 1, 84),
	}
)

// Viewport maps region coordinates onto the screen cells inside the border.
// The region's y axis points up, the screen's points down.
type Viewport struct {
	Region actor.Region
	// Origin of the drawable area, and its size in cells
	Left, Top     int
	Width, Height int
}

// NewViewport fits region in a screen of cols x rows, keeping the last row for the status line
func NewViewport(region actor.Region, cols, rows int) Viewport {
	return Viewport{
		Region: region,
		Left:   1,
		Top:    1,
		Width:  max(1, cols-2),
		Height: max(1, rows-3),
	}
}

// ToCell converts a region position to a screen cell
func (v Viewport) ToCell(position mgl64.Vec2) (int, int) {
	x := mgl64.Clamp(position.X()/v.Region.Width, 0, 1)
	y := mgl64.Clamp(position.Y()/v.Region.Height, 0, 1)

	col := v.Left + int(math.Round(x*float64(v.Width-1)))
	row := v.Top + int(math.Round((1-y)*float64(v.Height-1)))

	return col, row
}

// ToRegion converts the center of a screen cell back to a region position
func (v Viewport) ToRegion(col, row int) mgl64.Vec2 {
	x := float64(col-v.Left) / float64(max(1, v.Width-1))
	y := 1 - float64(row-v.Top)/float64(max(1, v.Height-1))

	return mgl64.Vec2{x * v.Region.Width, y * v.Region.Height}
}

func massStyle(mass float64) tcell.Style {
	// heaviest color from a mass of 10
	i := int(mgl64.Clamp(mass/10.0, 0, 1) * float64(len(massPalette)-1))
	return tcell.StyleDefault.Foreground(massPalette[i])
}

// Draw renders the current frame of player on screen
func Draw(screen tcell.Screen, player *Player) {
	screen.Clear()
	cols, rows := screen.Size()
	header := player.Recording.Header
	if header.Region.Width <= 0 || header.Region.Height <= 0 {
		screen.Show()
		return
	}
	view := NewViewport(header.Region, cols, rows)

	drawBorder(screen, view)
	for _, obstacle := range header.Obstacles {
		drawBox(screen, view, obstacle.AABB(), '▒', styleObstacle)
	}

	frame, ok := player.Frame()
	if ok && player.Trails {
		for _, p := range frame.Particles {
			drawTrail(screen, view, player.Trail(p.ID), massStyle(p.Mass))
		}
	}
	if ok {
		for _, p := range frame.Particles {
			drawParticle(screen, view, p)
		}
	}

	recent := player.Recent()
	status := fmt.Sprintf(" t=%.2f  frame %d/%d", frame.Time, player.Index()+1, player.Len())
	if player.Paused {
		status += "  [paused]"
	}
	if player.Trails {
		status += "  [trails]"
	}
	status += "  space: pause  left/right: step  t: trails  q: quit"
	drawText(screen, 0, rows-1, status, styleStatus)
	if len(recent) > 0 {
		drawText(screen, view.Left+1, view.Top, fmt.Sprintf(" collisions: %d ", len(recent)), styleCollision)
	}

	screen.Show()
}

func drawBorder(screen tcell.Screen, view Viewport) {
	left, top := view.Left-1, view.Top-1
	right, bottom := view.Left+view.Width, view.Top+view.Height

	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, '─', nil, styleBorder)
		screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, '│', nil, styleBorder)
		screen.SetContent(right, y, '│', nil, styleBorder)
	}
	screen.SetContent(left, top, '┌', nil, styleBorder)
	screen.SetContent(right, top, '┐', nil, styleBorder)
	screen.SetContent(left, bottom, '└', nil, styleBorder)
	screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

// drawBox fills every cell whose center lies in box
func drawBox(screen tcell.Screen, view Viewport, box actor.AABB, r rune, style tcell.Style) {
	minCol, maxRow := view.ToCell(box.Min)
	maxCol, minRow := view.ToCell(box.Max)

	for col := minCol; col <= maxCol; col++ {
		for row := minRow; row <= maxRow; row++ {
			screen.SetContent(col, row, r, nil, style)
		}
	}
}

// drawTrail marks every cell the path went through, with its start as 'o'
func drawTrail(screen tcell.Screen, view Viewport, trail []mgl64.Vec2, style tcell.Style) {
	for _, position := range trail {
		col, row := view.ToCell(position)
		screen.SetContent(col, row, '·', nil, style)
	}
	if len(trail) > 0 {
		col, row := view.ToCell(trail[0])
		screen.SetContent(col, row, 'o', nil, style)
	}
}

func drawParticle(screen tcell.Screen, view Viewport, p eventlog.ParticleState) {
	style := massStyle(p.Mass)
	extent := mgl64.Vec2{p.Radius, p.Radius}
	minCol, maxRow := view.ToCell(p.Position.Sub(extent))
	maxCol, minRow := view.ToCell(p.Position.Add(extent))

	for col := minCol; col <= maxCol; col++ {
		for row := minRow; row <= maxRow; row++ {
			if view.ToRegion(col, row).Sub(p.Position).Len() <= p.Radius {
				screen.SetContent(col, row, '●', nil, style)
			}
		}
	}

	// label with the particle id at its center
	col, row := view.ToCell(p.Position)
	drawText(screen, col, row, fmt.Sprint(p.ID), style.Reverse(true))
}

func drawText(screen tcell.Screen, col, row int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}
