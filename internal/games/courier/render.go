package courier

import (
	"fmt"

	"github.com/lanegames/courier/internal/core"
)

const (
	minCellW = 5
	maxCellW = 13
	minCellH = 2
	maxCellH = 5
)

// calculateLayout derives terminal cell dimensions from the screen size.
// The board keeps the 5x6 grid; each grid cell scales to the available
// space and the whole board is centered under the HUD.
func (g *Game) calculateLayout() {
	g.hudHeight = 2

	requiredW := BoardCols*minCellW + 2
	requiredH := BoardRows*minCellH + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.cellW = core.Clamp((g.screenW-2)/BoardCols, minCellW, maxCellW)
	g.cellH = core.Clamp((g.screenH-g.hudHeight-1)/BoardRows, minCellH, maxCellH)

	g.boardX = (g.screenW - BoardCols*g.cellW) / 2
	g.boardY = g.hudHeight + (g.screenH-g.hudHeight-BoardRows*g.cellH)/2
}

// cellOrigin returns the top-left screen position of a grid cell. Fractional
// coordinates place moving entities between cells.
func (g *Game) cellOrigin(x, y float64) (int, int) {
	px := g.boardX + int(x*float64(g.cellW))
	py := g.boardY + int(y*float64(g.cellH))
	return px, py
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderDepot(dst)
	g.renderRock(dst)
	g.renderTrucks(dst)
	g.renderParcel(dst)
	g.renderHeart(dst)
	g.renderCourier(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case !g.started:
		g.renderOverlay(dst, "Courier", "Press any arrow key to start")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hearts := ""
	for i := 0; i < g.cfg.Player.MaxLives; i++ {
		if i < g.courier.Lives {
			hearts += "♥"
		} else {
			hearts += "·"
		}
	}

	hud := fmt.Sprintf(" Courier  Score: %d  Lives: %s  Level: %d  Delivered: %d  Lost: %d  %s",
		g.score, hearts, g.courier.Level, g.delivered, g.lost, g.ElapsedClock())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the grid and the lane surface.
func (g *Game) renderBoard(dst *core.Screen) {
	boardW := BoardCols * g.cellW
	boardH := BoardRows * g.cellH

	dst.DrawBox(core.NewRect(g.boardX-1, g.boardY-1, boardW+2, boardH+2))

	// Lane rows get a dotted asphalt texture
	for row := LaneFirst; row <= LaneLast; row++ {
		for dy := 0; dy < g.cellH; dy++ {
			y := g.boardY + row*g.cellH + dy
			for x := g.boardX; x < g.boardX+boardW; x += 2 {
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}

	// Column separators on the non-lane rows
	for col := 1; col < BoardCols; col++ {
		x := g.boardX + col*g.cellW
		for row := 0; row < BoardRows; row++ {
			if row >= LaneFirst && row <= LaneLast {
				continue
			}
			for dy := 0; dy < g.cellH; dy++ {
				dst.SetColored(x, g.boardY+row*g.cellH+dy, '┆', core.ColorGray)
			}
		}
	}
}

// renderDepot draws the delivery zone on the depot row.
func (g *Game) renderDepot(dst *core.Screen) {
	px, py := g.cellOrigin(float64(g.depot.Col), float64(RowDepot))
	for dy := 0; dy < g.cellH; dy++ {
		for dx := 0; dx < g.cellW; dx++ {
			dst.SetColored(px+dx, py+dy, '▒', core.ColorGreen)
		}
	}
	label := "DEPOT"
	if g.cellW >= len(label)+2 {
		dst.DrawTextColored(px+(g.cellW-len(label))/2, py+g.cellH/2, label, core.ColorGreen)
	}
}

// renderRock draws the impassable obstacle.
func (g *Game) renderRock(dst *core.Screen) {
	px, py := g.cellOrigin(float64(g.rock.Col), float64(RowRock))
	for dy := 0; dy < g.cellH; dy++ {
		for dx := 0; dx < g.cellW; dx++ {
			dst.SetColored(px+dx, py+dy, '█', core.ColorGray)
		}
	}
}

// renderTrucks draws visible trucks at their fractional lane positions.
func (g *Game) renderTrucks(dst *core.Screen) {
	boardRight := g.boardX + BoardCols*g.cellW
	for _, t := range g.trucks {
		if !t.Visible {
			continue
		}
		px, py := g.cellOrigin(t.X, float64(t.Lane))
		cy := py + g.cellH/2
		body := truckBody(g.cellW)
		for i, ch := range body {
			x := px + i
			if x >= g.boardX && x < boardRight {
				dst.SetColored(x, cy, ch, core.ColorRed)
			}
		}
	}
}

// truckBody builds the truck glyph string scaled to the cell width.
func truckBody(cellW int) []rune {
	w := cellW - 2
	if w < 3 {
		w = 3
	}
	body := make([]rune, w)
	for i := range body {
		body[i] = '▮'
	}
	body[w-1] = '▶'
	return body
}

// renderParcel draws the parcel. The glyph degrades with damage.
func (g *Game) renderParcel(dst *core.Screen) {
	if !g.parcel.Visible {
		return
	}
	var glyph rune
	var color core.Color
	switch g.parcel.Damage {
	case 0:
		glyph, color = '■', core.ColorYellow
	case 1:
		glyph, color = '▣', core.ColorYellow
	default:
		glyph, color = '□', core.ColorRed
	}
	px, py := g.cellOrigin(g.parcel.X, g.parcel.Y)
	x := px + g.cellW/2
	y := py + g.cellH/2
	if g.parcel.Collected {
		// Carried parcels ride beside the courier
		x++
	}
	dst.SetColored(x, y, glyph, color)
}

// renderHeart draws the bonus heart when it is on the field.
func (g *Game) renderHeart(dst *core.Screen) {
	if !g.heart.Visible {
		return
	}
	px, py := g.cellOrigin(g.heart.X, g.heart.Y)
	dst.SetColored(px+g.cellW/2, py+g.cellH/2, '♥', core.ColorMagenta)
}

// renderCourier draws the player.
func (g *Game) renderCourier(dst *core.Screen) {
	px, py := g.cellOrigin(g.courier.X, g.courier.Y)
	dst.SetColored(px+g.cellW/2, py+g.cellH/2, '@', core.ColorBrightCyan)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
