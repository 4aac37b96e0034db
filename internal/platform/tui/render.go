package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spaceshots/internal/canvas"
	"github.com/vovakirdan/spaceshots/internal/game"
)

// colorStyles gives each canvas role its terminal look.
var colorStyles = map[canvas.Color]lipgloss.Style{
	canvas.ColorDefault:    lipgloss.NewStyle(),
	canvas.ColorPlanet:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	canvas.ColorOrbit:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	canvas.ColorTarget:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	canvas.ColorTargetOpen: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	canvas.ColorCraft:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
	canvas.ColorThrust:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	canvas.ColorStranded:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	canvas.ColorGood:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	canvas.ColorBad:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
}

var (
	hudStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	endStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// Spacecraft glyphs by heading, counter-clockwise from +x in 45° steps.
var headingRunes = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *canvas.Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			startColor := c.GetCell(x, y).Color

			var run strings.Builder
			for x < c.Width() {
				cell := c.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[canvas.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawScene draws the playfield of snap onto c: orbits, planets, the target
// edge segment, and the spacecraft. World y grows upwards.
func DrawScene(c *canvas.Canvas, snap game.Snapshot) {
	c.Clear()
	vp := canvas.Viewport{W: snap.Width, H: snap.Height, Cols: c.Width(), Rows: c.Height()}

	for _, p := range snap.Planets {
		cx, cy := vp.Point(p.X, p.Y)
		rx, ry := vp.Scale(p.Radius)
		c.DrawDisc(cx, cy, rx, ry, 'O', canvas.ColorPlanet)
	}
	for _, p := range snap.Planets {
		ox, oy := vp.Point(p.OrbitX, p.OrbitY)
		ax, _ := vp.Scale(p.A)
		_, by := vp.Scale(p.B)
		c.DrawEllipse(ox, oy, ax, by, '·', canvas.ColorOrbit)
	}

	winColor := canvas.ColorTarget
	if snap.Speed >= snap.WinVelocity {
		winColor = canvas.ColorTargetOpen
	}
	winRune := '═'
	if snap.WinSide == "left" || snap.WinSide == "right" {
		winRune = '║'
	}
	x1, y1 := vp.Cell(snap.WinX1, snap.WinY1)
	x2, y2 := vp.Cell(snap.WinX2, snap.WinY2)
	c.DrawLine(x1, y1, x2, y2, winRune, winColor)

	scColor := canvas.ColorCraft
	switch {
	case snap.Gas <= 0:
		scColor = canvas.ColorStranded
	case snap.Thrust:
		scColor = canvas.ColorThrust
	}
	sx, sy := vp.Cell(snap.X, snap.Y)
	c.Set(sx, sy, spacecraftRune(snap), scColor)
}

func spacecraftRune(snap game.Snapshot) rune {
	if snap.Speed == 0 {
		return '*'
	}
	a := math.Atan2(snap.VY, snap.VX)
	if a < 0 {
		a += 2 * math.Pi
	}
	i := int(math.Round(a/(math.Pi/4))) % len(headingRunes)
	return headingRunes[i]
}

// hudLine summarises the current scene in one line.
func hudLine(snap game.Snapshot) string {
	fuel := 0.0
	if snap.InitialGas > 0 {
		fuel = 100 * snap.Gas / snap.InitialGas
	}
	speed := fmt.Sprintf("speed %.0f/%.0f", snap.Speed, snap.WinVelocity)
	if snap.Speed >= snap.WinVelocity {
		speed = goodStyle.Render(speed)
	}
	fuelText := fmt.Sprintf("fuel %3.0f%%", fuel)
	if snap.Gas <= 0 {
		fuelText = alertStyle.Render("fuel empty")
	}

	tier := snap.Tier
	if snap.BestEffort {
		tier += "~"
	}
	return strings.Join([]string{
		hudStyle.Render(fmt.Sprintf("level %d/%d", snap.Level+1, snap.Levels)),
		dimStyle.Render(tier),
		fmt.Sprintf("attempts %d", snap.Attempts),
		speed,
		fuelText,
		fmt.Sprintf("score %.0f", snap.Score),
	}, "  ")
}

func (m Model) render() string {
	snap := m.game.Snapshot()

	var body string
	if snap.Done {
		body = m.renderEnd(snap)
	} else {
		DrawScene(m.canvas, snap)
		if m.message != "" {
			m.canvas.DrawTextCentered(0, " "+m.message+" ", messageColor(m.message))
		}
		body = RenderCanvas(m.canvas)
	}

	var b strings.Builder
	b.WriteString(hudLine(snap))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func messageColor(msg string) canvas.Color {
	if msg == game.MsgWon || msg == game.MsgComplete {
		return canvas.ColorGood
	}
	return canvas.ColorBad
}

func (m Model) renderEnd(snap game.Snapshot) string {
	lines := []string{
		goodStyle.Render("MISSION COMPLETE"),
		"",
		fmt.Sprintf("score %.0f  (gas bonus %.1f)", snap.Score, snap.GasBonus),
		fmt.Sprintf("%d levels in %d attempts", snap.Levels, m.game.Attempts()),
	}
	if m.saveErr != nil {
		lines = append(lines, "", alertStyle.Render("run not saved: "+m.saveErr.Error()))
	}
	lines = append(lines, "", dimStyle.Render("r: play again  q: quit"))

	box := endStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.canvas.Width(), m.canvas.Height(), lipgloss.Center, lipgloss.Center, box)
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
