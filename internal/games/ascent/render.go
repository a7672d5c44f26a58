package ascent

import (
	"fmt"

	"github.com/vovakirdan/neon-ascent/internal/core"
	"github.com/vovakirdan/neon-ascent/internal/games/ascent/engine"
)

// Visual characters for rendering
const (
	AvatarChar   = '●'
	PlatformChar = '▀'
	BrokenChar   = '┄'
	CoinChar     = '●'
	SpikeChar    = '▲'
	OrbChar      = '◉'
	WallChar     = '│'
	GridChar     = '┊'
	GlowChar     = '░'
)

// gridSpacing is the world distance between background grid lines.
const gridSpacing = 50

// platformColors maps platform kinds to the neon palette.
var platformColors = map[engine.PlatformKind]core.Color{
	engine.PlatformStatic:   core.ColorNeonCyan,
	engine.PlatformMoving:   core.ColorNeonPurple,
	engine.PlatformBreaking: core.ColorNeonYellow,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	if snap == nil {
		return
	}
	l := g.layout
	skinColor := core.Color(snap.Skin.Color)

	// Walls and background grid
	dst.DrawVLine(l.OffsetX-1, 1, l.Rows, WallChar, core.ColorGray)
	dst.DrawVLine(l.OffsetX+l.Cols, 1, l.Rows, WallChar, core.ColorGray)
	for x := float64(gridSpacing); x < snap.Width; x += gridSpacing {
		dst.DrawVLine(l.Column(x), 1, l.Rows, GridChar, core.ColorGrid)
	}

	for _, p := range snap.Platforms {
		row := l.Row(p.Y, snap.Camera)
		if row < 0 {
			continue
		}
		glyph, color := PlatformChar, platformColors[p.Kind]
		if p.Broken {
			glyph, color = BrokenChar, core.ColorGray
		}
		from, to := l.Span(p.X, p.Width)
		for col := from; col <= to; col++ {
			dst.SetColored(col, row, glyph, color)
		}
	}

	for _, c := range snap.Coins {
		if c.Collected {
			continue
		}
		if row := l.Row(c.Y, snap.Camera); row >= 0 {
			dst.SetColored(l.Column(c.X), row, CoinChar, core.ColorGold)
		}
	}

	for _, h := range snap.Hazards {
		row := l.Row(h.Y, snap.Camera)
		if row < 0 {
			continue
		}
		glyph := SpikeChar
		if h.Kind == engine.HazardOrb {
			glyph = OrbChar
		}
		dst.SetColored(l.Column(h.X), row, glyph, core.ColorNeonRed)
	}

	for _, p := range snap.Particles {
		row := l.Row(p.Y, snap.Camera)
		if row < 0 || p.X < 0 || p.X >= snap.Width {
			continue
		}
		dst.SetColored(l.Column(p.X), row, particleGlyph(p.Life), tintColor(p.Tint, skinColor))
	}

	if row := l.Row(snap.Avatar.Y, snap.Camera); row >= 0 {
		col := l.Column(snap.Avatar.X)
		glow := core.Color(snap.Skin.Glow)
		if glow == "" {
			glow = skinColor
		}
		// Halo only over background, never over entities.
		for _, c := range []int{col - 1, col + 1} {
			if r := dst.Get(c, row); r == ' ' || r == GridChar {
				dst.SetColored(c, row, GlowChar, glow)
			}
		}
		dst.SetColored(col, row, AvatarChar, skinColor)
	}

	g.drawHUD(dst, snap)

	if snap.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorNeonCyan)
	}
	if snap.State == engine.StateTerminal {
		sub := fmt.Sprintf("Height: %dm  Coins: %d  |  Press R to restart", snap.Score, snap.CoinsCollected)
		g.drawCenteredMessage(dst, "GAME OVER", sub, core.ColorNeonRed)
	}
}

// particleGlyph fades a spark as its life runs out.
func particleGlyph(life float64) rune {
	switch {
	case life > 0.66:
		return '*'
	case life > 0.33:
		return '+'
	default:
		return '·'
	}
}

func tintColor(t engine.Tint, skin core.Color) core.Color {
	switch t {
	case engine.TintBreaking:
		return core.ColorNeonYellow
	case engine.TintCoin:
		return core.ColorGold
	default:
		return skin
	}
}

// drawHUD renders the status line on row 0.
func (g *Game) drawHUD(dst *core.Screen, snap *engine.Snapshot) {
	left := fmt.Sprintf(" ▲ %dm  ● %d  BEST %dm ", snap.Score, snap.CoinsCollected, max(g.best, snap.Score))
	dst.DrawTextColored(0, 0, left, core.ColorAccent)

	right := fmt.Sprintf(" %s ", snap.Skin.Name)
	x := dst.Width() - len([]rune(right))
	if x > len([]rune(left)) {
		dst.DrawTextColored(x, 0, right, core.Color(snap.Skin.Color))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
