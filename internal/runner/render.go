package runner

import (
	"fmt"

	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/world"
)

// Visual characters for rendering
const (
	PlayerHead   = '◆'
	PlayerBody   = '█'
	HeliBlade    = '─'
	WaterChar    = '≈'
	CoinChar     = '●'
	PowerupChar  = '◈'
	CrumbleChar  = '▓'
	FadedChar    = '░'
	ConveyorLeft = '◀'
	ConveyorRgt  = '▶'
	SpringChar   = '▲'
)

// platformGlyph maps a platform type to its surface rune and color.
func platformGlyph(p *world.Platform) (rune, core.Color) {
	switch p.Type {
	case world.TypeStatic:
		return '█', core.ColorGreen
	case world.TypeMoving:
		return '█', core.ColorMagenta
	case world.TypeSmall:
		return '▬', core.ColorYellow
	case world.TypeCrumbling:
		return CrumbleChar, core.ColorRed
	case world.TypeBouncy:
		return '▀', core.ColorBrightGreen
	case world.TypeIce:
		return '█', core.ColorBrightCyan
	case world.TypeConveyor:
		if p.SurfaceEffect().Value < 0 {
			return ConveyorLeft, core.ColorOrange
		}
		return ConveyorRgt, core.ColorOrange
	case world.TypeDisappearing:
		return FadedChar, core.ColorGray
	case world.TypeSpring:
		return SpringChar, core.ColorBrightYellow
	default:
		return '█', core.ColorDefault
	}
}

// collectibleGlyph maps a pickup type to its rune and color.
func collectibleGlyph(t world.CollectibleType) (rune, core.Color) {
	switch t {
	case world.CollectCoin:
		return CoinChar, core.ColorBrightYellow
	case world.CollectSpeedBoost:
		return PowerupChar, core.ColorBrightCyan
	case world.CollectShield:
		return PowerupChar, core.ColorBrightBlue
	case world.CollectMagnet:
		return PowerupChar, core.ColorBrightMagenta
	case world.CollectDoublePoints:
		return PowerupChar, core.ColorBrightGreen
	case world.CollectExtraJump:
		return PowerupChar, core.ColorBrightWhite
	default:
		return PowerupChar, core.ColorDefault
	}
}

// Render draws the current game state to the screen.
// World pixels map linearly onto the cell grid: the camera window spans
// the full world width and height regardless of terminal size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.cfg == nil {
		return
	}

	g.drawWater(dst)
	for _, p := range g.generator.Platforms() {
		g.drawPlatform(dst, p)
	}
	for _, c := range g.spawner.Collectibles() {
		g.drawCollectible(dst, c)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "SPLASH!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// cellX converts a world x-coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, wx float64) int {
	scale := g.cfg.World.Width / float64(dst.Width())
	return int((wx - g.camera.X) / scale)
}

// cellY converts a world y-coordinate to a screen row. The vertical axis
// maps the whole world onto the screen; only x scrolls with the camera.
func (g *Game) cellY(dst *core.Screen, wy float64) int {
	scale := g.cfg.World.Height / float64(dst.Height())
	return int(wy / scale)
}

func (g *Game) drawWater(dst *core.Screen) {
	top := g.cellY(dst, g.cfg.World.WaterLevel)
	for y := top; y < dst.Height(); y++ {
		dst.DrawHLineColored(0, y, dst.Width(), WaterChar, core.ColorBlue)
	}
}

func (g *Game) drawPlatform(dst *core.Screen, p *world.Platform) {
	if !p.IsVisible() {
		return
	}
	x0 := g.cellX(dst, p.X)
	x1 := g.cellX(dst, p.X+p.Width)
	if x1 <= x0 {
		x1 = x0 + 1 // Platforms are never thinner than one cell
	}
	y := g.cellY(dst, p.Y)

	r, color := platformGlyph(p)
	// A landed crumbling platform flickers as collapse approaches
	if p.Type == world.TypeCrumbling && p.CrumbleProgress() > 0.5 {
		r = FadedChar
	}
	dst.DrawHLineColored(x0, y, x1-x0, r, color)
}

func (g *Game) drawCollectible(dst *core.Screen, c *world.Collectible) {
	if !c.Alive || c.Collected {
		return
	}
	r, color := collectibleGlyph(c.Type)
	dst.SetCell(g.cellX(dst, c.X), g.cellY(dst, c.Y), r, color)
}

// drawPlayer renders the 1x2 runner sprite with a helicopter blade row
// while gliding.
func (g *Game) drawPlayer(dst *core.Screen) {
	x := g.cellX(dst, g.player.X+g.player.Width/2)
	top := g.cellY(dst, g.player.Y)

	color := core.ColorBrightWhite
	if g.shields > 0 {
		color = core.ColorBrightBlue
	}

	if g.player.HelicopterActive() {
		dst.SetCell(x-1, top-1, HeliBlade, core.ColorCyan)
		dst.SetCell(x, top-1, HeliBlade, core.ColorCyan)
		dst.SetCell(x+1, top-1, HeliBlade, core.ColorCyan)
	}
	dst.SetCell(x, top, PlayerHead, color)
	dst.SetCell(x, top+1, PlayerBody, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawTextColored(2, 1, fmt.Sprintf(" Coins: %d ", g.coins), core.ColorBrightYellow)

	speedText := fmt.Sprintf(" Spd: %.0f  Lvl: %.1f ", g.difficulty.GameSpeed(), g.difficulty.Level())
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	// Active effect indicators
	hx := dst.Width() - 4
	if g.shields > 0 {
		dst.DrawTextColored(hx, 1, "[S]", core.ColorBrightBlue)
		hx -= 4
	}
	if g.magnetTimer > 0 {
		dst.DrawTextColored(hx, 1, "[M]", core.ColorBrightMagenta)
		hx -= 4
	}
	if g.doubleTimer > 0 {
		dst.DrawTextColored(hx, 1, "[2x]", core.ColorBrightGreen)
		hx -= 5
	}
	if g.speedTimer > 0 {
		dst.DrawTextColored(hx, 1, "[>>]", core.ColorBrightCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
