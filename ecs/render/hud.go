package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	hudBarWidth   = 200
	hudBarHeight  = 22
	hudBarY       = 18
	hudBannerSize = 3
	helpText      = "A/D = move | W = jump from nearest body part | Z = mini dash | Sword aims at mouse"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// HUD draws health bars, the round banner and the dash cooldown.
type HUD struct {
	spec *config.MatchSpec
}

func NewHUD(spec *config.MatchSpec) *HUD {
	return &HUD{spec: spec}
}

func (h *HUD) Draw(sb system.Scoreboard, screen *ebiten.Image) {
	if h == nil || screen == nil {
		return
	}
	width := h.spec.Arena.Width
	height := h.spec.Arena.Height

	drawText(screen, sb.Player.Name, 40, 22, colornames.White)
	drawText(screen, sb.Bot.Name, width-130, 22, colornames.White)
	drawHealthBar(screen, 90, sb.Player)
	drawHealthBar(screen, width-290, sb.Bot)

	if sb.Player.Down {
		drawBanner(screen, sb.Bot.Name+" Wins!", width/2, 60, sb.Bot.Color)
	}
	if sb.Bot.Down {
		drawBanner(screen, "You Win!", width/2, 60, sb.Player.Color)
	}

	if sb.DashCooldown > 0 {
		msg := fmt.Sprintf("Dash Cooldown: %.1fs", sb.DashCooldownSeconds(h.spec.Physics.TPS))
		drawText(screen, msg, 310, 22, colornames.Yellow)
	}

	drawText(screen, helpText, 20, height-28, colornames.White)
}

func drawHealthBar(screen *ebiten.Image, x float64, status system.CombatantStatus) {
	fill := float32(2 * status.Health)
	if fill > 0 {
		vector.FillRect(screen, float32(x), hudBarY, fill, hudBarHeight, status.Color, false)
	}
	vector.StrokeRect(screen, float32(x), hudBarY, hudBarWidth, hudBarHeight, 1, colornames.White, false)
}

func drawText(screen *ebiten.Image, msg string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, hudFace, op)
}

func drawBanner(screen *ebiten.Image, msg string, centerX, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Scale(hudBannerSize, hudBannerSize)
	op.GeoM.Translate(centerX, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, hudFace, op)
}

