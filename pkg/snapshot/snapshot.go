// pkg/snapshot/snapshot.go
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-boss-arena/internal/app"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// HeaderHeight — высота полосы со здоровьем над ареной.
const HeaderHeight = 40

// Render рисует снимок матча без окна: арена, зоны, бойцы и полосы здоровья.
func Render(snap app.Snapshot) image.Image {
	w, h := int(snap.ArenaWidth), int(snap.ArenaHeight)
	dc := gg.NewContext(w, h+HeaderHeight)
	dc.SetColor(config.BackgroundColor)
	dc.Clear()

	drawHeader(dc, snap, float64(w))

	dc.Push()
	dc.Translate(0, HeaderHeight)

	dc.SetColor(config.ArenaColor)
	dc.DrawRectangle(0, 0, snap.ArenaWidth, snap.ArenaHeight)
	dc.Fill()

	for _, wall := range snap.Walls {
		dc.SetColor(config.WallColor)
		dc.DrawRectangle(wall.X, wall.Y, wall.Width, wall.Height)
		dc.Fill()
	}

	for _, z := range snap.Zones {
		dc.Push()
		dc.Translate(z.OriginX, z.OriginY)
		dc.Rotate(math.Atan2(z.DirY, z.DirX))
		dc.DrawRectangle(0, -z.Width/2, z.Length, z.Width)
		dc.SetColor(config.ZoneColor)
		dc.Fill()
		dc.Pop()
	}

	drawCombatant(dc, snap.Enemy)
	drawCombatant(dc, snap.Player)

	dc.SetColor(config.ArenaBorderColor)
	dc.SetLineWidth(2)
	dc.DrawRectangle(1, 1, snap.ArenaWidth-2, snap.ArenaHeight-2)
	dc.Stroke()
	dc.Pop()

	if snap.Over {
		drawResult(dc, snap)
	}
	return dc.Image()
}

func drawHeader(dc *gg.Context, snap app.Snapshot, width float64) {
	barW := width/2 - 30
	drawBar(dc, snap.Player, 10, 18, barW, config.HealthColor)
	drawBar(dc, snap.Enemy, width-10-barW, 18, barW, config.EnemyColor)

	dc.SetColor(config.TextLightColor)
	clock := fmt.Sprintf("%.1fs", snap.Time)
	dc.DrawStringAnchored(clock, width/2, 26, 0.5, 0.5)
}

func drawBar(dc *gg.Context, c app.CombatantView, x, y, width float64, clr color.RGBA) {
	dc.SetColor(config.HealthBackColor)
	dc.DrawRectangle(x, y, width, 14)
	dc.Fill()
	if c.MaxHP > 0 {
		dc.SetColor(clr)
		dc.DrawRectangle(x, y, width*math.Max(c.HP, 0)/c.MaxHP, 14)
		dc.Fill()
	}
	dc.SetColor(config.TextLightColor)
	dc.DrawString(fmt.Sprintf("%s %.0f/%.0f", c.Name, c.HP, c.MaxHP), x, y-4)
}

func drawCombatant(dc *gg.Context, c app.CombatantView) {
	if c.ID == 0 {
		return
	}
	body := config.PlayerColor
	if c.Role == types.RoleEnemy {
		body = config.EnemyColor
	}
	if c.HasStatus(defs.StatusFrozen) {
		body = config.FrozenColor
	}
	dc.SetColor(body)
	dc.DrawRectangle(c.X-c.Width/2, c.Y-c.Height/2, c.Width, c.Height)
	dc.Fill()

	dc.SetColor(config.TextLightColor)
	dc.SetLineWidth(3)
	dc.DrawLine(c.X, c.Y, c.X+c.FacingX*c.Width*0.6, c.Y+c.FacingY*c.Height*0.6)
	dc.Stroke()

	dc.DrawStringAnchored(c.Name, c.X, c.Y+c.Height/2+12, 0.5, 0.5)
}

func drawResult(dc *gg.Context, snap app.Snapshot) {
	result := "DRAW"
	if !snap.Draw {
		result = string(snap.Winner) + " wins"
	}
	dc.SetColor(config.OverlayColor)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()
	dc.SetColor(config.TextLightColor)
	dc.DrawStringAnchored(result, float64(dc.Width())/2, float64(dc.Height())/2, 0.5, 0.5)
}

// Save сохраняет изображение; формат определяется по расширению.
// thumbWidth > 0 уменьшает картинку до этой ширины с сохранением пропорций.
func Save(path string, img image.Image, thumbWidth int) error {
	if thumbWidth > 0 && thumbWidth < img.Bounds().Dx() {
		img = imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
