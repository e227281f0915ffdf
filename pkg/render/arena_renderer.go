// pkg/render/arena_renderer.go
package render

import (
	"fmt"

	"go-boss-arena/internal/app"
	"go-boss-arena/internal/config"
	"go-boss-arena/internal/defs"
	"go-boss-arena/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ArenaRenderer рисует арену и бойцов по снимку матча.
// Статичная часть (пол и стены) рендерится один раз в arenaImage.
type ArenaRenderer struct {
	width, height float64
	offsetX       float32
	offsetY       float32
	fontFace      font.Face
	arenaImage    *ebiten.Image
}

func NewArenaRenderer(arena defs.ArenaDefinition, offsetX, offsetY float32, fontFace font.Face) *ArenaRenderer {
	r := &ArenaRenderer{
		width:    arena.Width,
		height:   arena.Height,
		offsetX:  offsetX,
		offsetY:  offsetY,
		fontFace: fontFace,
	}
	r.RenderArenaImage(arena.Walls)
	return r
}

// RenderArenaImage перерисовывает статичный слой. Вызывается при создании и после перезагрузки арены.
func (r *ArenaRenderer) RenderArenaImage(walls []defs.Rect) {
	img := ebiten.NewImage(int(r.width), int(r.height))
	img.Fill(config.ArenaColor)

	// Сетка пола
	gridColor := LightenColor(config.ArenaColor, 0.06)
	for x := 50.0; x < r.width; x += 50 {
		vector.StrokeLine(img, float32(x), 0, float32(x), float32(r.height), 1, gridColor, false)
	}
	for y := 50.0; y < r.height; y += 50 {
		vector.StrokeLine(img, 0, float32(y), float32(r.width), float32(y), 1, gridColor, false)
	}

	for _, w := range walls {
		vector.DrawFilledRect(img, float32(w.X), float32(w.Y), float32(w.Width), float32(w.Height), config.WallColor, false)
		vector.StrokeRect(img, float32(w.X), float32(w.Y), float32(w.Width), float32(w.Height), 2, DarkenColor(config.WallColor), false)
	}
	vector.StrokeRect(img, 1, 1, float32(r.width)-2, float32(r.height)-2, 2, config.ArenaBorderColor, false)

	if r.arenaImage != nil {
		r.arenaImage.Deallocate()
	}
	r.arenaImage = img
}

// Draw рисует арену, зоны, бойцов и всплывающий текст.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.offsetX), float64(r.offsetY))
	screen.DrawImage(r.arenaImage, op)

	for _, z := range snap.Zones {
		r.drawZone(screen, z)
	}
	r.drawCombatant(screen, snap.Enemy)
	r.drawCombatant(screen, snap.Player)

	for _, t := range snap.Texts {
		clr := WithAlpha(t.Color, t.Alpha)
		x := int(r.offsetX) + int(t.X)
		y := int(r.offsetY) + int(t.Y)
		text.Draw(screen, t.Text, r.fontFace, x, y, clr)
	}
}

func (r *ArenaRenderer) drawZone(screen *ebiten.Image, z app.ZoneView) {
	px, py := -z.DirY, z.DirX
	hw := z.Width / 2
	ox, oy := z.OriginX, z.OriginY
	ex, ey := ox+z.DirX*z.Length, oy+z.DirY*z.Length

	pts := []float64{
		ox + px*hw, oy + py*hw,
		ex + px*hw, ey + py*hw,
		ex - px*hw, ey - py*hw,
		ox - px*hw, oy - py*hw,
	}
	points := make([]float32, len(pts))
	for i, v := range pts {
		if i%2 == 0 {
			points[i] = float32(v) + r.offsetX
		} else {
			points[i] = float32(v) + r.offsetY
		}
	}
	path := Polygon(points...)
	FillPath(screen, path, config.ZoneColor)
	StrokePath(screen, path, 1, LightenColor(config.ZoneColor, 0.3))
}

func (r *ArenaRenderer) drawCombatant(screen *ebiten.Image, c app.CombatantView) {
	if c.ID == 0 {
		return
	}
	x := float32(c.X-c.Width/2) + r.offsetX
	y := float32(c.Y-c.Height/2) + r.offsetY
	w, h := float32(c.Width), float32(c.Height)

	body := config.PlayerColor
	if c.Role == types.RoleEnemy {
		body = config.EnemyColor
	}
	if c.HasStatus(defs.StatusFrozen) {
		body = config.FrozenColor
	}
	if c.HP <= 0 {
		body = DarkenColor(body)
	}
	vector.DrawFilledRect(screen, x, y, w, h, body, true)
	if c.Flash > 0 {
		vector.DrawFilledRect(screen, x, y, w, h, WithAlpha(config.FlashColor, c.Flash*0.7), true)
	}
	stroke := LightenColor(body, 0.4)
	if c.PassiveActive {
		stroke = config.StageTwoColor
	}
	vector.StrokeRect(screen, x, y, w, h, 2, stroke, true)

	// Направление взгляда
	cx, cy := float32(c.X)+r.offsetX, float32(c.Y)+r.offsetY
	fx := cx + float32(c.FacingX*c.Width*0.6)
	fy := cy + float32(c.FacingY*c.Height*0.6)
	vector.StrokeLine(screen, cx, cy, fx, fy, 3, config.TextLightColor, true)

	// Статусы точками над телом
	for i, s := range c.Statuses {
		dx := float32(i)*12 - float32(len(c.Statuses)-1)*6
		vector.DrawFilledCircle(screen, cx+dx, y-8, 4, StatusColor(s.Kind), true)
	}

	label := c.Name
	if c.PassiveStacks > 0 {
		label = fmt.Sprintf("%s [%d]", c.Name, c.PassiveStacks)
	}
	labelX := int(cx) - len(label)*config.TextCharWidth/2
	text.Draw(screen, label, r.fontFace, labelX, int(y+h)+14, config.TextLightColor)
}
