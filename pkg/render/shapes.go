// pkg/render/shapes.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var fillImg = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

var fillSrc = fillImg.SubImage(fillImg.Bounds().Inset(1)).(*ebiten.Image)

// FillPath заливает замкнутый путь цветом.
func FillPath(target *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawColored(target, vs, is, clr)
}

// StrokePath обводит путь линией толщиной width.
func StrokePath(target *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	drawColored(target, vs, is, clr)
}

// Polygon строит замкнутый путь по точкам (x0, y0, x1, y1, ...).
func Polygon(points ...float32) *vector.Path {
	path := &vector.Path{}
	for i := 0; i+1 < len(points); i += 2 {
		if i == 0 {
			path.MoveTo(points[i], points[i+1])
		} else {
			path.LineTo(points[i], points[i+1])
		}
	}
	path.Close()
	return path
}

func drawColored(target *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(vs, is, fillSrc, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
