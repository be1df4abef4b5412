package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/chestfx/internal/particle"
)

// 金币动画帧数，对应纹理 coin_0 ~ coin_9
const coinFrames = 10

var (
	starColor = color.RGBA{R: 255, G: 244, B: 180, A: 255}
	lineColor = color.RGBA{R: 255, G: 255, B: 230, A: 255}
	coinColor = color.RGBA{R: 250, G: 196, B: 48, A: 255}
	coinEdge  = color.RGBA{R: 190, G: 120, B: 20, A: 255}
)

// Textures 运行时生成的粒子纹理，不依赖外部图片资源
type Textures struct {
	images map[particle.TextureID]*ebiten.Image
}

// NewTextures 生成 star、vline 和 coin_0 ~ coin_9
func NewTextures() *Textures {
	t := &Textures{images: make(map[particle.TextureID]*ebiten.Image)}
	t.images["star"] = newStarImage(32)
	t.images["vline"] = newLineImage(6, 48)

	coin := newCoinImage(32)
	for i := 0; i < coinFrames; i++ {
		t.images[particle.TextureID(fmt.Sprintf("coin_%d", i))] = newCoinFrame(coin, i)
	}
	return t
}

// Resolve 实现 systems.TextureResolver，未知 ID 返回 nil
func (t *Textures) Resolve(id particle.TextureID) *ebiten.Image {
	return t.images[id]
}

// Len 返回已生成的纹理数量
func (t *Textures) Len() int {
	return len(t.images)
}

func newStarImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	r := c - 1
	vector.StrokeLine(img, c, 1, c, float32(size)-1, 2, starColor, true)
	vector.StrokeLine(img, 1, c, float32(size)-1, c, 2, starColor, true)
	d := r * 0.5
	vector.StrokeLine(img, c-d, c-d, c+d, c+d, 1, starColor, true)
	vector.StrokeLine(img, c-d, c+d, c+d, c-d, 1, starColor, true)
	vector.DrawFilledCircle(img, c, c, r*0.25, color.White, true)
	return img
}

func newLineImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	vector.DrawFilledRect(img, float32(w)/4, 0, float32(w)/2, float32(h), lineColor, true)
	return img
}

func newCoinImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, c-1, coinEdge, true)
	vector.DrawFilledCircle(img, c, c, c-4, coinColor, true)
	return img
}

// newCoinFrame 横向压扁金币模拟旋转
func newCoinFrame(coin *ebiten.Image, frame int) *ebiten.Image {
	b := coin.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	sx := math.Abs(math.Cos(math.Pi * float64(frame) / coinFrames))
	if sx < 0.15 {
		sx = 0.15
	}

	img := ebiten.NewImage(b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(sx, 1)
	op.GeoM.Translate(w/2, h/2)
	img.DrawImage(coin, op)
	return img
}

func newChestImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	vector.DrawFilledRect(img, 0, fh*0.3, fw, fh*0.7, color.RGBA{R: 140, G: 82, B: 34, A: 255}, true)
	vector.DrawFilledRect(img, 0, 0, fw, fh*0.32, color.RGBA{R: 170, G: 102, B: 44, A: 255}, true)
	vector.StrokeLine(img, 0, fh*0.31, fw, fh*0.31, 3, coinEdge, true)
	vector.DrawFilledRect(img, fw*0.44, fh*0.22, fw*0.12, fh*0.2, coinColor, true)
	return img
}

func newShineImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	for i := 0; i < 12; i++ {
		a := float64(i) * math.Pi / 6
		x := c + float32(math.Cos(a))*c
		y := c + float32(math.Sin(a))*c
		vector.StrokeLine(img, c, c, x, y, 6, color.RGBA{R: 255, G: 230, B: 140, A: 120}, true)
	}
	return img
}

func newBalloonImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size+size/2)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, c-1, color.RGBA{R: 230, G: 70, B: 90, A: 255}, true)
	vector.StrokeLine(img, c, float32(size)-1, c, float32(size+size/2), 1, color.White, true)
	return img
}
