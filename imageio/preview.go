package imageio

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"

	"github.com/weaming/color-transfer-go/colorspace"
)

// DefaultPreviewHeight 预览图默认高度
const DefaultPreviewHeight = 400

// Preview 将多幅图像缩放到相同高度（保持宽高比）后水平拼接
// height <= 0 时使用第一幅图像的高度
func Preview(height int, imgs ...*colorspace.RGBImage) *colorspace.RGBImage {
	if len(imgs) == 0 {
		return colorspace.NewRGBImage(0, 0)
	}
	if height <= 0 {
		height = imgs[0].Height
	}

	scaled := make([]image.Image, len(imgs))
	totalWidth := 0
	for i, img := range imgs {
		scaled[i] = scaleToHeight(img, height)
		totalWidth += scaled[i].Bounds().Dx()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, totalWidth, height))
	x := 0
	for _, s := range scaled {
		b := s.Bounds()
		draw.Draw(canvas, image.Rect(x, 0, x+b.Dx(), b.Dy()), s, b.Min, draw.Src)
		x += b.Dx()
	}

	return FromImage(canvas)
}

func scaleToHeight(img *colorspace.RGBImage, height int) image.Image {
	src := ToImage(img)
	if img.Height == height {
		return src
	}
	// 宽度为 0 时 resize 保持宽高比
	return resize.Resize(0, uint(height), src, resize.Lanczos3)
}
