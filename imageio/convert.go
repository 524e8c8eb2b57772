package imageio

import (
	"image"
	"image/color"

	"github.com/weaming/color-transfer-go/colorspace"
)

// FromImage 将 image.Image 转换为 8-bit RGB 图像，丢弃 alpha 通道
func FromImage(img image.Image) *colorspace.RGBImage {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := colorspace.NewRGBImage(width, height)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+width*4]
			for x := 0; x < width; x++ {
				out.Set(x, y, [3]uint8{row[x*4], row[x*4+1], row[x*4+2]})
			}
		}
	case *image.RGBA:
		if src.Opaque() {
			for y := 0; y < height; y++ {
				row := src.Pix[y*src.Stride : y*src.Stride+width*4]
				for x := 0; x < width; x++ {
					out.Set(x, y, [3]uint8{row[x*4], row[x*4+1], row[x*4+2]})
				}
			}
			return out
		}
		fromGeneric(img, out)
	default:
		fromGeneric(img, out)
	}

	return out
}

func fromGeneric(img image.Image, out *colorspace.RGBImage) {
	bounds := img.Bounds()
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.Set(x, y, [3]uint8{c.R, c.G, c.B})
		}
	}
}

// ToImage 将 RGB 图像转换为不透明的 *image.RGBA
func ToImage(img *colorspace.RGBImage) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{
				R: p[0],
				G: p[1],
				B: p[2],
				A: 255,
			})
		}
	}

	return rgba
}
