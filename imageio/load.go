package imageio

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/weaming/color-transfer-go/colorspace"
)

// Load 读取图像文件，格式由文件内容判断
func Load(path string) (*colorspace.RGBImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("无法解码 %s: %w", path, err)
	}
	return img, nil
}

// Decode 解码 PNG/JPEG/GIF/BMP/TIFF/WebP/PPM
// PPM 走 ReadPPM，以便检查样本是否超过 maxval
func Decode(r io.Reader) (*colorspace.RGBImage, error) {
	br := bufio.NewReader(r)
	if isPPM(br) {
		return ReadPPM(br)
	}

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, err
	}

	rgb := FromImage(img)
	if err := rgb.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", format, err)
	}
	return rgb, nil
}
