package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spakin/netpbm"
	"github.com/spakin/netpbm/npcolor"

	"github.com/weaming/color-transfer-go/colorspace"
)

// ErrInvalidPPM PPM 文件格式错误
var ErrInvalidPPM = errors.New("无效的 PPM 文件")

// WritePPM 写入 8-bit PPM
// ascii=true 时输出 P3（文本，便于对比调试），否则输出 P6
func WritePPM(w io.Writer, img *colorspace.RGBImage, ascii bool) error {
	return netpbm.Encode(w, ToImage(img), &netpbm.EncodeOptions{
		Format:   netpbm.PPM,
		MaxValue: 255,
		Plain:    ascii,
	})
}

// isPPM 判断数据是否以 P3/P6 开头
func isPPM(br *bufio.Reader) bool {
	magic, err := br.Peek(2)
	if err != nil {
		return false
	}
	return magic[0] == 'P' && (magic[1] == '3' || magic[1] == '6')
}

// ReadPPM 读取 P3/P6 格式的 PPM，maxval 不为 255 时缩放到 8-bit
// 样本超过 maxval 视为格式错误
func ReadPPM(r io.Reader) (*colorspace.RGBImage, error) {
	br := bufio.NewReader(r)
	if !isPPM(br) {
		return nil, fmt.Errorf("%w: 不是 P3/P6 文件", ErrInvalidPPM)
	}

	// Exact 保留原始 maxval，由下面统一检查和缩放
	src, err := netpbm.Decode(br, &netpbm.DecodeOptions{Target: netpbm.PPM, Exact: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPPM, err)
	}

	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: 尺寸 %dx%d", ErrInvalidPPM, b.Dx(), b.Dy())
	}

	img := colorspace.NewRGBImage(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var s [3]int
			var maxVal int
			switch c := src.At(b.Min.X+x, b.Min.Y+y).(type) {
			case npcolor.RGBM:
				s, maxVal = [3]int{int(c.R), int(c.G), int(c.B)}, int(c.M)
			case npcolor.RGBM64:
				s, maxVal = [3]int{int(c.R), int(c.G), int(c.B)}, int(c.M)
			default:
				return nil, fmt.Errorf("%w: 意外的颜色类型 %T", ErrInvalidPPM, c)
			}
			if maxVal <= 0 {
				return nil, fmt.Errorf("%w: maxval %d", ErrInvalidPPM, maxVal)
			}

			var px [3]uint8
			for i, v := range s {
				if v > maxVal {
					return nil, fmt.Errorf("%w: 样本 %d 超过 maxval %d", ErrInvalidPPM, v, maxVal)
				}
				px[i] = scaleSample(v, maxVal)
			}
			img.Set(x, y, px)
		}
	}

	return img, nil
}

func scaleSample(v, maxVal int) uint8 {
	if maxVal == 255 {
		return uint8(v)
	}
	return uint8((v*255 + maxVal/2) / maxVal)
}
