package imageio

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/weaming/color-transfer-go/colorspace"
)

// SaveOptions 输出选项
type SaveOptions struct {
	Quality int  // JPEG 质量 1-100, 默认 95
	ASCII   bool // PPM 输出 P3 而非 P6
}

// Format 输出格式
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
	FormatPPM  Format = "ppm"
)

// FormatFromPath 根据扩展名确定输出格式
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".ppm":
		return FormatPPM, nil
	default:
		return "", fmt.Errorf("不支持的输出格式: %q", ext)
	}
}

// Save 写入图像文件，格式由扩展名决定
func Save(img *colorspace.RGBImage, path string, opts SaveOptions) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, img, format, opts)
}

// Encode 按指定格式编码
func Encode(w io.Writer, img *colorspace.RGBImage, format Format, opts SaveOptions) error {
	if err := img.Validate(); err != nil {
		return err
	}

	switch format {
	case FormatPNG:
		return png.Encode(w, ToImage(img))
	case FormatJPEG:
		quality := opts.Quality
		if quality <= 0 || quality > 100 {
			quality = 95
		}
		return jpeg.Encode(w, ToImage(img), &jpeg.Options{Quality: quality})
	case FormatBMP:
		return bmp.Encode(w, ToImage(img))
	case FormatTIFF:
		return tiff.Encode(w, ToImage(img), &tiff.Options{Compression: tiff.Deflate})
	case FormatPPM:
		return WritePPM(w, img, opts.ASCII)
	default:
		return fmt.Errorf("不支持的输出格式: %q", format)
	}
}
