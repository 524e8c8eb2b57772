package colorspace

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

var (
	// ErrEmptyImage 图像没有像素
	ErrEmptyImage = errors.New("图像为空")
	// ErrInvalidImage 图像尺寸与像素缓冲区不一致
	ErrInvalidImage = errors.New("图像数据无效")
)

// RGBImage 8-bit 设备 RGB 图像
// Pix 按行存储，每像素 R, G, B 三个字节
type RGBImage struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRGBImage 创建全黑的 RGB 图像
func NewRGBImage(width, height int) *RGBImage {
	return &RGBImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// At 返回 (x, y) 处的像素
func (img *RGBImage) At(x, y int) [3]uint8 {
	o := (y*img.Width + x) * 3
	return [3]uint8{img.Pix[o], img.Pix[o+1], img.Pix[o+2]}
}

// Set 设置 (x, y) 处的像素
func (img *RGBImage) Set(x, y int, rgb [3]uint8) {
	o := (y*img.Width + x) * 3
	img.Pix[o] = rgb[0]
	img.Pix[o+1] = rgb[1]
	img.Pix[o+2] = rgb[2]
}

// Validate 检查尺寸和缓冲区长度
func (img *RGBImage) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil", ErrInvalidImage)
	}
	return validateDims(img.Width, img.Height, len(img.Pix))
}

// LabImage 感知色彩空间图像
// Pix 按行存储 L, a, b 三个浮点样本，采用 8-bit Lab 编码（范围约 [0, 255]）
type LabImage struct {
	Width  int
	Height int
	Pix    []float64
}

// NewLabImage 创建 Lab 图像
func NewLabImage(width, height int) *LabImage {
	return &LabImage{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height*3),
	}
}

// Channel 拆分出第 c 个通道（0=L, 1=a, 2=b）
func (img *LabImage) Channel(c int) []float64 {
	n := img.Width * img.Height
	ch := make([]float64, n)
	for i := 0; i < n; i++ {
		ch[i] = img.Pix[i*3+c]
	}
	return ch
}

// Validate 检查尺寸和缓冲区长度
func (img *LabImage) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil", ErrInvalidImage)
	}
	return validateDims(img.Width, img.Height, len(img.Pix))
}

func validateDims(width, height, pixLen int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: 尺寸 %dx%d", ErrInvalidImage, width, height)
	}
	if width == 0 || height == 0 {
		return ErrEmptyImage
	}
	if pixLen != width*height*3 {
		return fmt.Errorf("%w: %dx%d 需要 %d 个样本，实际 %d",
			ErrInvalidImage, width, height, width*height*3, pixLen)
	}
	return nil
}

// ToLab 将整幅 RGB 图像转换为 Lab，输入不被修改
func ToLab(img *RGBImage) *LabImage {
	lab := NewLabImage(img.Width, img.Height)
	forEachRowBand(img.Height, func(startY, endY int) {
		for i := startY * img.Width; i < endY*img.Width; i++ {
			o := i * 3
			v := RGBToLab8([3]uint8{img.Pix[o], img.Pix[o+1], img.Pix[o+2]})
			copy(lab.Pix[o:o+3], v[:])
		}
	})
	return lab
}

// ToRGB 将整幅 Lab 图像转换回 RGB，输入不被修改
func ToRGB(lab *LabImage) *RGBImage {
	img := NewRGBImage(lab.Width, lab.Height)
	forEachRowBand(lab.Height, func(startY, endY int) {
		for i := startY * lab.Width; i < endY*lab.Width; i++ {
			o := i * 3
			rgb := Lab8ToRGB(Vector3{lab.Pix[o], lab.Pix[o+1], lab.Pix[o+2]})
			copy(img.Pix[o:o+3], rgb[:])
		}
	})
	return img
}

// forEachRowBand 按行分块并发处理
// 每个 worker 只写自己负责的行，结果与线程数无关
func forEachRowBand(height int, fn func(startY, endY int)) {
	if height <= 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > height {
		numWorkers = height
	}

	rowsPerWorker := height / numWorkers
	var wg sync.WaitGroup

	for workerID := 0; workerID < numWorkers; workerID++ {
		startRow := workerID * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if workerID == numWorkers-1 {
			endRow = height
		}

		wg.Add(1)
		go func(startY, endY int) {
			defer wg.Done()
			fn(startY, endY)
		}(startRow, endRow)
	}

	wg.Wait()
}
