package pipeline

import (
	"errors"
	"fmt"

	"github.com/weaming/color-transfer-go/imageio"
)

// Version 程序版本
const Version = "0.1.0"

// Config 一次色彩迁移的全部参数
type Config struct {
	Source        string // 提供色彩分布的图像
	Target        string // 被重新着色的图像
	Output        string // 结果输出路径
	Preview       string // 源/目标/结果并排预览图路径
	PreviewHeight int
	Quality       int  // JPEG 质量 (1-100)
	InverseScale  bool // 缩放系数使用 targetStd/sourceStd
	ShowStats     bool
	PlainPPM      bool // .ppm 输出使用 P3 文本格式
	Verbose       bool
}

// Validate 检查必填参数和输出格式
func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("必须指定源图像 (--source)")
	}
	if c.Target == "" {
		return errors.New("必须指定目标图像 (--target)")
	}
	if c.Output == "" && c.Preview == "" {
		return errors.New("必须指定输出文件 (-o) 或预览文件 (--preview)")
	}
	if c.Output != "" {
		if _, err := imageio.FormatFromPath(c.Output); err != nil {
			return fmt.Errorf("输出文件: %w", err)
		}
	}
	if c.Preview != "" {
		if _, err := imageio.FormatFromPath(c.Preview); err != nil {
			return fmt.Errorf("预览文件: %w", err)
		}
	}
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("JPEG 质量超出范围: %d", c.Quality)
	}
	return nil
}
