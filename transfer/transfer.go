// Package transfer 基于 Lab 通道统计量的色彩迁移。
//
// 目标图像每个通道先减去自身均值，按标准差之比缩放，再加上源图像的均值，
// 最后裁剪到 [0, 255] 并转换回 RGB。三个通道互不影响。
package transfer

import (
	"fmt"
	"math"

	"github.com/weaming/color-transfer-go/colorspace"
)

// Options 色彩迁移选项
type Options struct {
	// InverseScale 使用 targetStd/sourceStd 作为缩放系数，
	// 默认为 sourceStd/targetStd
	InverseScale bool
}

// Transfer 把 source 的色彩分布迁移到 target 上
// 输出尺寸与 target 相同，source 的尺寸不影响输出
func Transfer(source, target *colorspace.RGBImage, opts Options) (*colorspace.RGBImage, error) {
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("源图像: %w", err)
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("目标图像: %w", err)
	}

	lab, err := TransferLab(colorspace.ToLab(source), colorspace.ToLab(target), opts)
	if err != nil {
		return nil, err
	}
	return colorspace.ToRGB(lab), nil
}

// TransferLab 在 Lab 空间中完成统计量匹配
// 返回的样本均为 [0, 255] 内的整数值
func TransferLab(source, target *colorspace.LabImage, opts Options) (*colorspace.LabImage, error) {
	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("源图像: %w", err)
	}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("目标图像: %w", err)
	}

	srcStats := ComputeStats(source)
	tarStats := ComputeStats(target)

	// 标准差为 0 时不做特殊处理：比例为 Inf 或 NaN，由裁剪和取整吸收
	var scale [3]float64
	for c := 0; c < 3; c++ {
		if opts.InverseScale {
			scale[c] = tarStats.Std[c] / srcStats.Std[c]
		} else {
			scale[c] = srcStats.Std[c] / tarStats.Std[c]
		}
	}

	out := colorspace.NewLabImage(target.Width, target.Height)
	for c := 0; c < 3; c++ {
		channel := target.Channel(c)
		for i, v := range channel {
			v = (v-tarStats.Mean[c])*scale[c] + srcStats.Mean[c]
			out.Pix[i*3+c] = narrow8(clip(v, 0, colorspace.MaxSample))
		}
	}

	return out, nil
}

// clip 与 numpy.clip 一致：NaN 保持不变
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// narrow8 浮点截断为 8-bit 整数，NaN 固定为 0
func narrow8(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return float64(uint8(v))
}
